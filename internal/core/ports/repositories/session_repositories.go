package repositories

import (
	"context"
	"time"

	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
)

// SessionStore persists session contexts with an explicit load/save/clear lifecycle.
type SessionStore interface {
	// Load returns the session or apperrors.ErrNotFound when absent or expired.
	Load(ctx context.Context, sessionID string) (*domain.Session, error)

	// Save stores or replaces the session.
	Save(ctx context.Context, session domain.Session) error

	// Clear removes the session. Clearing an unknown session is not an error.
	Clear(ctx context.Context, sessionID string) error
}

// MutationGuardStore holds short-lived keys for mutations that are currently in flight.
type MutationGuardStore interface {
	// Acquire returns true if the key was free and is now held for at most ttl.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Release frees the key.
	Release(ctx context.Context, key string) error
}
