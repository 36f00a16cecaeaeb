package services

import (
	"context"
	"time"

	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
)

// LoginResult is the outcome of one login submit. Session is set only on success.
type LoginResult struct {
	Outcome domain.LoginOutcome
	Session *domain.Session
}

// AuthSvcFacade defines the login, registration and session lifecycle.
type AuthSvcFacade interface {
	// Login submits credentials (and the MFA token when already collected) and persists the
	// session on success.
	Login(ctx context.Context, creds domain.Credentials) (*LoginResult, error)

	// Register creates a backend account.
	Register(ctx context.Context, reg domain.Registration) error

	// Logout clears the session and tells the backend, best-effort.
	Logout(ctx context.Context, sessionID string) error

	// CurrentSession loads a stored session.
	CurrentSession(ctx context.Context, sessionID string) (*domain.Session, error)
}

// TokenSvcFacade issues and verifies the signed token the browser holds for its session.
type TokenSvcFacade interface {
	IssueSessionToken(session *domain.Session) (string, time.Time, error)
	ParseSessionToken(token string) (string, error)
}
