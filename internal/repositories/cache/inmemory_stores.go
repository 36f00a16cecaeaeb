package cache

import (
	"context"
	"time"

	"github.com/Theakashprasad/practice-tool-client/internal/apperrors"
	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	portsrepo "github.com/Theakashprasad/practice-tool-client/internal/core/ports/repositories"
)

// InMemorySessionStore keeps sessions in process memory.
// This is suitable for single-instance deployments and testing
type InMemorySessionStore struct {
	sessions *expiringMap[domain.Session]
}

// NewInMemorySessionStore creates the store and starts its expiry sweep.
func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{sessions: newExpiringMap[domain.Session](defaultSweepInterval)}
}

func (s *InMemorySessionStore) Load(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, ok := s.sessions.get(sessionID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &session, nil
}

func (s *InMemorySessionStore) Save(ctx context.Context, session domain.Session) error {
	if session.ID == "" {
		return apperrors.NewValidationFailedError("session id is required")
	}
	s.sessions.set(session.ID, session, session.ExpiresAt)
	return nil
}

func (s *InMemorySessionStore) Clear(ctx context.Context, sessionID string) error {
	s.sessions.delete(sessionID)
	return nil
}

// Size returns the number of stored sessions, expired ones included until the next sweep.
func (s *InMemorySessionStore) Size() int {
	return s.sessions.size()
}

// Close stops the expiry sweep. Safe to call multiple times.
func (s *InMemorySessionStore) Close() error {
	s.sessions.close()
	return nil
}

// InMemoryMutationGuardStore holds in-flight mutation keys in process memory.
type InMemoryMutationGuardStore struct {
	keys *expiringMap[struct{}]
}

// NewInMemoryMutationGuardStore creates the store and starts its expiry sweep.
func NewInMemoryMutationGuardStore() *InMemoryMutationGuardStore {
	return &InMemoryMutationGuardStore{keys: newExpiringMap[struct{}](defaultSweepInterval)}
}

// Acquire returns true if key was free and is now held until ttl elapses or Release is called.
func (s *InMemoryMutationGuardStore) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return s.keys.setIfAbsent(key, struct{}{}, time.Now().Add(ttl)), nil
}

func (s *InMemoryMutationGuardStore) Release(ctx context.Context, key string) error {
	s.keys.delete(key)
	return nil
}

// Close stops the expiry sweep. Safe to call multiple times.
func (s *InMemoryMutationGuardStore) Close() error {
	s.keys.close()
	return nil
}

var (
	_ portsrepo.SessionStore       = (*InMemorySessionStore)(nil)
	_ portsrepo.MutationGuardStore = (*InMemoryMutationGuardStore)(nil)
)
