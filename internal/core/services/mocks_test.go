package services_test

import (
	"context"
	"time"

	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	portssvc "github.com/Theakashprasad/practice-tool-client/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock ResourceRepository ---
type MockResourceRepository[T any] struct {
	mock.Mock
}

func (m *MockResourceRepository[T]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockResourceRepository[T]) FindByID(ctx context.Context, id domain.ID) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockResourceRepository[T]) Create(ctx context.Context, record T) (*T, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockResourceRepository[T]) Update(ctx context.Context, id domain.ID, record T) (*T, error) {
	args := m.Called(ctx, id, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockResourceRepository[T]) Delete(ctx context.Context, id domain.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Mock UserReader ---
type MockUserReader struct {
	MockResourceRepository[domain.User]
}

func (m *MockUserReader) ListStaffUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// --- Mock InvitationRepository ---
type MockInvitationRepository struct {
	MockResourceRepository[domain.Invitation]
}

func (m *MockInvitationRepository) Withdraw(ctx context.Context, id domain.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Mock AuthGateway ---
type MockAuthGateway struct {
	mock.Mock
}

func (m *MockAuthGateway) Login(ctx context.Context, creds domain.Credentials) (domain.LoginOutcome, error) {
	args := m.Called(ctx, creds)
	return args.Get(0).(domain.LoginOutcome), args.Error(1)
}

func (m *MockAuthGateway) Register(ctx context.Context, reg domain.Registration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

func (m *MockAuthGateway) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock SessionStore ---
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Load(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionStore) Save(ctx context.Context, session domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionStore) Clear(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// --- Mock MutationGuardStore ---
type MockMutationGuardStore struct {
	mock.Mock
}

func (m *MockMutationGuardStore) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockMutationGuardStore) Release(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, creds domain.Credentials) (*portssvc.LoginResult, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.LoginResult), args.Error(1)
}

func (m *MockAuthService) Register(ctx context.Context, reg domain.Registration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockAuthService) CurrentSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func confirmed(n int) context.Context {
	return domain.ContextWithConfirmations(context.Background(), n)
}
