package handlers_test

import (
	"context"

	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	portssvc "github.com/Theakashprasad/practice-tool-client/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

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

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock CatalogService ---
type MockCatalogService[T any] struct {
	mock.Mock
}

func (m *MockCatalogService[T]) List(ctx context.Context, search string) ([]T, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockCatalogService[T]) Get(ctx context.Context, id domain.ID) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCatalogService[T]) Create(ctx context.Context, record T) (*T, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCatalogService[T]) Update(ctx context.Context, id domain.ID, record T) (*T, error) {
	args := m.Called(ctx, id, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCatalogService[T]) Delete(ctx context.Context, id domain.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ portssvc.CatalogSvcFacade[domain.Tool] = (*MockCatalogService[domain.Tool])(nil)

// --- Mock ContactService ---
type MockContactService struct {
	MockCatalogService[domain.Contact]
}

func (m *MockContactService) SetDefaultEmail(ctx context.Context, id domain.ID, index int) (*domain.Contact, error) {
	return m.setDefault(ctx, "SetDefaultEmail", id, index)
}

func (m *MockContactService) SetDefaultPhone(ctx context.Context, id domain.ID, index int) (*domain.Contact, error) {
	return m.setDefault(ctx, "SetDefaultPhone", id, index)
}

func (m *MockContactService) SetDefaultSMS(ctx context.Context, id domain.ID, index int) (*domain.Contact, error) {
	return m.setDefault(ctx, "SetDefaultSMS", id, index)
}

func (m *MockContactService) setDefault(ctx context.Context, method string, id domain.ID, index int) (*domain.Contact, error) {
	args := m.MethodCalled(method, ctx, id, index)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

var _ portssvc.ContactSvcFacade = (*MockContactService)(nil)

// --- Mock InvitationService ---
type MockInvitationService struct {
	mock.Mock
}

func (m *MockInvitationService) ListInvitations(ctx context.Context, search string) ([]domain.Invitation, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invitation), args.Error(1)
}

func (m *MockInvitationService) GetInvitation(ctx context.Context, id domain.ID) (*domain.Invitation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invitation), args.Error(1)
}

func (m *MockInvitationService) CreateInvitation(ctx context.Context, in portssvc.CreateInvitationInput) (*domain.Invitation, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invitation), args.Error(1)
}

func (m *MockInvitationService) WithdrawInvitation(ctx context.Context, id domain.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvitationService) DeleteInvitation(ctx context.Context, id domain.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ portssvc.InvitationSvcFacade = (*MockInvitationService)(nil)

// --- Mock ClientViewService ---
type MockClientViewService struct {
	mock.Mock
}

func (m *MockClientViewService) ResolveClientView(ctx context.Context, clientID domain.ID) (*domain.ClientView, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClientView), args.Error(1)
}

// --- Mock StaffDirectoryService ---
type MockStaffDirectoryService struct {
	mock.Mock
}

func (m *MockStaffDirectoryService) ListStaffDirectory(ctx context.Context) ([]domain.StaffMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StaffMember), args.Error(1)
}

// --- Mock ChatPreferenceService ---
type MockChatPreferenceService struct {
	mock.Mock
}

func (m *MockChatPreferenceService) GetChatPreference(ctx context.Context) (*domain.ChatPreference, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatPreference), args.Error(1)
}

func (m *MockChatPreferenceService) UpdateChatPreference(ctx context.Context, pref domain.ChatPreference) (*domain.ChatPreference, error) {
	args := m.Called(ctx, pref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatPreference), args.Error(1)
}
