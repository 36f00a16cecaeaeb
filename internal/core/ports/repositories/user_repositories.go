package repositories

import (
	"context"

	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
)

// UserReader defines read operations for backend user accounts.
type UserReader interface {
	ResourceReader[domain.User]

	// ListStaffUsers retrieves users filtered by level=staff.
	ListStaffUsers(ctx context.Context) ([]domain.User, error)
}

// InvitationRepositoryFacade adds the withdraw action to the invitation collection.
type InvitationRepositoryFacade interface {
	ResourceRepositoryFacade[domain.Invitation]

	// Withdraw cancels a pending invitation.
	Withdraw(ctx context.Context, id domain.ID) error
}

// ChatPreferenceRepository reads and writes the signed-in user's chat preferences.
type ChatPreferenceRepository interface {
	GetChatPreference(ctx context.Context) (*domain.ChatPreference, error)
	UpdateChatPreference(ctx context.Context, pref domain.ChatPreference) (*domain.ChatPreference, error)
}
