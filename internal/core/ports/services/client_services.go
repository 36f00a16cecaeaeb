package services

import (
	"context"

	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
)

// ClientViewSvc produces the joined view model of a client.
type ClientViewSvc interface {
	// ResolveClientView loads the client and its collaborators and joins them. Only a failure to load
	// the client itself is returned; collaborator failures degrade to empty collections.
	ResolveClientView(ctx context.Context, clientID domain.ID) (*domain.ClientView, error)
}

// StaffDirectorySvc lists everyone who can fill a staff slot.
type StaffDirectorySvc interface {
	// ListStaffDirectory merges staff users and pending invitations, users first.
	ListStaffDirectory(ctx context.Context) ([]domain.StaffMember, error)
}

// ContactSvcFacade adds default email/phone selection to the contact catalog.
type ContactSvcFacade interface {
	CatalogSvcFacade[domain.Contact]

	SetDefaultEmail(ctx context.Context, id domain.ID, index int) (*domain.Contact, error)
	SetDefaultPhone(ctx context.Context, id domain.ID, index int) (*domain.Contact, error)
	SetDefaultSMS(ctx context.Context, id domain.ID, index int) (*domain.Contact, error)
}

// ChatPreferenceSvc reads and updates the signed-in user's chat preferences.
type ChatPreferenceSvc interface {
	GetChatPreference(ctx context.Context) (*domain.ChatPreference, error)
	UpdateChatPreference(ctx context.Context, pref domain.ChatPreference) (*domain.ChatPreference, error)
}
