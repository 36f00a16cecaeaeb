package services

import (
	"context"

	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
)

// CreateInvitationInput is what the invite form submits.
type CreateInvitationInput struct {
	Email string
	Level domain.UserLevel // optional
}

// InvitationSvcFacade defines the invitation lifecycle.
type InvitationSvcFacade interface {
	// ListInvitations filters by case-insensitive email substring.
	ListInvitations(ctx context.Context, search string) ([]domain.Invitation, error)
	GetInvitation(ctx context.Context, id domain.ID) (*domain.Invitation, error)
	CreateInvitation(ctx context.Context, in CreateInvitationInput) (*domain.Invitation, error)

	// WithdrawInvitation is only allowed while the invitation is pending.
	WithdrawInvitation(ctx context.Context, id domain.ID) error

	// DeleteInvitation is allowed in any status.
	DeleteInvitation(ctx context.Context, id domain.ID) error
}
