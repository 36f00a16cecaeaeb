package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Theakashprasad/practice-tool-client/internal/apperrors"
	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	portsrepo "github.com/Theakashprasad/practice-tool-client/internal/core/ports/repositories"
	portssvc "github.com/Theakashprasad/practice-tool-client/internal/core/ports/services"
	"github.com/go-playground/validator/v10"
)

type invitationService struct {
	BaseService
	repo      portsrepo.InvitationRepositoryFacade
	guard     *MutationGuard
	confirmer Confirmer
	validate  *validator.Validate
}

// InvitationOption configures the invitation service.
type InvitationOption func(*invitationService)

// WithInvitationGuard runs invitation mutations under the in-flight guard.
func WithInvitationGuard(guard *MutationGuard) InvitationOption {
	return func(s *invitationService) {
		s.guard = guard
	}
}

// WithInvitationConfirmer sets the destructive-action policy used by DeleteInvitation.
func WithInvitationConfirmer(confirmer Confirmer) InvitationOption {
	return func(s *invitationService) {
		if confirmer != nil {
			s.confirmer = confirmer
		}
	}
}

// NewInvitationService creates the invitation lifecycle service.
func NewInvitationService(repo portsrepo.InvitationRepositoryFacade, opts ...InvitationOption) portssvc.InvitationSvcFacade {
	s := &invitationService{
		repo:      repo,
		confirmer: NewContextConfirmer(),
		validate:  validator.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type invitationInput struct {
	Email string `validate:"required,email"`
	Level string `validate:"omitempty,oneof=admin staff client"`
}

func (s *invitationService) ListInvitations(ctx context.Context, search string) ([]domain.Invitation, error) {
	invitations, err := s.repo.List(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invitations")
		return nil, err
	}
	return FilterBySearch(invitations, search, invitationSearchFields), nil
}

func (s *invitationService) GetInvitation(ctx context.Context, id domain.ID) (*domain.Invitation, error) {
	if id.IsZero() {
		return nil, apperrors.NewValidationFailedError("id is required")
	}
	return s.repo.FindByID(ctx, id)
}

func (s *invitationService) CreateInvitation(ctx context.Context, in portssvc.CreateInvitationInput) (*domain.Invitation, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := s.validate.Struct(invitationInput{Email: in.Email, Level: string(in.Level)}); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, apperrors.NewValidationFailedError(invitationFieldMessage(verrs[0]))
		}
		return nil, apperrors.NewValidationFailedError(err.Error())
	}

	created, err := Guarded(ctx, s.guard, "create", ResourceInvitations+"/"+strings.ToLower(in.Email), func(ctx context.Context) (*domain.Invitation, error) {
		return s.repo.Create(ctx, domain.Invitation{Email: in.Email, Level: in.Level})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create invitation", slog.String("email", in.Email))
		return nil, err
	}
	s.LogInfo(ctx, "Invitation created", slog.String("invitation_id", created.ID.String()))
	return created, nil
}

// WithdrawInvitation reads the invitation first and refuses anything that is no longer pending,
// so a non-pending invitation never reaches the withdraw endpoint.
func (s *invitationService) WithdrawInvitation(ctx context.Context, id domain.ID) error {
	inv, err := s.GetInvitation(ctx, id)
	if err != nil {
		return err
	}
	if !inv.IsPending() {
		return apperrors.NewAppError(http.StatusConflict,
			fmt.Sprintf("invitation is %s and can no longer be withdrawn", inv.Status),
			apperrors.ErrInvalidTransition)
	}
	err = s.guard.Run(ctx, "withdraw", ResourceInvitations+"/"+id.String(), func(ctx context.Context) error {
		return s.repo.Withdraw(ctx, id)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to withdraw invitation", slog.String("invitation_id", id.String()))
		return err
	}
	s.LogInfo(ctx, "Invitation withdrawn", slog.String("invitation_id", id.String()))
	return nil
}

func (s *invitationService) DeleteInvitation(ctx context.Context, id domain.ID) error {
	if id.IsZero() {
		return apperrors.NewValidationFailedError("id is required")
	}
	action := DestructiveAction{Resource: ResourceInvitations, ID: id}
	if err := s.confirmer.ConfirmDestructive(ctx, action, SeverityFor(ResourceInvitations)); err != nil {
		return err
	}
	return s.guard.Run(ctx, "delete", ResourceInvitations+"/"+id.String(), func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
}

func invitationFieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Email":
		if fe.Tag() == "required" {
			return "email is required"
		}
		return "email is not a valid address"
	case "Level":
		return "level must be one of admin, staff, client"
	}
	return fe.Error()
}
