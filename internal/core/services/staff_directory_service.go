package services

import (
	"context"
	"log/slog"

	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	portsrepo "github.com/Theakashprasad/practice-tool-client/internal/core/ports/repositories"
	portssvc "github.com/Theakashprasad/practice-tool-client/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

type staffDirectoryService struct {
	BaseService
	users       portsrepo.UserReader
	invitations portsrepo.ResourceReader[domain.Invitation]
}

// NewStaffDirectoryService creates the service backing the staff pickers.
func NewStaffDirectoryService(users portsrepo.UserReader, invitations portsrepo.ResourceReader[domain.Invitation]) portssvc.StaffDirectorySvc {
	return &staffDirectoryService{users: users, invitations: invitations}
}

// ListStaffDirectory returns staff users followed by pending invitations. A failing invitation list
// degrades to users only; a failing user list is returned as an error.
func (s *staffDirectoryService) ListStaffDirectory(ctx context.Context) ([]domain.StaffMember, error) {
	var (
		users       []domain.User
		invitations []domain.Invitation
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.users.ListStaffUsers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		invitations, err = s.invitations.List(gctx)
		if err != nil {
			s.LogWarn(gctx, err, "Invitations unavailable for staff directory")
			invitations = nil
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to list staff users")
		return nil, err
	}

	members := make([]domain.StaffMember, 0, len(users)+len(invitations))
	for _, u := range users {
		members = append(members, domain.StaffMemberFromUser(u))
	}
	for _, inv := range invitations {
		if inv.IsPending() {
			members = append(members, domain.StaffMemberFromInvitation(inv))
		}
	}
	s.LogDebug(ctx, "Staff directory listed", slog.Int("users", len(users)), slog.Int("members", len(members)))
	return members, nil
}
