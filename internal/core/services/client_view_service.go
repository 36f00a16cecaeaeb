package services

import (
	"context"
	"log/slog"

	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	portsrepo "github.com/Theakashprasad/practice-tool-client/internal/core/ports/repositories"
	portssvc "github.com/Theakashprasad/practice-tool-client/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

// maxContactLookups bounds the concurrent per-contact requests of one client view.
const maxContactLookups = 8

type clientViewService struct {
	BaseService
	repos portsrepo.RepositoryProvider
}

// NewClientViewService creates the service that joins a client with its collaborators.
func NewClientViewService(repos portsrepo.RepositoryProvider) portssvc.ClientViewSvc {
	return &clientViewService{repos: repos}
}

func (s *clientViewService) ResolveClientView(ctx context.Context, clientID domain.ID) (*domain.ClientView, error) {
	client, err := s.repos.Clients.FindByID(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load client for view", slog.String("client_id", clientID.String()))
		return nil, err
	}

	var c Collaborators
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c.Users = loadOrEmpty(gctx, s, "users", s.repos.Users.List)
		return nil
	})
	g.Go(func() error {
		c.Invitations = loadOrEmpty(gctx, s, "invitations", s.repos.Invitations.List)
		return nil
	})
	g.Go(func() error {
		c.ClientGroups = loadOrEmpty(gctx, s, "client-groups", s.repos.ClientGroups.List)
		return nil
	})
	g.Go(func() error {
		c.ServiceTypes = loadOrEmpty(gctx, s, "service-types", s.repos.ServiceTypes.List)
		return nil
	})
	g.Go(func() error {
		c.Industries = loadOrEmpty(gctx, s, "industries", s.repos.Industries.List)
		return nil
	})
	g.Go(func() error {
		c.Links = loadOrEmpty(gctx, s, "links", s.repos.Links.List)
		return nil
	})
	g.Go(func() error {
		c.Contacts = s.loadContacts(gctx, client.ContactIDs)
		return nil
	})
	_ = g.Wait()

	view := ResolveClientView(*client, c)
	return &view, nil
}

// loadContacts looks every contact up by id concurrently. Failed lookups are dropped; the rest keep
// the order of ids.
func (s *clientViewService) loadContacts(ctx context.Context, ids []domain.ID) []domain.Contact {
	found := make([]*domain.Contact, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxContactLookups)
	for i, id := range ids {
		g.Go(func() error {
			contact, err := s.repos.Contacts.FindByID(gctx, id)
			if err != nil {
				s.LogWarn(gctx, err, "Contact lookup failed, skipping", slog.String("contact_id", id.String()))
				return nil
			}
			found[i] = contact
			return nil
		})
	}
	_ = g.Wait()

	contacts := make([]domain.Contact, 0, len(ids))
	for _, c := range found {
		if c != nil {
			contacts = append(contacts, *c)
		}
	}
	return contacts
}

func loadOrEmpty[T any](ctx context.Context, s *clientViewService, name string, list func(context.Context) ([]T, error)) []T {
	records, err := list(ctx)
	if err != nil {
		s.LogWarn(ctx, err, "Collaborator unavailable, continuing without it", slog.String("collaborator", name))
		return []T{}
	}
	if records == nil {
		return []T{}
	}
	return records
}
