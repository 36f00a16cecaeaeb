package services

import (
	"context"
	"log/slog"

	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	portsrepo "github.com/Theakashprasad/practice-tool-client/internal/core/ports/repositories"
	portssvc "github.com/Theakashprasad/practice-tool-client/internal/core/ports/services"
)

type contactService struct {
	portssvc.CatalogSvcFacade[domain.Contact]
	BaseService
	repo  portsrepo.ResourceRepositoryFacade[domain.Contact]
	guard *MutationGuard
}

// NewContactService creates the contact catalog with default email/phone selection.
func NewContactService(repo portsrepo.ResourceRepositoryFacade[domain.Contact], guard *MutationGuard, confirmer Confirmer) portssvc.ContactSvcFacade {
	return &contactService{
		CatalogSvcFacade: NewCatalogService[domain.Contact](repo, ResourceContacts,
			WithSearchFields[domain.Contact](contactSearchFields),
			WithPrepare[domain.Contact](prepareContact),
			WithCatalogGuard[domain.Contact](guard),
			WithConfirmer[domain.Contact](confirmer),
		),
		repo:  repo,
		guard: guard,
	}
}

func (s *contactService) SetDefaultEmail(ctx context.Context, id domain.ID, index int) (*domain.Contact, error) {
	return s.setDefault(ctx, id, "set-default-email", func(c *domain.Contact) error { return c.SetDefaultEmail(index) })
}

func (s *contactService) SetDefaultPhone(ctx context.Context, id domain.ID, index int) (*domain.Contact, error) {
	return s.setDefault(ctx, id, "set-default-phone", func(c *domain.Contact) error { return c.SetDefaultPhone(index) })
}

func (s *contactService) SetDefaultSMS(ctx context.Context, id domain.ID, index int) (*domain.Contact, error) {
	return s.setDefault(ctx, id, "set-default-sms", func(c *domain.Contact) error { return c.SetDefaultSMS(index) })
}

func (s *contactService) setDefault(ctx context.Context, id domain.ID, op string, apply func(*domain.Contact) error) (*domain.Contact, error) {
	contact, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(contact); err != nil {
		return nil, err
	}
	updated, err := Guarded(ctx, s.guard, op, ResourceContacts+"/"+id.String(), func(ctx context.Context) (*domain.Contact, error) {
		return s.repo.Update(ctx, id, *contact)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update contact defaults", slog.String("contact_id", id.String()), slog.String("op", op))
		return nil, err
	}
	return updated, nil
}
