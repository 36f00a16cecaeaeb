package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Theakashprasad/practice-tool-client/internal/apperrors"
	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	portsrepo "github.com/Theakashprasad/practice-tool-client/internal/core/ports/repositories"
	portssvc "github.com/Theakashprasad/practice-tool-client/internal/core/ports/services"
)

type catalogService[T any] struct {
	BaseService
	repo      portsrepo.ResourceRepositoryFacade[T]
	resource  string
	search    SearchFields[T]
	prepare   func(*T) error
	guard     *MutationGuard
	confirmer Confirmer
}

// CatalogOption configures a catalog service.
type CatalogOption[T any] func(*catalogService[T])

// WithSearchFields sets the fields List matches the search query against.
func WithSearchFields[T any](fields SearchFields[T]) CatalogOption[T] {
	return func(s *catalogService[T]) {
		s.search = fields
	}
}

// WithPrepare sets a hook that validates and normalises a record before it is created or updated.
func WithPrepare[T any](prepare func(*T) error) CatalogOption[T] {
	return func(s *catalogService[T]) {
		s.prepare = prepare
	}
}

// WithCatalogGuard runs mutations under the in-flight guard.
func WithCatalogGuard[T any](guard *MutationGuard) CatalogOption[T] {
	return func(s *catalogService[T]) {
		s.guard = guard
	}
}

// WithConfirmer sets the destructive-action policy used by Delete.
func WithConfirmer[T any](confirmer Confirmer) CatalogOption[T] {
	return func(s *catalogService[T]) {
		if confirmer != nil {
			s.confirmer = confirmer
		}
	}
}

// NewCatalogService creates the list/detail service for one backend collection.
func NewCatalogService[T any](repo portsrepo.ResourceRepositoryFacade[T], resource string, opts ...CatalogOption[T]) portssvc.CatalogSvcFacade[T] {
	s := &catalogService[T]{
		repo:      repo,
		resource:  resource,
		confirmer: NewContextConfirmer(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *catalogService[T]) List(ctx context.Context, search string) ([]T, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list records", slog.String("resource", s.resource))
		return nil, err
	}
	filtered := FilterBySearch(records, search, s.search)
	s.LogDebug(ctx, "Records listed", slog.String("resource", s.resource), slog.Int("total", len(records)), slog.Int("matched", len(filtered)))
	return filtered, nil
}

func (s *catalogService[T]) Get(ctx context.Context, id domain.ID) (*T, error) {
	if id.IsZero() {
		return nil, apperrors.NewValidationFailedError("id is required")
	}
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get record", slog.String("resource", s.resource), slog.String("id", id.String()))
		}
		return nil, err
	}
	return record, nil
}

func (s *catalogService[T]) Create(ctx context.Context, record T) (*T, error) {
	if err := s.runPrepare(&record); err != nil {
		return nil, err
	}
	created, err := Guarded(ctx, s.guard, "create", s.resource, func(ctx context.Context) (*T, error) {
		return s.repo.Create(ctx, record)
	})
	if err != nil {
		s.logMutationError(ctx, err, "create", "")
		return nil, err
	}
	s.LogInfo(ctx, "Record created", slog.String("resource", s.resource))
	return created, nil
}

func (s *catalogService[T]) Update(ctx context.Context, id domain.ID, record T) (*T, error) {
	if id.IsZero() {
		return nil, apperrors.NewValidationFailedError("id is required")
	}
	if err := s.runPrepare(&record); err != nil {
		return nil, err
	}
	updated, err := Guarded(ctx, s.guard, "update", s.resource+"/"+id.String(), func(ctx context.Context) (*T, error) {
		return s.repo.Update(ctx, id, record)
	})
	if err != nil {
		s.logMutationError(ctx, err, "update", id)
		return nil, err
	}
	s.LogInfo(ctx, "Record updated", slog.String("resource", s.resource), slog.String("id", id.String()))
	return updated, nil
}

func (s *catalogService[T]) Delete(ctx context.Context, id domain.ID) error {
	if id.IsZero() {
		return apperrors.NewValidationFailedError("id is required")
	}
	action := DestructiveAction{Resource: s.resource, ID: id}
	if err := s.confirmer.ConfirmDestructive(ctx, action, SeverityFor(s.resource)); err != nil {
		return err
	}
	err := s.guard.Run(ctx, "delete", s.resource+"/"+id.String(), func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		s.logMutationError(ctx, err, "delete", id)
		return err
	}
	s.LogInfo(ctx, "Record deleted", slog.String("resource", s.resource), slog.String("id", id.String()))
	return nil
}

func (s *catalogService[T]) runPrepare(record *T) error {
	if s.prepare == nil {
		return nil
	}
	return s.prepare(record)
}

func (s *catalogService[T]) logMutationError(ctx context.Context, err error, op string, id domain.ID) {
	if errors.Is(err, apperrors.ErrInFlight) || errors.Is(err, apperrors.ErrValidation) {
		return
	}
	s.LogError(ctx, err, "Mutation failed", slog.String("resource", s.resource), slog.String("op", op), slog.String("id", id.String()))
}
