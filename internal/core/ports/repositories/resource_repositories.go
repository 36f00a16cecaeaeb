package repositories

import (
	"context"

	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
)

// ResourceReader defines read operations over one backend collection.
type ResourceReader[T any] interface {
	// List retrieves the whole collection. The backend has no pagination.
	List(ctx context.Context) ([]T, error)

	// FindByID retrieves one record.
	FindByID(ctx context.Context, id domain.ID) (*T, error)
}

// ResourceWriter defines write operations over one backend collection.
type ResourceWriter[T any] interface {
	// Create posts a new record and returns what the backend stored.
	Create(ctx context.Context, record T) (*T, error)

	// Update replaces a record.
	Update(ctx context.Context, id domain.ID, record T) (*T, error)

	// Delete hard-deletes a record.
	Delete(ctx context.Context, id domain.ID) error
}

// ResourceRepositoryFacade combines read and write access to a collection.
type ResourceRepositoryFacade[T any] interface {
	ResourceReader[T]
	ResourceWriter[T]
}
