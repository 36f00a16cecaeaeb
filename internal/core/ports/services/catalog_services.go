package services

import (
	"context"

	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
)

// CatalogReaderSvc defines list/detail reads for one entity type.
type CatalogReaderSvc[T any] interface {
	// List returns the collection filtered by a case-insensitive substring search; "" returns everything.
	List(ctx context.Context, search string) ([]T, error)

	// Get returns one record.
	Get(ctx context.Context, id domain.ID) (*T, error)
}

// CatalogWriterSvc defines guarded mutations for one entity type.
type CatalogWriterSvc[T any] interface {
	Create(ctx context.Context, record T) (*T, error)
	Update(ctx context.Context, id domain.ID, record T) (*T, error)

	// Delete runs the destructive-action confirmation policy before removing the record.
	Delete(ctx context.Context, id domain.ID) error
}

// CatalogSvcFacade combines reads and writes for one entity type.
type CatalogSvcFacade[T any] interface {
	CatalogReaderSvc[T]
	CatalogWriterSvc[T]
}
