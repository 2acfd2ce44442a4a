package driven

import (
	"context"

	"github.com/custodia-labs/ragkit/internal/core/domain"
)

// DocumentStore is an identity-keyed catalog of raw documents.
// It is separate from the search index and serves direct
// retrieve-by-id lookups. Backed by memory in the default wiring.
type DocumentStore interface {
	// Add stores or updates a document.
	Add(ctx context.Context, doc domain.Document) error

	// Get retrieves a document by ID.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// GetBySource returns documents produced by a source.
	GetBySource(ctx context.Context, sourceID string) ([]domain.Document, error)

	// GetByTag returns documents carrying the given metadata tag.
	GetByTag(ctx context.Context, tag string) ([]domain.Document, error)

	// List returns all stored documents.
	List(ctx context.Context) ([]domain.Document, error)

	// Count returns the number of stored documents.
	Count(ctx context.Context) int
}
