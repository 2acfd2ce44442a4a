package driven

import (
	"context"

	"github.com/custodia-labs/ragkit/internal/core/domain"
)

// Source fetches documents from a data origin.
// Each connector type (filesystem, api, database) implements this
// interface independently; the only state a variant needs beyond its
// own configuration is a connected flag it owns itself.
type Source interface {
	// ID returns the configured source ID.
	ID() string

	// Type returns the connector type identifier.
	Type() string

	// Connect prepares the source for fetching.
	Connect(ctx context.Context) error

	// Disconnect releases any resources held by the source.
	Disconnect(ctx context.Context) error

	// IsConnected reports whether Connect has succeeded.
	IsConnected() bool

	// FetchDocuments returns all documents from the source.
	FetchDocuments(ctx context.Context) ([]domain.Document, error)

	// FetchDocument returns a single document by ID.
	// Returns domain.ErrNotFound if the source has no such document.
	FetchDocument(ctx context.Context, id string) (*domain.Document, error)

	// DocumentCount returns the number of documents the source holds.
	DocumentCount(ctx context.Context) (int, error)
}

// SourceFactory creates sources from configuration.
type SourceFactory interface {
	// Create builds a Source for the given configuration.
	// Returns domain.ErrUnsupportedType for unknown connector types.
	Create(ctx context.Context, cfg domain.SourceConfig) (Source, error)
}

// Watcher is an optional capability for sources that can push
// change events. The filesystem connector implements it.
type Watcher interface {
	// Watch delivers changed documents until the context is cancelled.
	Watch(ctx context.Context) (<-chan domain.Document, error)
}
