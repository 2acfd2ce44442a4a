package driving

import (
	"context"

	"github.com/custodia-labs/ragkit/internal/core/domain"
)

// QueryOptions configures a provider query.
type QueryOptions struct {
	// Limit is the maximum number of results.
	// Zero or negative uses the configured maximum.
	Limit int

	// MinScore drops results scoring below the threshold.
	// Zero uses the configured threshold; negative disables the cut.
	MinScore float64

	// Filters narrows results by chunk metadata.
	Filters domain.SearchFilters
}

// SyncStats summarises one sync run.
type SyncStats struct {
	// SourcesSynced is the number of sources fully processed.
	SourcesSynced int

	// SourcesFailed is the number of sources skipped after an error.
	SourcesFailed int

	// DocumentsProcessed is the number of documents ingested.
	DocumentsProcessed int

	// ChunksIndexed is the number of chunks added to the index.
	ChunksIndexed int
}

// Provider is the orchestrator surface exposed to CLI and MCP adapters.
// It wires sources, the document catalog, the chunker and the search
// index into the ingest and query pipelines.
type Provider interface {
	// Sync ingests documents from every configured source.
	// A failing source is logged and skipped; the rest continue.
	Sync(ctx context.Context) (*SyncStats, error)

	// SyncSource ingests documents from a single source by ID.
	SyncSource(ctx context.Context, sourceID string) (*SyncStats, error)

	// Query answers a search query with scored, highlighted passages.
	Query(ctx context.Context, query string, opts QueryOptions) (*domain.QueryResult, error)

	// Document retrieves a document from the catalog by ID.
	Document(ctx context.Context, id string) (*domain.Document, error)

	// DocumentsBySource returns catalog documents for a source.
	DocumentsBySource(ctx context.Context, sourceID string) ([]domain.Document, error)

	// DocumentsByTag returns catalog documents carrying a tag.
	DocumentsByTag(ctx context.Context, tag string) ([]domain.Document, error)

	// DocumentCount returns the catalog size.
	DocumentCount(ctx context.Context) int

	// ChunkCount returns the number of chunks in the search index.
	ChunkCount(ctx context.Context) int
}
