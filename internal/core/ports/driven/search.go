package driven

import (
	"context"

	"github.com/custodia-labs/ragkit/internal/core/domain"
)

// SearchIndex maintains a queryable inverted index over chunk content.
// The default implementation is an in-memory index; production
// deployments replace it with a real vector database behind this port.
type SearchIndex interface {
	// Add indexes a chunk. Re-adding an existing chunk ID replaces
	// its postings; no stale postings from a prior version survive.
	Add(ctx context.Context, chunk domain.Chunk) error

	// Remove deletes a chunk and all its posting memberships.
	// Returns whether a chunk existed for that ID.
	Remove(ctx context.Context, chunkID string) (bool, error)

	// Search returns ranked, filtered, highlighted results for a query.
	// Scores are normalised to [0, 1]. At most limit results are
	// returned; limit <= 0 uses the default of 10.
	Search(ctx context.Context, query string, limit int, filters domain.SearchFilters) ([]domain.SearchResult, error)

	// Count returns the number of distinct chunk IDs currently indexed.
	Count(ctx context.Context) int

	// Clear drops all chunks and postings. Always succeeds.
	Clear(ctx context.Context)
}
