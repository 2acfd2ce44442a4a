package driven

import (
	"context"

	"github.com/custodia-labs/ragkit/internal/core/domain"
)

// Chunker splits a document into an ordered sequence of overlapping,
// semantically-bounded chunks sized near a configured target.
type Chunker interface {
	// Chunk produces the ordered chunk sequence for a document.
	// Output is deterministic for a given document and configuration.
	Chunk(ctx context.Context, doc domain.Document) ([]domain.Chunk, error)
}
