package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/ragkit/internal/core/domain"
	"github.com/custodia-labs/ragkit/internal/core/ports/driven"
	"github.com/custodia-labs/ragkit/internal/logger"
)

// DefaultLimit is the result cap applied when the caller passes no limit.
const DefaultLimit = 10

// Ensure Index implements the interface.
var _ driven.SearchIndex = (*Index)(nil)

// Index is an in-memory inverted index over chunk tokens.
// A mutex guards the maps so adapter callers can share one instance;
// no broader concurrency guarantees are made.
type Index struct {
	mu sync.RWMutex

	// chunks is the primary map from chunk ID to chunk.
	chunks map[string]domain.Chunk

	// postings maps each token to the set of chunk IDs containing it.
	postings map[string]map[string]struct{}
}

// NewIndex creates a new empty inverted index.
func NewIndex() *Index {
	return &Index{
		chunks:   make(map[string]domain.Chunk),
		postings: make(map[string]map[string]struct{}),
	}
}

// Add indexes a chunk. Re-adding an existing chunk ID removes the old
// postings first so none survive from a prior version of the chunk.
func (idx *Index) Add(_ context.Context, chunk domain.Chunk) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if _, ok := idx.chunks[chunk.ID]; ok {
		idx.removeLocked(chunk.ID)
	}

	for _, token := range distinctTokens(chunk.Content) {
		set, ok := idx.postings[token]
		if !ok {
			set = make(map[string]struct{})
			idx.postings[token] = set
		}
		set[chunk.ID] = struct{}{}
	}
	idx.chunks[chunk.ID] = chunk

	return nil
}

// Remove deletes a chunk and all its posting memberships.
// Returns whether a chunk existed for that ID.
func (idx *Index) Remove(_ context.Context, chunkID string) (bool, error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if _, ok := idx.chunks[chunkID]; !ok {
		return false, nil
	}
	idx.removeLocked(chunkID)
	return true, nil
}

// removeLocked clears a chunk's postings by re-tokenising its stored
// content. Caller must hold the write lock.
func (idx *Index) removeLocked(chunkID string) {
	chunk := idx.chunks[chunkID]
	for _, token := range distinctTokens(chunk.Content) {
		set, ok := idx.postings[token]
		if !ok {
			continue
		}
		delete(set, chunkID)
		if len(set) == 0 {
			delete(idx.postings, token)
		}
	}
	delete(idx.chunks, chunkID)
}

// Search scores chunks by query-token overlap, normalises by the
// maximum raw score, applies metadata filters, extracts highlights and
// returns up to limit results sorted by score descending. Ties keep
// the order in which chunks first matched, so results are
// deterministic per run.
func (idx *Index) Search(
	_ context.Context, query string, limit int, filters domain.SearchFilters,
) ([]domain.SearchResult, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	queryTokens := distinctTokens(query)
	logger.Debug("Index search: %d query tokens, limit %d", len(queryTokens), limit)
	if len(queryTokens) == 0 {
		return []domain.SearchResult{}, nil
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	// Raw score: +1 per distinct query token present in the chunk.
	scores := make(map[string]int)
	var matched []string
	for _, token := range queryTokens {
		for chunkID := range idx.postings[token] {
			if scores[chunkID] == 0 {
				matched = append(matched, chunkID)
			}
			scores[chunkID]++
		}
	}
	// Posting-set iteration order is randomised; fix the tie order.
	sort.Strings(matched)

	maxScore := 0
	for _, score := range scores {
		if score > maxScore {
			maxScore = score
		}
	}
	if maxScore == 0 {
		maxScore = 1
	}

	results := make([]domain.SearchResult, 0, len(matched))
	for _, chunkID := range matched {
		chunk := idx.chunks[chunkID]
		if !filters.Match(chunk.Metadata) {
			continue
		}
		results = append(results, domain.SearchResult{
			Chunk:      chunk,
			Score:      float64(scores[chunkID]) / float64(maxScore),
			Highlights: extractHighlights(chunk.Content, queryTokens),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}

	logger.Debug("Index search: %d results", len(results))
	return results, nil
}

// Count returns the number of distinct chunk IDs currently indexed.
func (idx *Index) Count(_ context.Context) int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.chunks)
}

// Clear drops all chunks and postings.
func (idx *Index) Clear(_ context.Context) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.chunks = make(map[string]domain.Chunk)
	idx.postings = make(map[string]map[string]struct{})
}
