package domain

// SearchFilters narrows search results by chunk metadata.
// All filters are optional; a result must pass every filter that is set.
type SearchFilters struct {
	// Source requires an exact match on the chunk's source field.
	Source string

	// Language requires an exact match on the chunk's language field.
	Language string

	// Tags requires at least one of the requested tags to be
	// present in the chunk's tag set.
	Tags []string
}

// IsZero returns true if no filter is set.
func (f SearchFilters) IsZero() bool {
	return f.Source == "" && f.Language == "" && len(f.Tags) == 0
}

// Match returns true if the chunk metadata passes every set filter.
func (f SearchFilters) Match(meta Metadata) bool {
	if f.Source != "" && meta.Source() != f.Source {
		return false
	}
	if f.Language != "" && meta.Language() != f.Language {
		return false
	}
	if len(f.Tags) > 0 {
		found := false
		for _, tag := range f.Tags {
			if meta.HasTag(tag) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// SearchResult represents a single search hit.
// Results are produced per-query and never stored.
type SearchResult struct {
	// Chunk is the matched chunk.
	Chunk Chunk

	// Score is the normalised relevance score in [0, 1].
	Score float64

	// Highlights contains up to three snippets with matched terms.
	Highlights []string
}

// QueryResult is the value exposed to a higher-level query tool.
type QueryResult struct {
	// Results are the scored, filtered search hits.
	Results []SearchResult

	// TotalCount is the number of results returned.
	TotalCount int

	// QueryTimeMs is the wall-clock query duration in milliseconds.
	QueryTimeMs int64
}
