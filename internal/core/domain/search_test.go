package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchFilters_IsZero(t *testing.T) {
	assert.True(t, SearchFilters{}.IsZero())
	assert.False(t, SearchFilters{Source: "docs"}.IsZero())
	assert.False(t, SearchFilters{Language: "go"}.IsZero())
	assert.False(t, SearchFilters{Tags: []string{"api"}}.IsZero())
}

func TestSearchFilters_Match(t *testing.T) {
	meta := Metadata{
		MetaSource:   "docs",
		MetaLanguage: "go",
		MetaTags:     []string{"api", "guide"},
	}

	tests := []struct {
		name    string
		filters SearchFilters
		want    bool
	}{
		{"no filters", SearchFilters{}, true},
		{"source match", SearchFilters{Source: "docs"}, true},
		{"source mismatch", SearchFilters{Source: "wiki"}, false},
		{"language match", SearchFilters{Language: "go"}, true},
		{"language mismatch", SearchFilters{Language: "python"}, false},
		{"one tag matches", SearchFilters{Tags: []string{"missing", "api"}}, true},
		{"no tag matches", SearchFilters{Tags: []string{"missing"}}, false},
		{"all filters match", SearchFilters{Source: "docs", Language: "go", Tags: []string{"guide"}}, true},
		{"one filter fails", SearchFilters{Source: "docs", Language: "python"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filters.Match(meta))
		})
	}
}

func TestSearchFilters_Match_EmptyMetadata(t *testing.T) {
	assert.True(t, SearchFilters{}.Match(nil))
	assert.False(t, SearchFilters{Source: "docs"}.Match(nil))
	assert.False(t, SearchFilters{Tags: []string{"api"}}.Match(Metadata{}))
}
