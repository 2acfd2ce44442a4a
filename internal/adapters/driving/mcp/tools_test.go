package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ragkit/internal/core/domain"
	"github.com/custodia-labs/ragkit/internal/core/ports/driving"
)

func TestServer_handleQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("returns query results", func(t *testing.T) {
		provider := &mockProvider{
			queryResult: &domain.QueryResult{
				Results: []domain.SearchResult{
					{
						Chunk: domain.Chunk{
							ID:         "doc-1-chunk-0",
							DocumentID: "doc-1",
							Title:      "Test Doc",
							Content:    "This is the content",
						},
						Score:      0.95,
						Highlights: []string{"matched text"},
					},
				},
				TotalCount:  1,
				QueryTimeMs: 3,
			},
		}
		server, err := NewServer(&Ports{Provider: provider})
		require.NoError(t, err)

		_, output, err := server.handleQuery(ctx, nil, QueryInput{Query: "test"})

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		assert.Equal(t, int64(3), output.QueryTimeMs)
		require.Len(t, output.Results, 1)
		assert.Equal(t, "doc-1-chunk-0", output.Results[0].ChunkID)
		assert.Equal(t, "doc-1", output.Results[0].DocumentID)
		assert.Equal(t, "Test Doc", output.Results[0].Title)
		assert.Equal(t, 0.95, output.Results[0].Score)
		assert.Equal(t, "This is the content", output.Results[0].Content)
		assert.Equal(t, []string{"matched text"}, output.Results[0].Highlights)
	})

	t.Run("passes filters through", func(t *testing.T) {
		provider := &mockProvider{queryResult: &domain.QueryResult{}}
		server, err := NewServer(&Ports{Provider: provider})
		require.NoError(t, err)

		input := QueryInput{
			Query:    "test",
			Limit:    5,
			MinScore: 0.3,
			Source:   "docs",
			Language: "go",
			Tags:     []string{"api"},
		}
		_, _, err = server.handleQuery(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, driving.QueryOptions{
			Limit:    5,
			MinScore: 0.3,
			Filters: domain.SearchFilters{
				Source:   "docs",
				Language: "go",
				Tags:     []string{"api"},
			},
		}, provider.queryOpts)
	})

	t.Run("propagates errors", func(t *testing.T) {
		provider := &mockProvider{queryErr: errors.New("index unavailable")}
		server, err := NewServer(&Ports{Provider: provider})
		require.NoError(t, err)

		_, _, err = server.handleQuery(ctx, nil, QueryInput{Query: "test"})

		assert.Error(t, err)
	})
}

func TestServer_handleGetDocument(t *testing.T) {
	ctx := context.Background()
	provider := &mockProvider{docs: map[string]domain.Document{
		"doc-1": {
			ID:       "doc-1",
			SourceID: "src-1",
			Type:     domain.TypeMarkdown,
			Title:    "Guide",
			Content:  "# Guide",
			Metadata: domain.Metadata{domain.MetaSource: "src-1"},
		},
	}}
	server, err := NewServer(&Ports{Provider: provider})
	require.NoError(t, err)

	t.Run("returns document", func(t *testing.T) {
		_, output, err := server.handleGetDocument(ctx, nil, DocumentInput{ID: "doc-1"})

		require.NoError(t, err)
		assert.Equal(t, "doc-1", output.ID)
		assert.Equal(t, "src-1", output.SourceID)
		assert.Equal(t, "markdown", output.Type)
		assert.Equal(t, "# Guide", output.Content)
	})

	t.Run("missing document errors", func(t *testing.T) {
		_, _, err := server.handleGetDocument(ctx, nil, DocumentInput{ID: "missing"})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestServer_handleSync(t *testing.T) {
	ctx := context.Background()
	stats := &driving.SyncStats{
		SourcesSynced:      2,
		DocumentsProcessed: 7,
		ChunksIndexed:      19,
	}

	t.Run("syncs all sources", func(t *testing.T) {
		provider := &mockProvider{syncStat: stats}
		server, err := NewServer(&Ports{Provider: provider})
		require.NoError(t, err)

		_, output, err := server.handleSync(ctx, nil, SyncInput{})

		require.NoError(t, err)
		assert.Equal(t, 2, output.SourcesSynced)
		assert.Equal(t, 7, output.DocumentsProcessed)
		assert.Equal(t, 19, output.ChunksIndexed)
		assert.Empty(t, provider.syncedSource)
	})

	t.Run("syncs a single source", func(t *testing.T) {
		provider := &mockProvider{syncStat: stats}
		server, err := NewServer(&Ports{Provider: provider})
		require.NoError(t, err)

		_, _, err = server.handleSync(ctx, nil, SyncInput{Source: "src-1"})

		require.NoError(t, err)
		assert.Equal(t, "src-1", provider.syncedSource)
	})
}
