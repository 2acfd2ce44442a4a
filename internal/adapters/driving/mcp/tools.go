package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/ragkit/internal/core/domain"
	"github.com/custodia-labs/ragkit/internal/core/ports/driving"
)

// QueryInput is the input schema for the query tool.
type QueryInput struct {
	Query    string   `json:"query" jsonschema:"the search query to find relevant passages"`
	Limit    int      `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
	MinScore float64  `json:"min_score,omitempty" jsonschema:"drop results scoring below this threshold (0 uses the configured default)"`
	Source   string   `json:"source,omitempty" jsonschema:"only return passages from this source"`
	Language string   `json:"language,omitempty" jsonschema:"only return passages in this programming language"`
	Tags     []string `json:"tags,omitempty" jsonschema:"only return passages carrying all of these tags"`
}

// QueryOutput is the output schema for the query tool.
type QueryOutput struct {
	Results     []QueryResultOutput `json:"results"`
	Count       int                 `json:"count"`
	QueryTimeMs int64               `json:"query_time_ms"`
}

// QueryResultOutput represents a single scored passage.
type QueryResultOutput struct {
	ChunkID    string   `json:"chunk_id"`
	DocumentID string   `json:"document_id"`
	Title      string   `json:"title,omitempty"`
	Score      float64  `json:"score"`
	Highlights []string `json:"highlights,omitempty"`
	Content    string   `json:"content"`
}

// DocumentInput is the input schema for the get_document tool.
type DocumentInput struct {
	ID string `json:"id" jsonschema:"the document identifier"`
}

// DocumentOutput is the output schema for the get_document tool.
type DocumentOutput struct {
	ID       string          `json:"id"`
	SourceID string          `json:"source_id"`
	Type     string          `json:"type"`
	Title    string          `json:"title,omitempty"`
	Content  string          `json:"content"`
	Metadata domain.Metadata `json:"metadata,omitempty"`
}

// SyncInput is the input schema for the sync tool.
type SyncInput struct {
	Source string `json:"source,omitempty" jsonschema:"sync only this source ID (all sources when empty)"`
}

// SyncOutput is the output schema for the sync tool.
type SyncOutput struct {
	SourcesSynced      int `json:"sources_synced"`
	SourcesFailed      int `json:"sources_failed"`
	DocumentsProcessed int `json:"documents_processed"`
	ChunksIndexed      int `json:"chunks_indexed"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "query",
		Description: "Search indexed documents for passages relevant to a query",
	}, s.handleQuery)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_document",
		Description: "Retrieve the full content of a document by ID",
	}, s.handleGetDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "sync",
		Description: "Ingest documents from the configured sources into the index",
	}, s.handleSync)
}

// handleQuery handles the query tool invocation.
func (s *Server) handleQuery(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QueryInput,
) (*mcp.CallToolResult, QueryOutput, error) {
	opts := driving.QueryOptions{
		Limit:    input.Limit,
		MinScore: input.MinScore,
		Filters: domain.SearchFilters{
			Source:   input.Source,
			Language: input.Language,
			Tags:     input.Tags,
		},
	}

	result, err := s.ports.Provider.Query(ctx, input.Query, opts)
	if err != nil {
		return nil, QueryOutput{}, err
	}

	output := QueryOutput{
		Results:     make([]QueryResultOutput, len(result.Results)),
		Count:       result.TotalCount,
		QueryTimeMs: result.QueryTimeMs,
	}

	for i := range result.Results {
		r := &result.Results[i]
		output.Results[i] = QueryResultOutput{
			ChunkID:    r.Chunk.ID,
			DocumentID: r.Chunk.DocumentID,
			Title:      r.Chunk.Title,
			Score:      r.Score,
			Highlights: r.Highlights,
			Content:    r.Chunk.Content,
		}
	}

	return nil, output, nil
}

// handleGetDocument handles the get_document tool invocation.
func (s *Server) handleGetDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DocumentInput,
) (*mcp.CallToolResult, DocumentOutput, error) {
	doc, err := s.ports.Provider.Document(ctx, input.ID)
	if err != nil {
		return nil, DocumentOutput{}, err
	}

	return nil, DocumentOutput{
		ID:       doc.ID,
		SourceID: doc.SourceID,
		Type:     doc.Type.String(),
		Title:    doc.Title,
		Content:  doc.Content,
		Metadata: doc.Metadata,
	}, nil
}

// handleSync handles the sync tool invocation.
func (s *Server) handleSync(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SyncInput,
) (*mcp.CallToolResult, SyncOutput, error) {
	var stats *driving.SyncStats
	var err error

	if input.Source != "" {
		stats, err = s.ports.Provider.SyncSource(ctx, input.Source)
	} else {
		stats, err = s.ports.Provider.Sync(ctx)
	}
	if err != nil {
		return nil, SyncOutput{}, err
	}

	return nil, SyncOutput{
		SourcesSynced:      stats.SourcesSynced,
		SourcesFailed:      stats.SourcesFailed,
		DocumentsProcessed: stats.DocumentsProcessed,
		ChunksIndexed:      stats.ChunksIndexed,
	}, nil
}
