package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ragkit/internal/core/domain"
)

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	}
}

func TestServer_handleSourcesResource(t *testing.T) {
	server, err := NewServer(&Ports{
		Provider: &mockProvider{},
		Sources: []domain.SourceConfig{
			{ID: "docs", Type: "filesystem", Name: "Local Docs"},
		},
	})
	require.NoError(t, err)

	result, err := server.handleSourcesResource(context.Background(), readRequest(uriScheme+"sources"))

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)
	assert.Contains(t, result.Contents[0].Text, `"docs"`)
	assert.Contains(t, result.Contents[0].Text, `"filesystem"`)
}

func TestServer_handleDocumentContentResource(t *testing.T) {
	server, err := NewServer(&Ports{Provider: &mockProvider{
		docs: map[string]domain.Document{
			"doc-1": {ID: "doc-1", Content: "document body"},
		},
	}})
	require.NoError(t, err)

	t.Run("returns content", func(t *testing.T) {
		result, err := server.handleDocumentContentResource(
			context.Background(), readRequest(uriScheme+"documents/doc-1"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "document body", result.Contents[0].Text)
	})

	t.Run("malformed uri", func(t *testing.T) {
		_, err := server.handleDocumentContentResource(
			context.Background(), readRequest("bogus://nope"))

		assert.Error(t, err)
	})
}

func TestExtractSourceID(t *testing.T) {
	assert.Equal(t, "src-1", extractSourceID(uriScheme+"sources/src-1/documents"))
	assert.Equal(t, "", extractSourceID(uriScheme+"sources/src-1"))
	assert.Equal(t, "", extractSourceID("http://sources/src-1/documents"))
}

func TestExtractDocumentID(t *testing.T) {
	assert.Equal(t, "doc-1", extractDocumentID(uriScheme+"documents/doc-1"))
	assert.Equal(t, "", extractDocumentID(uriScheme+"sources/doc-1"))
}
