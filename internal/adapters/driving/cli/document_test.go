package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ragkit/internal/core/domain"
)

func stubDocs() map[string]domain.Document {
	return map[string]domain.Document{
		"doc-1": {
			ID:       "doc-1",
			SourceID: "src-1",
			Type:     domain.TypeMarkdown,
			Title:    "Guide",
			Content:  "# Guide\n\nBody text.",
			Metadata: domain.Metadata{domain.MetaTags: []string{"guide"}},
		},
	}
}

func TestDocumentListCmd(t *testing.T) {
	cleanup := setupTestProvider(&stubProvider{docs: stubDocs()})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"document", "list", "src-1"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "doc-1")
	assert.Contains(t, buf.String(), "Total: 1 documents")
}

func TestDocumentListCmd_Empty(t *testing.T) {
	cleanup := setupTestProvider(&stubProvider{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"document", "list", "src-2"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No documents found for source: src-2")
}

func TestDocumentGetCmd(t *testing.T) {
	cleanup := setupTestProvider(&stubProvider{docs: stubDocs()})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"document", "get", "doc-1"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Document: doc-1")
	assert.Contains(t, buf.String(), "Guide")
	assert.Contains(t, buf.String(), "markdown")
}

func TestDocumentGetCmd_NotFound(t *testing.T) {
	cleanup := setupTestProvider(&stubProvider{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"document", "get", "missing"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	assert.Error(t, err)
}

func TestDocumentContentCmd(t *testing.T) {
	cleanup := setupTestProvider(&stubProvider{docs: stubDocs()})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"document", "content", "doc-1"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "# Guide\n\nBody text.")
}

func TestDocumentTaggedCmd(t *testing.T) {
	cleanup := setupTestProvider(&stubProvider{docs: stubDocs()})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"document", "tagged", "guide"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Documents tagged guide:")
	assert.Contains(t, buf.String(), "doc-1")
}

func TestStatusCmd(t *testing.T) {
	cleanup := setupTestProvider(&stubProvider{docs: stubDocs(), chunkCount: 4})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"status"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Documents: 1 in catalog")
	assert.Contains(t, buf.String(), "Chunks:    4 indexed")
	assert.Contains(t, buf.String(), "Sources:   1 configured")
}

func TestVersionCmd(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "ragkit version")
}
