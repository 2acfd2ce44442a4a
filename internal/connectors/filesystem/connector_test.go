package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ragkit/internal/adapters/driven/idgen"
	"github.com/custodia-labs/ragkit/internal/core/domain"
)

func setupTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"readme.md":        "# Readme\n\nProject documentation.",
		"notes.txt":        "plain text notes",
		"src/main.go":      "package main\n\nfunc main() {}\n",
		".hidden":          "should be skipped",
		".secret/deep.txt": "also skipped",
	}
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	return root
}

func newTestConnector(t *testing.T, root string) *Connector {
	t.Helper()
	c, err := New(domain.SourceConfig{
		ID:     "src-1",
		Type:   Type,
		Config: map[string]string{"path": root},
	}, idgen.NewSequential("doc"))
	require.NoError(t, err)
	return c
}

func TestNew_RequiresPath(t *testing.T) {
	_, err := New(domain.SourceConfig{ID: "src-1"}, idgen.NewSequential("doc"))

	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestConnector_Connect(t *testing.T) {
	c := newTestConnector(t, setupTree(t))
	ctx := context.Background()

	assert.False(t, c.IsConnected())
	require.NoError(t, c.Connect(ctx))
	assert.True(t, c.IsConnected())
	require.NoError(t, c.Disconnect(ctx))
	assert.False(t, c.IsConnected())
}

func TestConnector_Connect_MissingPath(t *testing.T) {
	c := newTestConnector(t, "/nonexistent/path")

	err := c.Connect(context.Background())

	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestConnector_FetchDocuments(t *testing.T) {
	c := newTestConnector(t, setupTree(t))
	ctx := context.Background()
	require.NoError(t, c.Connect(ctx))

	docs, err := c.FetchDocuments(ctx)

	require.NoError(t, err)
	require.Len(t, docs, 3)

	byPath := make(map[string]domain.Document)
	for _, doc := range docs {
		byPath[doc.Metadata.Path()] = doc
		assert.Equal(t, "src-1", doc.SourceID)
		assert.Equal(t, "src-1", doc.Metadata.Source())
		assert.NotEmpty(t, doc.ID)
	}

	md := byPath["readme.md"]
	assert.Equal(t, domain.TypeMarkdown, md.Type)
	assert.Equal(t, "readme", md.Title)

	code := byPath[filepath.Join("src", "main.go")]
	assert.Equal(t, domain.TypeCode, code.Type)
	assert.Equal(t, "go", code.Metadata.Language())

	txt := byPath["notes.txt"]
	assert.Equal(t, domain.TypeText, txt.Type)
	assert.Equal(t, "plain text notes", txt.Content)
}

func TestConnector_FetchDocuments_NotConnected(t *testing.T) {
	c := newTestConnector(t, setupTree(t))

	_, err := c.FetchDocuments(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotConnected)
}

func TestConnector_FetchDocuments_StableIDs(t *testing.T) {
	c := newTestConnector(t, setupTree(t))
	ctx := context.Background()
	require.NoError(t, c.Connect(ctx))

	first, err := c.FetchDocuments(ctx)
	require.NoError(t, err)
	second, err := c.FetchDocuments(ctx)
	require.NoError(t, err)

	firstIDs := make(map[string]string)
	for _, doc := range first {
		firstIDs[doc.Metadata.Path()] = doc.ID
	}
	for _, doc := range second {
		assert.Equal(t, firstIDs[doc.Metadata.Path()], doc.ID)
	}
}

func TestConnector_FetchDocument(t *testing.T) {
	c := newTestConnector(t, setupTree(t))
	ctx := context.Background()
	require.NoError(t, c.Connect(ctx))

	docs, err := c.FetchDocuments(ctx)
	require.NoError(t, err)

	doc, err := c.FetchDocument(ctx, docs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, docs[0].ID, doc.ID)
	assert.Equal(t, docs[0].Content, doc.Content)
}

func TestConnector_FetchDocument_NotFound(t *testing.T) {
	c := newTestConnector(t, setupTree(t))
	ctx := context.Background()
	require.NoError(t, c.Connect(ctx))

	_, err := c.FetchDocument(ctx, "no-such-id")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConnector_DocumentCount(t *testing.T) {
	c := newTestConnector(t, setupTree(t))
	ctx := context.Background()
	require.NoError(t, c.Connect(ctx))

	count, err := c.DocumentCount(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestTitleFromPath(t *testing.T) {
	assert.Equal(t, "getting started", titleFromPath("/docs/getting_started.md"))
	assert.Equal(t, "api reference", titleFromPath("api-reference.html"))
	assert.Equal(t, "README", titleFromPath("README"))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		path     string
		docType  domain.DocumentType
		language string
	}{
		{"a.md", domain.TypeMarkdown, ""},
		{"a.markdown", domain.TypeMarkdown, ""},
		{"a.json", domain.TypeJSON, ""},
		{"a.html", domain.TypeHTML, ""},
		{"a.go", domain.TypeCode, "go"},
		{"a.py", domain.TypeCode, "python"},
		{"a.txt", domain.TypeText, ""},
		{"a", domain.TypeText, ""},
	}

	for _, tt := range tests {
		docType, language := classify(tt.path)
		assert.Equal(t, tt.docType, docType, tt.path)
		assert.Equal(t, tt.language, language, tt.path)
	}
}
