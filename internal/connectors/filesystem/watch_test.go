package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ragkit/internal/core/domain"
)

func TestConnector_Watch_NotConnected(t *testing.T) {
	c := newTestConnector(t, t.TempDir())

	_, err := c.Watch(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotConnected)
}

func TestConnector_Watch_DeliversNewFile(t *testing.T) {
	root := t.TempDir()
	c := newTestConnector(t, root)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, c.Connect(ctx))

	docs, err := c.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "fresh.md"), []byte("# Fresh"), 0644))

	select {
	case doc := <-docs:
		assert.Equal(t, domain.TypeMarkdown, doc.Type)
		assert.Equal(t, "# Fresh", doc.Content)
		assert.Equal(t, "src-1", doc.SourceID)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watch event")
	}
}

func TestConnector_Watch_ClosesOnCancel(t *testing.T) {
	root := t.TempDir()
	c := newTestConnector(t, root)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, c.Connect(ctx))

	docs, err := c.Watch(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, open := <-docs:
		assert.False(t, open)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}
