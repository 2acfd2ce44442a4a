package idgen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID_NewID(t *testing.T) {
	gen := NewUUID()

	first := gen.NewID()
	second := gen.NewID()

	assert.NotEqual(t, first, second)
	_, err := uuid.Parse(first)
	require.NoError(t, err)
}

func TestSequential_NewID(t *testing.T) {
	gen := NewSequential("doc")

	assert.Equal(t, "doc-1", gen.NewID())
	assert.Equal(t, "doc-2", gen.NewID())
	assert.Equal(t, "doc-3", gen.NewID())
}
