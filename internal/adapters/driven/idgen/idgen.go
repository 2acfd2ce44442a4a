// Package idgen provides identifier generation behind the
// driven.IDGenerator port, so tests can substitute a deterministic
// sequence for the ambient UUID call.
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/custodia-labs/ragkit/internal/core/ports/driven"
)

// Ensure implementations satisfy the interface.
var (
	_ driven.IDGenerator = (*UUID)(nil)
	_ driven.IDGenerator = (*Sequential)(nil)
)

// UUID generates random UUID identifiers. The production default.
type UUID struct{}

// NewUUID creates a UUID-backed generator.
func NewUUID() *UUID {
	return &UUID{}
}

// NewID returns a new random UUID string.
func (g *UUID) NewID() string {
	return uuid.New().String()
}

// Sequential generates "<prefix>-<n>" identifiers in order.
// Used in tests for reproducible document IDs.
type Sequential struct {
	prefix  string
	counter atomic.Int64
}

// NewSequential creates a sequential generator with the given prefix.
func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

// NewID returns the next identifier in the sequence.
func (g *Sequential) NewID() string {
	return fmt.Sprintf("%s-%d", g.prefix, g.counter.Add(1))
}
