package mcp

import (
	"github.com/custodia-labs/ragkit/internal/core/domain"
	"github.com/custodia-labs/ragkit/internal/core/ports/driving"
)

// Ports aggregates everything the MCP server needs from the core.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Provider answers queries and serves the document catalog.
	Provider driving.Provider

	// Sources is the configured source list, exposed as a resource.
	Sources []domain.SourceConfig
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Provider == nil {
		return ErrMissingProvider
	}
	// Sources may be empty; the resource then lists nothing.
	return nil
}
