package connectors

import (
	"context"
	"fmt"

	"github.com/custodia-labs/ragkit/internal/connectors/api"
	"github.com/custodia-labs/ragkit/internal/connectors/database"
	"github.com/custodia-labs/ragkit/internal/connectors/filesystem"
	"github.com/custodia-labs/ragkit/internal/core/domain"
	"github.com/custodia-labs/ragkit/internal/core/ports/driven"
)

// Ensure Factory implements the interface.
var _ driven.SourceFactory = (*Factory)(nil)

// BuilderFunc creates a Source from configuration.
type BuilderFunc func(cfg domain.SourceConfig, ids driven.IDGenerator) (driven.Source, error)

// Factory builds sources from configuration by connector type.
type Factory struct {
	ids      driven.IDGenerator
	builders map[string]BuilderFunc
}

// NewFactory creates a factory with the built-in connector types
// registered. Document IDs are produced by the given generator.
func NewFactory(ids driven.IDGenerator) *Factory {
	f := &Factory{
		ids:      ids,
		builders: make(map[string]BuilderFunc),
	}
	f.Register(filesystem.Type, func(cfg domain.SourceConfig, ids driven.IDGenerator) (driven.Source, error) {
		return filesystem.New(cfg, ids)
	})
	f.Register(api.Type, func(cfg domain.SourceConfig, _ driven.IDGenerator) (driven.Source, error) {
		return api.New(cfg)
	})
	f.Register(database.Type, func(cfg domain.SourceConfig, _ driven.IDGenerator) (driven.Source, error) {
		return database.New(cfg)
	})
	return f
}

// Register adds a connector builder for a type.
// Later registrations replace earlier ones.
func (f *Factory) Register(connectorType string, builder BuilderFunc) {
	f.builders[connectorType] = builder
}

// Types returns the registered connector types.
func (f *Factory) Types() []string {
	types := make([]string, 0, len(f.builders))
	for t := range f.builders {
		types = append(types, t)
	}
	return types
}

// Create builds a Source for the given configuration.
func (f *Factory) Create(_ context.Context, cfg domain.SourceConfig) (driven.Source, error) {
	builder, ok := f.builders[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, cfg.Type)
	}
	return builder(cfg, f.ids)
}
