// Command ragkit is the entry point for the document search CLI and
// MCP server. It wires the adapters to the core and hands off to the
// command tree.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/ragkit/internal/adapters/driven/config/file"
	indexmem "github.com/custodia-labs/ragkit/internal/adapters/driven/index/memory"
	"github.com/custodia-labs/ragkit/internal/adapters/driven/idgen"
	storagemem "github.com/custodia-labs/ragkit/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/ragkit/internal/adapters/driving/cli"
	"github.com/custodia-labs/ragkit/internal/chunking"
	"github.com/custodia-labs/ragkit/internal/connectors"
	"github.com/custodia-labs/ragkit/internal/core/services"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore(os.Getenv("RAGKIT_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	settings := services.SettingsFromConfig(configStore)
	sources := configStore.Sources()

	chunkerOpts := []chunking.Option{
		chunking.WithChunkSize(settings.ChunkSize),
		chunking.WithOverlap(settings.ChunkOverlap),
	}
	if min := configStore.GetInt("min_chunk_size"); min > 0 {
		chunkerOpts = append(chunkerOpts, chunking.WithMinChunkSize(min))
	}
	chunker, err := chunking.New(chunkerOpts...)
	if err != nil {
		return fmt.Errorf("create chunker: %w", err)
	}

	ids := idgen.NewUUID()
	factory := connectors.NewFactory(ids)
	docStore := storagemem.NewDocumentStore()
	index := indexmem.NewIndex()

	provider, err := services.NewProvider(settings, sources, factory, docStore, chunker, index)
	if err != nil {
		return fmt.Errorf("create provider: %w", err)
	}

	return cli.Execute(provider, sources, version)
}
