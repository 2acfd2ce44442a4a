package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/ragkit/internal/core/domain"
	"github.com/custodia-labs/ragkit/internal/core/ports/driven"
	"github.com/custodia-labs/ragkit/internal/core/ports/driving"
	"github.com/custodia-labs/ragkit/internal/logger"
)

// Ensure Provider implements the interface.
var _ driving.Provider = (*Provider)(nil)

// Provider orchestrates the ingest and query pipelines. It pulls
// documents through source connectors, stores them in the catalog,
// chunks them and indexes the chunks for keyword search.
type Provider struct {
	settings domain.Settings
	sources  []domain.SourceConfig
	factory  driven.SourceFactory
	docStore driven.DocumentStore
	chunker  driven.Chunker
	index    driven.SearchIndex
}

// NewProvider creates a provider over the given infrastructure.
// The sources slice is the set of configured origins to sync from.
func NewProvider(
	settings domain.Settings,
	sources []domain.SourceConfig,
	factory driven.SourceFactory,
	docStore driven.DocumentStore,
	chunker driven.Chunker,
	index driven.SearchIndex,
) (*Provider, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("validate settings: %w", err)
	}

	return &Provider{
		settings: settings,
		sources:  sources,
		factory:  factory,
		docStore: docStore,
		chunker:  chunker,
		index:    index,
	}, nil
}

// Sync ingests documents from every configured source. A source that
// fails to connect or fetch is logged and skipped so one broken origin
// cannot block the rest.
func (p *Provider) Sync(ctx context.Context) (*driving.SyncStats, error) {
	stats := &driving.SyncStats{}

	logger.Info("Starting sync for %d source(s)", len(p.sources))

	for _, cfg := range p.sources {
		if err := p.syncOne(ctx, cfg, stats); err != nil {
			logger.Warn("Sync failed for source %s: %v", cfg.ID, err)
			stats.SourcesFailed++
			continue
		}
		stats.SourcesSynced++
	}

	logger.Info("Sync complete: %d synced, %d failed, %d documents, %d chunks",
		stats.SourcesSynced, stats.SourcesFailed, stats.DocumentsProcessed, stats.ChunksIndexed)

	return stats, nil
}

// SyncSource ingests documents from a single configured source.
// Returns domain.ErrNotFound if no source has the given ID.
func (p *Provider) SyncSource(ctx context.Context, sourceID string) (*driving.SyncStats, error) {
	cfg, ok := p.sourceConfig(sourceID)
	if !ok {
		return nil, fmt.Errorf("source %q: %w", sourceID, domain.ErrNotFound)
	}

	stats := &driving.SyncStats{}
	if err := p.syncOne(ctx, cfg, stats); err != nil {
		stats.SourcesFailed++
		return stats, fmt.Errorf("sync source %s: %w", sourceID, err)
	}
	stats.SourcesSynced++

	return stats, nil
}

// syncOne runs the full ingest pipeline for one source.
func (p *Provider) syncOne(ctx context.Context, cfg domain.SourceConfig, stats *driving.SyncStats) error {
	source, err := p.factory.Create(ctx, cfg)
	if err != nil {
		return fmt.Errorf("create source: %w", err)
	}

	if err := source.Connect(ctx); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer func() {
		if err := source.Disconnect(ctx); err != nil {
			logger.Warn("Disconnect failed for source %s: %v", cfg.ID, err)
		}
	}()

	docs, err := source.FetchDocuments(ctx)
	if err != nil {
		return fmt.Errorf("fetch documents: %w", err)
	}

	logger.Debug("Source %s returned %d document(s)", cfg.ID, len(docs))

	for _, doc := range docs {
		indexed, err := p.ingest(ctx, doc)
		if err != nil {
			return fmt.Errorf("ingest document %s: %w", doc.ID, err)
		}
		stats.DocumentsProcessed++
		stats.ChunksIndexed += indexed
	}

	return nil
}

// ingest stores one document and replaces its chunks in the index.
// Returns the number of chunks indexed for the document.
func (p *Provider) ingest(ctx context.Context, doc domain.Document) (int, error) {
	if err := p.docStore.Add(ctx, doc); err != nil {
		return 0, fmt.Errorf("store document: %w", err)
	}

	// Drop any chunks from a prior version of this document. Chunk IDs
	// are a contiguous zero-based sequence, so removal stops at the
	// first ID the index does not hold.
	p.removeStaleChunks(ctx, doc.ID)

	chunks, err := p.chunker.Chunk(ctx, doc)
	if err != nil {
		return 0, fmt.Errorf("chunk document: %w", err)
	}

	for _, chunk := range chunks {
		if err := p.index.Add(ctx, chunk); err != nil {
			return 0, fmt.Errorf("index chunk %s: %w", chunk.ID, err)
		}
	}

	return len(chunks), nil
}

// removeStaleChunks walks the document's chunk ID sequence and removes
// every chunk the index still holds for it.
func (p *Provider) removeStaleChunks(ctx context.Context, documentID string) {
	for i := 0; ; i++ {
		removed, err := p.index.Remove(ctx, domain.ChunkID(documentID, i))
		if err != nil || !removed {
			return
		}
	}
}

// Query answers a search query with scored, highlighted passages.
func (p *Provider) Query(ctx context.Context, query string, opts driving.QueryOptions) (*domain.QueryResult, error) {
	start := time.Now()

	limit := opts.Limit
	if limit <= 0 {
		limit = p.settings.MaxResults
	}

	minScore := opts.MinScore
	switch {
	case minScore == 0:
		minScore = p.settings.MinScore
	case minScore < 0:
		minScore = 0
	}

	results, err := p.index.Search(ctx, query, limit, opts.Filters)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	// Results arrive sorted by score, so the threshold cut keeps a prefix.
	cut := len(results)
	for i, r := range results {
		if r.Score < minScore {
			cut = i
			break
		}
	}
	results = results[:cut]

	logger.Debug("Query %q returned %d result(s) in %dms", query, len(results), time.Since(start).Milliseconds())

	return &domain.QueryResult{
		Results:     results,
		TotalCount:  len(results),
		QueryTimeMs: time.Since(start).Milliseconds(),
	}, nil
}

// Document retrieves a document from the catalog by ID.
func (p *Provider) Document(ctx context.Context, id string) (*domain.Document, error) {
	return p.docStore.Get(ctx, id)
}

// DocumentsBySource returns catalog documents for a source.
func (p *Provider) DocumentsBySource(ctx context.Context, sourceID string) ([]domain.Document, error) {
	return p.docStore.GetBySource(ctx, sourceID)
}

// DocumentsByTag returns catalog documents carrying a tag.
func (p *Provider) DocumentsByTag(ctx context.Context, tag string) ([]domain.Document, error) {
	return p.docStore.GetByTag(ctx, tag)
}

// DocumentCount returns the catalog size.
func (p *Provider) DocumentCount(ctx context.Context) int {
	return p.docStore.Count(ctx)
}

// ChunkCount returns the number of chunks in the search index.
func (p *Provider) ChunkCount(ctx context.Context) int {
	return p.index.Count(ctx)
}

// sourceConfig finds a configured source by ID.
func (p *Provider) sourceConfig(sourceID string) (domain.SourceConfig, bool) {
	for _, cfg := range p.sources {
		if cfg.ID == sourceID {
			return cfg, true
		}
	}
	return domain.SourceConfig{}, false
}

// SettingsFromConfig builds runtime settings from the configuration
// store, falling back to defaults for absent keys.
func SettingsFromConfig(store driven.ConfigStore) domain.Settings {
	settings := domain.DefaultSettings()

	if v := store.GetInt("chunk_size"); v > 0 {
		settings.ChunkSize = v
	}
	if v, ok := store.Get("chunk_overlap"); ok {
		if n, ok := intValue(v); ok {
			settings.ChunkOverlap = n
		}
	}
	if v := store.GetInt("max_results"); v > 0 {
		settings.MaxResults = v
	}
	if v, ok := store.Get("min_score"); ok {
		if f, ok := floatValue(v); ok {
			settings.MinScore = f
		}
	}

	return settings
}

func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func floatValue(v any) (float64, bool) {
	switch f := v.(type) {
	case float64:
		return f, true
	case int64:
		return float64(f), true
	case int:
		return float64(f), true
	}
	return 0, false
}
