package cli

import (
	"context"

	"github.com/custodia-labs/ragkit/internal/core/domain"
	"github.com/custodia-labs/ragkit/internal/core/ports/driving"
)

// stubProvider implements driving.Provider for command tests.
type stubProvider struct {
	queryResult *domain.QueryResult
	queryErr    error
	syncStats   *driving.SyncStats
	syncErr     error
	docs        map[string]domain.Document
	chunkCount  int
}

func (s *stubProvider) Sync(_ context.Context) (*driving.SyncStats, error) {
	if s.syncErr != nil {
		return nil, s.syncErr
	}
	return s.syncStats, nil
}

func (s *stubProvider) SyncSource(_ context.Context, _ string) (*driving.SyncStats, error) {
	if s.syncErr != nil {
		return nil, s.syncErr
	}
	return s.syncStats, nil
}

func (s *stubProvider) Query(_ context.Context, _ string, _ driving.QueryOptions) (*domain.QueryResult, error) {
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	return s.queryResult, nil
}

func (s *stubProvider) Document(_ context.Context, id string) (*domain.Document, error) {
	doc, ok := s.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

func (s *stubProvider) DocumentsBySource(_ context.Context, sourceID string) ([]domain.Document, error) {
	var docs []domain.Document
	for _, doc := range s.docs {
		if doc.SourceID == sourceID {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func (s *stubProvider) DocumentsByTag(_ context.Context, tag string) ([]domain.Document, error) {
	var docs []domain.Document
	for _, doc := range s.docs {
		if doc.Metadata.HasTag(tag) {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func (s *stubProvider) DocumentCount(_ context.Context) int {
	return len(s.docs)
}

func (s *stubProvider) ChunkCount(_ context.Context) int {
	return s.chunkCount
}

// setupTestProvider swaps the package provider for a stub and returns
// a cleanup that restores the previous wiring.
func setupTestProvider(stub *stubProvider) func() {
	prevProvider := provider
	prevSources := sourceConfigs
	provider = stub
	sourceConfigs = []domain.SourceConfig{{ID: "src-1", Type: "filesystem", Name: "Docs"}}
	return func() {
		provider = prevProvider
		sourceConfigs = prevSources
	}
}
