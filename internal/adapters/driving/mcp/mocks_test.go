package mcp

import (
	"context"

	"github.com/custodia-labs/ragkit/internal/core/domain"
	"github.com/custodia-labs/ragkit/internal/core/ports/driving"
)

// mockProvider implements driving.Provider for testing.
type mockProvider struct {
	queryResult *domain.QueryResult
	queryErr    error
	queryOpts   driving.QueryOptions

	docs     map[string]domain.Document
	syncStat *driving.SyncStats
	syncErr  error

	syncedSource string
}

func (m *mockProvider) Sync(_ context.Context) (*driving.SyncStats, error) {
	if m.syncErr != nil {
		return nil, m.syncErr
	}
	return m.syncStat, nil
}

func (m *mockProvider) SyncSource(_ context.Context, sourceID string) (*driving.SyncStats, error) {
	m.syncedSource = sourceID
	if m.syncErr != nil {
		return nil, m.syncErr
	}
	return m.syncStat, nil
}

func (m *mockProvider) Query(_ context.Context, _ string, opts driving.QueryOptions) (*domain.QueryResult, error) {
	m.queryOpts = opts
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	return m.queryResult, nil
}

func (m *mockProvider) Document(_ context.Context, id string) (*domain.Document, error) {
	doc, ok := m.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

func (m *mockProvider) DocumentsBySource(_ context.Context, sourceID string) ([]domain.Document, error) {
	var docs []domain.Document
	for _, doc := range m.docs {
		if doc.SourceID == sourceID {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func (m *mockProvider) DocumentsByTag(_ context.Context, tag string) ([]domain.Document, error) {
	var docs []domain.Document
	for _, doc := range m.docs {
		if doc.Metadata.HasTag(tag) {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func (m *mockProvider) DocumentCount(_ context.Context) int {
	return len(m.docs)
}

func (m *mockProvider) ChunkCount(_ context.Context) int {
	return 0
}
