// Package memory provides in-memory storage adapters.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/ragkit/internal/core/domain"
	"github.com/custodia-labs/ragkit/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// It is an identity-keyed catalog of raw documents, separate from the
// search index, used for direct retrieve-by-id lookups.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.Document),
	}
}

// Add stores or updates a document.
func (s *DocumentStore) Add(_ context.Context, doc domain.Document) error {
	if doc.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[doc.ID] = doc
	return nil
}

// Get retrieves a document by ID.
func (s *DocumentStore) Get(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// GetBySource returns documents produced by a source.
func (s *DocumentStore) GetBySource(_ context.Context, sourceID string) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(doc domain.Document) bool {
		return doc.SourceID == sourceID || doc.Metadata.Source() == sourceID
	}), nil
}

// GetByTag returns documents carrying the given metadata tag.
func (s *DocumentStore) GetByTag(_ context.Context, tag string) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(doc domain.Document) bool {
		return doc.Metadata.HasTag(tag)
	}), nil
}

// List returns all stored documents.
func (s *DocumentStore) List(_ context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(domain.Document) bool { return true }), nil
}

// Count returns the number of stored documents.
func (s *DocumentStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}

// collect gathers matching documents in ID order for deterministic
// results. Caller must hold at least the read lock.
func (s *DocumentStore) collect(match func(domain.Document) bool) []domain.Document {
	ids := make([]string, 0, len(s.documents))
	for id := range s.documents {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var result []domain.Document
	for _, id := range ids {
		if doc := s.documents[id]; match(doc) {
			result = append(result, doc)
		}
	}
	return result
}
