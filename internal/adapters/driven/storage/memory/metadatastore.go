package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
	"github.com/lexdraft-labs/lexdraft-cli/internal/core/ports/driven"
)

// Ensure MetadataStore implements the interface.
var _ driven.MetadataStore = (*MetadataStore)(nil)

// MetadataStore is an in-memory implementation of driven.MetadataStore.
type MetadataStore struct {
	mu   sync.RWMutex
	meta domain.ClauseMetadata
}

// NewMetadataStore creates a new in-memory metadata store.
func NewMetadataStore() *MetadataStore {
	return &MetadataStore{meta: domain.NewClauseMetadata()}
}

// Load reads the metadata blob.
func (s *MetadataStore) Load(_ context.Context) (domain.ClauseMetadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyMetadata(s.meta), nil
}

// Save writes the metadata blob.
func (s *MetadataStore) Save(_ context.Context, meta domain.ClauseMetadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meta = copyMetadata(meta)
	return nil
}

// copyMetadata deep-copies metadata so callers cannot mutate stored
// state through shared slices.
func copyMetadata(meta domain.ClauseMetadata) domain.ClauseMetadata {
	data, err := json.Marshal(meta)
	if err != nil {
		return domain.NewClauseMetadata()
	}
	out := domain.NewClauseMetadata()
	if err := json.Unmarshal(data, &out); err != nil {
		return domain.NewClauseMetadata()
	}
	if out.Favorites == nil {
		out.Favorites = []string{}
	}
	if out.Tags == nil {
		out.Tags = make(map[string][]string)
	}
	if out.Recents == nil {
		out.Recents = []string{}
	}
	return out
}
