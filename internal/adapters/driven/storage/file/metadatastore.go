package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
	"github.com/lexdraft-labs/lexdraft-cli/internal/core/ports/driven"
	"github.com/lexdraft-labs/lexdraft-cli/internal/logger"
)

// Ensure MetadataStore implements the interface.
var _ driven.MetadataStore = (*MetadataStore)(nil)

// metadataFile is the metadata sidecar file name.
const metadataFile = "metadata.json"

// MetadataStore persists the clause metadata sidecar as a single JSON
// object. Last writer wins at the file level; composite updates are
// serialised by the clause service above this store.
type MetadataStore struct {
	mu   sync.RWMutex
	path string
}

// NewMetadataStore creates a metadata store rooted at dataDir.
func NewMetadataStore(dataDir string) (*MetadataStore, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &MetadataStore{path: filepath.Join(dataDir, metadataFile)}, nil
}

// Load reads the metadata blob. Fail-soft: missing or corrupt state
// logs a warning and yields empty metadata.
func (s *MetadataStore) Load(_ context.Context) (domain.ClauseMetadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("read %s: %v, treating as empty metadata", s.path, err)
		}
		return domain.NewClauseMetadata(), nil
	}

	var meta domain.ClauseMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		logger.Warn("parse %s: %v, treating as empty metadata", s.path, err)
		return domain.NewClauseMetadata(), nil
	}
	if meta.Favorites == nil {
		meta.Favorites = []string{}
	}
	if meta.Tags == nil {
		meta.Tags = make(map[string][]string)
	}
	if meta.Recents == nil {
		meta.Recents = []string{}
	}
	return meta, nil
}

// Save writes the metadata blob. Fail-loud.
func (s *MetadataStore) Save(_ context.Context, meta domain.ClauseMetadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
