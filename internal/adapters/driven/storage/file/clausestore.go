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

// Ensure ClauseStore implements the interface.
var _ driven.ClauseStore = (*ClauseStore)(nil)

// clausesFile is the clause collection file name.
const clausesFile = "clauses.json"

// ClauseStore persists clauses as a JSON array on disk.
// The whole array is rewritten on every mutation; per-store locking
// serialises writers so concurrent saves cannot interleave.
type ClauseStore struct {
	mu   sync.RWMutex
	path string
}

// NewClauseStore creates a clause store rooted at dataDir.
func NewClauseStore(dataDir string) (*ClauseStore, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &ClauseStore{path: filepath.Join(dataDir, clausesFile)}, nil
}

// List returns all clauses in stored order.
func (s *ClauseStore) List(_ context.Context) ([]domain.Clause, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load(), nil
}

// Get retrieves a clause by ID.
func (s *ClauseStore) Get(_ context.Context, id string) (*domain.Clause, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, clause := range s.load() {
		if clause.ID == id {
			return &clause, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create stores a new clause, enforcing ID uniqueness.
func (s *ClauseStore) Create(_ context.Context, clause *domain.Clause) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clauses := s.load()
	for _, existing := range clauses {
		if existing.ID == clause.ID {
			return domain.ErrAlreadyExists
		}
	}
	return s.save(append(clauses, *clause))
}

// Update overwrites an existing clause.
func (s *ClauseStore) Update(_ context.Context, clause *domain.Clause) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clauses := s.load()
	for i, existing := range clauses {
		if existing.ID == clause.ID {
			clauses[i] = *clause
			return s.save(clauses)
		}
	}
	return domain.ErrNotFound
}

// Delete removes a clause by ID.
func (s *ClauseStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clauses := s.load()
	for i, existing := range clauses {
		if existing.ID == id {
			return s.save(append(clauses[:i], clauses[i+1:]...))
		}
	}
	return domain.ErrNotFound
}

// load reads the clause array. Fail-soft: a missing or corrupt file
// behaves as an empty store.
func (s *ClauseStore) load() []domain.Clause {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("read %s: %v, treating as empty store", s.path, err)
		}
		return []domain.Clause{}
	}

	var clauses []domain.Clause
	if err := json.Unmarshal(data, &clauses); err != nil {
		logger.Warn("parse %s: %v, treating as empty store", s.path, err)
		return []domain.Clause{}
	}
	return clauses
}

// save writes the clause array. Fail-loud.
func (s *ClauseStore) save(clauses []domain.Clause) error {
	data, err := json.MarshalIndent(clauses, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal clauses: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
