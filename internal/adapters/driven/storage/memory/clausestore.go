package memory

import (
	"context"
	"sync"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
	"github.com/lexdraft-labs/lexdraft-cli/internal/core/ports/driven"
)

// Ensure ClauseStore implements the interface.
var _ driven.ClauseStore = (*ClauseStore)(nil)

// ClauseStore is an in-memory implementation of driven.ClauseStore.
// Clauses keep insertion order, matching the file store's array.
type ClauseStore struct {
	mu      sync.RWMutex
	order   []string
	clauses map[string]domain.Clause
}

// NewClauseStore creates a new in-memory clause store.
func NewClauseStore() *ClauseStore {
	return &ClauseStore{clauses: make(map[string]domain.Clause)}
}

// List returns all clauses in insertion order.
func (s *ClauseStore) List(_ context.Context) ([]domain.Clause, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Clause, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.clauses[id])
	}
	return out, nil
}

// Get retrieves a clause by ID.
func (s *ClauseStore) Get(_ context.Context, id string) (*domain.Clause, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clause, ok := s.clauses[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &clause, nil
}

// Create stores a new clause, enforcing ID uniqueness.
func (s *ClauseStore) Create(_ context.Context, clause *domain.Clause) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.clauses[clause.ID]; exists {
		return domain.ErrAlreadyExists
	}
	s.clauses[clause.ID] = *clause
	s.order = append(s.order, clause.ID)
	return nil
}

// Update overwrites an existing clause.
func (s *ClauseStore) Update(_ context.Context, clause *domain.Clause) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.clauses[clause.ID]; !exists {
		return domain.ErrNotFound
	}
	s.clauses[clause.ID] = *clause
	return nil
}

// Delete removes a clause by ID.
func (s *ClauseStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.clauses[id]; !exists {
		return domain.ErrNotFound
	}
	delete(s.clauses, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
