package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
	"github.com/lexdraft-labs/lexdraft-cli/internal/core/ports/driven"
)

// Ensure VersionStore implements the interface.
var _ driven.VersionStore = (*VersionStore)(nil)

// VersionStore is an in-memory implementation of driven.VersionStore.
type VersionStore struct {
	mu        sync.RWMutex
	snapshots map[string]map[string]string
	now       func() time.Time
}

// NewVersionStore creates a new in-memory version store.
// now is injected for deterministic tests; nil means time.Now.
func NewVersionStore(now func() time.Time) *VersionStore {
	if now == nil {
		now = time.Now
	}
	return &VersionStore{
		snapshots: make(map[string]map[string]string),
		now:       now,
	}
}

// Snapshot writes a new snapshot of text under name.
func (s *VersionStore) Snapshot(_ context.Context, name, text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	timestamp := s.now().Format("20060102_150405")
	if s.snapshots[name] == nil {
		s.snapshots[name] = make(map[string]string)
	}
	s.snapshots[name][timestamp] = text
	return timestamp, nil
}

// List returns all snapshot timestamps for name, sorted ascending.
func (s *VersionStore) List(_ context.Context, name string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	timestamps := []string{}
	for ts := range s.snapshots[name] {
		timestamps = append(timestamps, ts)
	}
	sort.Strings(timestamps)
	return timestamps, nil
}

// Get returns the snapshot body for (name, timestamp).
func (s *VersionStore) Get(_ context.Context, name, timestamp string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	text, ok := s.snapshots[name][timestamp]
	if !ok {
		return "", domain.ErrVersionNotFound
	}
	return text, nil
}

// Purge removes all snapshots for name.
func (s *VersionStore) Purge(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshots, name)
	return nil
}
