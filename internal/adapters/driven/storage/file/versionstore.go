package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
	"github.com/lexdraft-labs/lexdraft-cli/internal/core/ports/driven"
)

// Ensure VersionStore implements the interface.
var _ driven.VersionStore = (*VersionStore)(nil)

// timestampLayout is the snapshot timestamp format.
const timestampLayout = "20060102_150405"

// snapshotExt is the snapshot file extension.
const snapshotExt = ".txt"

// VersionStore keeps snapshots as per-name directories of timestamped
// text files under <dataDir>/versions/.
type VersionStore struct {
	mu   sync.RWMutex
	root string
	now  func() time.Time
}

// NewVersionStore creates a version store rooted at dataDir.
// now is injected for deterministic tests; nil means time.Now.
func NewVersionStore(dataDir string, now func() time.Time) (*VersionStore, error) {
	root := filepath.Join(dataDir, "versions")
	if err := os.MkdirAll(root, 0o700); err != nil {
		return nil, fmt.Errorf("create versions dir: %w", err)
	}
	if now == nil {
		now = time.Now
	}
	return &VersionStore{root: root, now: now}, nil
}

// Snapshot writes a new snapshot of text under name.
// Two snapshots within the same second collapse to the last writer,
// matching the store's documented last-writer-wins semantics.
func (s *VersionStore) Snapshot(_ context.Context, name, text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Join(s.root, name)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create version dir for %s: %w", name, err)
	}

	timestamp := s.now().Format(timestampLayout)
	path := filepath.Join(dir, timestamp+snapshotExt)
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return "", fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return timestamp, nil
}

// List returns all snapshot timestamps for name, sorted ascending.
func (s *VersionStore) List(_ context.Context, name string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(filepath.Join(s.root, name))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("list versions for %s: %w", name, err)
	}

	timestamps := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), snapshotExt) {
			continue
		}
		timestamps = append(timestamps, strings.TrimSuffix(entry.Name(), snapshotExt))
	}
	sort.Strings(timestamps)
	return timestamps, nil
}

// Get returns the snapshot body for (name, timestamp).
func (s *VersionStore) Get(_ context.Context, name, timestamp string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := filepath.Join(s.root, name, timestamp+snapshotExt)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s@%s", domain.ErrVersionNotFound, name, timestamp)
		}
		return "", fmt.Errorf("read snapshot %s: %w", path, err)
	}
	return string(data), nil
}

// Purge removes all snapshots for name.
func (s *VersionStore) Purge(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.RemoveAll(filepath.Join(s.root, name)); err != nil {
		return fmt.Errorf("purge versions for %s: %w", name, err)
	}
	return nil
}
