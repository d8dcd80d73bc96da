package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
	"github.com/lexdraft-labs/lexdraft-cli/internal/core/ports/driven"
	"github.com/lexdraft-labs/lexdraft-cli/internal/core/ports/driving"
	"github.com/lexdraft-labs/lexdraft-cli/internal/logger"
)

// Ensure ClauseService implements the interface.
var _ driving.ClauseService = (*ClauseService)(nil)

// ClauseService manages the reusable clause library.
//
// Composite mutations (save plus snapshot plus metadata) are
// serialised by a service-level mutex so concurrent callers cannot
// observe a half-applied state. Reads go straight to the stores.
type ClauseService struct {
	mu        sync.Mutex
	clauses   driven.ClauseStore
	metadata  driven.MetadataStore
	versions  driven.VersionStore
	renderer  *Renderer
	threshold float64
}

// NewClauseService creates a clause service. threshold is the
// duplicate similarity ratio; zero means domain.DuplicateThreshold.
func NewClauseService(
	clauses driven.ClauseStore,
	metadata driven.MetadataStore,
	versions driven.VersionStore,
	renderer *Renderer,
	threshold float64,
) *ClauseService {
	if threshold <= 0 {
		threshold = domain.DuplicateThreshold
	}
	return &ClauseService{
		clauses:   clauses,
		metadata:  metadata,
		versions:  versions,
		renderer:  renderer,
		threshold: threshold,
	}
}

// Add stores a new clause under a fresh UUID and snapshots its body.
func (s *ClauseService) Add(ctx context.Context, text string, tags []string, docType, jurisdiction string) (*domain.Clause, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	clause := &domain.Clause{
		ID:           uuid.New().String(),
		Text:         text,
		Tags:         normaliseTags(tags),
		DocType:      docType,
		Jurisdiction: jurisdiction,
	}

	if err := s.clauses.Create(ctx, clause); err != nil {
		return nil, fmt.Errorf("create clause: %w", err)
	}
	if _, err := s.versions.Snapshot(ctx, clause.ID, clause.Text); err != nil {
		return nil, fmt.Errorf("snapshot clause %s: %w", clause.ID, err)
	}

	logger.Debug("clause %s added (%d tags)", clause.ID, len(clause.Tags))
	return clause, nil
}

// Get retrieves a clause and records it as recently used.
func (s *ClauseService) Get(ctx context.Context, id string) (*domain.Clause, error) {
	clause, err := s.clauses.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.touchRecent(ctx, id)
	return clause, nil
}

// Update overwrites a clause's fields and snapshots the new body.
// Returns domain.ErrNotFound if the clause is absent.
func (s *ClauseService) Update(ctx context.Context, id string, update driving.ClauseUpdate) (*domain.Clause, error) {
	if strings.TrimSpace(update.Text) == "" {
		return nil, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.clauses.Get(ctx, id); err != nil {
		return nil, err
	}

	clause := &domain.Clause{
		ID:           id,
		Text:         update.Text,
		Tags:         normaliseTags(update.Tags),
		DocType:      update.DocType,
		Jurisdiction: update.Jurisdiction,
	}
	if err := s.clauses.Update(ctx, clause); err != nil {
		return nil, fmt.Errorf("update clause %s: %w", id, err)
	}
	if _, err := s.versions.Snapshot(ctx, id, clause.Text); err != nil {
		return nil, fmt.Errorf("snapshot clause %s: %w", id, err)
	}
	return clause, nil
}

// Delete removes a clause, its version history and every metadata
// trace in one serialised operation.
func (s *ClauseService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.clauses.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.versions.Purge(ctx, id); err != nil {
		return fmt.Errorf("purge versions for %s: %w", id, err)
	}

	meta, err := s.metadata.Load(ctx)
	if err != nil {
		return fmt.Errorf("load metadata: %w", err)
	}
	meta.Forget(id)
	if err := s.metadata.Save(ctx, meta); err != nil {
		return fmt.Errorf("save metadata: %w", err)
	}

	logger.Debug("clause %s deleted", id)
	return nil
}

// Search returns clauses matching the query as a case-insensitive
// substring of text, tags, doc type or jurisdiction. An empty query
// matches everything.
func (s *ClauseService) Search(ctx context.Context, query string) ([]domain.Clause, error) {
	all, err := s.clauses.List(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return all, nil
	}

	matched := []domain.Clause{}
	for _, clause := range all {
		if clauseMatches(clause, query) {
			matched = append(matched, clause)
		}
	}
	return matched, nil
}

// CheckDuplicates compares text against every stored clause using a
// normalised sequence-similarity ratio, highest first. Matches at or
// above the configured threshold are flagged as likely duplicates.
func (s *ClauseService) CheckDuplicates(ctx context.Context, text string) ([]domain.DuplicateMatch, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrInvalidInput
	}

	all, err := s.clauses.List(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]domain.DuplicateMatch, 0, len(all))
	for _, clause := range all {
		ratio := similarity(text, clause.Text)
		matches = append(matches, domain.DuplicateMatch{
			Clause:     clause,
			Similarity: ratio,
			Likely:     ratio >= s.threshold,
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	return matches, nil
}

// Favorite marks a clause as a favourite.
func (s *ClauseService) Favorite(ctx context.Context, id string) error {
	return s.mutateMetadata(ctx, id, func(meta *domain.ClauseMetadata) {
		meta.Favorite(id)
	})
}

// Unfavorite removes a clause from favourites.
func (s *ClauseService) Unfavorite(ctx context.Context, id string) error {
	return s.mutateMetadata(ctx, id, func(meta *domain.ClauseMetadata) {
		meta.Unfavorite(id)
	})
}

// Tag replaces the user-assigned tags for a clause.
func (s *ClauseService) Tag(ctx context.Context, id string, tags []string) error {
	return s.mutateMetadata(ctx, id, func(meta *domain.ClauseMetadata) {
		meta.Tags[id] = normaliseTags(tags)
	})
}

// Recents returns recently used clause IDs, most recent first.
func (s *ClauseService) Recents(ctx context.Context) ([]string, error) {
	meta, err := s.metadata.Load(ctx)
	if err != nil {
		return nil, err
	}
	return meta.Recents, nil
}

// Render expands a clause body against a field set.
func (s *ClauseService) Render(ctx context.Context, id string, fields map[string]string) (string, error) {
	clause, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return s.renderer.Render(clause.Text, domain.FieldSet(fields))
}

// Versions returns snapshot timestamps for name, sorted ascending.
func (s *ClauseService) Versions(ctx context.Context, name string) ([]string, error) {
	return s.versions.List(ctx, name)
}

// Diff returns a unified diff between two named snapshots.
func (s *ClauseService) Diff(ctx context.Context, name, a, b string) (string, error) {
	bodyA, err := s.versions.Get(ctx, name, a)
	if err != nil {
		return "", err
	}
	bodyB, err := s.versions.Get(ctx, name, b)
	if err != nil {
		return "", err
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(bodyA),
		B:        difflib.SplitLines(bodyB),
		FromFile: name + "@" + a,
		ToFile:   name + "@" + b,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff %s: %w", name, err)
	}
	return text, nil
}

// mutateMetadata loads, mutates and saves the metadata sidecar under
// the service lock, after checking the clause exists.
func (s *ClauseService) mutateMetadata(ctx context.Context, id string, mutate func(*domain.ClauseMetadata)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.clauses.Get(ctx, id); err != nil {
		return err
	}

	meta, err := s.metadata.Load(ctx)
	if err != nil {
		return fmt.Errorf("load metadata: %w", err)
	}
	mutate(&meta)
	if err := s.metadata.Save(ctx, meta); err != nil {
		return fmt.Errorf("save metadata: %w", err)
	}
	return nil
}

// touchRecent records id in the recents list. Best-effort: a metadata
// failure never fails the read that triggered it.
func (s *ClauseService) touchRecent(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta, err := s.metadata.Load(ctx)
	if err != nil {
		logger.Warn("load metadata for recents: %v", err)
		return
	}
	meta.TouchRecent(id)
	if err := s.metadata.Save(ctx, meta); err != nil {
		logger.Warn("save recents: %v", err)
	}
}

// similarity is a normalised sequence-similarity ratio in [0,1] over
// characters. Comparison is case-insensitive; identical strings score
// 1.0 regardless of letter case.
func similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return 1.0
	}
	matcher := difflib.NewMatcher(explode(a), explode(b))
	return matcher.Ratio()
}

// explode splits a string into per-character sequence elements.
func explode(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// clauseMatches reports whether any searchable clause field contains
// the lower-cased query.
func clauseMatches(clause domain.Clause, query string) bool {
	if strings.Contains(strings.ToLower(clause.Text), query) {
		return true
	}
	for _, tag := range clause.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(clause.DocType), query) ||
		strings.Contains(strings.ToLower(clause.Jurisdiction), query)
}

// normaliseTags trims whitespace and drops empty tags.
func normaliseTags(tags []string) []string {
	out := []string{}
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
