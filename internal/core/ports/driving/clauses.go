package driving

import (
	"context"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
)

// ClauseUpdate carries the full replacement state for a clause update.
// Updates overwrite every field; there is no partial patch.
type ClauseUpdate struct {
	Text         string
	Tags         []string
	DocType      string
	Jurisdiction string
}

// ClauseService manages the reusable clause library.
type ClauseService interface {
	// Add stores a new clause under a fresh unique identifier and
	// snapshots its body.
	Add(ctx context.Context, text string, tags []string, docType, jurisdiction string) (*domain.Clause, error)

	// Get retrieves a clause by ID and records it as recently used.
	Get(ctx context.Context, id string) (*domain.Clause, error)

	// Update overwrites a clause's text, tags, doc type and
	// jurisdiction, and snapshots the new body.
	Update(ctx context.Context, id string, update ClauseUpdate) (*domain.Clause, error)

	// Delete removes a clause together with its version history and
	// its favourites/tags/recents entries. The removal is atomic from
	// the caller's perspective.
	Delete(ctx context.Context, id string) error

	// Search returns clauses whose text, tags, doc type or
	// jurisdiction contain the query (case-insensitive substring).
	// An empty query matches everything.
	Search(ctx context.Context, query string) ([]domain.Clause, error)

	// CheckDuplicates compares text against every stored clause and
	// returns similarity matches, highest ratio first.
	CheckDuplicates(ctx context.Context, text string) ([]domain.DuplicateMatch, error)

	// Favorite marks a clause as a favourite.
	Favorite(ctx context.Context, id string) error

	// Unfavorite removes a clause from favourites.
	Unfavorite(ctx context.Context, id string) error

	// Tag replaces the user-assigned tags for a clause in the
	// metadata sidecar.
	Tag(ctx context.Context, id string, tags []string) error

	// Recents returns recently used clause IDs, most recent first.
	Recents(ctx context.Context) ([]string, error)

	// Render expands a clause body against a field set using the
	// same renderer as document assembly.
	Render(ctx context.Context, id string, fields map[string]string) (string, error)

	// Versions returns snapshot timestamps for a clause or template
	// name, sorted ascending.
	Versions(ctx context.Context, name string) ([]string, error)

	// Diff returns a unified diff between two named snapshots.
	// Fails with domain.ErrVersionNotFound if either is absent.
	Diff(ctx context.Context, name, a, b string) (string, error)
}
