package driven

import "context"

// VersionStore keeps immutable timestamped snapshots of named clause
// or template bodies. Snapshots are append-only; they are never edited
// or reordered after creation.
//
// Timestamps use the compact form YYYYMMDD_HHMMSS.
type VersionStore interface {
	// Snapshot writes a new snapshot of text under name and returns
	// the timestamp it was stored as.
	Snapshot(ctx context.Context, name, text string) (string, error)

	// List returns all snapshot timestamps for name, sorted ascending.
	// A name with no snapshots yields an empty list, not an error.
	List(ctx context.Context, name string) ([]string, error)

	// Get returns the snapshot body for (name, timestamp).
	// Returns domain.ErrVersionNotFound if absent.
	Get(ctx context.Context, name, timestamp string) (string, error)

	// Purge removes all snapshots for name.
	// Purging a name with no snapshots is a no-op.
	Purge(ctx context.Context, name string) error
}
