package driven

import (
	"context"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
)

// ClauseStore persists the clause collection.
//
// Reads are fail-soft: an unreadable or missing backing file is
// treated as an empty store (and logged), so a corrupt sidecar never
// takes clause search down. Writes are fail-loud: a save that did not
// persist must return an error.
type ClauseStore interface {
	// List returns all clauses in stored order.
	List(ctx context.Context) ([]domain.Clause, error)

	// Get retrieves a clause by ID.
	// Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id string) (*domain.Clause, error)

	// Create stores a new clause.
	// Returns domain.ErrAlreadyExists if the ID is taken; identifier
	// uniqueness is an invariant the store enforces.
	Create(ctx context.Context, clause *domain.Clause) error

	// Update overwrites an existing clause.
	// Returns domain.ErrNotFound if absent.
	Update(ctx context.Context, clause *domain.Clause) error

	// Delete removes a clause by ID.
	// Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id string) error
}

// MetadataStore persists the clause metadata sidecar
// (favourites, per-clause tags, recents).
//
// Load is fail-soft (empty metadata on unreadable state, logged);
// Save is fail-loud.
type MetadataStore interface {
	// Load reads the metadata blob.
	Load(ctx context.Context) (domain.ClauseMetadata, error)

	// Save writes the metadata blob.
	Save(ctx context.Context, meta domain.ClauseMetadata) error
}
