package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
)

func TestClauseStore_CRUD(t *testing.T) {
	ctx := context.Background()
	store := NewClauseStore()

	require.NoError(t, store.Create(ctx, &domain.Clause{ID: "a", Text: "First."}))
	require.NoError(t, store.Create(ctx, &domain.Clause{ID: "b", Text: "Second."}))

	t.Run("duplicate id rejected", func(t *testing.T) {
		assert.ErrorIs(t, store.Create(ctx, &domain.Clause{ID: "a"}), domain.ErrAlreadyExists)
	})

	t.Run("list preserves insertion order", func(t *testing.T) {
		all, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "a", all[0].ID)
		assert.Equal(t, "b", all[1].ID)
	})

	t.Run("get returns a copy", func(t *testing.T) {
		got, err := store.Get(ctx, "a")
		require.NoError(t, err)
		got.Text = "mutated"

		again, err := store.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "First.", again.Text)
	})

	t.Run("update missing", func(t *testing.T) {
		assert.ErrorIs(t, store.Update(ctx, &domain.Clause{ID: "zzz"}), domain.ErrNotFound)
	})

	t.Run("delete removes from order", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "a"))
		all, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "b", all[0].ID)
	})
}

func TestMetadataStore_IsolatesCallers(t *testing.T) {
	ctx := context.Background()
	store := NewMetadataStore()

	meta, err := store.Load(ctx)
	require.NoError(t, err)
	meta.Favorite("clause-1")
	require.NoError(t, store.Save(ctx, meta))

	// Mutating the returned copy must not leak into the store.
	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	loaded.Favorite("clause-2")

	again, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, again.IsFavorite("clause-1"))
	assert.False(t, again.IsFavorite("clause-2"))
}

func TestVersionStore_SnapshotLifecycle(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, time.April, 1, 10, 0, 0, 0, time.UTC)
	calls := 0
	store := NewVersionStore(func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Second)
	})

	first, err := store.Snapshot(ctx, "clause-1", "One.")
	require.NoError(t, err)
	second, err := store.Snapshot(ctx, "clause-1", "Two.")
	require.NoError(t, err)

	t.Run("list sorted ascending", func(t *testing.T) {
		timestamps, err := store.List(ctx, "clause-1")
		require.NoError(t, err)
		assert.Equal(t, []string{first, second}, timestamps)
	})

	t.Run("get returns the body", func(t *testing.T) {
		body, err := store.Get(ctx, "clause-1", second)
		require.NoError(t, err)
		assert.Equal(t, "Two.", body)
	})

	t.Run("missing snapshot", func(t *testing.T) {
		_, err := store.Get(ctx, "clause-1", "19700101_000000")
		assert.ErrorIs(t, err, domain.ErrVersionNotFound)
	})

	t.Run("purge removes everything", func(t *testing.T) {
		require.NoError(t, store.Purge(ctx, "clause-1"))
		timestamps, err := store.List(ctx, "clause-1")
		require.NoError(t, err)
		assert.Empty(t, timestamps)
	})
}
