// Package repositorytest holds a behavioural test suite every
// repository.InventoryRepository implementation must pass.
package repositorytest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/inventory-service/internal/model"
	"github.com/tuanvumaihuynh/inventory-service/internal/repository"
)

// RunInventoryRepository runs the suite. newRepo must return an empty store for
// each call. unissuedID must be well formed for the store but never assigned.
func RunInventoryRepository(t *testing.T, newRepo func(t *testing.T) repository.InventoryRepository, unissuedID string) {
	t.Helper()
	ctx := context.Background()

	widget := model.Inventory{Name: "Widget", Description: "blue", Quantity: 5, Price: 9.99}

	t.Run("Should insert and get back the same record", func(t *testing.T) {
		repo := newRepo(t)

		id, err := repo.Insert(ctx, widget)
		require.NoError(t, err)
		require.NotEmpty(t, id)

		got, found, err := repo.Get(ctx, id)
		require.NoError(t, err)
		require.True(t, found)

		want := widget
		want.ID = id
		assert.Equal(t, want, got)
	})

	t.Run("Should ignore caller supplied id on insert", func(t *testing.T) {
		repo := newRepo(t)

		in := widget
		in.ID = unissuedID
		id, err := repo.Insert(ctx, in)
		require.NoError(t, err)
		assert.NotEqual(t, unissuedID, id)
	})

	t.Run("Should assign unique ids", func(t *testing.T) {
		repo := newRepo(t)

		seen := map[string]struct{}{}
		for range 10 {
			id, err := repo.Insert(ctx, widget)
			require.NoError(t, err)
			seen[id] = struct{}{}
		}
		assert.Len(t, seen, 10)
	})

	t.Run("Should replace every mutable field", func(t *testing.T) {
		repo := newRepo(t)

		id, err := repo.Insert(ctx, widget)
		require.NoError(t, err)

		updated := model.Inventory{Name: "Gadget", Quantity: 3, Price: 1.5}
		found, err := repo.Replace(ctx, id, updated)
		require.NoError(t, err)
		require.True(t, found)

		got, found, err := repo.Get(ctx, id)
		require.NoError(t, err)
		require.True(t, found)

		updated.ID = id
		assert.Equal(t, updated, got)
	})

	t.Run("Should report missing record on replace and delete", func(t *testing.T) {
		repo := newRepo(t)

		found, err := repo.Replace(ctx, unissuedID, widget)
		require.NoError(t, err)
		assert.False(t, found)

		found, err = repo.Delete(ctx, unissuedID)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Should delete once", func(t *testing.T) {
		repo := newRepo(t)

		id, err := repo.Insert(ctx, widget)
		require.NoError(t, err)

		found, err := repo.Delete(ctx, id)
		require.NoError(t, err)
		assert.True(t, found)

		found, err = repo.Delete(ctx, id)
		require.NoError(t, err)
		assert.False(t, found)

		_, found, err = repo.Get(ctx, id)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Should treat unknown and malformed ids as not found", func(t *testing.T) {
		repo := newRepo(t)

		for _, id := range []string{unissuedID, "not-an-id", ""} {
			_, found, err := repo.Get(ctx, id)
			require.NoError(t, err, id)
			assert.False(t, found, id)

			found, err = repo.Replace(ctx, id, widget)
			require.NoError(t, err, id)
			assert.False(t, found, id)

			found, err = repo.Delete(ctx, id)
			require.NoError(t, err, id)
			assert.False(t, found, id)
		}
	})

	t.Run("Should list created minus deleted", func(t *testing.T) {
		repo := newRepo(t)

		items, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)

		var want []model.Inventory
		var deleted []string
		for i := range 5 {
			in := model.Inventory{Name: "item", Quantity: i, Price: float64(i)}
			id, err := repo.Insert(ctx, in)
			require.NoError(t, err)

			in.ID = id
			if i%2 == 0 {
				deleted = append(deleted, id)
				continue
			}
			want = append(want, in)
		}
		for _, id := range deleted {
			found, err := repo.Delete(ctx, id)
			require.NoError(t, err)
			require.True(t, found)
		}

		items, err = repo.List(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, want, items)
	})
}
