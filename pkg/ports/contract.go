package ports

import (
	"context"
	"testing"
	"time"

	"github.com/jml312/domino-train/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunResultStoreContract runs a suite of tests to verify that a ResultStore implementation
// adheres to the defined interface contract.
func RunResultStoreContract(t *testing.T, store ResultStore) {
	ctx := context.Background()
	key := "contract-" + time.Now().Format("20060102150405")

	// Each sample carries the key it is stored under, as the solver does.
	sample := func(k string) *domain.Result {
		return &domain.Result{
			Key:           k,
			StartingValue: 3,
			Objective:     domain.ObjectiveScore,
			Train:         domain.Train{{Left: 3, Right: 5}, {Left: 5, Right: 5}, {Left: 5, Right: 8}},
			Value:         31,
			Score:         31,
			Nodes:         9,
			SolvedAt:      time.Now().UTC().Truncate(time.Second),
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		result := sample(key)
		err := store.Save(ctx, key, result)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, result.Train, loaded.Train)
		assert.Equal(t, result.Value, loaded.Value)
		assert.Equal(t, result.Objective, loaded.Objective)
		assert.True(t, result.SolvedAt.Equal(loaded.SolvedAt))
	})

	t.Run("Stored copy is isolated", func(t *testing.T) {
		result := sample(key)
		require.NoError(t, store.Save(ctx, key, result))
		result.Train[0] = domain.Tile{Left: 12, Right: 12}

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, domain.Tile{Left: 3, Right: 5}, loaded.Train[0])
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrResultNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, sample(key)))

		err := store.Delete(ctx, key)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrResultNotFound, "Load after Delete should return ErrResultNotFound")
	})

	t.Run("List", func(t *testing.T) {
		k1, k2 := key+"-1", key+"-2"
		require.NoError(t, store.Save(ctx, k1, sample(k1)))
		require.NoError(t, store.Save(ctx, k2, sample(k2)))

		keys, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, keys, k1)
		assert.Contains(t, keys, k2)

		loaded, err := store.Load(ctx, k2)
		require.NoError(t, err)
		assert.Equal(t, k2, loaded.Key)

		_ = store.Delete(ctx, k1)
		_ = store.Delete(ctx, k2)
	})
}
