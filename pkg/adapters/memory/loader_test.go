package memory_test

import (
	"context"
	"testing"

	"github.com/jml312/domino-train/pkg/adapters/memory"
	"github.com/jml312/domino-train/pkg/domain"
	"github.com/jml312/domino-train/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLoader_Contract(t *testing.T) {
	a := domain.Puzzle{ID: "a", StartingValue: 3, Dominoes: []domain.Tile{{Left: 3, Right: 5}, {Left: 5, Right: 5}}}
	b := domain.Puzzle{ID: "b", StartingValue: 2, Dominoes: []domain.Tile{{Left: 2, Right: 2}}}

	loader, err := memory.NewLoader(a, b)
	require.NoError(t, err)

	tests.PuzzleLoaderContractTest(t, loader, map[string]*domain.Puzzle{"a": &a, "b": &b})
}

func TestMemoryLoader_Errors(t *testing.T) {
	_, err := memory.NewLoader(domain.Puzzle{})
	assert.Error(t, err, "missing ID")

	_, err = memory.NewLoader(domain.Puzzle{ID: "x"}, domain.Puzzle{ID: "x"})
	assert.Error(t, err, "duplicate ID")

	loader, err := memory.NewLoader()
	require.NoError(t, err)
	_, err = loader.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrPuzzleNotFound)
}

func TestMemoryLoader_ReturnsCopies(t *testing.T) {
	loader, err := memory.NewLoader(domain.Puzzle{ID: "a", Dominoes: []domain.Tile{{Left: 1, Right: 1}}})
	require.NoError(t, err)

	p, err := loader.Load(context.Background(), "a")
	require.NoError(t, err)
	p.Dominoes[0] = domain.Tile{Left: 9, Right: 9}

	again, err := loader.Load(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, domain.Tile{Left: 1, Right: 1}, again.Dominoes[0])
}
