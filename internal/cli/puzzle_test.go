package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jml312/domino-train/internal/config"
	"github.com/jml312/domino-train/internal/logging"
	"github.com/jml312/domino-train/pkg/adapters/file"
	"github.com/jml312/domino-train/pkg/adapters/memory"
	"github.com/jml312/domino-train/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRuntime(t *testing.T) *Runtime {
	t.Helper()
	cfg := config.Default()
	cfg.Cache.Backend = config.CacheNone
	rt, err := NewRuntime(cfg, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = rt.Close() })
	return rt
}

func intPtr(v int) *int { return &v }

func TestResolvePuzzle_File(t *testing.T) {
	rt := newTestRuntime(t)
	path := filepath.Join(t.TempDir(), "week.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"starting_value": 3, "dominoes": [{"left":3,"right":5}]}`), 0644))

	p, err := rt.ResolvePuzzle(context.Background(), PuzzleSource{Path: path})
	require.NoError(t, err)
	assert.Equal(t, "week", p.ID)
	assert.Equal(t, 3, p.StartingValue)
	assert.Equal(t, domain.ObjectiveScore, p.Objective, "config default applies")
}

func TestResolvePuzzle_Stdin(t *testing.T) {
	rt := newTestRuntime(t)
	src := PuzzleSource{
		Path:   Stdin,
		Format: file.FormatYAML,
		Stdin:  strings.NewReader("starting_value: 12\nobjective: length\ndominoes:\n  - {left: 12, right: 4}\n"),
	}

	p, err := rt.ResolvePuzzle(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 12, p.StartingValue)
	assert.Equal(t, domain.ObjectiveLength, p.Objective, "document objective beats the config default")
}

func TestResolvePuzzle_Library(t *testing.T) {
	rt := newTestRuntime(t)
	lib, err := memory.NewLoader(domain.Puzzle{ID: "monday", StartingValue: 5, Dominoes: []domain.Tile{{Left: 5, Right: 6}}})
	require.NoError(t, err)
	rt.Library = lib

	p, err := rt.ResolvePuzzle(context.Background(), PuzzleSource{ID: "monday", Objective: "length", Start: intPtr(6)})
	require.NoError(t, err)
	assert.Equal(t, "monday", p.ID)
	assert.Equal(t, 6, p.StartingValue, "--start overrides the document")
	assert.Equal(t, domain.ObjectiveLength, p.Objective)

	_, err = rt.ResolvePuzzle(context.Background(), PuzzleSource{ID: "tuesday"})
	assert.ErrorIs(t, err, domain.ErrPuzzleNotFound)
}

func TestResolvePuzzle_Tiles(t *testing.T) {
	rt := newTestRuntime(t)

	p, err := rt.ResolvePuzzle(context.Background(), PuzzleSource{Tiles: "3|5 5|5 8|5", Start: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, []domain.Tile{{Left: 3, Right: 5}, {Left: 5, Right: 5}, {Left: 5, Right: 8}}, p.Dominoes)

	_, err = rt.ResolvePuzzle(context.Background(), PuzzleSource{Tiles: "3|5"})
	assert.Error(t, err, "--tiles without --start")

	_, err = rt.ResolvePuzzle(context.Background(), PuzzleSource{Tiles: "3|15", Start: intPtr(3)})
	assert.ErrorIs(t, err, domain.ErrInvalidTile)
}

func TestResolvePuzzle_Errors(t *testing.T) {
	rt := newTestRuntime(t)
	ctx := context.Background()

	_, err := rt.ResolvePuzzle(ctx, PuzzleSource{})
	assert.ErrorIs(t, err, ErrNoPuzzle)

	_, err = rt.ResolvePuzzle(ctx, PuzzleSource{Path: "a.json", ID: "b"})
	assert.ErrorContains(t, err, "mutually exclusive")

	_, err = rt.ResolvePuzzle(ctx, PuzzleSource{ID: "monday"})
	assert.ErrorContains(t, err, "needs a puzzle library")

	_, err = rt.ResolvePuzzle(ctx, PuzzleSource{Tiles: "1|2", Start: intPtr(1), Objective: "speed"})
	assert.ErrorIs(t, err, domain.ErrUnknownObjective)
}
