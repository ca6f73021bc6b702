package dto

import (
	"encoding/json"
	"testing"

	"github.com/jml312/domino-train/pkg/domain"
	"github.com/jml312/domino-train/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_OriginalFormat(t *testing.T) {
	raw := map[string]any{
		"starting_value": json.Number("3"),
		"dominoes": []any{
			map[string]any{"left": json.Number("3"), "right": json.Number("5")},
			map[string]any{"left": json.Number("8"), "right": json.Number("5")},
		},
	}

	rec, err := Decode(raw)
	require.NoError(t, err)
	require.NotNil(t, rec.StartingValue)
	assert.Equal(t, 3, *rec.StartingValue)

	p, err := rec.ToPuzzle()
	require.NoError(t, err)
	assert.Empty(t, p.Objective)
	assert.Equal(t, domain.ObjectiveScore, p.EffectiveObjective())
	assert.Equal(t, []domain.Tile{{Left: 3, Right: 5}, {Left: 5, Right: 8}}, p.Dominoes, "tiles are canonicalized")
}

func TestDecode_SchemaFailure(t *testing.T) {
	_, err := Decode(map[string]any{
		"starting_value": 13,
		"dominoes":       []any{map[string]any{"left": 0, "right": 99}},
	})
	require.Error(t, err)
	assert.Len(t, schema.ValidationErrors(err), 2)
	assert.True(t, IsValidation(err))
}

func TestToPuzzle_CollectsTileErrors(t *testing.T) {
	start := 4
	rec := &PuzzleRecord{
		StartingValue: &start,
		Dominoes: []TileRecord{
			{Left: 4, Right: 13},
			{Left: 4, Right: 4},
			{Left: -1, Right: 2},
		},
	}

	_, err := rec.ToPuzzle()
	require.Error(t, err)
	errs := schema.ValidationErrors(err)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "dominoes[0]")
	assert.Contains(t, errs[1].Error(), "dominoes[2]")
	assert.ErrorIs(t, err, domain.ErrInvalidTile)

	var tileErr *domain.InvalidTileError
	require.ErrorAs(t, err, &tileErr)
	assert.Equal(t, 4, tileErr.A)
	assert.Equal(t, 13, tileErr.B)
}

func TestToPuzzle_MissingStart(t *testing.T) {
	rec := &PuzzleRecord{}
	_, err := rec.ToPuzzle()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "starting_value")
}

func TestToPuzzle_PoolSize(t *testing.T) {
	start := 0
	rec := &PuzzleRecord{
		StartingValue: &start,
		Objective:     "length",
		PoolSize:      16,
		Dominoes:      []TileRecord{{Left: 0, Right: 1}},
	}
	_, err := rec.ToPuzzle()
	assert.ErrorIs(t, err, domain.ErrPoolSize)
	assert.True(t, IsValidation(err))
}

func TestToPuzzle_UnknownObjective(t *testing.T) {
	start := 0
	rec := &PuzzleRecord{StartingValue: &start, Objective: "fastest"}
	_, err := rec.ToPuzzle()
	assert.ErrorIs(t, err, domain.ErrUnknownObjective)
}

func TestFromPuzzle_RoundTrip(t *testing.T) {
	p, err := domain.NewPuzzle(6, domain.ObjectiveLength, [2]int{6, 1}, [2]int{1, 1})
	require.NoError(t, err)
	p.ID = "weekly"

	back, err := FromPuzzle(p).ToPuzzle()
	require.NoError(t, err)
	assert.Equal(t, p, back)
}

func TestIsValidation_Infrastructure(t *testing.T) {
	assert.False(t, IsValidation(assert.AnError))
	assert.False(t, IsValidation(domain.ErrPuzzleNotFound))
}
