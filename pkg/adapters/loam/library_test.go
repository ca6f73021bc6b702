package loam

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/loam"
	"github.com/jml312/domino-train/internal/dto"
	"github.com/jml312/domino-train/internal/testutils"
	"github.com/jml312/domino-train/pkg/domain"
	"github.com/jml312/domino-train/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, files map[string]string) *Library {
	t.Helper()
	tmpDir, repo := testutils.SetupTestRepo(t)
	for filename, content := range files {
		err := os.WriteFile(filepath.Join(tmpDir, filename), []byte(content), 0644)
		require.NoError(t, err)
	}
	return New(loam.NewTypedRepository[dto.PuzzleRecord](repo))
}

func TestLibrary_Contract(t *testing.T) {
	lib := seed(t, map[string]string{
		"opening.md": `---
starting_value: 3
dominoes:
  - {left: 3, right: 5}
  - {left: 5, right: 5}
  - {left: 5, right: 8}
---
The classic double-five opening.`,
		"long.json": `{
  "starting_value": 12,
  "objective": "length",
  "dominoes": [{"left": 12, "right": 0}, {"left": 0, "right": 0}]
}`,
	})

	opening, err := domain.NewPuzzle(3, domain.ObjectiveScore, [2]int{3, 5}, [2]int{5, 5}, [2]int{5, 8})
	require.NoError(t, err)
	long, err := domain.NewPuzzle(12, domain.ObjectiveLength, [2]int{12, 0}, [2]int{0, 0})
	require.NoError(t, err)

	tests.PuzzleLoaderContractTest(t, lib, map[string]*domain.Puzzle{
		"opening": opening,
		"long":    long,
	})
}

func TestLibrary_List_NormalizesIDs(t *testing.T) {
	lib := seed(t, map[string]string{
		"start.md": `---
id: start.md
starting_value: 1
dominoes: []
---`,
		"choice.json": `{"id": "choice.json", "starting_value": 2, "dominoes": []}`,
		"implicit.yaml": `starting_value: 4
dominoes: []
`,
	})

	ids, err := lib.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"choice", "implicit", "start"}, ids)
}

func TestLibrary_List_DetectsCollisions(t *testing.T) {
	lib := seed(t, map[string]string{
		"foo.md": `---
id: foo
starting_value: 1
dominoes: []
---`,
		"foo.json": `{"id": "foo", "starting_value": 1, "dominoes": []}`,
	})

	_, err := lib.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collision detected")
	assert.Contains(t, err.Error(), "foo")
}

func TestLibrary_Load_DeclaredID(t *testing.T) {
	lib := seed(t, map[string]string{
		"week-07.md": `---
id: valentine
starting_value: 6
dominoes:
  - {left: 6, right: 6}
---`,
	})

	p, err := lib.Load(context.Background(), "valentine")
	require.NoError(t, err)
	assert.Equal(t, "valentine", p.ID)
	assert.Equal(t, 6, p.StartingValue)
}

func TestLibrary_Load_InvalidTile(t *testing.T) {
	lib := seed(t, map[string]string{
		"bad.md": `---
starting_value: 6
dominoes:
  - {left: 6, right: 14}
---`,
	})

	_, err := lib.Load(context.Background(), "bad")
	assert.ErrorIs(t, err, domain.ErrInvalidTile)
}

func TestLibrary_Load_NotFound(t *testing.T) {
	lib := seed(t, map[string]string{})
	_, err := lib.Load(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrPuzzleNotFound)
}
