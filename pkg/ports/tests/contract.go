package tests

import (
	"context"
	"testing"

	"github.com/jml312/domino-train/pkg/domain"
	"github.com/jml312/domino-train/pkg/ports"
)

// PuzzleLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.PuzzleLoader.
func PuzzleLoaderContractTest(t *testing.T, loader ports.PuzzleLoader, setupData map[string]*domain.Puzzle) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load_Success", func(t *testing.T) {
		for id, expected := range setupData {
			p, err := loader.Load(ctx, id)
			if err != nil {
				t.Fatalf("unexpected error loading puzzle %s: %v", id, err)
			}
			if p.StartingValue != expected.StartingValue {
				t.Errorf("starting value mismatch for %s. got %d, want %d", id, p.StartingValue, expected.StartingValue)
			}
			if len(p.Dominoes) != len(expected.Dominoes) {
				t.Fatalf("pool size mismatch for %s. got %d, want %d", id, len(p.Dominoes), len(expected.Dominoes))
			}
			for i := range p.Dominoes {
				if !p.Dominoes[i].Equal(expected.Dominoes[i]) {
					t.Errorf("domino %d mismatch for %s. got %s, want %s", i, id, p.Dominoes[i], expected.Dominoes[i])
				}
			}
		}
	})

	t.Run("Load_NotFound", func(t *testing.T) {
		_, err := loader.Load(ctx, "non-existent-puzzle")
		if err == nil {
			t.Error("expected error for non-existent puzzle, got nil")
		}
	})

	t.Run("List", func(t *testing.T) {
		ids, err := loader.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error listing puzzles: %v", err)
		}

		if len(ids) != len(setupData) {
			t.Errorf("expected %d puzzles, got %d", len(setupData), len(ids))
		}

		lookup := make(map[string]bool)
		for _, id := range ids {
			lookup[id] = true
		}
		for id := range setupData {
			if !lookup[id] {
				t.Errorf("puzzle %s missing from list", id)
			}
		}
	})
}
