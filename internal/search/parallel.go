package search

import (
	"context"

	"github.com/jml312/domino-train/pkg/domain"
	"golang.org/x/sync/errgroup"
)

// searchParallel explores every root branch on its own walker and merges
// the branch winners in pool order. A branch only replaces the merged best
// on a strict improvement, so the result matches the sequential search.
func (e *Engine) searchParallel(ctx context.Context, start int, pool []domain.Tile, objective domain.Objective, b *budget) accumulator {
	var acc accumulator
	// Root node: the empty train.
	if !b.take() {
		return acc
	}

	var shared sharedBest
	var branches []*walker

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.parallelism)

	for i, t := range pool {
		if !t.Matches(start) {
			continue
		}
		w := e.newWalker(gctx, pool, objective, b, &shared)
		branches = append(branches, w)

		idx, tile := i, t
		g.Go(func() error {
			w.place(idx, tile)
			w.visit(tile.OtherEnd(start))
			return nil
		})
	}
	_ = g.Wait()

	for _, w := range branches {
		if w.acc.value > acc.value {
			acc = w.acc
		}
	}
	return acc
}
