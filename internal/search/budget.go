package search

import (
	"context"
	"sync/atomic"
)

// ctxCheckInterval is how many nodes are visited between context checks.
const ctxCheckInterval = 1024

// budget counts visited nodes and stops the search once the node limit is
// reached or the context is done. It is shared by all walkers of a search.
type budget struct {
	ctx     context.Context
	limit   int64
	nodes   atomic.Int64
	stopped atomic.Bool
}

func newBudget(ctx context.Context, limit int64) *budget {
	return &budget{ctx: ctx, limit: limit}
}

// take accounts for one node and reports whether it may be explored.
func (b *budget) take() bool {
	if b.stopped.Load() {
		return false
	}
	n := b.nodes.Add(1)
	if b.limit > 0 && n > b.limit {
		b.nodes.Add(-1)
		b.stopped.Store(true)
		return false
	}
	if n%ctxCheckInterval == 0 && b.ctx.Err() != nil {
		b.stopped.Store(true)
		return false
	}
	return true
}

func (b *budget) exhausted() bool {
	return b.stopped.Load()
}

func (b *budget) visited() int64 {
	return b.nodes.Load()
}
