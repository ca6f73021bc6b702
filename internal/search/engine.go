package search

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/jml312/domino-train/pkg/domain"
)

// Engine runs train searches.
// An Engine holds configuration only and is safe for concurrent use.
type Engine struct {
	logger      *slog.Logger
	hooks       domain.SolveHooks
	nodeBudget  int64
	timeout     time.Duration
	parallelism int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithHooks registers observability callbacks.
func WithHooks(hooks domain.SolveHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithNodeBudget caps the number of search nodes visited (0 = unlimited).
func WithNodeBudget(n int64) Option {
	return func(e *Engine) {
		if n > 0 {
			e.nodeBudget = n
		}
	}
}

// WithTimeout caps the wall time of a single search (0 = unlimited).
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithParallelism explores root branches on up to n goroutines.
// Values below 2 keep the search on the calling goroutine.
func WithParallelism(n int) Option {
	return func(e *Engine) {
		e.parallelism = n
	}
}

// NewEngine creates an engine with the given options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Outcome is the result of one search.
type Outcome struct {
	// Train is the best chain found, oriented from the starting value.
	Train domain.Train
	// Value is the objective value of Train.
	Value int
	// Nodes is the number of search nodes visited.
	Nodes int64
	// Truncated is set when the budget or context stopped the search early.
	// Train is then the best found so far, not necessarily the optimum.
	Truncated bool
}

// Search finds the train from start that maximizes objective using tiles
// from pool. Every pool tile is assumed to be valid.
func (e *Engine) Search(ctx context.Context, start int, pool []domain.Tile, objective domain.Objective) Outcome {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	b := newBudget(ctx, e.nodeBudget)
	var acc accumulator
	if e.parallelism > 1 {
		acc = e.searchParallel(ctx, start, pool, objective, b)
	} else {
		w := e.newWalker(ctx, pool, objective, b, nil)
		w.visit(start)
		acc = w.acc
	}

	out := Outcome{
		Train:     Orient(start, pool, acc.order),
		Value:     acc.value,
		Nodes:     b.visited(),
		Truncated: b.exhausted(),
	}

	e.logger.Debug("Search finished",
		"start", start,
		"pool", len(pool),
		"objective", objective,
		"value", out.Value,
		"length", len(out.Train),
		"nodes", out.Nodes,
		"truncated", out.Truncated,
	)
	return out
}

// Search runs an unbounded sequential search with default settings.
func Search(start int, pool []domain.Tile, objective domain.Objective) domain.Train {
	return NewEngine().Search(context.Background(), start, pool, objective).Train
}

// Orient resolves the left/right faces of the tiles selected by order,
// walking the chain from start.
func Orient(start int, pool []domain.Tile, order []int) domain.Train {
	train := make(domain.Train, 0, len(order))
	openEnd := start
	for _, idx := range order {
		t := pool[idx].OrientedToward(openEnd)
		train = append(train, t)
		openEnd = t.Right
	}
	return train
}
