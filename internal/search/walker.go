package search

import (
	"context"
	"sync"

	"github.com/jml312/domino-train/pkg/domain"
)

// accumulator holds the best train seen so far as pool indices.
type accumulator struct {
	order []int
	value int
}

func (a *accumulator) record(path []int, value int) {
	a.order = append(a.order[:0], path...)
	a.value = value
}

// walker is the state of one depth-first exploration.
type walker struct {
	ctx       context.Context
	pool      []domain.Tile
	objective domain.Objective
	used      []bool
	path      []int
	value     int
	acc       accumulator
	budget    *budget
	hooks     domain.SolveHooks
	shared    *sharedBest
}

func (e *Engine) newWalker(ctx context.Context, pool []domain.Tile, objective domain.Objective, b *budget, shared *sharedBest) *walker {
	return &walker{
		ctx:       ctx,
		pool:      pool,
		objective: objective,
		used:      make([]bool, len(pool)),
		path:      make([]int, 0, len(pool)),
		budget:    b,
		hooks:     e.hooks,
		shared:    shared,
	}
}

func (w *walker) gain(t domain.Tile) int {
	if w.objective == domain.ObjectiveLength {
		return 1
	}
	return t.Pips()
}

// visit evaluates the current node and then recurses into every tile that
// matches openEnd, in pool order.
func (w *walker) visit(openEnd int) {
	if !w.budget.take() {
		return
	}
	if w.value > w.acc.value {
		w.acc.record(w.path, w.value)
		w.improved()
	}

	for i, t := range w.pool {
		if w.used[i] || !t.Matches(openEnd) {
			continue
		}
		w.place(i, t)
		w.visit(t.OtherEnd(openEnd))
		w.unplace(i, t)

		if w.budget.exhausted() {
			return
		}
	}
}

func (w *walker) place(i int, t domain.Tile) {
	w.used[i] = true
	w.path = append(w.path, i)
	w.value += w.gain(t)
}

func (w *walker) unplace(i int, t domain.Tile) {
	w.value -= w.gain(t)
	w.path = w.path[:len(w.path)-1]
	w.used[i] = false
}

// improved reports a new best to the hooks. In parallel mode only values
// that beat every other branch so far are reported.
func (w *walker) improved() {
	if w.hooks.OnImprove == nil {
		return
	}
	event := &domain.ImproveEvent{
		Objective: w.objective,
		Value:     w.acc.value,
		Length:    len(w.acc.order),
		Nodes:     w.budget.visited(),
	}
	if w.shared == nil {
		w.hooks.OnImprove(w.ctx, event)
		return
	}
	w.shared.offer(w.ctx, w.hooks.OnImprove, event)
}

// sharedBest is the best value across all branches of a parallel search.
// Compare, update and notify happen under one lock so hooks observe a
// strictly increasing sequence.
type sharedBest struct {
	mu    sync.Mutex
	value int
}

func (s *sharedBest) offer(ctx context.Context, notify func(context.Context, *domain.ImproveEvent), e *domain.ImproveEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.Value <= s.value {
		return
	}
	s.value = e.Value
	notify(ctx, e)
}
