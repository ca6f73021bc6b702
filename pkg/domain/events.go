package domain

import (
	"context"
	"time"
)

// ImproveEvent is emitted every time a search finds a strictly better train.
type ImproveEvent struct {
	Objective Objective `json:"objective"`
	Value     int       `json:"value"`
	Length    int       `json:"length"`
	Nodes     int64     `json:"nodes"`
}

// SolveEvent is emitted once per solved puzzle.
type SolveEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Key       string        `json:"key"`
	Objective Objective     `json:"objective"`
	Value     int           `json:"value"`
	Length    int           `json:"length"`
	Nodes     int64         `json:"nodes"`
	Truncated bool          `json:"truncated"`
	Cached    bool          `json:"cached"`
	Elapsed   time.Duration `json:"elapsed"`
}

// SolveHooks defines callbacks for solver observability.
// OnImprove may be called from several goroutines in parallel mode.
type SolveHooks struct {
	OnImprove func(context.Context, *ImproveEvent)
	OnSolved  func(context.Context, *SolveEvent)
}

// Merge returns hooks that call h first and then other.
func (h SolveHooks) Merge(other SolveHooks) SolveHooks {
	return SolveHooks{
		OnImprove: chainImprove(h.OnImprove, other.OnImprove),
		OnSolved:  chainSolved(h.OnSolved, other.OnSolved),
	}
}

func chainImprove(a, b func(context.Context, *ImproveEvent)) func(context.Context, *ImproveEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *ImproveEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}

func chainSolved(a, b func(context.Context, *SolveEvent)) func(context.Context, *SolveEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *SolveEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
