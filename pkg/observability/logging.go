package observability

import (
	"context"
	"log/slog"

	"github.com/jml312/domino-train/pkg/domain"
)

// LogHooks logs improvements at debug level and completed solves at info.
func LogHooks(logger *slog.Logger) domain.SolveHooks {
	return domain.SolveHooks{
		OnImprove: func(ctx context.Context, e *domain.ImproveEvent) {
			logger.DebugContext(ctx, "improved",
				"objective", e.Objective,
				"value", e.Value,
				"length", e.Length,
				"nodes", e.Nodes,
			)
		},
		OnSolved: func(ctx context.Context, e *domain.SolveEvent) {
			logger.InfoContext(ctx, "solved",
				"key", e.Key,
				"objective", e.Objective,
				"value", e.Value,
				"length", e.Length,
				"nodes", e.Nodes,
				"truncated", e.Truncated,
				"cached", e.Cached,
				"elapsed", e.Elapsed,
			)
		},
	}
}
