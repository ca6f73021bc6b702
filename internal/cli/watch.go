package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/jml312/domino-train/pkg/ports"
)

// ErrNoWatch is returned when the library cannot report changes.
var ErrNoWatch = errors.New("the puzzle library does not support watching")

// WatchLibrary calls fn for every changed puzzle ID until ctx is done.
// Only IDs accepted by match are forwarded; a nil match accepts all.
// Errors from fn are logged and do not stop the loop.
func (rt *Runtime) WatchLibrary(ctx context.Context, match func(id string) bool, fn func(ctx context.Context, id string) error) error {
	w, ok := rt.Library.(ports.Watchable)
	if !ok {
		return ErrNoWatch
	}

	events, err := w.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch library: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case id, ok := <-events:
			if !ok {
				return nil
			}
			if match != nil && !match(id) {
				continue
			}
			rt.Logger.Debug("puzzle changed", "id", id)
			if err := fn(ctx, id); err != nil {
				rt.Logger.Error("re-solve failed", "id", id, "error", err)
			}
		}
	}
}
