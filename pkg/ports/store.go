package ports

import (
	"context"

	"github.com/jml312/domino-train/pkg/domain"
)

// ResultStore caches solved results so identical puzzles are not searched twice.
type ResultStore interface {
	// Save persists the result under its key.
	Save(ctx context.Context, key string, result *domain.Result) error

	// Load retrieves the result for a key.
	// Returns domain.ErrResultNotFound if no result is stored.
	Load(ctx context.Context, key string) (*domain.Result, error)

	// Delete removes the result for a key.
	Delete(ctx context.Context, key string) error

	// List returns the keys of every stored result.
	List(ctx context.Context) ([]string, error)
}
