package ports

import (
	"context"

	"github.com/jml312/domino-train/pkg/domain"
)

// PuzzleLoader defines how puzzles are retrieved from a library.
type PuzzleLoader interface {
	// Load returns the puzzle with the given ID.
	// Returns domain.ErrPuzzleNotFound if the puzzle does not exist.
	Load(ctx context.Context, id string) (*domain.Puzzle, error)

	// List returns the IDs of every puzzle in the library.
	List(ctx context.Context) ([]string, error)
}

// Watchable is implemented by libraries that can report changed puzzles.
type Watchable interface {
	// Watch emits the ID of every puzzle that changes until ctx is done.
	Watch(ctx context.Context) (<-chan string, error)
}
