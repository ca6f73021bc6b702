package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidTile is returned when a face-value pair is not a double-12 domino.
var ErrInvalidTile = errors.New("invalid domino")

// ErrInvalidStart is returned when a starting value is outside the pip range.
var ErrInvalidStart = errors.New("invalid starting value")

// ErrPoolSize is returned when a pool does not have the size a variant requires.
var ErrPoolSize = errors.New("invalid pool size")

// ErrUnknownObjective is returned when an objective name cannot be parsed.
var ErrUnknownObjective = errors.New("unknown objective")

// ErrPuzzleNotFound is returned when a puzzle ID cannot be found in a library.
var ErrPuzzleNotFound = errors.New("puzzle not found")

// ErrResultNotFound is returned when a result key cannot be found in the store.
var ErrResultNotFound = errors.New("result not found")

// InvalidTileError reports the face values that failed tile construction.
type InvalidTileError struct {
	A, B int
}

func (e *InvalidTileError) Error() string {
	return fmt.Sprintf("%s [%d|%d]: faces must be between 0 and %d", ErrInvalidTile, e.A, e.B, MaxPip)
}

// Unwrap allows errors.Is(err, ErrInvalidTile).
func (e *InvalidTileError) Unwrap() error {
	return ErrInvalidTile
}
