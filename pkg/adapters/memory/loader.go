package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jml312/domino-train/pkg/domain"
)

// Loader implements ports.PuzzleLoader using an in-memory map.
type Loader struct {
	puzzles map[string]domain.Puzzle
}

// NewLoader creates a library from puzzles. Every puzzle needs an ID.
func NewLoader(puzzles ...domain.Puzzle) (*Loader, error) {
	data := make(map[string]domain.Puzzle, len(puzzles))
	for _, p := range puzzles {
		if p.ID == "" {
			return nil, fmt.Errorf("puzzle missing ID")
		}
		if _, dup := data[p.ID]; dup {
			return nil, fmt.Errorf("duplicate puzzle ID %q", p.ID)
		}
		p.Dominoes = append([]domain.Tile(nil), p.Dominoes...)
		data[p.ID] = p
	}
	return &Loader{puzzles: data}, nil
}

// Load returns a copy of the puzzle with the given ID.
func (l *Loader) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	p, ok := l.puzzles[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPuzzleNotFound, id)
	}
	p.Dominoes = append([]domain.Tile(nil), p.Dominoes...)
	return &p, nil
}

// List returns all puzzle IDs in sorted order.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(l.puzzles))
	for id := range l.puzzles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
