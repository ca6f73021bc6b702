package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jml312/domino-train/pkg/adapters/file"
	"github.com/jml312/domino-train/pkg/domain"
)

// Stdin is the path that reads the puzzle from standard input.
const Stdin = "-"

// ErrNoPuzzle is returned when a command is given no puzzle to work on.
var ErrNoPuzzle = errors.New("no puzzle given: pass a file, --id or --tiles")

// PuzzleSource describes where a command reads its puzzle from.
// Exactly one of Path, ID and Tiles is expected.
type PuzzleSource struct {
	Path      string
	Format    file.Format
	ID        string
	Tiles     string
	Start     *int
	Objective string
	Stdin     io.Reader
}

// ResolvePuzzle loads the puzzle and applies the start and objective overrides.
// A puzzle without an objective gets the configured one.
func (rt *Runtime) ResolvePuzzle(ctx context.Context, src PuzzleSource) (*domain.Puzzle, error) {
	p, err := rt.loadPuzzle(ctx, src)
	if err != nil {
		return nil, err
	}

	if src.Start != nil {
		p.StartingValue = *src.Start
	}

	objective := src.Objective
	if objective == "" && p.Objective == "" {
		objective = rt.Config.Objective
	}
	if objective != "" {
		obj, err := domain.ParseObjective(objective)
		if err != nil {
			return nil, err
		}
		p.Objective = obj
	}
	return p, nil
}

func (rt *Runtime) loadPuzzle(ctx context.Context, src PuzzleSource) (*domain.Puzzle, error) {
	set := 0
	for _, s := range []string{src.Path, src.ID, src.Tiles} {
		if s != "" {
			set++
		}
	}
	if set > 1 {
		return nil, fmt.Errorf("a file, --id and --tiles are mutually exclusive")
	}

	switch {
	case src.Path == Stdin:
		if src.Stdin == nil {
			return nil, fmt.Errorf("stdin is not available")
		}
		format := src.Format
		if format == "" {
			format = file.FormatJSON
		}
		return file.DecodePuzzle(src.Stdin, format)
	case src.Path != "":
		return file.LoadPuzzle(src.Path)
	case src.ID != "":
		if rt.Library == nil {
			return nil, fmt.Errorf("--id needs a puzzle library (--library or library: in the config)")
		}
		return rt.Library.Load(ctx, src.ID)
	case src.Tiles != "":
		if src.Start == nil {
			return nil, fmt.Errorf("--tiles needs --start")
		}
		pool, err := domain.ParsePool(src.Tiles)
		if err != nil {
			return nil, err
		}
		return &domain.Puzzle{Dominoes: pool}, nil
	default:
		return nil, ErrNoPuzzle
	}
}
