package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jml312/domino-train/internal/presentation/text"
	"github.com/jml312/domino-train/pkg/domain"
)

// Printer writes solve results either as JSON or as rendered Markdown.
type Printer struct {
	Out    io.Writer
	JSON   bool
	Render func(string) (string, error)
}

// PrintResult writes one result.
func (p Printer) PrintResult(puzzle *domain.Puzzle, res *domain.Result) error {
	if p.JSON {
		enc := json.NewEncoder(p.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	render := p.Render
	if render == nil {
		render = func(s string) (string, error) { return s, nil }
	}
	out, err := render(text.Summary(puzzle, res))
	if err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}
	_, err = fmt.Fprint(p.Out, out)
	return err
}

// PrintIDs writes one puzzle ID per line, or a JSON array.
func (p Printer) PrintIDs(ids []string) error {
	if p.JSON {
		if ids == nil {
			ids = []string{}
		}
		return json.NewEncoder(p.Out).Encode(ids)
	}
	for _, id := range ids {
		if _, err := fmt.Fprintln(p.Out, id); err != nil {
			return err
		}
	}
	return nil
}

// SolveAndPrint resolves, solves and prints one puzzle. When a signal
// cancels sc mid-search the best train found so far is still printed and
// the error wraps ErrInterrupted.
func (rt *Runtime) SolveAndPrint(sc *SignalContext, src PuzzleSource, out Printer) (*domain.Puzzle, error) {
	p, err := rt.ResolvePuzzle(sc, src)
	if err != nil {
		return nil, err
	}
	res, err := rt.Solver.Solve(sc, p)
	if err != nil {
		if ierr := sc.Interrupted(); ierr != nil {
			return p, fmt.Errorf("%w: %v", ierr, err)
		}
		return nil, err
	}
	if err := out.PrintResult(p, res); err != nil {
		return p, err
	}
	if ierr := sc.Interrupted(); ierr != nil {
		if res.Truncated {
			return p, fmt.Errorf("%w: the train shown is the best found before the signal", ierr)
		}
		return p, ierr
	}
	return p, nil
}
