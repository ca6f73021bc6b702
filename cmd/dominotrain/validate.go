package main

import (
	"errors"
	"fmt"

	"github.com/jml312/domino-train/internal/cli"
	"github.com/jml312/domino-train/pkg/adapters/file"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a puzzle, or every puzzle in the library",
	Long: `Checks the starting value, every tile and the pool size without searching.
Without a file, --id or --tiles every puzzle in the library is checked.
With --normalize a valid puzzle is printed back as a json or yaml document
instead of the summary line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		src := puzzleSource(cmd, args)

		normalize, _ := cmd.Flags().GetString("normalize")
		if normalize != "" && normalize != string(file.FormatJSON) && normalize != string(file.FormatYAML) {
			return fmt.Errorf("--normalize must be json or yaml, got %q", normalize)
		}

		if src.Path == "" && src.ID == "" && src.Tiles == "" {
			if normalize != "" {
				return fmt.Errorf("--normalize needs a single puzzle: %w", cli.ErrNoPuzzle)
			}
			if rt.Library == nil {
				return cli.ErrNoPuzzle
			}
			ids, err := rt.Library.List(ctx)
			if err != nil {
				return err
			}
			var errs []error
			for _, id := range ids {
				src.ID = id
				if err := validateOne(cmd, rt, src, ""); err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", id, err))
				}
			}
			if len(errs) > 0 {
				return fmt.Errorf("%d of %d puzzles are invalid: %w", len(errs), len(ids), errors.Join(errs...))
			}
			fmt.Fprintf(out, "All %d puzzles are valid! ✅\n", len(ids))
			return nil
		}

		return validateOne(cmd, rt, src, file.Format(normalize))
	},
}

func validateOne(cmd *cobra.Command, rt *cli.Runtime, src cli.PuzzleSource, normalize file.Format) error {
	p, err := rt.ResolvePuzzle(cmd.Context(), src)
	if err != nil {
		return err
	}
	if err := rt.Solver.Validate(p); err != nil {
		return err
	}
	if normalize != "" {
		return file.WritePuzzle(cmd.OutOrStdout(), p, normalize)
	}
	name := p.ID
	if name == "" {
		name = "Puzzle"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: start %d, %d dominoes, objective %s ✅\n",
		name, p.StartingValue, len(p.Dominoes), p.Objective)
	return nil
}

func init() {
	rootCmd.AddCommand(validateCmd)
	addSolverFlags(validateCmd)
	addPuzzleFlags(validateCmd)
	validateCmd.Flags().String("normalize", "", "Print the valid puzzle as json or yaml")
	validateCmd.Flags().Lookup("normalize").NoOptDefVal = string(file.FormatYAML)
}
