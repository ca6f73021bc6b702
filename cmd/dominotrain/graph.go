package main

import (
	"fmt"

	"github.com/jml312/domino-train/internal/presentation/graph"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph [file]",
	Short: "Export the best train as a Mermaid diagram",
	Long:  `Solves the puzzle and outputs a Mermaid diagram (graph LR) of the train, with the unused tiles alongside.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		noUnused, _ := cmd.Flags().GetBool("no-unused")

		rt, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		p, err := rt.ResolvePuzzle(cmd.Context(), puzzleSource(cmd, args))
		if err != nil {
			return err
		}
		res, err := rt.Solver.Solve(cmd.Context(), p)
		if err != nil {
			return err
		}

		var overlay *graph.Overlay
		if !noUnused {
			overlay = &graph.Overlay{Unused: p.Unused(res.Train)}
		}
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(res.StartingValue, res.Train, overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	addSolverFlags(graphCmd)
	addPuzzleFlags(graphCmd)
	graphCmd.Flags().Bool("no-unused", false, "Leave the unused tiles out of the diagram")
}
