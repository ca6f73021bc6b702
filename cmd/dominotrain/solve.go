package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	dominotrain "github.com/jml312/domino-train"
	"github.com/jml312/domino-train/internal/cli"
	"github.com/jml312/domino-train/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Find the best train for a puzzle",
	Long: `Reads a puzzle from a file, stdin, the puzzle library or --tiles and prints
the best train. With --watch and --id the puzzle is solved again every time
its document changes in the library.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonMode, _ := cmd.Flags().GetBool("json")
		noBanner, _ := cmd.Flags().GetBool("no-banner")
		watchMode, _ := cmd.Flags().GetBool("watch")

		src := puzzleSource(cmd, args)
		if watchMode && src.ID == "" {
			return fmt.Errorf("--watch needs --id")
		}

		rt, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		sig := cli.NewSignalContext(cmd.Context())
		defer sig.Stop()

		out := cmd.OutOrStdout()
		printer := cli.Printer{Out: out, JSON: jsonMode, Render: tui.Plain}
		if f, ok := out.(*os.File); ok && !jsonMode {
			printer.Render = tui.RendererFor(f)
			if !noBanner && tui.IsTerminal(f) {
				tui.PrintBanner(f, dominotrain.Version)
			}
		}

		p, err := rt.SolveAndPrint(sig, src, printer)
		if err != nil || !watchMode {
			return err
		}

		logger.Info("Watching puzzle library", "id", src.ID)
		return rt.WatchLibrary(sig,
			func(id string) bool { return id == src.ID || id == p.ID },
			func(context.Context, string) error {
				_, err := rt.SolveAndPrint(sig, src, printer)
				if errors.Is(err, cli.ErrInterrupted) {
					return nil
				}
				return err
			})
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	addSolverFlags(solveCmd)
	addPuzzleFlags(solveCmd)

	solveCmd.Flags().Bool("json", false, "Print the result as JSON")
	solveCmd.Flags().Bool("no-banner", false, "Do not print the banner")
	solveCmd.Flags().BoolP("watch", "w", false, "Solve again when the puzzle changes in the library (needs --id)")
}
