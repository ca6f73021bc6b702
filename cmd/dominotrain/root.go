package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jml312/domino-train/internal/cli"
	"github.com/jml312/domino-train/internal/config"
	"github.com/jml312/domino-train/internal/logging"
	"github.com/jml312/domino-train/pkg/adapters/file"
	"github.com/jml312/domino-train/pkg/domain"
	"github.com/spf13/cobra"
)

var (
	cfg    = config.Default()
	logger = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "dominotrain",
	Short: "dominotrain finds the best Mexican Train from a pool of dominoes",
	Long: `dominotrain searches every train that can be built from a pool of double-12
dominoes and a starting open end, and reports the one with the most pips
(or the most tiles).`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the YAML or JSON config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides the config)")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	if cmd.Flags().Changed("config") {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("config file: %w", err)
		}
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger = logging.New(level)
	slog.SetDefault(logger)
	return nil
}

// addSolverFlags registers the flags that override solver settings.
func addSolverFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("objective", "o", "", "Objective: score or length (overrides puzzle and config)")
	f.Int64("budget", 0, "Maximum search nodes, 0 for unlimited")
	f.Duration("timeout", 0, "Maximum search time, 0 for unlimited")
	f.Int("parallel", 0, "Explore root branches on this many goroutines")
	f.Int("pool-size", 0, "Required number of dominoes, 0 for the objective default")
	f.String("library", "", "Directory of puzzle documents")
}

// overrides collects the solver flags the user actually set.
func overrides(cmd *cobra.Command) cli.Overrides {
	f := cmd.Flags()
	var o cli.Overrides
	if f.Changed("objective") {
		v, _ := f.GetString("objective")
		o.Objective = &v
	}
	if f.Changed("budget") {
		v, _ := f.GetInt64("budget")
		o.NodeBudget = &v
	}
	if f.Changed("timeout") {
		v, _ := f.GetDuration("timeout")
		o.Timeout = &v
	}
	if f.Changed("parallel") {
		v, _ := f.GetInt("parallel")
		o.Parallelism = &v
	}
	if f.Changed("pool-size") {
		v, _ := f.GetInt("pool-size")
		o.PoolSize = &v
	}
	if f.Changed("library") {
		v, _ := f.GetString("library")
		o.Library = &v
	}
	return o
}

// newRuntime applies the flag overrides and builds the runtime.
func newRuntime(cmd *cobra.Command, extra ...domain.SolveHooks) (*cli.Runtime, error) {
	c := cfg
	overrides(cmd).Apply(&c)
	return cli.NewRuntime(c, logger, extra...)
}

// newServerRuntime is newRuntime with the http search limits applied.
func newServerRuntime(cmd *cobra.Command, extra ...domain.SolveHooks) (*cli.Runtime, error) {
	c := cfg
	overrides(cmd).Apply(&c)
	return cli.NewServerRuntime(c, logger, extra...)
}

// addPuzzleFlags registers the flags that select a puzzle.
func addPuzzleFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("source", "s", "", `Puzzle file (JSON or YAML), "-" for stdin`)
	f.String("format", "", "Format of stdin: json or yaml")
	f.String("id", "", "Puzzle ID in the library")
	f.String("tiles", "", `Inline pool, e.g. "3|5 5|5 8|5" (needs --start)`)
	f.Int("start", 0, "Starting open-end value (overrides the puzzle)")
}

// puzzleSource reads the puzzle flags. A positional argument is the file.
func puzzleSource(cmd *cobra.Command, args []string) cli.PuzzleSource {
	f := cmd.Flags()
	src := cli.PuzzleSource{Stdin: cmd.InOrStdin()}
	src.Path, _ = f.GetString("source")
	if src.Path == "" && len(args) > 0 {
		src.Path = args[0]
	}
	format, _ := f.GetString("format")
	src.Format = file.Format(format)
	src.ID, _ = f.GetString("id")
	src.Tiles, _ = f.GetString("tiles")
	if f.Changed("start") {
		v, _ := f.GetInt("start")
		src.Start = &v
	}
	if f.Changed("objective") {
		src.Objective, _ = f.GetString("objective")
	}
	return src
}
