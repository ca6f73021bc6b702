package main

import (
	"fmt"

	"github.com/jml312/domino-train/internal/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the puzzles in the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonMode, _ := cmd.Flags().GetBool("json")

		rt, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		if rt.Library == nil {
			return fmt.Errorf("no puzzle library: pass --library or set library: in the config")
		}
		ids, err := rt.Library.List(cmd.Context())
		if err != nil {
			return err
		}
		return cli.Printer{Out: cmd.OutOrStdout(), JSON: jsonMode}.PrintIDs(ids)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("library", "", "Directory of puzzle documents")
	listCmd.Flags().Bool("json", false, "Print the IDs as a JSON array")
}
