package main

import (
	"fmt"

	dominotrain "github.com/jml312/domino-train"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dominotrain",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dominotrain version %s\n", dominotrain.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
