package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/quran-words/internal/wordstore"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of quran-words",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "quran-words %s (sqlite %s)\n", version, wordstore.Driver())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
