package main

import (
	"github.com/spf13/cobra"
)

// replCmd is an explicit alias for the default behavior of the root command.
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive shell",
	Run: func(cmd *cobra.Command, args []string) {
		rootCmd.Run(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
