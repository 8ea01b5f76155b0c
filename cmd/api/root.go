package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd runs the API server when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "api",
	Short: "Favorites catalog REST API",
	Long: `REST API for users, planets, characters and the favorites that link them.

Commands:
  serve    - Run the HTTP server (default)
  migrate  - Apply, roll back or inspect schema migrations`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
