// Package cmd defines command-line interface commands for gridley.
package cmd

import (
	"github.com/spf13/cobra"
)

var version string

var rootCmd = &cobra.Command{
	Use:   "gridley",
	Short: "Bordered text-table renderer",
	Long:  "gridley renders a JSON grid of cells as a fixed-width bordered text table",
}

// Execute runs the root CLI command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI.
func SetVersion(v string) {
	version = v
	rootCmd.Version = version
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
