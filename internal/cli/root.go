// Package cli implements the tcxedit command line tool.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "tcxedit",
	Short: "Inspect, merge and scale TCX workout files",
	Long: `tcxedit edits Training Center Database (TCX) workout files.

Workouts can be inspected, combined into one (append laps, merge into a
single lap, or flatten into a single track) and corrected for miscalibrated
sensors by scaling distance, cadence and power.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "output detailed log of operation")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
