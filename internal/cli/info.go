package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/workoutkit/tcx-backend-go/internal/report"
	"github.com/workoutkit/tcx-backend-go/internal/tcx"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>...",
	Short: "Output detailed workout information",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

// runInfo reports every input file. One malformed file must not block the
// rest of the batch, so failures are collected and reported at the end.
func runInfo(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		workout, err := tcx.Load(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed++
			continue
		}
		if err := report.WorkoutInfo(cmd.OutOrStdout(), workout); err != nil {
			fmt.Fprintf(os.Stderr, "failed to report %s: %v\n", path, err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}
