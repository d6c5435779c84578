package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workoutkit/tcx-backend-go/internal/report"
	"github.com/workoutkit/tcx-backend-go/internal/tcx"
)

var (
	mergeKind   string
	mergeOutput string
)

var mergeCmd = &cobra.Command{
	Use:   "merge <file> <file>...",
	Short: "Merge multiple workouts into one",
	Long: `Merge two or more TCX files into a single workout.

Later files are merged into the first one in order. Workouts whose time
ranges overlap are rejected: overlap means duplicate or concurrent
recordings.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeKind, "kind", "k", tcx.AppendLaps.String(),
		"merge policy: append_laps, merge_into_single_lap or merge_into_single_track")
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "out.tcx", "output TCX file")
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	kind, err := tcx.ParseMergeKind(mergeKind)
	if err != nil {
		return err
	}

	receiver, err := tcx.Load(args[0])
	if err != nil {
		return err
	}

	for _, path := range args[1:] {
		donor, err := tcx.Load(path)
		if err != nil {
			return err
		}
		if err := receiver.Merge(donor, kind); err != nil {
			return fmt.Errorf("failed to merge %s: %w", path, err)
		}
	}

	if err := receiver.Save(mergeOutput); err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "Merged %d workouts into %s\n", len(args), mergeOutput)
		if err := report.WorkoutInfo(cmd.OutOrStdout(), receiver); err != nil {
			return err
		}
	}
	return nil
}
