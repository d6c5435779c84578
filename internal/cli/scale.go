package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workoutkit/tcx-backend-go/internal/tcx"
)

var (
	scaleFactor  float64
	scaleOutput  string
	skipDistance bool
	skipCadence  bool
	skipWatts    bool
)

var scaleCmd = &cobra.Command{
	Use:   "scale <file>",
	Short: "Scale distance, cadence and power by a factor",
	Long: `Multiply the trackpoint distance, cadence and power values of a TCX
file by a factor. Times and GPS positions stay as recorded. Use this to
correct data from miscalibrated trainers or foot pods.`,
	Args: cobra.ExactArgs(1),
	RunE: runScale,
}

func init() {
	scaleCmd.Flags().Float64VarP(&scaleFactor, "factor", "f", 0, "scale factor (required)")
	scaleCmd.Flags().StringVarP(&scaleOutput, "output", "o", "out.tcx", "output TCX file")
	scaleCmd.Flags().BoolVar(&skipDistance, "no-distance", false, "leave distance untouched")
	scaleCmd.Flags().BoolVar(&skipCadence, "no-cadence", false, "leave cadence untouched")
	scaleCmd.Flags().BoolVar(&skipWatts, "no-watts", false, "leave power untouched")
	scaleCmd.MarkFlagRequired("factor")
	rootCmd.AddCommand(scaleCmd)
}

func runScale(cmd *cobra.Command, args []string) error {
	if scaleFactor <= 0 {
		return fmt.Errorf("scale factor must be positive, got %g", scaleFactor)
	}

	workout, err := tcx.Load(args[0])
	if err != nil {
		return err
	}

	opts := tcx.ScaleOptions{
		Distance: !skipDistance,
		Cadence:  !skipCadence,
		Watts:    !skipWatts,
	}
	if err := workout.Scale(scaleFactor, opts); err != nil {
		return err
	}

	if err := workout.Save(scaleOutput); err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "Scaled %s by %g into %s\n", args[0], scaleFactor, scaleOutput)
	}
	return nil
}
