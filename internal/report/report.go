// Package report renders human-readable workout summaries.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/workoutkit/tcx-backend-go/internal/spatial"
	"github.com/workoutkit/tcx-backend-go/internal/tcx"
)

// WorkoutInfo writes an indented description of the workout, its laps and
// tracks.
func WorkoutInfo(out io.Writer, w *tcx.Workout) error {
	id, err := w.ID()
	if err != nil {
		return err
	}
	sport, err := w.Sport()
	if err != nil {
		return err
	}
	start, err := w.StartTime()
	if err != nil {
		return err
	}
	finish, err := w.FinishTime()
	if err != nil {
		return err
	}
	duration, err := w.Duration()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Workout:")
	prefix := "  "
	fmt.Fprintf(out, "%sId:           %s\n", prefix, id)
	fmt.Fprintf(out, "%sActivity:     %s\n", prefix, sport)
	fmt.Fprintf(out, "%sStart time:   %s\n", prefix, start.Format(tcx.DisplayTimeLayout))
	fmt.Fprintf(out, "%sFinish time:  %s\n", prefix, finish.Format(tcx.DisplayTimeLayout))
	fmt.Fprintf(out, "%sDuration:     %s\n", prefix, tcx.ChopSubseconds(duration))

	fmt.Fprintf(out, "%sLaps:\n", prefix)
	for i, lap := range w.Laps() {
		if err := lapInfo(out, lap, i, prefix+"  "); err != nil {
			return err
		}
	}

	fmt.Fprintln(out)
	return nil
}

func lapInfo(out io.Writer, lap tcx.Lap, n int, prefix string) error {
	start, err := lap.StartTime()
	if err != nil {
		return err
	}
	finish, err := lap.FinishTime()
	if err != nil {
		return err
	}
	duration, err := lap.Duration()
	if err != nil {
		return err
	}
	distance, err := lap.Distance()
	if err != nil {
		return err
	}
	calories, err := lap.Calories()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%sLap #%d [%s -> %s]\n", prefix, n,
		start.Format(tcx.DisplayTimeOnly), finish.Format(tcx.DisplayTimeOnly))

	prefix += "  "
	fmt.Fprintf(out, "%sStart time:   %s\n", prefix, start.Format(tcx.DisplayTimeLayout))
	fmt.Fprintf(out, "%sFinish time:  %s\n", prefix, finish.Format(tcx.DisplayTimeLayout))
	fmt.Fprintf(out, "%sDuration:     %s\n", prefix, tcx.ChopSubseconds(duration))
	fmt.Fprintf(out, "%sDistance:     %sm\n", prefix, groupThousands(int64(distance)))
	fmt.Fprintf(out, "%sCalories:     %d\n", prefix, calories)

	if cadence, ok := lap.Cadence(); ok {
		fmt.Fprintf(out, "%sAvg cadence:  %d\n", prefix, cadence)
	}
	if hr, ok := lap.AvgHeartRate(); ok {
		fmt.Fprintf(out, "%sAvg HR:       %d bpm\n", prefix, hr)
	}
	if hr, ok := lap.MaxHeartRate(); ok {
		fmt.Fprintf(out, "%sMax HR:       %d bpm\n", prefix, hr)
	}

	fmt.Fprintf(out, "%sTracks:\n", prefix)
	for i, track := range lap.Tracks() {
		if err := trackInfo(out, track, i, prefix+"  "); err != nil {
			return err
		}
	}

	fmt.Fprintln(out)
	return nil
}

func trackInfo(out io.Writer, track tcx.Track, n int, prefix string) error {
	start, err := track.StartTime()
	if err != nil {
		return err
	}
	finish, err := track.FinishTime()
	if err != nil {
		return err
	}
	duration, err := track.Duration()
	if err != nil {
		return err
	}
	points := track.Trackpoints()

	fmt.Fprintf(out, "%sTrack #%d [%s -> %s]\n", prefix, n,
		start.Format(tcx.DisplayTimeOnly), finish.Format(tcx.DisplayTimeOnly))

	prefix += "  "
	fmt.Fprintf(out, "%sStart time:   %s\n", prefix, start.Format(tcx.DisplayTimeLayout))
	fmt.Fprintf(out, "%sFinish time:  %s\n", prefix, finish.Format(tcx.DisplayTimeLayout))
	fmt.Fprintf(out, "%sDuration:     %s\n", prefix, tcx.ChopSubseconds(duration))
	fmt.Fprintf(out, "%sTrackpoints:  %d\n", prefix, len(points))

	if gps := gpsLength(points); gps > 0 {
		fmt.Fprintf(out, "%sGPS distance: %sm\n", prefix, groupThousands(int64(gps)))
	}
	return nil
}

// gpsLength computes the position-derived track length. Samples without a
// GPS fix are skipped; zero means not enough positions to measure.
func gpsLength(points []tcx.Trackpoint) float64 {
	var coords [][2]float64
	for _, tp := range points {
		if lat, lon, ok := tp.Position(); ok {
			coords = append(coords, [2]float64{lat, lon})
		}
	}
	if len(coords) < 2 {
		return 0
	}
	return spatial.PathLength(coords)
}

// groupThousands renders an integer with comma separators.
func groupThousands(v int64) string {
	s := strconv.FormatInt(v, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
