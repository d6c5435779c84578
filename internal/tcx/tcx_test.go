package tcx

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Fixture builders shared by the package tests. They assemble minimal but
// schema-shaped TCX documents.

func workoutXML(sport, id string, laps ...string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<TrainingCenterDatabase xmlns="http://www.garmin.com/xmlschemas/TrainingCenterDatabase/v2">
  <Activities>
    <Activity Sport=%q>
      <Id>%s</Id>
%s
    </Activity>
  </Activities>
</TrainingCenterDatabase>`, sport, id, strings.Join(laps, "\n"))
}

func lapXML(start string, totalSeconds, distance float64, calories int, tracks ...string) string {
	return fmt.Sprintf(`<Lap StartTime=%q>
  <TotalTimeSeconds>%g</TotalTimeSeconds>
  <DistanceMeters>%g</DistanceMeters>
  <Calories>%d</Calories>
%s
</Lap>`, start, totalSeconds, distance, calories, strings.Join(tracks, "\n"))
}

func trackXML(points ...string) string {
	return "<Track>\n" + strings.Join(points, "\n") + "\n</Track>"
}

func pointXML(at string, distance float64) string {
	return fmt.Sprintf(`<Trackpoint>
  <Time>%s</Time>
  <DistanceMeters>%g</DistanceMeters>
</Trackpoint>`, at, distance)
}

func parseWorkout(t *testing.T, doc string) *Workout {
	t.Helper()
	w, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return w
}

// simpleWorkout builds a one-lap workout whose trackpoints are spaced one
// minute apart, with an odometer climbing 100m per sample.
func simpleWorkout(t *testing.T, id, lapStart string, points int, distanceAtEnd float64) *Workout {
	t.Helper()

	start, err := ParseTime(lapStart)
	require.NoError(t, err)

	var samples []string
	for i := 0; i < points; i++ {
		at := start.Add(time.Duration(i) * time.Minute)
		samples = append(samples, pointXML(FormatTime(at), float64(i)*100))
	}

	doc := workoutXML("Biking", id,
		lapXML(lapStart, float64((points-1)*60), distanceAtEnd, 250, trackXML(samples...)))
	return parseWorkout(t, doc)
}
