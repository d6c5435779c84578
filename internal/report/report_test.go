package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/workoutkit/tcx-backend-go/internal/tcx"
)

const reportDoc = `<?xml version="1.0" encoding="UTF-8"?>
<TrainingCenterDatabase xmlns="http://www.garmin.com/xmlschemas/TrainingCenterDatabase/v2">
  <Activities>
    <Activity Sport="Running">
      <Id>2023-05-01T10:00:00.000Z</Id>
      <Lap StartTime="2023-05-01T10:00:00.000Z">
        <TotalTimeSeconds>1800</TotalTimeSeconds>
        <DistanceMeters>5250</DistanceMeters>
        <Calories>320</Calories>
        <AverageHeartRateBpm>
          <Value>140</Value>
        </AverageHeartRateBpm>
        <Track>
          <Trackpoint>
            <Time>2023-05-01T10:00:00.000Z</Time>
            <Position>
              <LatitudeDegrees>52.5208</LatitudeDegrees>
              <LongitudeDegrees>13.4094</LongitudeDegrees>
            </Position>
            <DistanceMeters>0</DistanceMeters>
          </Trackpoint>
          <Trackpoint>
            <Time>2023-05-01T10:30:00.000Z</Time>
            <Position>
              <LatitudeDegrees>52.5163</LatitudeDegrees>
              <LongitudeDegrees>13.3777</LongitudeDegrees>
            </Position>
            <DistanceMeters>5250</DistanceMeters>
          </Trackpoint>
        </Track>
      </Lap>
    </Activity>
  </Activities>
</TrainingCenterDatabase>`

func renderWorkout(t *testing.T, doc string) string {
	t.Helper()
	w, err := tcx.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WorkoutInfo(&buf, w))
	return buf.String()
}

func TestWorkoutInfo(t *testing.T) {
	text := renderWorkout(t, reportDoc)

	require.Contains(t, text, "Workout:")
	require.Contains(t, text, "Id:           2023-05-01T10:00:00.000Z")
	require.Contains(t, text, "Activity:     Running")
	require.Contains(t, text, "Start time:   2023-05-01 10:00:00 (UTC)")
	require.Contains(t, text, "Duration:     30m0s")
	require.Contains(t, text, "Lap #0 [10:00:00 -> 10:30:00]")
	require.Contains(t, text, "Distance:     5,250m")
	require.Contains(t, text, "Calories:     320")
	require.Contains(t, text, "Avg HR:       140 bpm")
	require.Contains(t, text, "Track #0 [10:00:00 -> 10:30:00]")
	require.Contains(t, text, "Trackpoints:  2")
	require.Contains(t, text, "GPS distance:")
}

func TestWorkoutInfoOmitsAbsentFields(t *testing.T) {
	doc := strings.NewReplacer(
		"        <AverageHeartRateBpm>\n          <Value>140</Value>\n        </AverageHeartRateBpm>\n", "",
	).Replace(reportDoc)
	text := renderWorkout(t, doc)

	require.NotContains(t, text, "Avg HR:")
	require.NotContains(t, text, "Avg cadence:")
	require.NotContains(t, text, "Max HR:")
}

func TestWorkoutInfoSkipsGPSWithoutPositions(t *testing.T) {
	doc := strings.NewReplacer(
		"<LatitudeDegrees>", "<IgnoredDegrees>",
		"</LatitudeDegrees>", "</IgnoredDegrees>",
	).Replace(reportDoc)
	text := renderWorkout(t, doc)

	require.Contains(t, text, "Trackpoints:  2")
	require.NotContains(t, text, "GPS distance:")
}

func TestGroupThousands(t *testing.T) {
	require.Equal(t, "0", groupThousands(0))
	require.Equal(t, "999", groupThousands(999))
	require.Equal(t, "1,000", groupThousands(1000))
	require.Equal(t, "1,234,567", groupThousands(1234567))
	require.Equal(t, "-5,250", groupThousands(-5250))
}
