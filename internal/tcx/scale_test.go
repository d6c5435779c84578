package tcx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const scaleDoc = `<?xml version="1.0" encoding="UTF-8"?>
<TrainingCenterDatabase xmlns="http://www.garmin.com/xmlschemas/TrainingCenterDatabase/v2" xmlns:ns3="http://www.garmin.com/xmlschemas/ActivityExtension/v2">
  <Activities>
    <Activity Sport="Biking">
      <Id>2023-05-01T10:00:00.000Z</Id>
      <Lap StartTime="2023-05-01T10:00:00.000Z">
        <TotalTimeSeconds>600</TotalTimeSeconds>
        <DistanceMeters>4000</DistanceMeters>
        <Calories>150</Calories>
        <Track>
          <Trackpoint>
            <Time>2023-05-01T10:00:00.000Z</Time>
            <DistanceMeters>1000</DistanceMeters>
            <Cadence>80</Cadence>
            <Extensions>
              <ns3:TPX>
                <ns3:Watts>200</ns3:Watts>
              </ns3:TPX>
            </Extensions>
          </Trackpoint>
          <Trackpoint>
            <Time>2023-05-01T10:10:00.000Z</Time>
            <DistanceMeters>4000</DistanceMeters>
          </Trackpoint>
        </Track>
      </Lap>
    </Activity>
  </Activities>
</TrainingCenterDatabase>`

func TestScaleAllFields(t *testing.T) {
	w := parseWorkout(t, scaleDoc)

	require.NoError(t, w.Scale(2, ScaleAll()))

	points := w.Laps()[0].Trackpoints()

	distance, err := points[0].Distance()
	require.NoError(t, err)
	require.Equal(t, 2000.0, distance)

	cadence, ok := points[0].Cadence()
	require.True(t, ok)
	require.Equal(t, 160, cadence)

	watts, ok := points[0].Watts()
	require.True(t, ok)
	require.Equal(t, 400, watts)

	// Second sample has no cadence or watts; the pass skips them quietly.
	distance, err = points[1].Distance()
	require.NoError(t, err)
	require.Equal(t, 8000.0, distance)
	_, ok = points[1].Cadence()
	require.False(t, ok)
}

func TestScaleLeavesLapTotals(t *testing.T) {
	w := parseWorkout(t, scaleDoc)

	require.NoError(t, w.Scale(0.5, ScaleAll()))

	lap := w.Laps()[0]
	distance, err := lap.Distance()
	require.NoError(t, err)
	require.Equal(t, 4000.0, distance, "stored lap totals are not rescaled")

	seconds, err := lap.TotalSeconds()
	require.NoError(t, err)
	require.Equal(t, 600.0, seconds)
}

func TestScaleSelectedFieldsOnly(t *testing.T) {
	w := parseWorkout(t, scaleDoc)

	require.NoError(t, w.Scale(2, ScaleOptions{Cadence: true}))

	points := w.Laps()[0].Trackpoints()

	distance, err := points[0].Distance()
	require.NoError(t, err)
	require.Equal(t, 1000.0, distance)

	cadence, ok := points[0].Cadence()
	require.True(t, ok)
	require.Equal(t, 160, cadence)

	watts, ok := points[0].Watts()
	require.True(t, ok)
	require.Equal(t, 200, watts)
}
