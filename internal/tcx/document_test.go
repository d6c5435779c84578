package tcx

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const namespacedDoc = `<?xml version="1.0" encoding="UTF-8"?>
<TrainingCenterDatabase xmlns="http://www.garmin.com/xmlschemas/TrainingCenterDatabase/v2" xmlns:ns3="http://www.garmin.com/xmlschemas/ActivityExtension/v2">
  <Activities>
    <Activity Sport="Biking">
      <Id>2023-05-01T10:00:00.000Z</Id>
      <Lap StartTime="2023-05-01T10:00:00.000Z">
        <TotalTimeSeconds>60</TotalTimeSeconds>
        <DistanceMeters>500</DistanceMeters>
        <Calories>20</Calories>
        <Track>
          <Trackpoint>
            <Time>2023-05-01T10:00:00.000Z</Time>
            <DistanceMeters>0</DistanceMeters>
            <Extensions>
              <ns3:TPX>
                <ns3:Watts>180</ns3:Watts>
              </ns3:TPX>
            </Extensions>
          </Trackpoint>
          <Trackpoint>
            <Time>2023-05-01T10:01:00.000Z</Time>
            <DistanceMeters>500</DistanceMeters>
          </Trackpoint>
        </Track>
      </Lap>
    </Activity>
  </Activities>
</TrainingCenterDatabase>`

func TestParseBuildsTree(t *testing.T) {
	w := parseWorkout(t, namespacedDoc)

	require.Equal(t, "TrainingCenterDatabase", w.Node().Name)

	id, err := w.ID()
	require.NoError(t, err)
	require.Equal(t, "2023-05-01T10:00:00.000Z", id)

	sport, err := w.Sport()
	require.NoError(t, err)
	require.Equal(t, "Biking", sport)

	require.Len(t, w.Laps(), 1)
}

func TestWriteStripsNamespacePrefixes(t *testing.T) {
	w := parseWorkout(t, namespacedDoc)

	out, err := w.Bytes()
	require.NoError(t, err)
	text := string(out)

	require.True(t, strings.HasPrefix(text, "<?xml"), "output must carry the XML declaration")
	require.NotContains(t, text, "ns3:")
	require.NotContains(t, text, "xmlns:")
	require.Contains(t, text, `xmlns="http://www.garmin.com/xmlschemas/TrainingCenterDatabase/v2"`)
	require.Contains(t, text, "<Watts>180</Watts>")
}

func TestWattsReadableThroughExtension(t *testing.T) {
	w := parseWorkout(t, namespacedDoc)

	points := w.Laps()[0].Trackpoints()
	require.Len(t, points, 2)

	watts, ok := points[0].Watts()
	require.True(t, ok)
	require.Equal(t, 180, watts)

	_, ok = points[1].Watts()
	require.False(t, ok)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	w := parseWorkout(t, namespacedDoc)
	path := filepath.Join(t.TempDir(), "out.tcx")

	require.NoError(t, w.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	id, err := loaded.ID()
	require.NoError(t, err)
	require.Equal(t, "2023-05-01T10:00:00.000Z", id)

	lap := loaded.Laps()[0]
	distance, err := lap.Distance()
	require.NoError(t, err)
	require.Equal(t, 500.0, distance)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.tcx"))
	require.Error(t, err)

	var readErr *ReadError
	require.ErrorAs(t, err, &readErr)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse(strings.NewReader("not xml at all"))
	require.Error(t, err)

	_, err = Parse(strings.NewReader(""))
	require.Error(t, err)
}

func TestWriteEscapesText(t *testing.T) {
	w := parseWorkout(t, workoutXML("Trail &amp; Run", "2023-05-01T10:00:00.000Z",
		lapXML("2023-05-01T10:00:00.000Z", 60, 100, 5,
			trackXML(pointXML("2023-05-01T10:00:00.000Z", 0)))))

	sport, err := w.Sport()
	require.NoError(t, err)
	require.Equal(t, "Trail & Run", sport)

	out, err := w.Bytes()
	require.NoError(t, err)
	require.Contains(t, string(out), "Trail &amp; Run")
}
