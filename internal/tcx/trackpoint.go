package tcx

import (
	"strconv"
	"time"
)

// Trackpoint is a view over one timestamped sample.
type Trackpoint struct {
	view
}

// NewTrackpoint wraps a Trackpoint node.
func NewTrackpoint(n *Node) Trackpoint {
	return Trackpoint{view{node: n}}
}

// Time returns the sample timestamp. Time is required: it orders
// everything, so a missing or unparsable value is an error.
func (t Trackpoint) Time() (time.Time, error) {
	text, err := t.requiredText(tagTime)
	if err != nil {
		return time.Time{}, err
	}
	return ParseTime(text)
}

// Distance returns the cumulative distance in meters. This is an odometer
// value within the owning workout, not a per-sample delta.
func (t Trackpoint) Distance() (float64, error) {
	return t.floatField(tagDistance)
}

// SetDistance updates the cumulative distance.
func (t Trackpoint) SetDistance(meters float64) error {
	return t.setFloatField(tagDistance, meters)
}

// Cadence returns the cadence sample when recorded.
func (t Trackpoint) Cadence() (int, bool) {
	return t.optionalInt(tagCadence)
}

// SetCadence updates the cadence sample when recorded.
func (t Trackpoint) SetCadence(v int) {
	t.setOptionalInt(tagCadence, v)
}

// Watts returns the power sample when recorded. Power lives in an
// extension element, so the lookup tolerates decorated tag names.
func (t Trackpoint) Watts() (int, bool) {
	return t.optionalInt(tagWatts)
}

// SetWatts updates the power sample when recorded.
func (t Trackpoint) SetWatts(v int) {
	t.setOptionalInt(tagWatts, v)
}

// HeartRate returns the heart rate sample in bpm when recorded.
func (t Trackpoint) HeartRate() (int, bool) {
	return t.nestedValue(tagHeartRate)
}

// Position returns the GPS coordinates when recorded.
func (t Trackpoint) Position() (lat, lon float64, ok bool) {
	pos := t.element(tagPosition)
	if pos == nil {
		return 0, 0, false
	}
	latNode := FindFirst(pos, tagLatitude, true)
	lonNode := FindFirst(pos, tagLongitude, true)
	if latNode == nil || lonNode == nil {
		return 0, 0, false
	}
	lat, latErr := strconv.ParseFloat(latNode.Text, 64)
	lon, lonErr := strconv.ParseFloat(lonNode.Text, 64)
	if latErr != nil || lonErr != nil {
		return 0, 0, false
	}
	return lat, lon, true
}
