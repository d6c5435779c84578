package tcx

import (
	"iter"
	"strconv"
)

// Tag names fixed by the Training Center Database schema.
const (
	tagActivities = "Activities"
	tagActivity   = "Activity"
	tagID         = "Id"
	tagSport      = "Sport"
	tagLap        = "Lap"
	tagStartTime  = "StartTime"
	tagTotalTime  = "TotalTimeSeconds"
	tagDistance   = "DistanceMeters"
	tagCalories   = "Calories"
	tagAvgHR      = "AverageHeartRateBpm"
	tagMaxHR      = "MaximumHeartRateBpm"
	tagCadence    = "Cadence"
	tagTrack      = "Track"
	tagTrackpoint = "Trackpoint"
	tagTime       = "Time"
	tagHeartRate  = "HeartRateBpm"
	tagWatts      = "Watts"
	tagValue      = "Value"
	tagPosition   = "Position"
	tagLatitude   = "LatitudeDegrees"
	tagLongitude  = "LongitudeDegrees"
)

// view is the base of every typed accessor: a handle to a tree node plus
// helpers that translate reads and writes to node text and attributes.
// Views never hold state of their own.
type view struct {
	node *Node
}

// Node exposes the underlying tree node.
func (v view) Node() *Node { return v.node }

func (v view) element(tag string) *Node {
	return FindFirst(v.node, tag, true)
}

func (v view) elements(tag string) iter.Seq[*Node] {
	return FindAll(v.node, tag, true)
}

// requiredText returns the text of the first descendant with the given
// tag, failing when the schema-guaranteed element is absent.
func (v view) requiredText(tag string) (string, error) {
	n := v.element(tag)
	if n == nil {
		return "", &MalformedDocumentError{Tag: tag}
	}
	return n.Text, nil
}

func (v view) floatField(tag string) (float64, error) {
	text, err := v.requiredText(tag)
	if err != nil {
		return 0, err
	}
	val, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &MalformedDocumentError{Tag: tag}
	}
	return val, nil
}

func (v view) setFloatField(tag string, val float64) error {
	n := v.element(tag)
	if n == nil {
		return &MalformedDocumentError{Tag: tag}
	}
	n.Text = formatFloat(val)
	return nil
}

func (v view) intField(tag string) (int, error) {
	val, err := v.floatField(tag)
	if err != nil {
		return 0, err
	}
	return int(val), nil
}

func (v view) setIntField(tag string, val int) error {
	n := v.element(tag)
	if n == nil {
		return &MalformedDocumentError{Tag: tag}
	}
	n.Text = strconv.Itoa(val)
	return nil
}

// optionalInt reads an optional integer element; absence is a valid state.
func (v view) optionalInt(tag string) (int, bool) {
	n := v.element(tag)
	if n == nil {
		return 0, false
	}
	val, err := strconv.ParseFloat(n.Text, 64)
	if err != nil {
		return 0, false
	}
	return int(val), true
}

// setOptionalInt updates an optional integer element when present.
func (v view) setOptionalInt(tag string, val int) {
	if n := v.element(tag); n != nil {
		n.Text = strconv.Itoa(val)
	}
}

// nestedValue reads the Value child of an optional wrapper element, the
// layout heart-rate blocks use.
func (v view) nestedValue(tag string) (int, bool) {
	wrapper := v.element(tag)
	if wrapper == nil {
		return 0, false
	}
	value := FindFirst(wrapper, tagValue, true)
	if value == nil {
		return 0, false
	}
	val, err := strconv.ParseFloat(value.Text, 64)
	if err != nil {
		return 0, false
	}
	return int(val), true
}

func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}
