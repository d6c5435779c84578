package tcx

import "time"

// Lap is a view over one recorded lap. StartTime and the stored totals are
// authoritative sensor-reported values: StartTime may precede the first
// trackpoint and TotalSeconds may differ from finish minus start.
type Lap struct {
	view
}

// NewLap wraps a Lap node.
func NewLap(n *Node) Lap {
	return Lap{view{node: n}}
}

// Tracks returns the lap's tracks in document order.
func (l Lap) Tracks() []Track {
	var tracks []Track
	for n := range l.elements(tagTrack) {
		tracks = append(tracks, NewTrack(n))
	}
	return tracks
}

// Trackpoints returns every trackpoint of the lap across all tracks, in
// document order.
func (l Lap) Trackpoints() []Trackpoint {
	var points []Trackpoint
	for n := range l.elements(tagTrackpoint) {
		points = append(points, NewTrackpoint(n))
	}
	return points
}

// StartTime returns the stored lap start from the StartTime attribute.
func (l Lap) StartTime() (time.Time, error) {
	val, ok := l.node.Attr(tagStartTime)
	if !ok {
		return time.Time{}, &MalformedDocumentError{Tag: tagStartTime}
	}
	return ParseTime(val)
}

// SetStartTime updates the stored lap start.
func (l Lap) SetStartTime(t time.Time) {
	l.node.SetAttr(tagStartTime, FormatTime(t))
}

// FinishTime returns the latest trackpoint time of the lap.
func (l Lap) FinishTime() (time.Time, error) {
	return extremeTime(l.Trackpoints(), true)
}

// Duration returns finish minus start.
func (l Lap) Duration() (time.Duration, error) {
	return durationBetween(l.StartTime, l.FinishTime)
}

// TotalSeconds returns the stored total lap time.
func (l Lap) TotalSeconds() (float64, error) {
	return l.floatField(tagTotalTime)
}

// SetTotalSeconds updates the stored total lap time.
func (l Lap) SetTotalSeconds(v float64) error {
	return l.setFloatField(tagTotalTime, v)
}

// Distance returns the stored cumulative distance at lap end, in meters.
func (l Lap) Distance() (float64, error) {
	return l.floatField(tagDistance)
}

// SetDistance updates the stored lap distance.
func (l Lap) SetDistance(meters float64) error {
	return l.setFloatField(tagDistance, meters)
}

// Calories returns the stored lap calories.
func (l Lap) Calories() (int, error) {
	return l.intField(tagCalories)
}

// SetCalories updates the stored lap calories.
func (l Lap) SetCalories(v int) error {
	return l.setIntField(tagCalories, v)
}

// Cadence returns the lap average cadence when recorded.
func (l Lap) Cadence() (int, bool) {
	return l.optionalInt(tagCadence)
}

// AvgHeartRate returns the stored average heart rate when recorded.
func (l Lap) AvgHeartRate() (int, bool) {
	return l.nestedValue(tagAvgHR)
}

// MaxHeartRate returns the stored maximum heart rate when recorded.
func (l Lap) MaxHeartRate() (int, bool) {
	return l.nestedValue(tagMaxHR)
}

// Overlaps reports whether this lap's closed time range intersects the
// other lap's.
func (l Lap) Overlaps(other Lap) (bool, error) {
	interval, err := lapInterval(l)
	if err != nil {
		return false, err
	}
	otherInterval, err := lapInterval(other)
	if err != nil {
		return false, err
	}
	return Overlaps(interval.start, interval.finish, otherInterval.start, otherInterval.finish), nil
}

type timeInterval struct {
	start, finish time.Time
}

func lapInterval(l Lap) (timeInterval, error) {
	start, err := l.StartTime()
	if err != nil {
		return timeInterval{}, err
	}
	finish, err := l.FinishTime()
	if err != nil {
		return timeInterval{}, err
	}
	return timeInterval{start: start, finish: finish}, nil
}
