package tcx

import "time"

// Track is a view over one contiguous run of trackpoints. Tracks carry no
// stored values of their own; everything is derived from members.
type Track struct {
	view
}

// NewTrack wraps a Track node.
func NewTrack(n *Node) Track {
	return Track{view{node: n}}
}

// Trackpoints returns the member samples in document order.
func (t Track) Trackpoints() []Trackpoint {
	var points []Trackpoint
	for n := range t.elements(tagTrackpoint) {
		points = append(points, NewTrackpoint(n))
	}
	return points
}

// StartTime returns the earliest trackpoint time.
func (t Track) StartTime() (time.Time, error) {
	return extremeTime(t.Trackpoints(), false)
}

// FinishTime returns the latest trackpoint time.
func (t Track) FinishTime() (time.Time, error) {
	return extremeTime(t.Trackpoints(), true)
}

// Duration returns finish minus start.
func (t Track) Duration() (time.Duration, error) {
	return durationBetween(t.StartTime, t.FinishTime)
}

// extremeTime scans trackpoints for the minimum or maximum time. An empty
// trackpoint set is malformed: derived times have nothing to stand on.
func extremeTime(points []Trackpoint, max bool) (time.Time, error) {
	if len(points) == 0 {
		return time.Time{}, &MalformedDocumentError{Tag: tagTrackpoint}
	}
	best, err := points[0].Time()
	if err != nil {
		return time.Time{}, err
	}
	for _, p := range points[1:] {
		ts, err := p.Time()
		if err != nil {
			return time.Time{}, err
		}
		if (max && ts.After(best)) || (!max && ts.Before(best)) {
			best = ts
		}
	}
	return best, nil
}

func durationBetween(start, finish func() (time.Time, error)) (time.Duration, error) {
	s, err := start()
	if err != nil {
		return 0, err
	}
	f, err := finish()
	if err != nil {
		return 0, err
	}
	return f.Sub(s), nil
}
