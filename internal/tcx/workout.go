package tcx

import "time"

// Workout is a view over a whole TCX document: one activity with its laps.
type Workout struct {
	view
}

// NewWorkout wraps a document root node.
func NewWorkout(n *Node) *Workout {
	return &Workout{view{node: n}}
}

// ID returns the workout identity: the opening timestamp string of the
// activity's Id element.
func (w *Workout) ID() (string, error) {
	return w.requiredText(tagID)
}

// Sport returns the activity kind from the Activity element's Sport
// attribute.
func (w *Workout) Sport() (string, error) {
	activity := w.element(tagActivity)
	if activity == nil {
		return "", &MalformedDocumentError{Tag: tagActivity}
	}
	sport, ok := activity.Attr(tagSport)
	if !ok {
		return "", &MalformedDocumentError{Tag: tagSport}
	}
	return sport, nil
}

// Laps returns the workout's laps in document order. A well-formed workout
// has at least one.
func (w *Workout) Laps() []Lap {
	var laps []Lap
	for n := range w.elements(tagLap) {
		laps = append(laps, NewLap(n))
	}
	return laps
}

// StartTime returns the earliest lap start.
func (w *Workout) StartTime() (time.Time, error) {
	interval, err := workoutInterval(w)
	if err != nil {
		return time.Time{}, err
	}
	return interval.start, nil
}

// FinishTime returns the latest lap finish.
func (w *Workout) FinishTime() (time.Time, error) {
	interval, err := workoutInterval(w)
	if err != nil {
		return time.Time{}, err
	}
	return interval.finish, nil
}

// Duration returns finish minus start.
func (w *Workout) Duration() (time.Duration, error) {
	interval, err := workoutInterval(w)
	if err != nil {
		return 0, err
	}
	return interval.finish.Sub(interval.start), nil
}

// Overlaps reports whether this workout's closed time range intersects the
// other workout's.
func (w *Workout) Overlaps(other *Workout) (bool, error) {
	a, err := workoutInterval(w)
	if err != nil {
		return false, err
	}
	b, err := workoutInterval(other)
	if err != nil {
		return false, err
	}
	return Overlaps(a.start, a.finish, b.start, b.finish), nil
}

// OverlapsBy returns the overlap duration of two workouts. Negative when
// they do not intersect.
func (w *Workout) OverlapsBy(other *Workout) (time.Duration, error) {
	a, err := workoutInterval(w)
	if err != nil {
		return 0, err
	}
	b, err := workoutInterval(other)
	if err != nil {
		return 0, err
	}
	return OverlapDuration(a.start, a.finish, b.start, b.finish), nil
}

func workoutInterval(w *Workout) (timeInterval, error) {
	laps := w.Laps()
	if len(laps) == 0 {
		return timeInterval{}, &MalformedDocumentError{Tag: tagLap}
	}
	first, err := lapInterval(laps[0])
	if err != nil {
		return timeInterval{}, err
	}
	bounds := first
	for _, lap := range laps[1:] {
		interval, err := lapInterval(lap)
		if err != nil {
			return timeInterval{}, err
		}
		bounds.start = minTime(bounds.start, interval.start)
		bounds.finish = maxTime(bounds.finish, interval.finish)
	}
	return bounds, nil
}
