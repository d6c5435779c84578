package tcx

import "time"

// Overlaps reports whether two closed time intervals intersect. Intervals
// that touch at a single instant count as overlapping, so adjacent
// recordings that share a boundary sample are rejected rather than merged.
func Overlaps(aStart, aFinish, bStart, bFinish time.Time) bool {
	return !maxTime(aStart, bStart).After(minTime(aFinish, bFinish))
}

// OverlapDuration returns the length of the intersection of two intervals.
// The result is negative when the intervals do not intersect.
func OverlapDuration(aStart, aFinish, bStart, bFinish time.Time) time.Duration {
	return minTime(aFinish, bFinish).Sub(maxTime(aStart, bStart))
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
