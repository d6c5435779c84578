package tcx

import (
	"fmt"
	"time"
)

// OverlapError reports that two workouts or laps cover intersecting time
// ranges. Overlap signals duplicate or concurrent recordings; it is always
// rejected, never resolved. Both intervals are carried for diagnostics.
type OverlapError struct {
	AStart, AFinish time.Time
	BStart, BFinish time.Time
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("time ranges overlap by %s: [%s, %s] intersects [%s, %s]",
		e.OverlapsBy(),
		FormatTime(e.AStart), FormatTime(e.AFinish),
		FormatTime(e.BStart), FormatTime(e.BFinish))
}

// OverlapsBy returns the length of the intersection.
func (e *OverlapError) OverlapsBy() time.Duration {
	return OverlapDuration(e.AStart, e.AFinish, e.BStart, e.BFinish)
}

// LapCountError reports that a single-lap merge policy was applied to a
// workout with more than one lap.
type LapCountError struct {
	ReceiverID   string
	DonorID      string
	ReceiverLaps int
	DonorLaps    int
}

func (e *LapCountError) Error() string {
	return fmt.Sprintf("single-lap merge requires exactly one lap per workout: [%s] has %d laps, [%s] has %d laps",
		e.ReceiverID, e.ReceiverLaps, e.DonorID, e.DonorLaps)
}

// MalformedTimestampError reports a timestamp that matches none of the
// accepted layouts.
type MalformedTimestampError struct {
	Value string
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("malformed timestamp %q", e.Value)
}

// MalformedDocumentError reports a required element or attribute missing
// where the TCX schema guarantees presence.
type MalformedDocumentError struct {
	Tag string
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed document: missing required %q", e.Tag)
}

// ReadError wraps an I/O or parse failure while loading a document.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read workout %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError wraps an I/O failure while saving a document.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write workout %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
