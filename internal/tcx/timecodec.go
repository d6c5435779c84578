package tcx

import "time"

// TimeLayout is the canonical TCX timestamp layout. FormatTime always emits
// this layout no matter which accepted layout a value was parsed from.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// TimeLayouts are the accepted timestamp layouts, tried in order. The list
// is deliberately explicit so tests can enumerate exactly what parses.
var TimeLayouts = []string{
	TimeLayout,             // fractional seconds, UTC
	"2006-01-02T15:04:05Z", // whole seconds, UTC
}

// Display layouts for human-readable reports.
const (
	DisplayTimeLayout = "2006-01-02 15:04:05 (UTC)"
	DisplayTimeOnly   = "15:04:05"
)

// ParseTime parses a TCX timestamp, trying each accepted layout in order.
// Every ordering and overlap decision depends on timestamps, so an
// unparsable value is a hard error, never a silent zero time.
func ParseTime(s string) (time.Time, error) {
	for _, layout := range TimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &MalformedTimestampError{Value: s}
}

// FormatTime renders a timestamp in the canonical layout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ChopSubseconds truncates a duration to whole seconds for display.
func ChopSubseconds(d time.Duration) time.Duration {
	return d.Truncate(time.Second)
}
