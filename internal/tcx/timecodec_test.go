package tcx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTimeAcceptsBothLayouts(t *testing.T) {
	fractional, err := ParseTime("2023-05-01T10:00:00.000Z")
	require.NoError(t, err)

	whole, err := ParseTime("2023-05-01T10:00:00Z")
	require.NoError(t, err)

	require.True(t, fractional.Equal(whole), "equivalent times in either layout must parse to equal instants")
}

func TestParseTimeKeepsFraction(t *testing.T) {
	parsed, err := ParseTime("2023-05-01T10:00:00.500Z")
	require.NoError(t, err)
	require.Equal(t, 500*time.Millisecond, time.Duration(parsed.Nanosecond()))
}

func TestParseTimeMalformed(t *testing.T) {
	for _, input := range []string{
		"",
		"yesterday",
		"2023-05-01 10:00:00",
		"2023-05-01T10:00:00+02:00",
	} {
		_, err := ParseTime(input)
		require.Error(t, err, "input %q", input)

		var malformed *MalformedTimestampError
		require.ErrorAs(t, err, &malformed)
		require.Equal(t, input, malformed.Value)
	}
}

func TestFormatTimeRoundTrip(t *testing.T) {
	original := time.Date(2023, 5, 1, 10, 30, 15, int(250*time.Millisecond), time.UTC)

	parsed, err := ParseTime(FormatTime(original))
	require.NoError(t, err)
	require.True(t, parsed.Equal(original))
}

func TestFormatTimeCanonicalLayout(t *testing.T) {
	// Whole-second input still formats with the fractional layout.
	parsed, err := ParseTime("2023-05-01T10:00:00Z")
	require.NoError(t, err)
	require.Equal(t, "2023-05-01T10:00:00.000Z", FormatTime(parsed))
}

func TestChopSubseconds(t *testing.T) {
	d := 90*time.Second + 450*time.Millisecond
	require.Equal(t, 90*time.Second, ChopSubseconds(d))
}
