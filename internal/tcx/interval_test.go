package tcx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	at := func(hour, min int) time.Time {
		return time.Date(2023, 5, 1, hour, min, 0, 0, time.UTC)
	}

	tests := []struct {
		name                             string
		aStart, aFinish, bStart, bFinish time.Time
		want                             bool
	}{
		{"disjoint", at(10, 0), at(10, 30), at(11, 0), at(11, 30), false},
		{"contained", at(10, 0), at(11, 0), at(10, 15), at(10, 45), true},
		{"partial", at(10, 0), at(10, 30), at(10, 29), at(11, 0), true},
		{"touching boundary counts as overlap", at(10, 0), at(10, 30), at(10, 30), at(11, 0), true},
		{"one second gap", at(10, 0).Add(-time.Second), at(10, 30), at(10, 30).Add(time.Second), at(11, 0), false},
		{"order independent", at(11, 0), at(11, 30), at(10, 0), at(10, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Overlaps(tt.aStart, tt.aFinish, tt.bStart, tt.bFinish))
		})
	}
}

func TestOverlapDuration(t *testing.T) {
	start := time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)

	overlap := OverlapDuration(start, start.Add(30*time.Minute), start.Add(20*time.Minute), start.Add(time.Hour))
	require.Equal(t, 10*time.Minute, overlap)

	gap := OverlapDuration(start, start.Add(10*time.Minute), start.Add(20*time.Minute), start.Add(time.Hour))
	require.Negative(t, gap, "disjoint intervals report a negative overlap")
}
