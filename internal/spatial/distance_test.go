package spatial

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHaversineDistance(t *testing.T) {
	// Berlin TV tower to Brandenburg Gate, roughly 2.2km.
	d := HaversineDistance(52.5208, 13.4094, 52.5163, 13.3777)
	require.InDelta(t, 2200, d, 100)

	require.Zero(t, HaversineDistance(52.52, 13.405, 52.52, 13.405))
}

func TestHaversineDistanceSymmetric(t *testing.T) {
	ab := HaversineDistance(40.7128, -74.0060, 51.5074, -0.1278)
	ba := HaversineDistance(51.5074, -0.1278, 40.7128, -74.0060)
	require.InDelta(t, ab, ba, 1e-6)

	// New York to London is about 5570km.
	require.InDelta(t, 5570000, ab, 20000)
}

func TestPathLength(t *testing.T) {
	require.Zero(t, PathLength(nil))
	require.Zero(t, PathLength([][2]float64{{52.52, 13.405}}))

	coords := [][2]float64{
		{52.5208, 13.4094},
		{52.5163, 13.3777},
		{52.5208, 13.4094},
	}
	total := PathLength(coords)
	leg := HaversineDistance(52.5208, 13.4094, 52.5163, 13.3777)
	require.InDelta(t, 2*leg, total, 1e-6)
}
