package spatial

import "github.com/golang/geo/s2"

// Earth radii used for angular-to-metric conversion.
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers
)

// HaversineDistance calculates the great-circle distance between two points
// in meters.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// PathLength sums the great-circle distances over a sequence of
// (lat, lon) coordinates.
func PathLength(coords [][2]float64) float64 {
	var total float64
	for i := 1; i < len(coords); i++ {
		total += HaversineDistance(coords[i-1][0], coords[i-1][1], coords[i][0], coords[i][1])
	}
	return total
}
