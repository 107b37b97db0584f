package geo

import (
	"math"

	"trip-route-service/internal/domain"
)

// Mean Earth radius in kilometers.
const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance in kilometers between two
// waypoints, treating the Earth as a sphere of radius 6371 km.
//
// The result is symmetric and zero exactly when both waypoints carry
// identical coordinates. Straight-line surface distance only; this is not a
// road-network distance.
func Haversine(a, b domain.Waypoint) float64 {
	lat1 := a.Lat * math.Pi / 180
	lon1 := a.Lon * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	lon2 := b.Lon * math.Pi / 180

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	// Rounding can push h a hair outside [0,1] for coincident or antipodal
	// points, which would take Asin out of its domain.
	if h < 0 {
		h = 0
	}
	if h > 1 {
		h = 1
	}

	return earthRadiusKm * 2 * math.Asin(math.Sqrt(h))
}
