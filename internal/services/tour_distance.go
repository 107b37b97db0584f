package services

import (
	"trip-route-service/internal/domain"
	"trip-route-service/internal/geo"
)

// TotalDistance returns the full cycle length of a tour in kilometers:
// the sum of great-circle distances over consecutive waypoints plus the
// closing leg from the last waypoint back to the first.
//
// A single-waypoint tour has length zero. The tour must be non-empty;
// an empty tour yields zero but is a caller error (the constructor never
// produces one).
func TotalDistance(tour domain.Tour) float64 {
	if len(tour) == 0 {
		return 0
	}

	total := 0.0
	for i := 0; i < len(tour)-1; i++ {
		total += geo.Haversine(tour[i], tour[i+1])
	}
	total += geo.Haversine(tour[len(tour)-1], tour[0])

	return total
}
