package services

import (
	"fmt"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/geo"
)

// Build an initial tour using a greedy nearest-neighbor algorithm.
//
// The algorithm minimizes immediate travel distance at each step: starting
// from the waypoint at startIndex, it repeatedly appends the unvisited
// waypoint closest to the last-placed one until none remain. It does not
// attempt global optimization; the result is a starting point for local
// search. The design prioritizes determinism and simplicity over optimality.
//
// The result is a permutation of the input and is deterministic given
// identical input order and startIndex. Ties are broken by input order:
// a later candidate replaces the current best only on strictly smaller
// distance.
func NearestNeighborTour(waypoints []domain.Waypoint, startIndex int) (domain.Tour, error) {
	if len(waypoints) == 0 {
		return nil, fmt.Errorf("nearest neighbor tour: %w", ErrNoWaypoints)
	}
	if startIndex < 0 || startIndex >= len(waypoints) {
		return nil, fmt.Errorf(
			"nearest neighbor tour: start index %d with %d waypoints: %w",
			startIndex, len(waypoints), ErrStartIndexOutOfRange,
		)
	}

	unvisited := make([]domain.Waypoint, 0, len(waypoints)-1)
	unvisited = append(unvisited, waypoints[:startIndex]...)
	unvisited = append(unvisited, waypoints[startIndex+1:]...)

	tour := make(domain.Tour, 0, len(waypoints))
	tour = append(tour, waypoints[startIndex])

	for len(unvisited) > 0 {
		current := tour[len(tour)-1]

		// Select the next stop by minimum distance (greedy step).
		// First-seen wins on exact ties to keep output order deterministic.
		nearest := 0
		nearestDist := geo.Haversine(current, unvisited[0])
		for i := 1; i < len(unvisited); i++ {
			if d := geo.Haversine(current, unvisited[i]); d < nearestDist {
				nearest = i
				nearestDist = d
			}
		}

		tour = append(tour, unvisited[nearest])
		unvisited = append(unvisited[:nearest], unvisited[nearest+1:]...)
	}

	return tour, nil
}
