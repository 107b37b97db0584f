package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-route-service/internal/domain"
)

func TestTwoOptOptimizeUncrossesSquare(t *testing.T) {
	square := squareTour() // A, B, C, D on the corners of a one-degree square

	// Crossed visiting order: both diagonals are travelled.
	crossed := domain.Tour{square[0], square[2], square[1], square[3]}
	crossedDistance := TotalDistance(crossed)

	optimized := TwoOptOptimize(crossed, 1000)
	optimizedDistance := TotalDistance(optimized)

	assert.Less(t, optimizedDistance, crossedDistance)
	// The local optimum is the convex-hull ordering, up to rotation and
	// reflection, so its length equals the plain perimeter.
	assert.InDelta(t, TotalDistance(square), optimizedDistance, 1e-9)
}

func TestTwoOptOptimizeNeverLengthens(t *testing.T) {
	waypoints := europeanCities()

	for start := range waypoints {
		initial, err := NearestNeighborTour(waypoints, start)
		require.NoError(t, err)

		optimized := TwoOptOptimize(initial, 1000)
		assert.LessOrEqual(t, TotalDistance(optimized), TotalDistance(initial), "start=%d", start)
	}
}

func TestTwoOptOptimizePreservesWaypointSet(t *testing.T) {
	initial, err := NearestNeighborTour(europeanCities(), 0)
	require.NoError(t, err)

	optimized := TwoOptOptimize(initial, 1000)

	require.Len(t, optimized, len(initial))
	assert.Equal(t, nameCounts(initial.Names()), nameCounts(optimized.Names()))
}

func TestTwoOptOptimizeZeroIterationsReturnsInput(t *testing.T) {
	crossed := domain.Tour{
		{Name: "A", Lat: 0, Lon: 0},
		{Name: "C", Lat: 1, Lon: 1},
		{Name: "B", Lat: 0, Lon: 1},
		{Name: "D", Lat: 1, Lon: 0},
	}

	out := TwoOptOptimize(crossed, 0)
	assert.Equal(t, crossed, out)
}

func TestTwoOptOptimizeSingleWaypoint(t *testing.T) {
	tour := domain.Tour{{Name: "Paris", Lat: 48.8566, Lon: 2.3522}}

	out := TwoOptOptimize(tour, 1000)
	assert.Equal(t, tour, out)
	assert.Zero(t, TotalDistance(out))
}

func TestTwoOptOptimizeIdempotentAtConvergence(t *testing.T) {
	initial, err := NearestNeighborTour(europeanCities(), 0)
	require.NoError(t, err)

	once := TwoOptOptimize(initial, 1000)
	twice := TwoOptOptimize(once, 1000)

	// A converged tour is a 2-opt local optimum: a second run finds nothing.
	assert.Equal(t, once, twice)
	assert.InDelta(t, TotalDistance(once), TotalDistance(twice), 1e-9)
}

func TestTwoOptOptimizeDoesNotModifyInput(t *testing.T) {
	crossed := domain.Tour{
		{Name: "A", Lat: 0, Lon: 0},
		{Name: "C", Lat: 1, Lon: 1},
		{Name: "B", Lat: 0, Lon: 1},
		{Name: "D", Lat: 1, Lon: 0},
	}
	snapshot := crossed.Clone()

	_ = TwoOptOptimize(crossed, 1000)
	assert.Equal(t, snapshot, crossed)
}
