package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"trip-route-service/internal/domain"
)

func TestHaversineKnownDistances(t *testing.T) {
	paris := domain.Waypoint{Name: "Paris", Lat: 48.8566, Lon: 2.3522}
	london := domain.Waypoint{Name: "London", Lat: 51.5074, Lon: -0.1278}

	// Published great-circle distance Paris-London is about 344 km.
	assert.InDelta(t, 344, Haversine(paris, london), 2.0)

	// One degree of longitude on the equator is one degree of arc.
	a := domain.Waypoint{Lat: 0, Lon: 0}
	b := domain.Waypoint{Lat: 0, Lon: 1}
	assert.InDelta(t, 6371.0*math.Pi/180, Haversine(a, b), 1e-9)
}

func TestHaversineSymmetry(t *testing.T) {
	a := domain.Waypoint{Name: "Zurich", Lat: 47.3769, Lon: 8.5417}
	b := domain.Waypoint{Name: "Milan", Lat: 45.4642, Lon: 9.19}

	assert.Equal(t, Haversine(a, b), Haversine(b, a))
}

func TestHaversineIdenticalCoordinatesIsZero(t *testing.T) {
	a := domain.Waypoint{Name: "Vienna", Lat: 48.2082, Lon: 16.3738}
	b := domain.Waypoint{Name: "Vienna again", Lat: 48.2082, Lon: 16.3738}

	assert.Zero(t, Haversine(a, a))
	assert.Zero(t, Haversine(a, b))
}

func TestHaversineAntipodalStaysInDomain(t *testing.T) {
	a := domain.Waypoint{Lat: 0, Lon: 0}
	b := domain.Waypoint{Lat: 0, Lon: 180}

	d := Haversine(a, b)
	assert.False(t, math.IsNaN(d))
	// Half the circumference of the reference sphere.
	assert.InDelta(t, 6371.0*math.Pi, d, 1e-6)
}
