package domain

import "fmt"

// Represents a named geographic point with latitude and longitude in degrees.
// A Waypoint is an immutable value; identity within a tour is positional,
// names are assumed unique by convention but never enforced.
type Waypoint struct {
	Name string
	Lat  float64
	Lon  float64
}

func (w Waypoint) String() string {
	return fmt.Sprintf("%s (%g, %g)", w.Name, w.Lat, w.Lon)
}
