package domain

// Represents a single stop in a planned trip.
// LegKm is the great-circle distance travelled from the previous stop;
// it is zero for the first stop of the trip.
type TripStop struct {
	Name  string
	Lat   float64
	Lon   float64
	LegKm float64
}

// Represents the planned itinerary over a waypoint set.
// A TripPlan is the output of the planning pipeline and describes the visiting
// order together with aggregate distance metrics before and after local-search
// refinement. It is immutable planning data and contains no side effects.
type TripPlan struct {
	StartIndex          int
	MaxIterations       int
	Stops               []TripStop
	InitialDistanceKm   float64
	OptimizedDistanceKm float64
}

// Return the optimized tour described by the plan.
func (p *TripPlan) Tour() Tour {
	tour := make(Tour, 0, len(p.Stops))
	for _, s := range p.Stops {
		tour = append(tour, Waypoint{Name: s.Name, Lat: s.Lat, Lon: s.Lon})
	}
	return tour
}

// Distance saved by the optimizer relative to the initial greedy tour.
func (p *TripPlan) ImprovementKm() float64 {
	return p.InitialDistanceKm - p.OptimizedDistanceKm
}
