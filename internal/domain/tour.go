package domain

// Represents an ordered sequence of waypoints interpreted as a closed cycle:
// the edge from the last element back to the first is implicit and always
// part of the tour's length. A Tour produced by the planner is always a
// permutation of the input waypoint set.
type Tour []Waypoint

// Return an independent copy of the tour.
// Optimization steps replace tours wholesale rather than editing them in
// place, so callers can hold onto earlier tours safely.
func (t Tour) Clone() Tour {
	out := make(Tour, len(t))
	copy(out, t)
	return out
}

// Return the waypoint names in tour order.
func (t Tour) Names() []string {
	names := make([]string, 0, len(t))
	for _, w := range t {
		names = append(names, w.Name)
	}
	return names
}
