package services

import (
	"trip-route-service/internal/domain"
	"trip-route-service/internal/geo"
)

// Refine a tour with first-improvement 2-opt local search.
//
// Each pass scans candidate segment reversals [i..j] over the current best
// tour (position 0 is left fixed; the cycle is rotation-invariant). A 2-opt
// move removes edges (i-1,i) and (j,j+1) and reconnects them as (i-1,j) and
// (i,j+1). The first candidate strictly shorter than the current best is
// accepted immediately and the pass restarts against the new tour. The search
// stops once a full pass finds no improving move (a 2-opt local optimum) or
// after maxIterations passes, whichever comes first.
//
// The returned tour is always a permutation of the input and never longer
// than it. The input tour is not modified.
func TwoOptOptimize(tour domain.Tour, maxIterations int) domain.Tour {
	best := tour.Clone()
	bestDistance := TotalDistance(best)
	n := len(best)

	improved := true
	for iterations := 0; improved && iterations < maxIterations; iterations++ {
		improved = false

	scan:
		for i := 1; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				a := best[i-1]
				b := best[i]
				c := best[j]
				d := best[(j+1)%n]

				// Only two edges change, so the candidate is judged by the
				// edge delta instead of an O(N) length recomputation.
				delta := geo.Haversine(a, c) + geo.Haversine(b, d) -
					geo.Haversine(a, b) - geo.Haversine(c, d)
				if delta >= 0 {
					continue
				}

				candidate := best.Clone()
				reverseSegment(candidate, i, j)
				candidateDistance := TotalDistance(candidate)

				// The delta can be marginally negative from rounding alone;
				// accept only moves that shorten the recomputed total.
				if candidateDistance >= bestDistance {
					continue
				}

				best = candidate
				bestDistance = candidateDistance
				improved = true
				break scan
			}
		}
	}

	return best
}

// Reverse tour[i..j] in place (both bounds inclusive).
func reverseSegment(tour domain.Tour, i, j int) {
	for i < j {
		tour[i], tour[j] = tour[j], tour[i]
		i++
		j--
	}
}
