package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/geo"
	"trip-route-service/internal/platform/obs"
	"trip-route-service/internal/ports"
)

type PlanTripRequest struct {
	StartIndex    int
	MaxIterations int
}

// PlanTrip computes an optimized itinerary over all stored waypoints.
//
// It loads the waypoint set from the repository, builds an initial tour with
// the nearest-neighbor heuristic, refines it with 2-opt local search, and
// assembles a TripPlan carrying per-leg and aggregate distances. Results are
// served from the plan cache when one is configured; computation is pure and
// deterministic, so cached plans never go stale for an unchanged waypoint set.
func PlanTrip(
	ctx context.Context,
	req PlanTripRequest,
	repo ports.WaypointRepository,
	cache ports.PlanCache,
) (plan *domain.TripPlan, err error) {
	defer obs.Time(ctx, "plan_trip")(&err)

	waypoints, err := repo.ListWaypoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan trip: list waypoints: %w", err)
	}

	key := planKey(waypoints, req)
	if cache != nil {
		cached, cerr := cache.GetPlan(ctx, key)
		if cerr != nil {
			// Cache trouble degrades to recomputation, never to failure.
			log.Printf("plan cache get failed key=%s err=%v", key, cerr)
		} else if cached != nil {
			return cached, nil
		}
	}

	initial, err := NearestNeighborTour(waypoints, req.StartIndex)
	if err != nil {
		return nil, fmt.Errorf("plan trip: build initial tour: %w", err)
	}
	initialDistance := TotalDistance(initial)

	optimized := TwoOptOptimize(initial, req.MaxIterations)
	optimizedDistance := TotalDistance(optimized)

	stops := make([]domain.TripStop, 0, len(optimized))
	for i, w := range optimized {
		legKm := 0.0
		if i > 0 {
			legKm = geo.Haversine(optimized[i-1], w)
		}
		stops = append(stops, domain.TripStop{Name: w.Name, Lat: w.Lat, Lon: w.Lon, LegKm: legKm})
	}

	plan = &domain.TripPlan{
		StartIndex:          req.StartIndex,
		MaxIterations:       req.MaxIterations,
		Stops:               stops,
		InitialDistanceKm:   initialDistance,
		OptimizedDistanceKm: optimizedDistance,
	}

	if cache != nil {
		if cerr := cache.PutPlan(ctx, key, plan); cerr != nil {
			log.Printf("plan cache put failed key=%s err=%v", key, cerr)
		}
	}

	return plan, nil
}

// planKey digests the waypoint set and planning parameters into a stable
// cache key. Input order participates: both heuristics are order-sensitive.
func planKey(waypoints []domain.Waypoint, req PlanTripRequest) string {
	h := sha256.New()
	fmt.Fprintf(h, "start=%d;iters=%d;", req.StartIndex, req.MaxIterations)
	for _, w := range waypoints {
		fmt.Fprintf(h, "%s|%g|%g;", w.Name, w.Lat, w.Lon)
	}
	return "trip:plan:" + hex.EncodeToString(h.Sum(nil))
}
