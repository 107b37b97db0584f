package ports

import (
	"context"

	"trip-route-service/internal/domain"
)

// Port: an optional cache of computed trip plans.
// Keys already encode the waypoint set and planning parameters, so a hit can
// be returned verbatim.
type PlanCache interface {
	// Return the cached plan for key, or (nil, nil) on a miss.
	GetPlan(ctx context.Context, key string) (*domain.TripPlan, error)
	// Store a computed plan under key.
	PutPlan(ctx context.Context, key string, plan *domain.TripPlan) error
}
