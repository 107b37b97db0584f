package ports

import (
	"context"

	"trip-route-service/internal/domain"
)

// Port: a boundary for retrieving Waypoint values from a data source.
type WaypointRepository interface {
	// Retrieve all waypoints available for trip planning, in stable
	// storage order. Planning output is deterministic for a fixed order.
	ListWaypoints(ctx context.Context) ([]domain.Waypoint, error)
}
