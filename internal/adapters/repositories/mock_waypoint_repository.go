package repositories

import (
	"context"

	"trip-route-service/internal/domain"
)

// In-memory WaypointRepository for tests.
type MockWaypointRepository struct {
	Waypoints []domain.Waypoint
	Err       error
}

func NewMockWaypointRepository(waypoints []domain.Waypoint) *MockWaypointRepository {
	return &MockWaypointRepository{Waypoints: waypoints}
}

func (m *MockWaypointRepository) ListWaypoints(ctx context.Context) ([]domain.Waypoint, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	out := make([]domain.Waypoint, len(m.Waypoints))
	copy(out, m.Waypoints)
	return out, nil
}
