package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trip-route-service/internal/domain"
)

// SQLite-backed implementation of the WaypointRepository port.
type SqliteWaypointRepository struct{ DB *sql.DB }

func NewSqliteWaypointRepository(db *sql.DB) *SqliteWaypointRepository {
	return &SqliteWaypointRepository{DB: db}
}

// Return all waypoints stored in the database, ordered by id so planning
// input order is stable across calls.
func (s *SqliteWaypointRepository) ListWaypoints(ctx context.Context) ([]domain.Waypoint, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite waypoint repository: DB is nil")
	}

	query := `
	SELECT
		name,
		lat,
		lon
	FROM waypoints
	ORDER BY waypoint_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list waypoints: query waypoints table: %w", err)
	}
	defer rows.Close()

	waypoints := make([]domain.Waypoint, 0, 16)
	for rows.Next() {
		var name string
		var lat, lon float64
		if err := rows.Scan(&name, &lat, &lon); err != nil {
			return nil, fmt.Errorf("list waypoints: scan row: %w", err)
		}
		waypoints = append(waypoints, domain.Waypoint{Name: name, Lat: lat, Lon: lon})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list waypoints: row iteration: %w", err)
	}

	return waypoints, nil
}
