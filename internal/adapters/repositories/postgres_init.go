package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Postgres variants of schema init and seeding, used by cmd/dbtool for
// deployments where the waypoint catalog lives in Postgres rather than the
// server's local SQLite file. Statements differ only in placeholder syntax
// and upsert form.

// Initialize the Postgres database schema.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	createWaypointsQuery := `
	CREATE TABLE IF NOT EXISTS waypoints (
		waypoint_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL
	);
	`

	if _, err := db.Exec(createWaypointsQuery); err != nil {
		return fmt.Errorf("init postgres schema: exec create waypoints: %w", err)
	}

	return nil
}

// Populate the Postgres database with waypoint data from a JSON file.
func SeedPostgresFromJSON(db *sql.DB, jsonPath string) error {
	rows, err := loadSeeds(jsonPath)
	if err != nil {
		return fmt.Errorf("seed postgres waypoints: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed postgres waypoints: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO waypoints (
		waypoint_id,
		name,
		lat,
		lon
	)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (waypoint_id) DO UPDATE
	SET name = EXCLUDED.name, lat = EXCLUDED.lat, lon = EXCLUDED.lon;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed postgres waypoints: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, w := range rows {
		if _, err := stmt.Exec(w.WaypointID, w.Name, w.Lat, w.Lon); err != nil {
			return fmt.Errorf("seed postgres waypoints: insert waypoint_id=%d: %w", w.WaypointID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed postgres waypoints: commit tx: %w", err)
	}

	return nil
}
