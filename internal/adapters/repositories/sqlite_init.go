package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createWaypointsQuery := `
	CREATE TABLE IF NOT EXISTS waypoints (
		waypoint_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		lat REAL NOT NULL,
		lon REAL NOT NULL
	);
	`

	if _, err := tx.Exec(createWaypointsQuery); err != nil {
		return fmt.Errorf("init schema: exec create waypoints: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type WaypointSeed struct {
	WaypointID int     `json:"waypoint_id"`
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
}

// Populate the database with waypoint data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	rows, err := loadSeeds(jsonPath)
	if err != nil {
		return fmt.Errorf("seed waypoints: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed waypoints: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO waypoints (
		waypoint_id,
		name,
		lat,
		lon
	)
	VALUES (?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed waypoints: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, w := range rows {
		if _, err := stmt.Exec(w.WaypointID, w.Name, w.Lat, w.Lon); err != nil {
			return fmt.Errorf("seed waypoints: insert waypoint_id=%d: %w", w.WaypointID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed waypoints: commit tx: %w", err)
	}

	return nil
}

// loadSeeds reads, parses, and validates a waypoint seed file.
func loadSeeds(jsonPath string) ([]WaypointSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", jsonPath, err)
	}

	var data []WaypointSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	rows := make([]WaypointSeed, 0, len(data))
	for i, item := range data {
		if item.WaypointID <= 0 {
			return nil, fmt.Errorf("invalid waypoint_id at index %d: %d", i+1, item.WaypointID)
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("item at index %d: name cannot be empty", i+1)
		}

		if item.Lat < -90 || item.Lat > 90 {
			return nil, fmt.Errorf("item %q: lat %g outside [-90, 90]", name, item.Lat)
		}
		if item.Lon < -180 || item.Lon > 180 {
			return nil, fmt.Errorf("item %q: lon %g outside [-180, 180]", name, item.Lon)
		}

		rows = append(rows, WaypointSeed{WaypointID: item.WaypointID, Name: name, Lat: item.Lat, Lon: item.Lon})
	}
	return rows, nil
}
