package repositories

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, InitSchema(db))
	return db
}

func TestListWaypointsEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSqliteWaypointRepository(db)

	waypoints, err := repo.ListWaypoints(context.Background())
	require.NoError(t, err)
	assert.Empty(t, waypoints)
}

func TestSeedAndListWaypoints(t *testing.T) {
	db := setupTestDB(t)

	seed := `[
		{"waypoint_id": 2, "name": "London", "lat": 51.5074, "lon": -0.1278},
		{"waypoint_id": 1, "name": "Paris", "lat": 48.8566, "lon": 2.3522}
	]`
	seedPath := filepath.Join(t.TempDir(), "waypoints.json")
	require.NoError(t, os.WriteFile(seedPath, []byte(seed), 0o644))

	require.NoError(t, SeedFromJSON(db, seedPath))

	repo := NewSqliteWaypointRepository(db)
	waypoints, err := repo.ListWaypoints(context.Background())
	require.NoError(t, err)

	// Ordered by waypoint_id regardless of seed file order.
	require.Len(t, waypoints, 2)
	assert.Equal(t, "Paris", waypoints[0].Name)
	assert.Equal(t, "London", waypoints[1].Name)
	assert.InDelta(t, 48.8566, waypoints[0].Lat, 1e-9)
}

func TestSeedFromJSONIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	seed := `[{"waypoint_id": 1, "name": "Paris", "lat": 48.8566, "lon": 2.3522}]`
	seedPath := filepath.Join(t.TempDir(), "waypoints.json")
	require.NoError(t, os.WriteFile(seedPath, []byte(seed), 0o644))

	require.NoError(t, SeedFromJSON(db, seedPath))
	require.NoError(t, SeedFromJSON(db, seedPath))

	repo := NewSqliteWaypointRepository(db)
	waypoints, err := repo.ListWaypoints(context.Background())
	require.NoError(t, err)
	assert.Len(t, waypoints, 1)
}

func TestSeedFromJSONRejectsBadRows(t *testing.T) {
	db := setupTestDB(t)
	dir := t.TempDir()

	cases := map[string]string{
		"bad id":     `[{"waypoint_id": 0, "name": "Paris", "lat": 1, "lon": 1}]`,
		"empty name": `[{"waypoint_id": 1, "name": "  ", "lat": 1, "lon": 1}]`,
		"lat range":  `[{"waypoint_id": 1, "name": "Nowhere", "lat": 91, "lon": 1}]`,
		"lon range":  `[{"waypoint_id": 1, "name": "Nowhere", "lat": 1, "lon": -181}]`,
		"not json":   `{"waypoint_id": 1}`,
	}

	for name, seed := range cases {
		seedPath := filepath.Join(dir, name+".json")
		require.NoError(t, os.WriteFile(seedPath, []byte(seed), 0o644))
		assert.Error(t, SeedFromJSON(db, seedPath), name)
	}
}
