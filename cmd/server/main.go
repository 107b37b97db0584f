package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"trip-route-service/internal/adapters/cache"
	"trip-route-service/internal/adapters/render"
	"trip-route-service/internal/adapters/repositories"
	"trip-route-service/internal/api"
	"trip-route-service/internal/config"
	"trip-route-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis, SVG) behind ports and starts
// the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/waypoints.json")
	port := config.Get("PORT", "8080")
	redisAddr := config.Get("REDIS_ADDR", "")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed the demo waypoint catalog on startup for
	// local runs.
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSqliteWaypointRepository(db)

	// The plan cache is optional: without Redis every request recomputes,
	// which is still fast for modest waypoint counts.
	var planCache ports.PlanCache
	if redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		planCache = cache.NewRedisPlanCache(client, 24*time.Hour)
		log.Printf("Plan cache enabled addr=%s", redisAddr)
	}

	router := api.NewRouter(repo, planCache, render.NewSVGRenderer())

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
