package api

import (
	"net/http"

	"trip-route-service/internal/api/handlers"
	"trip-route-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// The plan cache may be nil; planning then always recomputes.
func NewRouter(
	repo ports.WaypointRepository,
	planCache ports.PlanCache,
	renderer ports.TourRenderer,
) http.Handler {
	mux := http.NewServeMux()

	waypointHandler := &handlers.WaypointHandler{Repo: repo}
	tripHandler := &handlers.TripHandler{
		Repo:     repo,
		Cache:    planCache,
		Renderer: renderer,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/waypoints", waypointHandler.List)
	mux.HandleFunc("/trips", tripHandler.Plan)
	mux.HandleFunc("/trips/map", tripHandler.Map)

	return loggingMiddleware(mux)
}
