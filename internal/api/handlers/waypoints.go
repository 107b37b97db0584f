package handlers

import (
	"log"
	"net/http"

	"trip-route-service/internal/api/dto"
	"trip-route-service/internal/ports"
)

// WaypointHandler exposes read-only waypoint retrieval endpoints.
type WaypointHandler struct {
	Repo ports.WaypointRepository
}

func (h *WaypointHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	waypoints, err := h.Repo.ListWaypoints(r.Context())
	if err != nil {
		log.Printf("list waypoints failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListWaypointsResponse{
		Waypoints: make([]dto.WaypointResponse, 0, len(waypoints)),
	}
	for _, wp := range waypoints {
		res.Waypoints = append(res.Waypoints, dto.WaypointResponse{
			Name: wp.Name,
			Lat:  wp.Lat,
			Lon:  wp.Lon,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
