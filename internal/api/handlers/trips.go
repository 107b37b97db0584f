package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"trip-route-service/internal/api/dto"
	"trip-route-service/internal/ports"
	"trip-route-service/internal/services"
)

const defaultMaxIterations = 1000

type TripHandler struct {
	Repo     ports.WaypointRepository
	Cache    ports.PlanCache
	Renderer ports.TourRenderer
}

// Plan computes an optimized itinerary over the stored waypoints.
// It coordinates repository access, tour construction, and 2-opt refinement.
func (h *TripHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.TripRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil && err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if req.StartIndex < 0 {
		writeError(w, r, http.StatusBadRequest, "start_index must not be negative")
		return
	}

	maxIterations := req.MaxIterations
	if maxIterations == 0 {
		maxIterations = defaultMaxIterations
	}
	if maxIterations < 0 || maxIterations > 100000 {
		writeError(w, r, http.StatusBadRequest, "max_iterations must be between 0 and 100000")
		return
	}

	svcReq := services.PlanTripRequest{
		StartIndex:    req.StartIndex,
		MaxIterations: maxIterations,
	}

	plan, err := services.PlanTrip(r.Context(), svcReq, h.Repo, h.Cache)
	if err != nil {
		if errors.Is(err, services.ErrNoWaypoints) || errors.Is(err, services.ErrStartIndexOutOfRange) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("plan trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.TripResponse{
		StartIndex:          plan.StartIndex,
		MaxIterations:       plan.MaxIterations,
		InitialDistanceKm:   plan.InitialDistanceKm,
		OptimizedDistanceKm: plan.OptimizedDistanceKm,
		ImprovementKm:       plan.ImprovementKm(),
		Stops:               make([]dto.TripStopResponse, 0, len(plan.Stops)),
	}
	for _, s := range plan.Stops {
		res.Stops = append(res.Stops, dto.TripStopResponse{
			Name:  s.Name,
			Lat:   s.Lat,
			Lon:   s.Lon,
			LegKm: s.LegKm,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Map renders the optimized default trip (start index 0, default iteration
// budget) as an image.
func (h *TripHandler) Map(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	svcReq := services.PlanTripRequest{
		StartIndex:    0,
		MaxIterations: defaultMaxIterations,
	}

	plan, err := services.PlanTrip(r.Context(), svcReq, h.Repo, h.Cache)
	if err != nil {
		if errors.Is(err, services.ErrNoWaypoints) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("plan trip for map failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	img, contentType, err := h.Renderer.RenderTour(plan.Tour(), plan.OptimizedDistanceKm)
	if err != nil {
		log.Printf("render tour failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(img); err != nil {
		log.Printf("write map failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}
