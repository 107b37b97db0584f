package ports

import "trip-route-service/internal/domain"

// Port: renders a finished tour onto a 2-D map image.
// Rendering is a downstream consumer of a planned tour and has no influence
// on planning itself.
type TourRenderer interface {
	// Render the tour (including its implicit closing leg) and return the
	// image bytes together with their media type.
	RenderTour(tour domain.Tour, totalKm float64) ([]byte, string, error)
}
