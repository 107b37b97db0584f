package render

import (
	"errors"
	"fmt"
	"strings"

	"trip-route-service/internal/domain"
)

// SVG renderer for finished tours.
//
// Waypoints are projected with a plain equirectangular mapping (longitude
// right, latitude up) into a fixed viewport, connected in tour order with the
// closing leg back to the start, and labeled with their visit number. Good
// enough for eyeballing a route; this is deliberately not cartography.
type SVGRenderer struct {
	Width  int
	Height int
}

func NewSVGRenderer() *SVGRenderer {
	return &SVGRenderer{Width: 960, Height: 720}
}

const svgPadding = 60.0

// Render the tour as an SVG document.
func (r *SVGRenderer) RenderTour(tour domain.Tour, totalKm float64) ([]byte, string, error) {
	if len(tour) == 0 {
		return nil, "", errors.New("render tour: tour must not be empty")
	}

	minLat, maxLat := tour[0].Lat, tour[0].Lat
	minLon, maxLon := tour[0].Lon, tour[0].Lon
	for _, w := range tour[1:] {
		minLat = min(minLat, w.Lat)
		maxLat = max(maxLat, w.Lat)
		minLon = min(minLon, w.Lon)
		maxLon = max(maxLon, w.Lon)
	}

	// Degenerate spans (single waypoint, collinear meridian) still need a
	// nonzero scale to keep the projection finite.
	lonSpan := maxLon - minLon
	if lonSpan == 0 {
		lonSpan = 1
	}
	latSpan := maxLat - minLat
	if latSpan == 0 {
		latSpan = 1
	}

	w := float64(r.Width)
	h := float64(r.Height)
	project := func(wp domain.Waypoint) (float64, float64) {
		x := svgPadding + (wp.Lon-minLon)/lonSpan*(w-2*svgPadding)
		// SVG y grows downward; latitude grows upward.
		y := h - svgPadding - (wp.Lat-minLat)/latSpan*(h-2*svgPadding)
		return x, y
	}

	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		r.Width, r.Height, r.Width, r.Height,
	)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="white"/>`+"\n", r.Width, r.Height)

	// Route polyline, closed back to the first stop.
	points := make([]string, 0, len(tour)+1)
	for _, wp := range tour {
		x, y := project(wp)
		points = append(points, fmt.Sprintf("%.1f,%.1f", x, y))
	}
	points = append(points, points[0])
	fmt.Fprintf(&b,
		`<polyline points="%s" fill="none" stroke="steelblue" stroke-width="2" stroke-opacity="0.6"/>`+"\n",
		strings.Join(points, " "),
	)

	for i, wp := range tour {
		x, y := project(wp)
		fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="6" fill="crimson"/>`+"\n", x, y)
		fmt.Fprintf(&b,
			`<text x="%.1f" y="%.1f" font-size="13" font-family="sans-serif">%d. %s</text>`+"\n",
			x+9, y-6, i+1, escapeText(wp.Name),
		)
	}

	fmt.Fprintf(&b,
		`<text x="%.1f" y="%.1f" font-size="17" font-family="sans-serif" font-weight="bold">Total Distance: %.2f km</text>`+"\n",
		svgPadding, svgPadding/2, totalKm,
	)
	b.WriteString("</svg>\n")

	return []byte(b.String()), "image/svg+xml", nil
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
