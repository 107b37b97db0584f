package dto

type TripRequest struct {
	StartIndex    int `json:"start_index"`
	MaxIterations int `json:"max_iterations"`
}

type TripStopResponse struct {
	Name  string  `json:"name"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	LegKm float64 `json:"leg_km"`
}

type TripResponse struct {
	StartIndex          int                `json:"start_index"`
	MaxIterations       int                `json:"max_iterations"`
	InitialDistanceKm   float64            `json:"initial_distance_km"`
	OptimizedDistanceKm float64            `json:"optimized_distance_km"`
	ImprovementKm       float64            `json:"improvement_km"`
	Stops               []TripStopResponse `json:"stops"`
}
