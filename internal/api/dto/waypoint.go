package dto

type WaypointResponse struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type ListWaypointsResponse struct {
	Waypoints []WaypointResponse `json:"waypoints"`
}
