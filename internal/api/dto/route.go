package dto

type OriginRequest struct {
	Address string `json:"address"`
}

type CoordinateResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type RouteSummaryResponse struct {
	TotalDistanceMeters float64 `json:"total_distance_meters"`
	TotalTimeSeconds    float64 `json:"total_time_seconds"`
}

type RouteInstructionResponse struct {
	Text           string  `json:"text"`
	DistanceMeters float64 `json:"distance_meters"`
	TimeSeconds    float64 `json:"time_seconds"`
	Maneuver       string  `json:"maneuver"`
	RoadName       string  `json:"road_name,omitempty"`
}

type RouteStateResponse struct {
	OriginAddress     string                     `json:"origin_address"`
	OriginDisplayName string                     `json:"origin_display_name,omitempty"`
	Origin            *CoordinateResponse        `json:"origin,omitempty"`
	Destination       CoordinateResponse         `json:"destination"`
	Summary           *RouteSummaryResponse      `json:"summary,omitempty"`
	Instructions      []RouteInstructionResponse `json:"instructions,omitempty"`
	Geometry          [][]float64                `json:"geometry,omitempty"`
}
