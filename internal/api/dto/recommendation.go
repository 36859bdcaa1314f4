package dto

type RecommendationRequest struct {
	CargoType  string  `json:"cargo_type"`
	WeightTons float64 `json:"weight_tons"`
	Budget     float64 `json:"budget"`
}

type ModeRecommendationResponse struct {
	Mode       string `json:"mode"`
	Confidence int    `json:"confidence"`
	Rationale  string `json:"rationale"`
}

type EstimateResponse struct {
	Mode        string  `json:"mode"`
	Recommended bool    `json:"recommended"`
	Cost        int     `json:"cost"`
	CostDisplay string  `json:"cost_display"`
	Time        string  `json:"time_display"`
	Emissions   float64 `json:"emissions_tons"`
	EmissionsD  string  `json:"emissions_display"`
	Distance    string  `json:"distance_display"`
}

type CapacityVerdictResponse struct {
	Mode              string  `json:"mode"`
	CapacityLimitTons float64 `json:"capacity_limit_tons"`
	Status            string  `json:"status"`
	Advisory          string  `json:"advisory,omitempty"`
}

type RecommendationResponse struct {
	OriginAddress  string                     `json:"origin_address"`
	DistanceKm     float64                    `json:"distance_km"`
	Recommendation ModeRecommendationResponse `json:"recommendation"`
	Estimates      []EstimateResponse         `json:"estimates"`
	Capacity       []CapacityVerdictResponse  `json:"capacity"`
}

type CargoTypesResponse struct {
	CargoTypes []string `json:"cargo_types"`
}
