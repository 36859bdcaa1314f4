package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"freight-route-service/internal/api/dto"
	"freight-route-service/internal/domain"
	"freight-route-service/internal/services"
)

// RecommendationHandler runs the modal recommendation, cost estimation
// and capacity analysis for a cargo snapshot against the current route
// state.
type RecommendationHandler struct {
	Session *services.Session
}

func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RecommendationRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	cargo := domain.CargoDetails{
		CargoType:  req.CargoType,
		WeightTons: req.WeightTons,
		Budget:     req.Budget,
	}
	if err := cargo.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	snap := h.Session.Snapshot()

	// Use the real route distance once a route has been computed,
	// otherwise the fixed placeholder distance.
	distanceKm := float64(services.DefaultDistanceKm)
	if snap.Route != nil {
		distanceKm = snap.Route.Summary.TotalDistanceMeters / 1000
	}

	rec := services.Recommend(snap.OriginAddress, cargo)

	estimates, err := services.EstimateAll(cargo.WeightTons, distanceKm)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	verdicts := services.AnalyzeCapacity(cargo.WeightTons, domain.DefaultCapacities)

	res := dto.RecommendationResponse{
		OriginAddress: snap.OriginAddress,
		DistanceKm:    distanceKm,
		Recommendation: dto.ModeRecommendationResponse{
			Mode:       string(rec.Mode),
			Confidence: rec.Confidence,
			Rationale:  rec.Rationale,
		},
		Estimates: make([]dto.EstimateResponse, 0, len(estimates)),
		Capacity:  make([]dto.CapacityVerdictResponse, 0, len(verdicts)),
	}

	for _, e := range estimates {
		res.Estimates = append(res.Estimates, dto.EstimateResponse{
			Mode:        string(e.Mode),
			Recommended: e.Mode == rec.Mode,
			Cost:        e.Cost,
			CostDisplay: e.CostDisplay,
			Time:        e.TimeDisplay,
			Emissions:   e.EmissionsTons,
			EmissionsD:  e.EmissionsDisplay,
			Distance:    e.DistanceDisplay,
		})
	}

	for _, v := range verdicts {
		res.Capacity = append(res.Capacity, dto.CapacityVerdictResponse{
			Mode:              string(v.Mode),
			CapacityLimitTons: v.CapacityLimitTons,
			Status:            string(v.Status),
			Advisory:          v.Advisory,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// CargoTypes serves the fixed cargo type suggestion catalog.
func CargoTypes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.CargoTypesResponse{CargoTypes: domain.CargoTypeCatalog})
}
