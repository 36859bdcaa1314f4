package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"freight-route-service/internal/api/dto"
	"freight-route-service/internal/domain"
	"freight-route-service/internal/services"
	"freight-route-service/internal/state"
)

// RouteHandler exposes the shared route state and its mutating
// operations over HTTP.
type RouteHandler struct {
	Session *services.Session
}

// SetOrigin geocodes a free-text origin address, updates the route
// state and triggers route computation toward the fixed destination.
func (h *RouteHandler) SetOrigin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.OriginRequest

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

	snap, err := h.Session.SetOrigin(r.Context(), req.Address)
	if err != nil {
		log.Printf("set origin failed: %v", err)
		writeError(w, r, statusForError(err), err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, routeStateResponse(snap))
}

// State serves the current consistent state snapshot (GET) and the
// explicit clear operation (DELETE).
func (h *RouteHandler) State(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, r, http.StatusOK, routeStateResponse(h.Session.Snapshot()))
	case http.MethodDelete:
		h.Session.Clear()
		writeJSON(w, r, http.StatusOK, routeStateResponse(h.Session.Snapshot()))
	default:
		w.Header().Set("Allow", "GET, DELETE")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func routeStateResponse(snap state.Snapshot) dto.RouteStateResponse {
	res := dto.RouteStateResponse{
		OriginAddress:     snap.OriginAddress,
		OriginDisplayName: snap.OriginDisplay,
		Destination:       dto.CoordinateResponse{Lat: snap.Destination.Lat, Lon: snap.Destination.Lon},
	}

	if snap.Origin != nil {
		res.Origin = &dto.CoordinateResponse{Lat: snap.Origin.Lat, Lon: snap.Origin.Lon}
	}

	if snap.Route != nil {
		res.Summary = &dto.RouteSummaryResponse{
			TotalDistanceMeters: snap.Route.Summary.TotalDistanceMeters,
			TotalTimeSeconds:    snap.Route.Summary.TotalTimeSeconds,
		}
		res.Instructions = make([]dto.RouteInstructionResponse, 0, len(snap.Route.Instructions))
		for _, in := range snap.Route.Instructions {
			res.Instructions = append(res.Instructions, dto.RouteInstructionResponse{
				Text:           in.Text,
				DistanceMeters: in.DistanceMeters,
				TimeSeconds:    in.TimeSeconds,
				Maneuver:       string(in.Maneuver),
				RoadName:       in.RoadName,
			})
		}
		res.Geometry = make([][]float64, 0, len(snap.Route.Geometry))
		for _, p := range snap.Route.Geometry {
			res.Geometry = append(res.Geometry, []float64{p.Lon(), p.Lat()})
		}
	}

	return res
}

// statusForError translates the domain error taxonomy into HTTP codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrRoutingFailed):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
