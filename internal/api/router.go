package api

import (
	"net/http"

	"freight-route-service/internal/api/handlers"
	"freight-route-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay
// unaware of concrete adapters).
func NewRouter(session *services.Session) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{Session: session}
	recHandler := &handlers.RecommendationHandler{Session: session}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/route/origin", routeHandler.SetOrigin)
	mux.HandleFunc("/route", routeHandler.State)
	mux.HandleFunc("/recommendation", recHandler.Recommend)
	mux.HandleFunc("/cargo-types", handlers.CargoTypes)

	return loggingMiddleware(mux)
}
