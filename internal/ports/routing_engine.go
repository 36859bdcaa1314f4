package ports

import (
	"context"
	"freight-route-service/internal/domain"
)

// Contract for the external routing/directions engine.
type RoutingEngine interface {
	// ComputeRoute requests directions through the given waypoints, in
	// order. Requires at least 2 waypoints. Only the first returned
	// route alternative is used. Engine-reported errors wrap
	// domain.ErrRoutingFailed; transport failures wrap
	// domain.ErrServiceUnavailable.
	ComputeRoute(ctx context.Context, waypoints []domain.Coordinate) (*domain.Route, error)
}
