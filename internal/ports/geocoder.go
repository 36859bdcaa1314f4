package ports

import (
	"context"
	"freight-route-service/internal/domain"
)

// First geocoding candidate for a free-text address.
type GeocodeResult struct {
	Coordinate  domain.Coordinate
	DisplayName string
}

// Contract for resolving a free-text address to a coordinate.
type Geocoder interface {
	// Resolve an address to its first candidate coordinate.
	// Fails with domain.ErrNotFound when the provider returns zero
	// candidates and domain.ErrServiceUnavailable on transport errors.
	Resolve(ctx context.Context, address string) (GeocodeResult, error)
}
