package ports

import (
	"context"
	"freight-route-service/internal/domain"
)

// Port: a boundary for persistent geocode caching. Implementations
// must treat a miss as (zero value, false, nil error). Address keys
// are expected to be consistent (e.g., normalized) by the caller.
type GeocodeCache interface {
	Get(ctx context.Context, address string) (domain.Coordinate, bool, error)
	Put(ctx context.Context, address string, coord domain.Coordinate) error
}
