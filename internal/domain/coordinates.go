package domain

import "fmt"

// Immutable geographic coordinate (latitude, longitude).
type Coordinate struct {
	Lat float64
	Lon float64
}

// NewCoordinate enforces the valid latitude/longitude ranges.
func NewCoordinate(lat, lon float64) (Coordinate, error) {
	if lat < -90 || lat > 90 {
		return Coordinate{}, fmt.Errorf("%w: latitude %v out of range [-90, 90]", ErrInvalidInput, lat)
	}
	if lon < -180 || lon > 180 {
		return Coordinate{}, fmt.Errorf("%w: longitude %v out of range [-180, 180]", ErrInvalidInput, lon)
	}
	return Coordinate{Lat: lat, Lon: lon}, nil
}

// CacadorAirport is the fixed route destination (Caçador airport, SC).
// Build-time constant, never user-configurable.
var CacadorAirport = Coordinate{Lat: -26.788055, Lon: -50.940000}
