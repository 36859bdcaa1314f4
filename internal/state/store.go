package state

import (
	"sync"

	"freight-route-service/internal/domain"
)

// Store is the single source of truth for the session's route state.
// All mutations go through SetOrigin, SetRoute and Clear; consumers
// (map layer, recommendation, display) read consistent snapshots and
// never write.
//
// SetOrigin atomically clears any computed route in the same update,
// so there is no window where origin and route disagree. SetRoute is
// keyed to the origin the route was computed for and is discarded when
// that origin is no longer current (late responses from a superseded
// request never land).
type Store struct {
	mu sync.Mutex

	destination domain.Coordinate

	originAddress string
	originDisplay string
	origin        *domain.Coordinate
	route         *domain.Route
}

// Snapshot is an immutable view of the store taken under one lock
// acquisition. Origin and route fields always come from the same
// update cycle.
type Snapshot struct {
	OriginAddress string
	OriginDisplay string
	Origin        *domain.Coordinate
	Destination   domain.Coordinate
	Route         *domain.Route
}

func NewStore(destination domain.Coordinate) *Store {
	return &Store{destination: destination}
}

// SetOrigin records a new origin and invalidates any computed route.
// A nil coordinate represents a failed or cleared geocode.
func (s *Store) SetOrigin(address string, coord *domain.Coordinate, displayName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Resubmitting the identical coordinate is not an origin change;
	// the computed route stays valid.
	if coord != nil && s.origin != nil && *s.origin == *coord {
		s.originAddress = address
		s.originDisplay = displayName
		return
	}

	s.originAddress = address
	s.originDisplay = displayName
	if coord == nil {
		s.origin = nil
	} else {
		c := *coord
		s.origin = &c
	}
	// Stale-route invalidation: a new origin always voids the route.
	s.route = nil
}

// SetRoute commits a computed route if forOrigin still matches the
// current origin. Returns false when the result is stale and was
// discarded.
func (s *Store) SetRoute(forOrigin domain.Coordinate, route *domain.Route) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.origin == nil || *s.origin != forOrigin {
		return false
	}
	if route == nil || len(route.Instructions) == 0 {
		return false
	}

	r := *route
	s.route = &r
	return true
}

// Clear resets to the initial empty state. The destination is a fixed
// constant and is never cleared.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.originAddress = ""
	s.originDisplay = ""
	s.origin = nil
	s.route = nil
}

// Snapshot returns a consistent copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		OriginAddress: s.originAddress,
		OriginDisplay: s.originDisplay,
		Destination:   s.destination,
	}
	if s.origin != nil {
		c := *s.origin
		snap.Origin = &c
	}
	if s.route != nil {
		r := domain.Route{
			Summary:      s.route.Summary,
			Instructions: append([]domain.RouteInstruction(nil), s.route.Instructions...),
			Geometry:     s.route.Geometry.Clone(),
		}
		snap.Route = &r
	}
	return snap
}
