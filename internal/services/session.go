package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"freight-route-service/internal/domain"
	"freight-route-service/internal/ports"
	"freight-route-service/internal/state"
)

// EventKind discriminates session event payloads.
type EventKind string

const (
	EventRouteFound  EventKind = "route_found"
	EventRouteError  EventKind = "route_error"
	EventRouteClear  EventKind = "route_clear"
	EventOriginMoved EventKind = "origin_moved"
)

// Event is the typed success/error payload emitted by the session,
// decoupling routing-engine callbacks from any rendering layer.
type Event struct {
	Kind  EventKind
	Route *domain.Route
	Err   string
}

// Session orchestrates the route flow: it geocodes origin input,
// funnels every state mutation through the store, and drives the
// routing engine asynchronously. It is the store's single writer.
type Session struct {
	store    *state.Store
	geocoder ports.Geocoder
	engine   ports.RoutingEngine

	routeTimeout time.Duration

	mu            sync.Mutex
	lastWaypoints []domain.Coordinate

	events chan Event
	wg     sync.WaitGroup
}

func NewSession(store *state.Store, geocoder ports.Geocoder, engine ports.RoutingEngine) *Session {
	return &Session{
		store:        store,
		geocoder:     geocoder,
		engine:       engine,
		routeTimeout: 60 * time.Second,
		events:       make(chan Event, 16),
	}
}

// Events exposes the session's event stream. Events are dropped when
// no consumer keeps up; the store snapshot remains authoritative.
func (s *Session) Events() <-chan Event { return s.events }

// SetOrigin resolves a free-text address, updates the shared state and
// kicks off route computation toward the fixed destination. The
// geocode itself is synchronous; the route request runs in the
// background and lands through the store's staleness check.
//
// An empty (post-trim) address is rejected without a network call and
// clears existing origin and route state. On geocode failure the
// origin is cleared as well; nothing is retried automatically.
func (s *Session) SetOrigin(ctx context.Context, address string) (state.Snapshot, error) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		s.store.SetOrigin("", nil, "")
		s.resetWaypoints()
		return s.store.Snapshot(), fmt.Errorf("%w: address must be non-empty", domain.ErrInvalidInput)
	}

	res, err := s.geocoder.Resolve(ctx, trimmed)
	if err != nil {
		s.store.SetOrigin(trimmed, nil, "")
		s.resetWaypoints()
		return s.store.Snapshot(), fmt.Errorf("set origin %q: %w", trimmed, err)
	}

	s.store.SetOrigin(trimmed, &res.Coordinate, res.DisplayName)
	s.emit(Event{Kind: EventOriginMoved})
	s.requestRoute(res.Coordinate)

	return s.store.Snapshot(), nil
}

// Clear resets the session to its initial empty state.
func (s *Session) Clear() {
	s.store.Clear()
	s.resetWaypoints()
	s.emit(Event{Kind: EventRouteClear})
}

// Snapshot returns the current consistent route state.
func (s *Session) Snapshot() state.Snapshot { return s.store.Snapshot() }

// Wait blocks until in-flight route computations finish. Test hook and
// shutdown aid; normal callers never need it.
func (s *Session) Wait() { s.wg.Wait() }

// requestRoute triggers an asynchronous route computation for the
// given origin. Identical back-to-back waypoint lists are skipped so
// recomputing an unchanged route stays a silent no-op.
func (s *Session) requestRoute(origin domain.Coordinate) {
	snap := s.store.Snapshot()
	waypoints := []domain.Coordinate{origin, snap.Destination}

	s.mu.Lock()
	if sameWaypoints(s.lastWaypoints, waypoints) && snap.Route != nil {
		s.mu.Unlock()
		return
	}
	s.lastWaypoints = waypoints
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.routeTimeout)
		defer cancel()

		route, err := s.engine.ComputeRoute(ctx, waypoints)
		if err != nil {
			log.Printf("route computation failed: origin=%v,%v err=%v", origin.Lat, origin.Lon, err)
			s.emit(Event{Kind: EventRouteError, Err: userMessage(err)})
			return
		}

		// Commit through the store's staleness check: a response for a
		// superseded origin is discarded without an event.
		if !s.store.SetRoute(origin, route) {
			log.Printf("stale route discarded: origin=%v,%v", origin.Lat, origin.Lon)
			return
		}

		s.emit(Event{Kind: EventRouteFound, Route: route})
	}()
}

func (s *Session) resetWaypoints() {
	s.mu.Lock()
	s.lastWaypoints = nil
	s.mu.Unlock()
}

func (s *Session) emit(e Event) {
	select {
	case s.events <- e:
	default:
	}
}

func sameWaypoints(a, b []domain.Coordinate) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// userMessage strips the sentinel prefix so the user sees the
// engine's own message when one exists.
func userMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range []string{domain.ErrRoutingFailed.Error(), domain.ErrServiceUnavailable.Error()} {
		if rest, ok := strings.CutPrefix(msg, sentinel+": "); ok {
			return rest
		}
	}
	if msg == "" {
		return "erro desconhecido ao calcular a rota"
	}
	return msg
}
