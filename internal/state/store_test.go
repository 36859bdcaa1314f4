package state

import (
	"testing"

	"freight-route-service/internal/domain"
)

func testRoute(distance float64) *domain.Route {
	return &domain.Route{
		Summary: domain.RouteSummary{TotalDistanceMeters: distance, TotalTimeSeconds: distance / 20},
		Instructions: []domain.RouteInstruction{
			{Text: "Siga em frente", DistanceMeters: distance, TimeSeconds: distance / 20, Maneuver: domain.ManeuverStraight},
		},
	}
}

func TestSetOriginInvalidatesRoute(t *testing.T) {
	store := NewStore(domain.CacadorAirport)

	origin := domain.Coordinate{Lat: -22.9068, Lon: -43.1729}
	store.SetOrigin("Rio de Janeiro", &origin, "Rio de Janeiro, RJ, Brasil")

	if !store.SetRoute(origin, testRoute(1000)) {
		t.Fatal("route for current origin should commit")
	}
	if store.Snapshot().Route == nil {
		t.Fatal("expected route after commit")
	}

	// Moving the origin clears the route atomically.
	moved := domain.Coordinate{Lat: -23.5505, Lon: -46.6333}
	store.SetOrigin("São Paulo", &moved, "São Paulo, SP, Brasil")

	snap := store.Snapshot()
	if snap.Route != nil {
		t.Fatal("route must be cleared when the origin changes")
	}
	if snap.Origin == nil || *snap.Origin != moved {
		t.Fatalf("origin = %+v, want %+v", snap.Origin, moved)
	}
}

func TestSetOriginSameCoordinateKeepsRoute(t *testing.T) {
	store := NewStore(domain.CacadorAirport)

	origin := domain.Coordinate{Lat: -22.9068, Lon: -43.1729}
	store.SetOrigin("Rio de Janeiro", &origin, "Rio de Janeiro, RJ, Brasil")
	store.SetRoute(origin, testRoute(1000))

	// Resubmitting the identical coordinate is not an origin change.
	store.SetOrigin("rio de janeiro", &origin, "Rio de Janeiro, RJ, Brasil")

	if store.Snapshot().Route == nil {
		t.Fatal("route must survive a same-coordinate resubmission")
	}
}

func TestSetRouteDiscardsStaleResult(t *testing.T) {
	store := NewStore(domain.CacadorAirport)

	a := domain.Coordinate{Lat: -22.9068, Lon: -43.1729}
	b := domain.Coordinate{Lat: -23.5505, Lon: -46.6333}

	store.SetOrigin("A", &a, "")
	store.SetOrigin("B", &b, "")

	// A late response keyed to the superseded origin must not land.
	if store.SetRoute(a, testRoute(1000)) {
		t.Fatal("stale route committed")
	}
	if store.Snapshot().Route != nil {
		t.Fatal("route must remain absent after a stale commit attempt")
	}

	if !store.SetRoute(b, testRoute(2000)) {
		t.Fatal("route for current origin should commit")
	}

	snap := store.Snapshot()
	if snap.Route == nil || snap.Route.Summary.TotalDistanceMeters != 2000 {
		t.Fatalf("expected B's route, got %+v", snap.Route)
	}
}

func TestSetRouteRequiresOriginAndInstructions(t *testing.T) {
	store := NewStore(domain.CacadorAirport)

	a := domain.Coordinate{Lat: -22.9068, Lon: -43.1729}
	if store.SetRoute(a, testRoute(1000)) {
		t.Fatal("route without an origin committed")
	}

	store.SetOrigin("A", &a, "")
	if store.SetRoute(a, &domain.Route{Summary: domain.RouteSummary{TotalDistanceMeters: 1}}) {
		t.Fatal("route without instructions committed")
	}
}

func TestClearKeepsDestination(t *testing.T) {
	store := NewStore(domain.CacadorAirport)

	a := domain.Coordinate{Lat: -22.9068, Lon: -43.1729}
	store.SetOrigin("A", &a, "somewhere")
	store.SetRoute(a, testRoute(1000))

	store.Clear()

	snap := store.Snapshot()
	if snap.OriginAddress != "" || snap.Origin != nil || snap.Route != nil {
		t.Fatalf("clear left state behind: %+v", snap)
	}
	if snap.Destination != domain.CacadorAirport {
		t.Fatalf("destination = %+v, want the fixed constant", snap.Destination)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	store := NewStore(domain.CacadorAirport)

	a := domain.Coordinate{Lat: -22.9068, Lon: -43.1729}
	store.SetOrigin("A", &a, "")
	store.SetRoute(a, testRoute(1000))

	snap := store.Snapshot()
	snap.Route.Instructions[0].Text = "mutated"
	snap.Route.Summary.TotalDistanceMeters = 9

	fresh := store.Snapshot()
	if fresh.Route.Instructions[0].Text == "mutated" {
		t.Fatal("snapshot shares instruction backing array with the store")
	}
	if fresh.Route.Summary.TotalDistanceMeters != 1000 {
		t.Fatal("snapshot shares summary with the store")
	}
}
