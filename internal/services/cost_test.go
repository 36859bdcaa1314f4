package services

import (
	"testing"

	"freight-route-service/internal/domain"
)

func TestEstimateCostRoad(t *testing.T) {
	got, err := EstimateCost(domain.ModeRoad, 1000, 1247)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 4.5 * 1000 * (1247/1000) = 5611.5, rounded to 5612.
	if got.Cost != 5612 {
		t.Fatalf("cost = %d, want 5612", got.Cost)
	}
	if got.CostDisplay != "R$ 5.612" {
		t.Fatalf("cost display = %q, want %q", got.CostDisplay, "R$ 5.612")
	}
	if got.TimeDisplay != "1 dias 18 horas" {
		t.Fatalf("time display = %q, want %q", got.TimeDisplay, "1 dias 18 horas")
	}
	if got.EmissionsTons != 2.4 {
		t.Fatalf("emissions = %v, want 2.4", got.EmissionsTons)
	}
	if got.EmissionsDisplay != "2.4 tons CO₂" {
		t.Fatalf("emissions display = %q, want %q", got.EmissionsDisplay, "2.4 tons CO₂")
	}
	if got.DistanceDisplay != "1247 km" {
		t.Fatalf("distance display = %q, want %q", got.DistanceDisplay, "1247 km")
	}
}

func TestEstimateCostAirHasNoDays(t *testing.T) {
	got, err := EstimateCost(domain.ModeAir, 10, 1247)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.TimeDisplay != "6 horas" {
		t.Fatalf("time display = %q, want %q", got.TimeDisplay, "6 horas")
	}
}

func TestEstimateCostDefaultDistance(t *testing.T) {
	explicit, err := EstimateCost(domain.ModeRail, 2000, DefaultDistanceKm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defaulted, err := EstimateCost(domain.ModeRail, 2000, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if explicit != defaulted {
		t.Fatalf("zero distance should fall back to the default: %+v vs %+v", defaulted, explicit)
	}
}

func TestEstimateCostIsPure(t *testing.T) {
	first, err := EstimateCost(domain.ModeWaterway, 1500, 980)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := EstimateCost(domain.ModeWaterway, 1500, 980)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Fatalf("estimate not idempotent: %+v vs %+v", first, second)
	}
}

func TestEstimateCostRejectsUnknownMode(t *testing.T) {
	if _, err := EstimateCost(domain.Mode("teleport"), 10, 100); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestEstimateAllCatalogOrder(t *testing.T) {
	estimates, err := EstimateAll(100, 1247)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(estimates) != len(domain.ModeCatalog) {
		t.Fatalf("expected %d estimates, got %d", len(domain.ModeCatalog), len(estimates))
	}
	for i, m := range domain.ModeCatalog {
		if estimates[i].Mode != m {
			t.Fatalf("estimate %d mode = %q, want %q", i, estimates[i].Mode, m)
		}
	}
}

func TestGroupThousands(t *testing.T) {
	cases := map[int]string{
		0:       "0",
		999:     "999",
		1000:    "1.000",
		4320:    "4.320",
		1234567: "1.234.567",
		-5612:   "-5.612",
	}

	for in, want := range cases {
		if got := groupThousands(in); got != want {
			t.Errorf("groupThousands(%d) = %q, want %q", in, got, want)
		}
	}
}
