package services

import (
	"fmt"
	"math"
	"strconv"

	"freight-route-service/internal/domain"
)

// DefaultDistanceKm is the placeholder distance used when no route has
// been computed yet.
const DefaultDistanceKm = 1247

// Estimate holds derived cost/time/emissions figures for one mode,
// both as raw numbers and as display strings.
type Estimate struct {
	Mode             domain.Mode
	Cost             int
	CostDisplay      string
	TimeDisplay      string
	EmissionsTons    float64
	EmissionsDisplay string
	DistanceKm       float64
	DistanceDisplay  string
}

// EstimateCost derives cost, transit time and emissions for a mode
// from the fixed per-mode tables. Pure: identical inputs always yield
// identical output. distanceKm <= 0 falls back to DefaultDistanceKm.
func EstimateCost(mode domain.Mode, weightTons, distanceKm float64) (Estimate, error) {
	if !mode.Valid() {
		return Estimate{}, fmt.Errorf("%w: unknown mode %q", domain.ErrInvalidInput, mode)
	}
	if distanceKm <= 0 {
		distanceKm = DefaultDistanceKm
	}

	cost := int(math.Round(domain.CostPerTonKm[mode] * weightTons * (distanceKm / 1000)))
	co2 := math.Round(domain.EmissionFactors[mode]*(weightTons/1000)*10) / 10
	t := domain.TransitTimes[mode]

	timeDisplay := fmt.Sprintf("%d horas", t.Hours)
	if t.Days > 0 {
		timeDisplay = fmt.Sprintf("%d dias %d horas", t.Days, t.Hours)
	}

	return Estimate{
		Mode:             mode,
		Cost:             cost,
		CostDisplay:      "R$ " + groupThousands(cost),
		TimeDisplay:      timeDisplay,
		EmissionsTons:    co2,
		EmissionsDisplay: formatTons(co2) + " tons CO₂",
		DistanceKm:       distanceKm,
		DistanceDisplay:  formatTons(distanceKm) + " km",
	}, nil
}

// EstimateAll computes estimates for every mode in catalog order, for
// the alternative-options comparison.
func EstimateAll(weightTons, distanceKm float64) ([]Estimate, error) {
	out := make([]Estimate, 0, len(domain.ModeCatalog))
	for _, m := range domain.ModeCatalog {
		e, err := EstimateCost(m, weightTons, distanceKm)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// groupThousands renders an integer with pt-BR thousand separators
// (dots), e.g. 4320 -> "4.320".
func groupThousands(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// formatTons trims trailing zeros so 0.8 renders as "0.8" and 2.0 as
// "2".
func formatTons(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
