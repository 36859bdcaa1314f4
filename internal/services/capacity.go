package services

import "freight-route-service/internal/domain"

// nearLimitFraction is the share of a mode's capacity above which the
// verdict becomes nearLimit.
const nearLimitFraction = 0.85

// AnalyzeCapacity classifies the cargo weight against each known
// mode's capacity, one verdict per mode in catalog order. Modes absent
// from capacities are skipped.
//
// When the road mode is exceeded and rail can still take the load
// (viable or nearLimit), a single advisory is attached to the road
// verdict suggesting rail. No broader cross-mode search happens.
func AnalyzeCapacity(weightTons float64, capacities map[domain.Mode]float64) []domain.CapacityVerdict {
	verdicts := make([]domain.CapacityVerdict, 0, len(capacities))
	byMode := make(map[domain.Mode]int, len(capacities))

	for _, m := range domain.ModeCatalog {
		capTons, ok := capacities[m]
		if !ok {
			continue
		}

		status := domain.CapacityViable
		switch {
		case weightTons > capTons:
			status = domain.CapacityExceeded
		case weightTons > capTons*nearLimitFraction:
			status = domain.CapacityNearLimit
		}

		byMode[m] = len(verdicts)
		verdicts = append(verdicts, domain.CapacityVerdict{
			Mode:              m,
			CapacityLimitTons: capTons,
			Status:            status,
		})
	}

	roadIdx, hasRoad := byMode[domain.ModeRoad]
	railIdx, hasRail := byMode[domain.ModeRail]
	if hasRoad && hasRail &&
		verdicts[roadIdx].Status == domain.CapacityExceeded &&
		verdicts[railIdx].Status != domain.CapacityExceeded {
		verdicts[roadIdx].Advisory = "Carga excede a capacidade rodoviária. Considere o transporte ferroviário como alternativa."
	}

	return verdicts
}
