package domain

// Mode is the closed set of freight transport categories.
type Mode string

const (
	ModeRoad     Mode = "road"
	ModeRail     Mode = "rail"
	ModeAir      Mode = "air"
	ModeWaterway Mode = "waterway"
)

// ModeCatalog fixes the presentation and analysis order of modes.
var ModeCatalog = []Mode{ModeRoad, ModeRail, ModeAir, ModeWaterway}

// Valid reports whether m is one of the catalog modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeRoad, ModeRail, ModeAir, ModeWaterway:
		return true
	}
	return false
}

// TransitTime is a fixed (days, hours) estimate for a mode.
type TransitTime struct {
	Days  int
	Hours int
}

// Per-mode constant tables. These are configuration data, not computed
// values: cost is BRL per ton per 1000 km, emissions are tons CO2 per
// 1000 tons of cargo, capacity is the maximum cargo weight in tons a
// single mode can carry end-to-end.
var (
	CostPerTonKm = map[Mode]float64{
		ModeRoad:     4.5,
		ModeRail:     3.2,
		ModeAir:      12.0,
		ModeWaterway: 2.8,
	}

	TransitTimes = map[Mode]TransitTime{
		ModeRoad:     {Days: 1, Hours: 18},
		ModeRail:     {Days: 3, Hours: 4},
		ModeAir:      {Days: 0, Hours: 6},
		ModeWaterway: {Days: 5, Hours: 12},
	}

	EmissionFactors = map[Mode]float64{
		ModeRoad:     2.4,
		ModeRail:     0.8,
		ModeAir:      4.2,
		ModeWaterway: 0.6,
	}

	DefaultCapacities = map[Mode]float64{
		ModeRoad:     30.0,
		ModeRail:     5000.0,
		ModeAir:      110.0,
		ModeWaterway: 20000.0,
	}
)
