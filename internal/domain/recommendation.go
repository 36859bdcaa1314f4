package domain

// ModeRecommendation is the derived output of the modal heuristic.
// It is recomputed on every relevant input change and never persisted.
type ModeRecommendation struct {
	Mode       Mode
	Confidence int
	Rationale  string
}

// CapacityStatus classifies cargo weight against one mode's capacity.
type CapacityStatus string

const (
	CapacityExceeded  CapacityStatus = "exceeded"
	CapacityNearLimit CapacityStatus = "nearLimit"
	CapacityViable    CapacityStatus = "viable"
)

// CapacityVerdict is the per-mode result of the capacity analysis.
// Advisory carries the single cross-mode hint (rail as an alternative
// to an overloaded road leg) when it applies.
type CapacityVerdict struct {
	Mode              Mode
	CapacityLimitTons float64
	Status            CapacityStatus
	Advisory          string
}
