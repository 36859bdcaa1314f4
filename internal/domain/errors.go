package domain

import "errors"

// Error taxonomy for the route planning core. Every failure surfaced to
// a user wraps exactly one of these sentinels so handlers can translate
// it without inspecting message text.
var (
	// Rejected before any network call (empty address, non-positive
	// weight or budget).
	ErrInvalidInput = errors.New("invalid input")

	// The geocoding provider returned zero candidates.
	ErrNotFound = errors.New("not found")

	// Network or service failure while talking to an external
	// collaborator.
	ErrServiceUnavailable = errors.New("service unavailable")

	// The routing engine reported a routing error (e.g. unreachable
	// waypoints).
	ErrRoutingFailed = errors.New("routing failed")
)
