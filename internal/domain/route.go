package domain

import "github.com/paulmach/orb"

// Aggregate distance and duration of a computed route.
type RouteSummary struct {
	TotalDistanceMeters float64
	TotalTimeSeconds    float64
}

// Maneuver classifies a turn-by-turn instruction.
type Maneuver string

const (
	ManeuverStraight    Maneuver = "straight"
	ManeuverTurnLeft    Maneuver = "turnLeft"
	ManeuverTurnRight   Maneuver = "turnRight"
	ManeuverRoundabout  Maneuver = "roundabout"
	ManeuverDestination Maneuver = "destination"
	ManeuverOther       Maneuver = "other"
)

// A single turn-by-turn step of a route, ordered start to destination.
type RouteInstruction struct {
	Text           string
	DistanceMeters float64
	TimeSeconds    float64
	Maneuver       Maneuver
	RoadName       string
}

// Route is the normalized output of the external routing engine:
// the first returned alternative's summary, its full ordered
// instruction list, and the geometry the map layer renders.
// It is immutable result data and contains no side effects.
type Route struct {
	Summary      RouteSummary
	Instructions []RouteInstruction
	Geometry     orb.LineString
}
