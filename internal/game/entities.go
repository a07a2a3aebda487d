// Package game implements the twin-lane dodger simulation: two vehicles, one
// per road side, each confined to one of two lanes, dodging hazards and
// collecting pickups that fall from the top of the arena.
package game

// Side identifies the left or right half of the arena. Each side has its own
// vehicle and obstacle stream; obstacles only collide with the vehicle on
// their side.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Lane is one of the two discrete horizontal slots a vehicle can occupy on
// its side.
type Lane int

const (
	LaneNear Lane = iota
	LaneFar
)

// Other returns the opposite lane.
func (l Lane) Other() Lane {
	if l == LaneNear {
		return LaneFar
	}
	return LaneNear
}

// String returns a human-readable name for the lane.
func (l Lane) String() string {
	if l == LaneNear {
		return "near"
	}
	return "far"
}

// Kind classifies an obstacle as something to collect or something to avoid.
type Kind int

const (
	KindCollectible Kind = iota
	KindHazard
)

// String returns a human-readable name for the obstacle kind.
func (k Kind) String() string {
	if k == KindCollectible {
		return "collectible"
	}
	return "hazard"
}

// Vehicle is one of the two player-controlled cars. X and Y are derived from
// the lane table and arena dimensions; Lane is the only independent state.
type Vehicle struct {
	Side Side
	Lane Lane
	X    float64
	Y    float64
}

// Obstacle is a falling object. X is fixed at spawn from the lane table;
// Y increases monotonically until the obstacle is collected, collided with,
// or passes the bottom edge.
type Obstacle struct {
	X    float64
	Y    float64
	Kind Kind
	Side Side
	Lane Lane
}
