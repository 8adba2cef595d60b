package model

import (
	"fmt"
	"math"
)

// Location is a cell coordinate on the arena grid. Comparable, so it can key maps.
type Location struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Loc is shorthand for Location{X: x, Y: y}.
func Loc(x, y int) Location {
	return Location{X: x, Y: y}
}

func (l Location) String() string {
	return fmt.Sprintf("(%d, %d)", l.X, l.Y)
}

// Offset returns l translated by (dx, dy).
func (l Location) Offset(dx, dy int) Location {
	return Location{X: l.X + dx, Y: l.Y + dy}
}

// Distance returns the euclidean distance between two cells.
func (l Location) Distance(o Location) float64 {
	dx := float64(l.X - o.X)
	dy := float64(l.Y - o.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Side identifies a player. The engine numbers players 1 and 2; we use 0 for
// ourselves and 1 for the opponent so a Side can index per-player arrays.
type Side int

const (
	Self     Side = 0
	Opponent Side = 1
)

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == Self {
		return Opponent
	}
	return Self
}

func (s Side) String() string {
	switch s {
	case Self:
		return "self"
	case Opponent:
		return "opponent"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// Resource is a per-side spending pool.
type Resource int

const (
	Cores Resource = iota // pays for stationary structures
	Bits                  // pays for mobile units
)

func (r Resource) String() string {
	if r == Cores {
		return "cores"
	}
	return "bits"
}
