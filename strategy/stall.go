package strategy

import (
	"math/rand/v2"

	"github.com/nstehr/indigo/board"
	"github.com/nstehr/indigo/model"
)

// StallPlan spends mobile resource on interceptors before a lane is chosen.
type StallPlan struct {
	Kind      model.UnitKind
	Locations []model.Location
	Divisor   int
}

// DefaultStallLocations are the two interceptor spawn cells.
var DefaultStallLocations = []model.Location{{X: 9, Y: 4}, {X: 18, Y: 4}}

// Attempts returns floor(bits/divisor)+1.
func (s StallPlan) Attempts(bits float64) int {
	d := s.Divisor
	if d < 1 {
		d = 1
	}
	if bits < 0 {
		bits = 0
	}
	return int(bits)/d + 1
}

// Run makes Attempts single spawns, each at a cell drawn from rng.
func (s StallPlan) Run(v *board.View, rng *rand.Rand) board.Outcome {
	var out board.Outcome
	if len(s.Locations) == 0 {
		return out
	}
	n := s.Attempts(v.Resource(model.Self, model.Bits))
	for range n {
		loc := s.Locations[rng.IntN(len(s.Locations))]
		out.Merge(v.AttemptPlace(s.Kind, []model.Location{loc}, 1))
	}
	return out
}
