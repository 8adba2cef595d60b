package strategy

import (
	"math/rand/v2"
)

// Session is the state that outlives a single turn.
type Session struct {
	Seed       uint64
	Rand       *rand.Rand
	Tracker    *BreachTracker
	Commitment Commitment
	Scores     []float64 // lane risk from the decision turn
}

// NewSession seeds the match PRNG and an empty breach log.
func NewSession(seed uint64, reactiveOffset int) *Session {
	return &Session{
		Seed:    seed,
		Rand:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Tracker: NewBreachTracker(reactiveOffset),
	}
}
