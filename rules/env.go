package rules

import (
	"github.com/nstehr/indigo/board"
	"github.com/nstehr/indigo/model"
	"github.com/nstehr/indigo/strategy"
)

// RuleEnv wraps the turn's board and the match session and exposes helper
// methods callable from expr expressions. Fields are pointers, so a
// condition sees the effects of every step that ran before it.
type RuleEnv struct {
	View     *board.View
	Session  *strategy.Session
	Strategy *strategy.Strategy
}

func (e RuleEnv) Turn() int { return e.View.Turn() }

// Bits is our remaining mobile pool after this turn's earlier placements.
func (e RuleEnv) Bits() float64 { return e.View.Resource(model.Self, model.Bits) }

func (e RuleEnv) Cores() float64 { return e.View.Resource(model.Self, model.Cores) }

func (e RuleEnv) Committed() bool { return e.Session.Commitment.Committed() }

// CommitTurn is the turn the lane was chosen on, or -1 while undecided.
func (e RuleEnv) CommitTurn() int {
	if !e.Session.Commitment.Committed() {
		return -1
	}
	return e.Session.Commitment.Turn()
}

func (e RuleEnv) BreachCount() int { return e.Session.Tracker.Len() }
