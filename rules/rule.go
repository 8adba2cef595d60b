package rules

import (
	"github.com/expr-lang/expr/vm"
	"github.com/nstehr/indigo/board"
)

// ActionFunc runs one planning step when its rule's condition holds.
// Placement failures are reported in the Outcome, not as errors.
type ActionFunc func(env RuleEnv) (board.Outcome, error)

// Rule is the atomic unit of turn planning: a condition → action pair.
// The engine evaluates rules by priority and uses Category + Exclusive
// to keep alternative steps from both firing in one turn.
type Rule struct {
	Name         string      // human-readable identifier
	Priority     int         // higher = evaluated first
	Category     string      // grouping for exclusive semantics
	Exclusive    bool        // if true, blocks lower-priority rules in same category
	ConditionSrc string      // expr source
	program      *vm.Program // compiled bytecode
	Action       ActionFunc
}
