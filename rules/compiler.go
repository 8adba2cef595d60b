package rules

import (
	"fmt"

	"github.com/nstehr/indigo/strategy"
)

// Rule categories.
const (
	CategoryDefense = "defense"
	CategoryFunnel  = "funnel"
	CategoryOffense = "offense"
)

// CompileStrategy generates the per-turn rule set from the strategy settings.
// Conditions are built via fmt.Sprintf with interpolated values, so the
// compiler never generates invalid expr. Priorities encode the turn order:
// base rows, breach reinforcement, stall or commit, lane walls, extra rows,
// then the swarm.
func CompileStrategy(s strategy.Settings) []*Rule {
	s.Validate()

	return []*Rule{
		{
			Name:         "base-defense",
			Priority:     100,
			Category:     CategoryDefense,
			ConditionSrc: `true`,
			Action:       ActionBaseDefense,
		},
		{
			Name:         "reactive-defense",
			Priority:     90,
			Category:     CategoryDefense,
			ConditionSrc: `BreachCount() > 0`,
			Action:       ActionReactiveDefense,
		},
		{
			Name:         "stall",
			Priority:     80,
			Category:     CategoryFunnel,
			Exclusive:    true,
			ConditionSrc: fmt.Sprintf(`!Committed() && Turn() < %d`, s.DecisionTurn),
			Action:       ActionStall,
		},
		{
			Name:         "commit-funnel",
			Priority:     70,
			Category:     CategoryFunnel,
			ConditionSrc: fmt.Sprintf(`!Committed() && Turn() >= %d`, s.DecisionTurn),
			Action:       ActionCommitFunnel,
		},
		{
			Name:         "hold-funnel",
			Priority:     60,
			Category:     CategoryFunnel,
			ConditionSrc: `Committed()`,
			Action:       ActionHoldFunnel,
		},
		{
			Name:         "reinforce",
			Priority:     50,
			Category:     CategoryDefense,
			ConditionSrc: `Committed() && Turn() > CommitTurn()`,
			Action:       ActionReinforce,
		},
		{
			Name:         "swarm",
			Priority:     40,
			Category:     CategoryOffense,
			ConditionSrc: fmt.Sprintf(`Committed() && Turn() > CommitTurn() && Bits() >= %g`, s.SpawnThreshold),
			Action:       ActionSwarm,
		},
	}
}

// DefaultRules compiles the rule set for the default settings.
func DefaultRules() []*Rule {
	return CompileStrategy(strategy.DefaultSettings())
}
