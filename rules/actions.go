package rules

import (
	"log/slog"

	"github.com/nstehr/indigo/board"
)

func ActionBaseDefense(env RuleEnv) (board.Outcome, error) {
	return env.Strategy.Defense.BasePass(env.View), nil
}

func ActionReactiveDefense(env RuleEnv) (board.Outcome, error) {
	slog.Debug("reinforcing breaches", "entries", env.Session.Tracker.Len())
	return env.Strategy.Defense.ReactivePass(env.View, env.Session.Tracker), nil
}

// ActionStall spends bits on interceptors at randomly chosen cells.
func ActionStall(env RuleEnv) (board.Outcome, error) {
	return env.Strategy.Stall.Run(env.View, env.Session.Rand), nil
}

// ActionCommitFunnel scores both lanes and commits to the safer one. The
// lane's walls go up in the same turn through the hold-funnel rule.
func ActionCommitFunnel(env RuleEnv) (board.Outcome, error) {
	c := &env.Session.Commitment
	scores, err := env.Strategy.Funnel.Decide(env.View, c)
	if err != nil {
		return board.Outcome{}, err
	}
	env.Session.Scores = scores
	slog.Info("funnel committed",
		"lane", c.State(),
		"spawn", c.Spawn(),
		"turn", c.Turn(),
		"scores", scores,
	)
	return board.Outcome{}, nil
}

func ActionHoldFunnel(env RuleEnv) (board.Outcome, error) {
	return env.Strategy.Funnel.Hold(env.View, &env.Session.Commitment), nil
}

// ActionReinforce lays the second row, the tunnel and the third row.
func ActionReinforce(env RuleEnv) (board.Outcome, error) {
	return env.Strategy.Defense.ReinforcePass(env.View), nil
}

// ActionSwarm spawns as many attackers as the pool affords at the committed spawn.
func ActionSwarm(env RuleEnv) (board.Outcome, error) {
	out := env.Strategy.Funnel.Swarm(env.View, &env.Session.Commitment, env.Strategy.Settings.SwarmCount)
	slog.Debug("swarm", "spawn", env.Session.Commitment.Spawn(), "placed", out.Placed)
	return out, nil
}
