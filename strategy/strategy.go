// Package strategy holds the funnel strategy: lane risk estimation, the
// breach log, defensive rows and the lane commitment.
package strategy

import "github.com/nstehr/indigo/model"

// Strategy bundles the planners configured for a match.
type Strategy struct {
	Settings Settings
	Defense  DefensePlanner
	Funnel   Funnel
	Stall    StallPlan
}

// New builds the strategy. Left is listed first so equal risk resolves left.
func New(s Settings, paths PathFinder) *Strategy {
	s.Validate()
	return &Strategy{
		Settings: s,
		Defense:  NewDefensePlanner(s.RowPatterns),
		Funnel: Funnel{
			Lanes:    []Lane{LeftLane, RightLane},
			Risk:     RiskEstimator{Paths: paths, Side: model.Self},
			Attacker: model.Ping,
		},
		Stall: StallPlan{
			Kind:      model.Scrambler,
			Locations: DefaultStallLocations,
			Divisor:   s.StallDivisor,
		},
	}
}

// NewSession starts a match session using the configured breach offset.
func (s *Strategy) NewSession(seed uint64) *Session {
	return NewSession(seed, s.Settings.ReactiveOffset)
}
