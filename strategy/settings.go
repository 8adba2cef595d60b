package strategy

// Row pattern sets selectable through configuration.
const (
	PatternsOriginal  = "original"
	PatternsCollapsed = "collapsed"
)

// Settings holds the tunable constants of the funnel strategy.
type Settings struct {
	DecisionTurn   int     // turn on which the lane is chosen
	SpawnThreshold float64 // bits needed before swarming
	SwarmCount     int     // units requested per swarm; large means "all affordable"
	ReactiveOffset int     // rows behind a breach to reinforce
	StallDivisor   int     // stall spawns = bits/divisor + 1
	RowPatterns    string
}

// DefaultSettings returns the values the strategy was tuned with.
func DefaultSettings() Settings {
	return Settings{
		DecisionTurn:   3,
		SpawnThreshold: 10,
		SwarmCount:     1000,
		ReactiveOffset: 3,
		StallDivisor:   4,
		RowPatterns:    PatternsOriginal,
	}
}

// Validate replaces out-of-range values with defaults.
func (s *Settings) Validate() {
	d := DefaultSettings()
	if s.DecisionTurn < 0 {
		s.DecisionTurn = d.DecisionTurn
	}
	if s.SpawnThreshold < 0 {
		s.SpawnThreshold = d.SpawnThreshold
	}
	if s.SwarmCount < 1 {
		s.SwarmCount = d.SwarmCount
	}
	if s.StallDivisor < 1 {
		s.StallDivisor = d.StallDivisor
	}
	if s.RowPatterns != PatternsOriginal && s.RowPatterns != PatternsCollapsed {
		s.RowPatterns = d.RowPatterns
	}
}
