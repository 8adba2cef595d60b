package strategy

import "github.com/nstehr/indigo/model"

// Breach is a mobile unit reaching a scoring edge.
type Breach struct {
	Location model.Location
	Attacker model.Side // owner of the unit that scored
}

// AgainstUs reports whether the opponent scored on our edge.
func (b Breach) AgainstUs() bool { return b.Attacker == model.Opponent }

// BreachTracker remembers where we were scored on for the whole match. The
// log only grows; repeated breaches at one spot produce repeated entries.
type BreachTracker struct {
	offset int
	log    []model.Location
}

// NewBreachTracker records reinforcement targets offset rows behind each breach.
func NewBreachTracker(offset int) *BreachTracker {
	return &BreachTracker{offset: offset}
}

// Record appends the reinforcement target for b if the opponent scored.
func (t *BreachTracker) Record(b Breach) bool {
	if !b.AgainstUs() {
		return false
	}
	t.log = append(t.log, b.Location.Offset(0, t.offset))
	return true
}

// Locations returns a copy of the log in arrival order.
func (t *BreachTracker) Locations() []model.Location {
	out := make([]model.Location, len(t.log))
	copy(out, t.log)
	return out
}

func (t *BreachTracker) Len() int { return len(t.log) }
