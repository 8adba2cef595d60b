package model

// Unit is a single unit on the board.
type Unit struct {
	Kind     UnitKind
	Owner    Side
	Location Location
	Health   float64
	ID       string
	// Pending marks a unit this planner has queued this turn but the engine
	// has not yet confirmed.
	Pending bool
}

// PlayerStats mirrors the engine's per-player stats record.
type PlayerStats struct {
	Health float64
	Cores  float64
	Bits   float64
	Time   float64
}

// Resource returns the amount available in pool r.
func (p PlayerStats) Resource(r Resource) float64 {
	if r == Cores {
		return p.Cores
	}
	return p.Bits
}

// GameState is the decoded turn record, rebuilt fresh every turn.
type GameState struct {
	Turn  int
	Frame int
	Stats [2]PlayerStats // indexed by Side
	Units []Unit
}
