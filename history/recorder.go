// Package history persists match summaries so tuning runs can be compared
// after the fact.
package history

import "github.com/nstehr/indigo/model"

// TurnRecord summarizes one planned turn.
type TurnRecord struct {
	Number  int
	Cores   float64
	Bits    float64
	Placed  int
	Skipped int
	Rules   []string
	Scores  []float64 // lane risk in lane order, set on the decision turn
}

// Recorder receives match events. Implementations must tolerate being
// called for turns of a match that was never started.
type Recorder interface {
	StartMatch(seed uint64) error
	RecordTurn(t TurnRecord) error
	RecordBreach(turn int, loc model.Location) error
	RecordCommit(lane string, spawn model.Location, turn int) error
	EndMatch(finalTurn, winner int) error
	Close() error
}

// Nop discards everything.
type Nop struct{}

func (Nop) StartMatch(uint64) error                        { return nil }
func (Nop) RecordTurn(TurnRecord) error                    { return nil }
func (Nop) RecordBreach(int, model.Location) error         { return nil }
func (Nop) RecordCommit(string, model.Location, int) error { return nil }
func (Nop) EndMatch(int, int) error                        { return nil }
func (Nop) Close() error                                   { return nil }
