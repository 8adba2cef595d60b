package agent

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/nstehr/indigo/history"
	"github.com/nstehr/indigo/ipc"
	"github.com/nstehr/indigo/model"
	"github.com/nstehr/indigo/navigation"
	"github.com/nstehr/indigo/rules"
	"github.com/nstehr/indigo/strategy"
)

// fakeRecorder keeps history calls in memory.
type fakeRecorder struct {
	history.Nop
	started  bool
	turns    []history.TurnRecord
	breaches []model.Location
	lane     string
	winner   int
}

func (f *fakeRecorder) StartMatch(uint64) error {
	f.started = true
	return nil
}

func (f *fakeRecorder) RecordTurn(t history.TurnRecord) error {
	f.turns = append(f.turns, t)
	return nil
}

func (f *fakeRecorder) RecordBreach(_ int, loc model.Location) error {
	f.breaches = append(f.breaches, loc)
	return nil
}

func (f *fakeRecorder) RecordCommit(lane string, _ model.Location, _ int) error {
	f.lane = lane
	return nil
}

func (f *fakeRecorder) EndMatch(_, winner int) error {
	f.winner = winner
	return nil
}

func runMatch(t *testing.T, frames ...string) (*Agent, *fakeRecorder, [][]ipc.Command) {
	t.Helper()
	engine, err := rules.NewEngine(rules.DefaultRules())
	if err != nil {
		t.Fatal(err)
	}
	st := strategy.New(strategy.DefaultSettings(), navigation.Pathfinder{})
	rec := &fakeRecorder{}

	var out bytes.Buffer
	conn := ipc.NewConnection(strings.NewReader(strings.Join(frames, "\n")+"\n"), &out)
	a := New(conn, engine, st, st.NewSession(42), rec)
	a.Register()
	conn.ReadLoop()

	var lines [][]ipc.Command
	sc := bufio.NewScanner(&out)
	for sc.Scan() {
		var cmds []ipc.Command
		if err := json.Unmarshal(sc.Bytes(), &cmds); err != nil {
			t.Fatalf("output line %q: %v", sc.Text(), err)
		}
		lines = append(lines, cmds)
	}
	return a, rec, lines
}

func TestMatchFlow(t *testing.T) {
	a, rec, lines := runMatch(t,
		testConfig,
		fmt.Sprintf(turnFrame, 1, 30.0, 9.0),
		testAction,
		fmt.Sprintf(turnFrame, 3, 200.0, 9.0),
		fmt.Sprintf(turnFrame, 4, 0.0, 12.0),
		testEnd,
	)

	if len(lines) != 6 {
		t.Fatalf("got %d output lines, want 6", len(lines))
	}

	// turn 1: ten base turrets and three stalling interceptors
	if len(lines[0]) != 10 {
		t.Errorf("turn 1 build = %d, want 10", len(lines[0]))
	}
	for _, c := range lines[0] {
		if c.Shorthand != "DF" || c.Y != 13 {
			t.Errorf("turn 1 build %+v, want DF on row 13", c)
		}
	}
	if len(lines[1]) != 3 {
		t.Errorf("turn 1 deploy = %d, want 3", len(lines[1]))
	}
	for _, c := range lines[1] {
		if c.Shorthand != "SI" {
			t.Errorf("turn 1 deploy %+v, want SI", c)
		}
	}

	// the action frame logged one opponent breach
	if got := a.Session.Tracker.Locations(); len(got) != 1 || got[0] != model.Loc(11, 5) {
		t.Errorf("tracker = %v, want [(11,5)]", got)
	}
	if len(rec.breaches) != 1 {
		t.Errorf("history breaches = %v, want one", rec.breaches)
	}

	// turn 3: committed, no mobile units
	if !a.Session.Commitment.Committed() {
		t.Fatal("not committed after turn 3")
	}
	if rec.lane == "" {
		t.Error("commitment not recorded")
	}
	if len(lines[3]) != 0 {
		t.Errorf("turn 3 deploy = %v, want none", lines[3])
	}
	foundReactive := false
	for _, c := range lines[2] {
		if c.X == 11 && c.Y == 5 {
			foundReactive = true
		}
	}
	if !foundReactive {
		t.Error("turn 3 did not reinforce (11,5)")
	}

	// turn 4: swarm of 12 at the committed spawn
	spawn := a.Session.Commitment.Spawn()
	if len(lines[5]) != 12 {
		t.Errorf("turn 4 deploy = %d, want 12", len(lines[5]))
	}
	for _, c := range lines[5] {
		if c.Shorthand != "PI" || c.X != spawn.X || c.Y != spawn.Y {
			t.Errorf("turn 4 deploy %+v, want PI at %v", c, spawn)
		}
	}

	if !rec.started || len(rec.turns) != 3 || rec.winner != 1 {
		t.Errorf("history = started %v, %d turns, winner %d", rec.started, len(rec.turns), rec.winner)
	}
	if len(rec.turns[1].Scores) != 2 {
		t.Errorf("decision turn scores = %v, want two", rec.turns[1].Scores)
	}
}

func TestMalformedTurnSubmitsEmpty(t *testing.T) {
	a, _, lines := runMatch(t,
		testConfig,
		testMalformedTurn,
		fmt.Sprintf(turnFrame, 1, 3.0, 0.0),
		testEnd,
	)
	if len(lines) != 4 {
		t.Fatalf("got %d output lines, want 4", len(lines))
	}
	if len(lines[0]) != 0 || len(lines[1]) != 0 {
		t.Errorf("malformed turn submitted %v %v, want empty", lines[0], lines[1])
	}
	if len(lines[2]) != 1 {
		t.Errorf("next turn build = %v, want one turret", lines[2])
	}
	if a.Session.Commitment.Committed() {
		t.Error("malformed turn changed the commitment")
	}
}

func TestTurnBeforeConfigSubmitsEmpty(t *testing.T) {
	_, _, lines := runMatch(t, fmt.Sprintf(turnFrame, 1, 30.0, 9.0), testEnd)
	if len(lines) != 2 || len(lines[0]) != 0 || len(lines[1]) != 0 {
		t.Errorf("lines = %v, want two empty lists", lines)
	}
}
