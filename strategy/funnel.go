package strategy

import (
	"errors"
	"fmt"

	"github.com/nstehr/indigo/board"
	"github.com/nstehr/indigo/model"
)

// FunnelState is the lane commitment of a match.
type FunnelState int

const (
	Undecided FunnelState = iota
	CommittedLeft
	CommittedRight
)

func (s FunnelState) String() string {
	switch s {
	case Undecided:
		return "undecided"
	case CommittedLeft:
		return "left"
	case CommittedRight:
		return "right"
	default:
		return fmt.Sprintf("FunnelState(%d)", int(s))
	}
}

var ErrAlreadyCommitted = errors.New("funnel already committed")

// Lane is one attack corridor: where the swarm spawns and the support
// structures that shape its route.
type Lane struct {
	State FunnelState
	Spawn model.Location
	Walls Pattern
}

var LeftLane = Lane{
	State: CommittedLeft,
	Spawn: model.Loc(3, 10),
	Walls: Pattern{
		Name: "left_funnel",
		Kind: model.Encryptor,
		Locations: []model.Location{
			{X: 24, Y: 11}, {X: 23, Y: 11}, {X: 22, Y: 10}, {X: 21, Y: 9}, {X: 20, Y: 8},
			{X: 19, Y: 7}, {X: 18, Y: 6}, {X: 17, Y: 5}, {X: 16, Y: 4}, {X: 15, Y: 3},
			{X: 14, Y: 2}, {X: 12, Y: 3}, {X: 11, Y: 4}, {X: 10, Y: 5}, {X: 9, Y: 6},
			{X: 8, Y: 7}, {X: 7, Y: 8},
		},
	},
}

var RightLane = Lane{
	State: CommittedRight,
	Spawn: model.Loc(24, 10),
	Walls: Pattern{
		Name: "right_funnel",
		Kind: model.Encryptor,
		Locations: []model.Location{
			{X: 3, Y: 11}, {X: 4, Y: 11}, {X: 5, Y: 10}, {X: 6, Y: 9}, {X: 7, Y: 8},
			{X: 8, Y: 7}, {X: 9, Y: 6}, {X: 10, Y: 5}, {X: 11, Y: 4}, {X: 12, Y: 3},
			{X: 13, Y: 2}, {X: 14, Y: 2}, {X: 15, Y: 3}, {X: 16, Y: 4}, {X: 17, Y: 5},
			{X: 18, Y: 6}, {X: 19, Y: 7}, {X: 20, Y: 8},
		},
	},
}

// Commitment is written once per match. The zero value is Undecided.
type Commitment struct {
	state FunnelState
	spawn model.Location
	turn  int
}

// Commit records the chosen lane. It fails if a lane was already chosen.
func (c *Commitment) Commit(l Lane, turn int) error {
	if c.state != Undecided {
		return fmt.Errorf("commit %s on turn %d: %w (committed %s on turn %d)", l.State, turn, ErrAlreadyCommitted, c.state, c.turn)
	}
	if l.State == Undecided {
		return fmt.Errorf("commit on turn %d: lane has no direction", turn)
	}
	c.state = l.State
	c.spawn = l.Spawn
	c.turn = turn
	return nil
}

func (c *Commitment) State() FunnelState    { return c.state }
func (c *Commitment) Committed() bool       { return c.state != Undecided }
func (c *Commitment) Spawn() model.Location { return c.spawn }
func (c *Commitment) Turn() int             { return c.turn }

// Funnel chooses between lanes and drives the committed one.
type Funnel struct {
	Lanes    []Lane // candidates in tie-break order
	Risk     RiskEstimator
	Attacker model.UnitKind
}

// Decide scores every lane's spawn and commits to the safest. The scores
// are returned in lane order.
func (f Funnel) Decide(v *board.View, c *Commitment) ([]float64, error) {
	if c.Committed() {
		return nil, ErrAlreadyCommitted
	}
	if len(f.Lanes) == 0 {
		return nil, errors.New("no lanes to choose from")
	}
	spawns := make([]model.Location, len(f.Lanes))
	for i, l := range f.Lanes {
		spawns[i] = l.Spawn
	}
	best, scores := f.Risk.Safest(v, spawns)
	if err := c.Commit(f.Lanes[best], v.Turn()); err != nil {
		return scores, err
	}
	return scores, nil
}

// Lane returns the lane for a committed state.
func (f Funnel) Lane(s FunnelState) (Lane, bool) {
	for _, l := range f.Lanes {
		if l.State == s {
			return l, true
		}
	}
	return Lane{}, false
}

// Hold re-applies the committed lane's walls.
func (f Funnel) Hold(v *board.View, c *Commitment) board.Outcome {
	l, ok := f.Lane(c.State())
	if !ok {
		return board.Outcome{}
	}
	return l.Walls.Apply(v)
}

// Swarm spawns up to count attackers at the committed spawn. Placement
// stops once the mobile pool runs dry.
func (f Funnel) Swarm(v *board.View, c *Commitment, count int) board.Outcome {
	if !c.Committed() {
		return board.Outcome{}
	}
	return v.AttemptPlace(f.Attacker, []model.Location{c.Spawn()}, count)
}
