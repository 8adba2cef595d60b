package strategy

import (
	"slices"

	"github.com/nstehr/indigo/board"
	"github.com/nstehr/indigo/model"
)

// DefaultGaps are the columns every defensive row leaves open so our own
// mobile units can pass.
var DefaultGaps = []int{3, 6, 10, 12, 15, 17, 21, 24}

// Row is a horizontal line of structures with fixed openings.
type Row struct {
	Name       string
	Y          int
	XMin, XMax int
	Gaps       []int
	Mirror     bool // also place at the column mirrored across the centre line
}

// Locations lists the row's cells in placement order. Mirrored rows
// interleave each cell with its mirror.
func (r Row) Locations() []model.Location {
	var out []model.Location
	for x := r.XMin; x <= r.XMax; x++ {
		if slices.Contains(r.Gaps, x) {
			continue
		}
		out = append(out, model.Loc(x, r.Y))
		if r.Mirror {
			if mx := model.ArenaSize - 1 - x; mx != x {
				out = append(out, model.Loc(mx, r.Y))
			}
		}
	}
	return out
}

// Pattern is a fixed set of cells for one unit kind.
type Pattern struct {
	Name      string
	Kind      model.UnitKind
	Locations []model.Location
}

// Apply attempts one unit of the pattern's kind at every cell.
func (p Pattern) Apply(v *board.View) board.Outcome {
	return v.AttemptPlace(p.Kind, p.Locations, 1)
}

var (
	BaseRow   = Row{Name: "base", Y: 13, XMin: 0, XMax: 27, Gaps: DefaultGaps}
	SecondRow = Row{Name: "second", Y: 12, XMin: 1, XMax: 12, Gaps: DefaultGaps, Mirror: true}
	ThirdRow  = Row{Name: "third", Y: 11, XMin: 2, XMax: 25, Gaps: DefaultGaps, Mirror: true}

	// CollapsedSecondRow covers the full y=12 line in one sweep.
	CollapsedSecondRow = Row{Name: "second", Y: 12, XMin: 1, XMax: 26, Gaps: DefaultGaps}
)

// TunnelPattern is the diagonal of support structures laid between the
// extra rows once a lane is committed.
var TunnelPattern = Pattern{
	Name: "tunnel",
	Kind: model.Encryptor,
	Locations: []model.Location{
		{X: 5, Y: 11}, {X: 6, Y: 10}, {X: 7, Y: 9}, {X: 8, Y: 8}, {X: 9, Y: 7},
		{X: 10, Y: 6}, {X: 11, Y: 5}, {X: 12, Y: 4}, {X: 14, Y: 3}, {X: 15, Y: 4},
		{X: 16, Y: 5}, {X: 17, Y: 6}, {X: 18, Y: 7}, {X: 19, Y: 8},
	},
}

// DefensePlanner lays turret rows and patterns. Every pass is best effort:
// a skipped cell never stops the rest of the batch.
type DefensePlanner struct {
	Turret        model.UnitKind
	Base          Row
	Second, Third Row
	Tunnel        Pattern
}

// NewDefensePlanner builds the planner for a named row pattern set.
func NewDefensePlanner(patterns string) DefensePlanner {
	p := DefensePlanner{
		Turret: model.Destructor,
		Base:   BaseRow,
		Second: SecondRow,
		Third:  ThirdRow,
		Tunnel: TunnelPattern,
	}
	if patterns == PatternsCollapsed {
		p.Second = CollapsedSecondRow
	}
	return p
}

// PlaceRow attempts one turret per cell of r.
func (p DefensePlanner) PlaceRow(v *board.View, r Row) board.Outcome {
	return v.AttemptPlace(p.Turret, r.Locations(), 1)
}

// BasePass lays the front row.
func (p DefensePlanner) BasePass(v *board.View) board.Outcome {
	return p.PlaceRow(v, p.Base)
}

// ReactivePass attempts one turret per tracker entry. Entries whose cell is
// already built or off the board are skipped.
func (p DefensePlanner) ReactivePass(v *board.View, t *BreachTracker) board.Outcome {
	var out board.Outcome
	for _, loc := range t.Locations() {
		out.Merge(v.AttemptPlace(p.Turret, []model.Location{loc}, 1))
	}
	return out
}

// ReinforcePass lays the second row, the tunnel and the third row, in that order.
func (p DefensePlanner) ReinforcePass(v *board.View) board.Outcome {
	out := p.PlaceRow(v, p.Second)
	out.Merge(p.Tunnel.Apply(v))
	out.Merge(p.PlaceRow(v, p.Third))
	return out
}
