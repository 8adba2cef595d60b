package board

import (
	"log/slog"

	"github.com/nstehr/indigo/model"
)

// Placement is a unit queued for this turn.
type Placement struct {
	Kind     model.UnitKind
	Location model.Location
}

// View is the planner's read model of one turn. It is built fresh from the
// engine's record each turn; the only mutation is speculative placement,
// which spends from a local copy of our pools and marks the target cell so
// later attempts in the same turn see it as taken.
type View struct {
	turn    int
	catalog *model.Catalog
	grid    map[model.Location][]model.Unit
	pools   [2]model.PlayerStats
	build   []Placement
	deploy  []Placement
}

// New builds a View. Units outside the arena are dropped with a warning.
func New(gs model.GameState, cat *model.Catalog) *View {
	v := &View{
		turn:    gs.Turn,
		catalog: cat,
		grid:    make(map[model.Location][]model.Unit, len(gs.Units)),
		pools:   gs.Stats,
	}
	for _, u := range gs.Units {
		if !model.InArena(u.Location) {
			slog.Warn("dropping unit outside arena", "kind", u.Kind, "location", u.Location)
			continue
		}
		v.grid[u.Location] = append(v.grid[u.Location], u)
	}
	return v
}

func (v *View) Turn() int                { return v.turn }
func (v *View) Catalog() *model.Catalog { return v.catalog }

// Resource returns what side can still spend from pool r this turn.
func (v *View) Resource(side model.Side, r model.Resource) float64 {
	if side != model.Self && side != model.Opponent {
		return 0
	}
	return v.pools[side].Resource(r)
}

// UnitsAt returns the units occupying loc.
func (v *View) UnitsAt(loc model.Location) ([]model.Unit, error) {
	if err := model.CheckLocation(loc); err != nil {
		return nil, err
	}
	return v.grid[loc], nil
}

// OccupiedByStationary reports whether loc holds a structure.
func (v *View) OccupiedByStationary(loc model.Location) (bool, error) {
	units, err := v.UnitsAt(loc)
	if err != nil {
		return false, err
	}
	for _, u := range units {
		if v.catalog.Spec(u.Kind).Stationary {
			return true, nil
		}
	}
	return false, nil
}

// AttackersOf returns the structures that could shoot a unit owned by side
// standing at loc. Structures below minHealth are ignored; pass 0 to count
// every armed structure.
func (v *View) AttackersOf(loc model.Location, side model.Side, minHealth float64) ([]model.Unit, error) {
	if err := model.CheckLocation(loc); err != nil {
		return nil, err
	}
	maxRange := 0.0
	for k := 0; k < v.catalog.Len(); k++ {
		s := v.catalog.Spec(model.UnitKind(k))
		if s.Stationary && s.Damage > 0 && s.Range > maxRange {
			maxRange = s.Range
		}
	}
	if maxRange == 0 {
		return nil, nil
	}

	var out []model.Unit
	for _, l := range model.LocationsInRange(loc, maxRange) {
		for _, u := range v.grid[l] {
			if u.Owner == side || u.Pending {
				continue
			}
			s := v.catalog.Spec(u.Kind)
			if !s.Stationary || s.Damage <= 0 {
				continue
			}
			if loc.Distance(l) > s.Range || u.Health < minHealth {
				continue
			}
			out = append(out, u)
		}
	}
	return out, nil
}

// AttemptPlace queues up to count units of kind at each of locs for our side,
// best effort. Each attempt is independent: a skipped location never stops
// the rest of the batch. count < 1 is treated as 1. Asking for a large count
// spawns as many as the pool affords.
func (v *View) AttemptPlace(kind model.UnitKind, locs []model.Location, count int) Outcome {
	if count < 1 {
		count = 1
	}
	var out Outcome
	for _, loc := range locs {
		for i := 0; i < count; i++ {
			if reason, ok := v.check(kind, loc); !ok {
				out.skip(reason)
				break
			}
			v.place(kind, loc)
			out.Placed++
		}
	}
	return out
}

func (v *View) check(kind model.UnitKind, loc model.Location) (SkipReason, bool) {
	if !model.InArena(loc) {
		return SkipInvalidLocation, false
	}
	spec := v.catalog.Spec(kind)
	if spec.Shorthand == "" || kind == model.Remove {
		return SkipIllegalPlacement, false
	}
	if spec.Stationary {
		if !model.OnOwnHalf(loc, model.Self) {
			return SkipIllegalPlacement, false
		}
		if len(v.grid[loc]) > 0 {
			return SkipOccupiedCell, false
		}
	} else {
		if !model.OnOwnEdge(loc, model.Self) {
			return SkipIllegalPlacement, false
		}
		if blocked, _ := v.OccupiedByStationary(loc); blocked {
			return SkipOccupiedCell, false
		}
	}
	if v.pools[model.Self].Resource(spec.Pool()) < spec.Cost {
		return SkipInsufficientResource, false
	}
	return 0, true
}

func (v *View) place(kind model.UnitKind, loc model.Location) {
	spec := v.catalog.Spec(kind)
	if spec.Stationary {
		v.pools[model.Self].Cores -= spec.Cost
		v.build = append(v.build, Placement{Kind: kind, Location: loc})
	} else {
		v.pools[model.Self].Bits -= spec.Cost
		v.deploy = append(v.deploy, Placement{Kind: kind, Location: loc})
	}
	v.grid[loc] = append(v.grid[loc], model.Unit{
		Kind:     kind,
		Owner:    model.Self,
		Location: loc,
		Health:   spec.Health,
		Pending:  true,
	})
}

// Placements returns the queued structures and mobile spawns, in the order
// they were attempted.
func (v *View) Placements() (build, deploy []Placement) {
	return v.build, v.deploy
}
