package strategy

import (
	"testing"

	"github.com/nstehr/indigo/board"
	"github.com/nstehr/indigo/model"
	"github.com/nstehr/indigo/navigation"
)

func testCatalog(t *testing.T) *model.Catalog {
	t.Helper()
	cat, err := model.NewCatalog([]model.UnitSpec{
		{Shorthand: "FF", Cost: 1, Health: 60, Stationary: true},
		{Shorthand: "EF", Cost: 4, Health: 30, Stationary: true},
		{Shorthand: "DF", Cost: 3, Damage: 4, Range: 3.5, Health: 75, Stationary: true},
		{Shorthand: "PI", Cost: 1, Damage: 1, Range: 3.5, Health: 15},
		{Shorthand: "EI", Cost: 3, Damage: 3, Range: 5.5, Health: 5},
		{Shorthand: "SI", Cost: 1, Range: 3.5, Health: 40},
	})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return cat
}

func testView(t *testing.T, turn int, cores, bits float64, units ...model.Unit) *board.View {
	t.Helper()
	gs := model.GameState{Turn: turn, Units: units}
	gs.Stats[model.Self] = model.PlayerStats{Health: 30, Cores: cores, Bits: bits}
	gs.Stats[model.Opponent] = model.PlayerStats{Health: 30, Cores: 30, Bits: 5}
	return board.New(gs, testCatalog(t))
}

func enemyTurret(x, y int) model.Unit {
	return model.Unit{Kind: model.Destructor, Owner: model.Opponent, Location: model.Loc(x, y), Health: 75}
}

// fixedPaths returns a canned route per start cell.
type fixedPaths map[model.Location][]model.Location

func (f fixedPaths) FindPath(_ navigation.Blocker, start model.Location) []model.Location {
	return f[start]
}

// column walks straight up from start for n cells.
func column(start model.Location, n int) []model.Location {
	out := make([]model.Location, n)
	for i := range out {
		out[i] = start.Offset(0, i)
	}
	return out
}
