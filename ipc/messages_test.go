package ipc

import (
	"errors"
	"testing"

	"github.com/nstehr/indigo/model"
)

func mustCatalog(t *testing.T) *model.Catalog {
	t.Helper()
	cfg, err := DecodeConfig([]byte(testConfig))
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	cat, err := cfg.Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	return cat
}

func TestConfigCatalog(t *testing.T) {
	cat := mustCatalog(t)
	if cat.Len() != 7 {
		t.Fatalf("catalog has %d kinds, want 7", cat.Len())
	}
	df := cat.Spec(model.Destructor)
	if df.Shorthand != "DF" || df.Damage != 4 || df.Range != 3.5 || !df.Stationary {
		t.Errorf("destructor spec = %+v", df)
	}
	if cat.Spec(model.Scrambler).Stationary {
		t.Error("scrambler should be mobile")
	}
	if cat.Spec(model.Filter).Health != 60 {
		t.Errorf("filter health = %v, want 60 from stability", cat.Spec(model.Filter).Health)
	}
}

func TestConfigSplitCosts(t *testing.T) {
	cat := 0
	cfg := ConfigMessage{UnitInformation: []UnitInformation{
		{Shorthand: "FF", UnitCategory: &cat, Cost1: 2},
		{Shorthand: "EF", UnitCategory: &cat, Cost1: 4},
		{Shorthand: "DF", UnitCategory: &cat, Cost1: 6, DamageI: 16},
		{Shorthand: "PI", Cost2: 1},
		{Shorthand: "EI", Cost2: 3},
		{Shorthand: "SI", Cost2: 1},
	}}
	c, err := cfg.Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	if got := c.Spec(model.Destructor); got.Cost != 6 || got.Damage != 16 {
		t.Errorf("destructor cost/damage = %v/%v, want 6/16", got.Cost, got.Damage)
	}
	if c.Spec(model.Ping).Stationary {
		t.Error("ping without a category should default to mobile by position")
	}
}

func TestTurnGameState(t *testing.T) {
	cat := mustCatalog(t)
	m, err := DecodeTurn([]byte(testTurn))
	if err != nil {
		t.Fatalf("DecodeTurn: %v", err)
	}
	gs, err := m.GameState(cat)
	if err != nil {
		t.Fatalf("GameState: %v", err)
	}
	if gs.Turn != 3 {
		t.Errorf("Turn = %d, want 3", gs.Turn)
	}
	if gs.Stats[model.Self].Bits != 9 || gs.Stats[model.Self].Cores != 25 {
		t.Errorf("self stats = %+v", gs.Stats[model.Self])
	}
	if gs.Stats[model.Opponent].Bits != 7.5 {
		t.Errorf("opponent bits = %v, want 7.5", gs.Stats[model.Opponent].Bits)
	}
	if len(gs.Units) != 3 {
		t.Fatalf("got %d units, want 3", len(gs.Units))
	}
	enemy := gs.Units[2]
	if enemy.Owner != model.Opponent || enemy.Kind != model.Destructor || enemy.Location != model.Loc(13, 16) || enemy.ID != "9" {
		t.Errorf("enemy unit = %+v", enemy)
	}
}

func TestTurnGameStateMalformed(t *testing.T) {
	cat := mustCatalog(t)
	tests := []struct {
		name string
		msg  TurnMessage
		cat  *model.Catalog
	}{
		{"no catalog", TurnMessage{TurnInfo: []int{0, 1}, P1Stats: []float64{1, 2, 3}, P2Stats: []float64{1, 2, 3}}, nil},
		{"short turn info", TurnMessage{TurnInfo: []int{0}, P1Stats: []float64{1, 2, 3}, P2Stats: []float64{1, 2, 3}}, cat},
		{"short stats", TurnMessage{TurnInfo: []int{0, 1}, P1Stats: []float64{1}, P2Stats: []float64{1, 2, 3}}, cat},
	}
	for _, tc := range tests {
		_, err := tc.msg.GameState(tc.cat)
		if !errors.Is(err, model.ErrMalformedRecord) {
			t.Errorf("%s: err = %v, want ErrMalformedRecord", tc.name, err)
		}
	}

	if _, err := DecodeTurn([]byte(`{"turnInfo":"nope"}`)); !errors.Is(err, model.ErrMalformedRecord) {
		t.Errorf("DecodeTurn bad payload err = %v, want ErrMalformedRecord", err)
	}
}
