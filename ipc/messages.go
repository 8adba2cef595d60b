package ipc

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nstehr/indigo/model"
)

// ConfigMessage is the first record of a match. Only the fields the planner
// reads are decoded.
type ConfigMessage struct {
	UnitInformation []UnitInformation `json:"unitInformation"`
}

// UnitInformation is one entry of the engine's unit table. Older engine
// configs use cost/damage; newer ones split cost per pool and damage per
// target class, so both spellings are accepted.
type UnitInformation struct {
	Shorthand    string  `json:"shorthand"`
	UnitCategory *int    `json:"unitCategory"`
	Cost         float64 `json:"cost"`
	Cost1        float64 `json:"cost1"`
	Cost2        float64 `json:"cost2"`
	Damage       float64 `json:"damage"`
	DamageI      float64 `json:"damageI"`
	AttackRange  float64 `json:"attackRange"`
	Stability    float64 `json:"stability"`
	StartHealth  float64 `json:"startHealth"`
}

func (u UnitInformation) spec(index int) model.UnitSpec {
	stationary := index < int(model.Ping)
	if u.UnitCategory != nil {
		stationary = *u.UnitCategory == 0
	}
	cost := u.Cost
	if cost == 0 {
		cost = u.Cost1 + u.Cost2
	}
	damage := u.Damage
	if damage == 0 {
		damage = u.DamageI
	}
	health := u.StartHealth
	if health == 0 {
		health = u.Stability
	}
	return model.UnitSpec{
		Shorthand:  u.Shorthand,
		Cost:       cost,
		Damage:     damage,
		Range:      u.AttackRange,
		Health:     health,
		Stationary: stationary,
	}
}

// Catalog converts the unit table into a model.Catalog.
func (m ConfigMessage) Catalog() (*model.Catalog, error) {
	specs := make([]model.UnitSpec, 0, len(m.UnitInformation))
	for i, u := range m.UnitInformation {
		if u.Shorthand == "" {
			// Trailing pseudo-entries without a shorthand carry no unit.
			continue
		}
		specs = append(specs, u.spec(i))
	}
	cat, err := model.NewCatalog(specs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedRecord, err)
	}
	return cat, nil
}

// DecodeConfig parses the config record.
func DecodeConfig(raw []byte) (ConfigMessage, error) {
	var m ConfigMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return ConfigMessage{}, fmt.Errorf("%w: config: %v", model.ErrMalformedRecord, err)
	}
	return m, nil
}

// TurnMessage is a state record (turn start, action frame or end).
type TurnMessage struct {
	TurnInfo []int        `json:"turnInfo"`
	P1Stats  []float64    `json:"p1Stats"`
	P2Stats  []float64    `json:"p2Stats"`
	P1Units  [][]RawUnit  `json:"p1Units"`
	P2Units  [][]RawUnit  `json:"p2Units"`
	EndStats *EndGameInfo `json:"endStats,omitempty"`
}

// EndGameInfo is present on the final record only.
type EndGameInfo struct {
	Winner int `json:"winner"`
	Turns  int `json:"turns"`
}

// RawUnit is the positional unit record [x, y, health, id].
type RawUnit struct {
	X      int
	Y      int
	Health float64
	ID     string
}

func (u *RawUnit) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) < 3 {
		return fmt.Errorf("unit record needs at least 3 elements, got %d", len(raw))
	}
	var x, y float64
	if err := json.Unmarshal(raw[0], &x); err != nil {
		return fmt.Errorf("unit x: %w", err)
	}
	if err := json.Unmarshal(raw[1], &y); err != nil {
		return fmt.Errorf("unit y: %w", err)
	}
	if err := json.Unmarshal(raw[2], &u.Health); err != nil {
		return fmt.Errorf("unit health: %w", err)
	}
	u.X, u.Y = int(x), int(y)
	if len(raw) > 3 {
		u.ID = strings.Trim(string(raw[3]), `"`)
	}
	return nil
}

// DecodeTurn parses a state record.
func DecodeTurn(raw []byte) (TurnMessage, error) {
	var m TurnMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return TurnMessage{}, fmt.Errorf("%w: turn: %v", model.ErrMalformedRecord, err)
	}
	return m, nil
}

func decodeStats(s []float64) (model.PlayerStats, error) {
	if len(s) < 3 {
		return model.PlayerStats{}, fmt.Errorf("%w: stats need 3 values, got %d", model.ErrMalformedRecord, len(s))
	}
	ps := model.PlayerStats{Health: s[0], Cores: s[1], Bits: s[2]}
	if len(s) > 3 {
		ps.Time = s[3]
	}
	return ps, nil
}

// GameState converts the record into the planner's model. Unit lists are
// indexed by unit kind in config order; kinds beyond the catalog are ignored.
func (m TurnMessage) GameState(cat *model.Catalog) (model.GameState, error) {
	if cat == nil {
		return model.GameState{}, fmt.Errorf("%w: turn received before config", model.ErrMalformedRecord)
	}
	if len(m.TurnInfo) < 2 {
		return model.GameState{}, fmt.Errorf("%w: turnInfo has %d values", model.ErrMalformedRecord, len(m.TurnInfo))
	}
	gs := model.GameState{Turn: m.TurnInfo[1]}
	if len(m.TurnInfo) > 2 {
		gs.Frame = m.TurnInfo[2]
	}

	var err error
	if gs.Stats[model.Self], err = decodeStats(m.P1Stats); err != nil {
		return model.GameState{}, err
	}
	if gs.Stats[model.Opponent], err = decodeStats(m.P2Stats); err != nil {
		return model.GameState{}, err
	}

	for side, lists := range [][][]RawUnit{m.P1Units, m.P2Units} {
		for k, list := range lists {
			if k >= cat.Len() || model.UnitKind(k) == model.Remove {
				continue
			}
			for _, ru := range list {
				gs.Units = append(gs.Units, model.Unit{
					Kind:     model.UnitKind(k),
					Owner:    model.Side(side),
					Location: model.Loc(ru.X, ru.Y),
					Health:   ru.Health,
					ID:       ru.ID,
				})
			}
		}
	}
	return gs, nil
}
