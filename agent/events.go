package agent

import (
	"fmt"

	"github.com/nstehr/indigo/model"
	"github.com/nstehr/indigo/strategy"
	"github.com/tidwall/gjson"
)

// Engine owner codes in event records.
const (
	ownerSelf     = 1
	ownerOpponent = 2
)

// ParseBreaches extracts the breach events of an action frame. Each event
// is [[x, y], damage, unitType, unitID, owner]. Malformed entries are
// skipped and counted.
func ParseBreaches(raw []byte) ([]strategy.Breach, int, error) {
	if !gjson.ValidBytes(raw) {
		return nil, 0, fmt.Errorf("%w: action frame is not valid JSON", model.ErrMalformedRecord)
	}

	var out []strategy.Breach
	bad := 0
	gjson.GetBytes(raw, "events.breach").ForEach(func(_, ev gjson.Result) bool {
		fields := ev.Array()
		if len(fields) < 5 {
			bad++
			return true
		}
		loc := fields[0].Array()
		if len(loc) < 2 {
			bad++
			return true
		}

		var attacker model.Side
		switch fields[4].Int() {
		case ownerSelf:
			attacker = model.Self
		case ownerOpponent:
			attacker = model.Opponent
		default:
			bad++
			return true
		}
		out = append(out, strategy.Breach{
			Location: model.Loc(int(loc[0].Int()), int(loc[1].Int())),
			Attacker: attacker,
		})
		return true
	})
	return out, bad, nil
}

// endSummary is the part of the end frame worth logging.
type endSummary struct {
	Turn   int
	Winner int
	Health [2]float64
}

func parseEnd(raw []byte) endSummary {
	res := gjson.GetManyBytes(raw, "turnInfo.1", "endStats.winner", "p1Stats.0", "p2Stats.0")
	return endSummary{
		Turn:   int(res[0].Int()),
		Winner: int(res[1].Int()),
		Health: [2]float64{res[2].Float(), res[3].Float()},
	}
}
