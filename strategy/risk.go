package strategy

import (
	"log/slog"
	"math"

	"github.com/nstehr/indigo/board"
	"github.com/nstehr/indigo/model"
	"github.com/nstehr/indigo/navigation"
)

// MaxRisk scores an entry point with no path. It loses every comparison
// against a traceable entry.
var MaxRisk = math.Inf(1)

// PathFinder traces a mobile unit's route from its spawn cell.
type PathFinder interface {
	FindPath(b navigation.Blocker, start model.Location) []model.Location
}

// RiskEstimator scores spawn points by the structure damage a unit would be
// exposed to along its route.
type RiskEstimator struct {
	Paths PathFinder
	Side  model.Side // owner of the unit walking the path
}

// Score sums, over every cell of the route from entry, the per-shot damage
// of each enemy structure in range of that cell. Lower is safer.
func (r RiskEstimator) Score(v *board.View, entry model.Location) float64 {
	path := r.Paths.FindPath(v, entry)
	if len(path) == 0 {
		slog.Debug("no path from entry", "entry", entry, "error", model.ErrNoPath)
		return MaxRisk
	}

	cat := v.Catalog()
	total := 0.0
	for _, loc := range path {
		attackers, err := v.AttackersOf(loc, r.Side, 0)
		if err != nil {
			slog.Warn("path left the arena", "entry", entry, "location", loc, "error", err)
			continue
		}
		for _, a := range attackers {
			total += math.Max(cat.Spec(a.Kind).Damage, 0)
		}
	}
	return total
}

// Safest scores candidates in order and returns the index of the lowest.
// Ties go to the earliest candidate. It returns -1 for an empty list.
func (r RiskEstimator) Safest(v *board.View, candidates []model.Location) (int, []float64) {
	scores := make([]float64, len(candidates))
	best := -1
	for i, c := range candidates {
		scores[i] = r.Score(v, c)
		if best < 0 || scores[i] < scores[best] {
			best = i
		}
	}
	return best, scores
}
