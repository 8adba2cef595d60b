package board

import "github.com/nstehr/indigo/model"

// SkipReason explains why a single placement attempt did not happen.
type SkipReason int

const (
	SkipInvalidLocation SkipReason = iota
	SkipInsufficientResource
	SkipOccupiedCell
	SkipIllegalPlacement
)

var skipNames = [...]string{"invalid_location", "insufficient_resource", "occupied_cell", "illegal_placement"}

func (r SkipReason) String() string {
	if r >= 0 && int(r) < len(skipNames) {
		return skipNames[r]
	}
	return "unknown"
}

// Err maps the reason onto the model's sentinel error.
func (r SkipReason) Err() error {
	switch r {
	case SkipInvalidLocation:
		return model.ErrInvalidLocation
	case SkipInsufficientResource:
		return model.ErrInsufficientResource
	case SkipOccupiedCell:
		return model.ErrOccupiedCell
	default:
		return model.ErrIllegalPlacement
	}
}

// Outcome aggregates a batch of placement attempts. Failures are counted,
// never raised, so callers can keep going and report totals.
type Outcome struct {
	Placed  int
	Skipped map[SkipReason]int
}

func (o *Outcome) skip(r SkipReason) {
	if o.Skipped == nil {
		o.Skipped = make(map[SkipReason]int)
	}
	o.Skipped[r]++
}

// Merge folds other into o.
func (o *Outcome) Merge(other Outcome) {
	o.Placed += other.Placed
	for r, n := range other.Skipped {
		if o.Skipped == nil {
			o.Skipped = make(map[SkipReason]int)
		}
		o.Skipped[r] += n
	}
}

// SkippedTotal counts skipped attempts across all reasons.
func (o Outcome) SkippedTotal() int {
	n := 0
	for _, c := range o.Skipped {
		n += c
	}
	return n
}
