package model

import "fmt"

// UnitKind indexes the unit archetypes in the order the engine's
// configuration lists them.
type UnitKind int

const (
	Filter     UnitKind = iota // cheap blocking wall
	Encryptor                  // support structure, used to shape lanes
	Destructor                 // turret
	Ping                       // fast mobile attacker
	EMP                        // long-range mobile attacker
	Scrambler                  // mobile interceptor
	Remove                     // removal marker, present in newer configs
)

// CoreKinds is the number of archetypes every configuration must provide.
const CoreKinds = 6

var kindNames = [...]string{"filter", "encryptor", "destructor", "ping", "emp", "scrambler", "remove"}

func (k UnitKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// UnitSpec is the configured profile of one archetype.
type UnitSpec struct {
	Kind       UnitKind
	Shorthand  string
	Cost       float64
	Damage     float64 // per-shot damage against mobile units
	Range      float64
	Health     float64
	Stationary bool
}

// Pool returns the resource this unit is paid from.
func (s UnitSpec) Pool() Resource {
	if s.Stationary {
		return Cores
	}
	return Bits
}

// Catalog is the read-only unit configuration for a match.
type Catalog struct {
	specs       []UnitSpec
	byShorthand map[string]UnitKind
}

// NewCatalog validates specs and indexes them by shorthand. specs must be in
// configuration order and contain at least the six core archetypes.
func NewCatalog(specs []UnitSpec) (*Catalog, error) {
	if len(specs) < CoreKinds {
		return nil, fmt.Errorf("catalog needs %d unit types, got %d", CoreKinds, len(specs))
	}
	c := &Catalog{
		specs:       make([]UnitSpec, len(specs)),
		byShorthand: make(map[string]UnitKind, len(specs)),
	}
	for i, s := range specs {
		if s.Shorthand == "" {
			return nil, fmt.Errorf("unit type %d has no shorthand", i)
		}
		if _, dup := c.byShorthand[s.Shorthand]; dup {
			return nil, fmt.Errorf("duplicate shorthand %q", s.Shorthand)
		}
		s.Kind = UnitKind(i)
		c.specs[i] = s
		c.byShorthand[s.Shorthand] = s.Kind
	}
	return c, nil
}

// Spec returns the profile for k. Unknown kinds yield a zero spec.
func (c *Catalog) Spec(k UnitKind) UnitSpec {
	if k < 0 || int(k) >= len(c.specs) {
		return UnitSpec{Kind: k}
	}
	return c.specs[k]
}

// KindOf resolves a shorthand such as "DF" to its kind.
func (c *Catalog) KindOf(shorthand string) (UnitKind, bool) {
	k, ok := c.byShorthand[shorthand]
	return k, ok
}

// Len returns the number of configured unit types.
func (c *Catalog) Len() int { return len(c.specs) }
