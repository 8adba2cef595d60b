package model

// The arena is a 28x28 grid of which only a diamond is playable. Rows below
// HalfArena belong to Self, rows at or above it to the Opponent.
const (
	ArenaSize = 28
	HalfArena = ArenaSize / 2
)

// Edge is one of the four diagonal borders of the diamond.
type Edge int

const (
	EdgeTopRight Edge = iota
	EdgeTopLeft
	EdgeBottomLeft
	EdgeBottomRight
)

func (e Edge) String() string {
	switch e {
	case EdgeTopRight:
		return "top_right"
	case EdgeTopLeft:
		return "top_left"
	case EdgeBottomLeft:
		return "bottom_left"
	case EdgeBottomRight:
		return "bottom_right"
	default:
		return "unknown"
	}
}

// Opposite returns the edge a unit spawned on e walks toward.
func (e Edge) Opposite() Edge {
	switch e {
	case EdgeTopRight:
		return EdgeBottomLeft
	case EdgeTopLeft:
		return EdgeBottomRight
	case EdgeBottomLeft:
		return EdgeTopRight
	default:
		return EdgeTopLeft
	}
}

// rowBounds returns the inclusive x range of row y.
func rowBounds(y int) (int, int) {
	size := y + 1
	if y >= HalfArena {
		size = ArenaSize - y
	}
	start := HalfArena - size
	return start, start + 2*size - 1
}

// InArena reports whether l lies inside the playable diamond.
func InArena(l Location) bool {
	if l.Y < 0 || l.Y >= ArenaSize {
		return false
	}
	lo, hi := rowBounds(l.Y)
	return l.X >= lo && l.X <= hi
}

// OnOwnHalf reports whether l is on the half of the board that side may build on.
func OnOwnHalf(l Location, side Side) bool {
	if side == Self {
		return l.Y < HalfArena
	}
	return l.Y >= HalfArena
}

// EdgeLocations lists the cells along e, starting from the board's centre line.
func EdgeLocations(e Edge) []Location {
	out := make([]Location, 0, HalfArena)
	for n := 0; n < HalfArena; n++ {
		var l Location
		switch e {
		case EdgeTopRight:
			l = Loc(HalfArena+n, ArenaSize-1-n)
		case EdgeTopLeft:
			l = Loc(HalfArena-1-n, ArenaSize-1-n)
		case EdgeBottomLeft:
			l = Loc(HalfArena-1-n, n)
		case EdgeBottomRight:
			l = Loc(HalfArena+n, n)
		}
		out = append(out, l)
	}
	return out
}

// OnEdge reports whether l sits on e.
func OnEdge(l Location, e Edge) bool {
	switch e {
	case EdgeTopRight:
		return l.Y >= HalfArena && l.X >= HalfArena && l.X+l.Y == ArenaSize-1+HalfArena
	case EdgeTopLeft:
		return l.Y >= HalfArena && l.X < HalfArena && l.Y-l.X == HalfArena
	case EdgeBottomLeft:
		return l.Y < HalfArena && l.X < HalfArena && l.X+l.Y == HalfArena-1
	case EdgeBottomRight:
		return l.Y < HalfArena && l.X >= HalfArena && l.X-l.Y == HalfArena
	}
	return false
}

// OwnEdges returns the two edges side may spawn mobile units on.
func OwnEdges(side Side) [2]Edge {
	if side == Self {
		return [2]Edge{EdgeBottomLeft, EdgeBottomRight}
	}
	return [2]Edge{EdgeTopLeft, EdgeTopRight}
}

// OnOwnEdge reports whether a mobile unit owned by side may spawn at l.
func OnOwnEdge(l Location, side Side) bool {
	edges := OwnEdges(side)
	return OnEdge(l, edges[0]) || OnEdge(l, edges[1])
}

// TargetEdge picks the edge a unit starting at l heads for, by quadrant.
func TargetEdge(l Location) Edge {
	left := l.X < HalfArena
	bottom := l.Y < HalfArena
	switch {
	case left && bottom:
		return EdgeTopRight
	case left && !bottom:
		return EdgeBottomRight
	case !left && bottom:
		return EdgeTopLeft
	default:
		return EdgeBottomLeft
	}
}

// LocationsInRange returns every arena cell within radius of center, center included.
func LocationsInRange(center Location, radius float64) []Location {
	r := int(radius) + 1
	var out []Location
	for y := center.Y - r; y <= center.Y+r; y++ {
		for x := center.X - r; x <= center.X+r; x++ {
			l := Loc(x, y)
			if !InArena(l) {
				continue
			}
			if center.Distance(l) <= radius {
				out = append(out, l)
			}
		}
	}
	return out
}
