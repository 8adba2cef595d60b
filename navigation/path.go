// Package navigation traces the route a mobile unit walks from its spawn
// cell. Units head for the edge opposite their quadrant; when that edge is
// walled off they stop at the reachable cell deepest toward it.
package navigation

import (
	"github.com/nstehr/indigo/model"
)

// Blocker answers whether a cell holds a structure.
type Blocker interface {
	OccupiedByStationary(loc model.Location) (bool, error)
}

// Pathfinder traces routes over the arena.
type Pathfinder struct{}

var dirs = [4]model.Location{{X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: -1, Y: 0}}

func walkable(b Blocker, l model.Location) bool {
	if !model.InArena(l) {
		return false
	}
	blocked, err := b.OccupiedByStationary(l)
	return err == nil && !blocked
}

// FindPath returns the cells a unit spawned at start would traverse, start
// included. It returns nil when start is outside the arena or blocked.
func (Pathfinder) FindPath(b Blocker, start model.Location) []model.Location {
	if !walkable(b, start) {
		return nil
	}
	target := model.TargetEdge(start)

	reach := flood(b, []model.Location{start})
	var goals []model.Location
	for _, l := range model.EdgeLocations(target) {
		if _, ok := reach[l]; ok {
			goals = append(goals, l)
		}
	}
	if len(goals) == 0 {
		goals = []model.Location{deepest(reach, target)}
	}

	dist := flood(b, goals)
	path := []model.Location{start}
	cur := start
	lastHorizontal := true // first move prefers vertical
	for dist[cur] > 0 {
		next, horizontal := step(dist, cur, lastHorizontal, target)
		path = append(path, next)
		cur = next
		lastHorizontal = horizontal
	}
	return path
}

// flood runs a BFS from every source over walkable cells and returns the
// step distance to the nearest source.
func flood(b Blocker, sources []model.Location) map[model.Location]int {
	dist := make(map[model.Location]int, 256)
	queue := make([]model.Location, 0, 256)
	for _, s := range sources {
		if _, seen := dist[s]; seen {
			continue
		}
		dist[s] = 0
		queue = append(queue, s)
	}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for _, d := range dirs {
			n := cur.Offset(d.X, d.Y)
			if _, seen := dist[n]; seen {
				continue
			}
			if !walkable(b, n) {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}
	return dist
}

// deepest picks the reachable cell that makes the most progress toward
// target: furthest along y first, then furthest along x.
func deepest(reach map[model.Location]int, target model.Edge) model.Location {
	var best model.Location
	bestY, bestX := -1<<31, -1<<31
	for l := range reach {
		y, x := l.Y, l.X
		switch target {
		case model.EdgeTopLeft:
			x = -x
		case model.EdgeBottomLeft:
			y, x = -y, -x
		case model.EdgeBottomRight:
			y = -y
		}
		if y > bestY || (y == bestY && x > bestX) {
			best, bestY, bestX = l, y, x
		}
	}
	return best
}

// step picks the neighbour one closer to the goal. Among equals it prefers
// switching between horizontal and vertical moves, then moving toward the
// target edge.
func step(dist map[model.Location]int, cur model.Location, lastHorizontal bool, target model.Edge) (model.Location, bool) {
	want := dist[cur] - 1
	var best model.Location
	bestHorizontal := false
	bestScore := -1
	for _, d := range dirs {
		n := cur.Offset(d.X, d.Y)
		nd, ok := dist[n]
		if !ok || nd != want {
			continue
		}
		horizontal := d.X != 0
		score := 0
		if horizontal != lastHorizontal {
			score += 2
		}
		if toward(d, target) {
			score++
		}
		if score > bestScore {
			best, bestHorizontal, bestScore = n, horizontal, score
		}
	}
	return best, bestHorizontal
}

func toward(d model.Location, target model.Edge) bool {
	switch target {
	case model.EdgeTopRight:
		return d.X > 0 || d.Y > 0
	case model.EdgeTopLeft:
		return d.X < 0 || d.Y > 0
	case model.EdgeBottomLeft:
		return d.X < 0 || d.Y < 0
	default:
		return d.X > 0 || d.Y < 0
	}
}
