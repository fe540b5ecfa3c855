package algorithm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"gridforge/pkg/engine/grid"
)

// SearchError reports that the pathfinder exhausted its search without
// reaching the goal. It is an expected, data-dependent outcome rather
// than a systemic fault.
type SearchError struct {
	From, To grid.Coord
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("no path from %v to %v", e.From, e.To)
}

// SearchMap is a weighted voxel grid searched with an any-angle variant
// of A* (Theta*). Moves are filtered by a maximum traversable slope, and
// neighbors strongly aligned with the incoming direction may re-parent
// directly to the grandparent through a line-of-sight cost check, which
// is what produces straighter, off-lattice paths.
type SearchMap struct {
	Weights *grid.DenseFloat
	// MaxSlope caps |Δy| / horizontal distance per move.
	MaxSlope float64
	// VerticalSkew scales the vertical term of the heuristic.
	VerticalSkew float64
}

type searchNode struct {
	cost     float64
	estimate float64
	parent   grid.Coord
	// dir is the movement vector from parent when the node was last
	// relaxed. The start node keeps a zero vector: its direction gates
	// evaluate on NaN and pass.
	dir r3.Vec
}

func (n *searchNode) score() float64 {
	// Intentionally non-admissible: weighting the heuristic makes the
	// search greedier in open terrain.
	return n.cost + 1.2*n.estimate
}

// Unit horizontal and diagonal moves combined with a vertical delta of
// -1/0/+1. Deliberately not full 26-connectivity; the line-of-sight
// shortcut recovers the angles these omit.
var searchOffsets = [12]grid.Coord{
	{X: 0, Y: 0, Z: 1}, {X: 0, Y: 0, Z: -1}, {X: 1, Y: 0, Z: 0}, {X: -1, Y: 0, Z: 0},
	{X: 0, Y: 1, Z: 1}, {X: 0, Y: 1, Z: -1}, {X: 1, Y: 1, Z: 0}, {X: -1, Y: 1, Z: 0},
	{X: 0, Y: -1, Z: 1}, {X: 0, Y: -1, Z: -1}, {X: 1, Y: -1, Z: 0}, {X: -1, Y: -1, Z: 0},
}

// FindPath searches from start to goal and returns every voxel crossed by
// the resulting path, re-materialized by walking each parent edge's line.
// The search is fully deterministic: the open set is scanned linearly for
// its minimum score with lexicographic coordinate tie-breaking.
func (m SearchMap) FindPath(start, goal grid.Coord) (grid.Selection, error) {
	size := m.Weights.Size()
	open := map[grid.Coord]*searchNode{
		start: {estimate: m.heuristic(start, goal), parent: start},
	}
	closed := make(map[grid.Coord]*searchNode)

	for len(open) > 0 {
		cur, curNode := popMin(open)

		if cur == goal {
			return m.reconstruct(start, goal, curNode, closed)
		}

		for _, off := range searchOffsets {
			nb := cur.Add(off)
			if !size.Contains(nb) {
				continue
			}
			if _, done := closed[nb]; done {
				continue
			}

			move := vecBetween(cur, nb)
			horizontal := math.Hypot(move.X, move.Z)
			if math.Abs(move.Y)/horizontal > m.MaxSlope {
				continue
			}
			d := dirDot(move, curNode.dir)
			if d > -0.05 {
				continue // near-reversal; only forward or turning moves pass
			}

			node, seen := open[nb]
			if !seen {
				node = &searchNode{
					cost:     math.Inf(1),
					estimate: m.heuristic(nb, goal),
					parent:   cur,
					dir:      move,
				}
				open[nb] = node
			}

			if gp, ok := closed[curNode.parent]; d < -0.75 && ok {
				// Strongly aligned with the incoming direction: try to
				// re-parent straight to the grandparent along its line
				// of sight.
				jump := vecBetween(curNode.parent, nb)
				if cand := gp.cost + m.rayCost(curNode.parent, jump); cand < node.cost {
					node.cost = cand
					node.parent = curNode.parent
					node.dir = jump
				}
			} else {
				if cand := curNode.cost + m.rayCost(cur, move); cand < node.cost {
					node.cost = cand
					node.parent = cur
					node.dir = move
				}
			}
		}

		closed[cur] = curNode
	}

	return grid.Selection{}, &SearchError{From: start, To: goal}
}

// reconstruct walks the parent chain from the goal, inserting every voxel
// crossed by each parent edge.
func (m SearchMap) reconstruct(start, goal grid.Coord, goalNode *searchNode, closed map[grid.Coord]*searchNode) (grid.Selection, error) {
	sel := grid.NewSelection()
	cur, node := goal, goalNode
	for cur != start {
		if cn, ok := closed[cur]; ok {
			node = cn
		}
		if node.parent == cur {
			return grid.Selection{}, &SearchError{From: start, To: goal}
		}
		m.raySelect(node.parent, node.dir, sel)
		cur = node.parent
	}
	sel.Put(start)
	sel.Put(goal)
	return sel, nil
}

// rayCost voxel-steps the line from the center of start along the move
// vector, summing per-voxel weights. The origin voxel is free; a
// traversal that exits the grid stops accumulating at the boundary.
func (m SearchMap) rayCost(start grid.Coord, along r3.Vec) float64 {
	size := m.Weights.Size()
	mag := r3.Norm(along)
	walk := newRayWalk(start, along)
	cost := 0.0
	for {
		t, c := walk.next()
		if t >= mag {
			return cost
		}
		if t > 0 {
			if !size.Contains(c) {
				return cost
			}
			cost += m.Weights.At(c)
		}
	}
}

// raySelect inserts every voxel the line from start along the move vector
// passes through, origin included.
func (m SearchMap) raySelect(start grid.Coord, along r3.Vec, sel grid.Selection) {
	mag := r3.Norm(along)
	if mag == 0 {
		sel.Put(start)
		return
	}
	walk := newRayWalk(start, along)
	for {
		t, c := walk.next()
		if t >= mag {
			return
		}
		sel.Put(c)
	}
}

func (m SearchMap) heuristic(a, b grid.Coord) float64 {
	horizontal := math.Hypot(float64(a.X-b.X), float64(a.Z-b.Z))
	dy := float64(a.Y - b.Y)
	return math.Sqrt(horizontal + m.VerticalSkew*m.VerticalSkew*dy*dy)
}

// popMin removes and returns the open node with the lowest score. Linear
// scan, not a heap: open sets stay small here, and lexicographic
// tie-breaking keeps the pop order independent of map iteration order.
func popMin(open map[grid.Coord]*searchNode) (grid.Coord, *searchNode) {
	var bestC grid.Coord
	var bestN *searchNode
	for c, n := range open {
		if bestN == nil {
			bestC, bestN = c, n
			continue
		}
		s, best := n.score(), bestN.score()
		if s < best || (s == best && c.Less(bestC)) {
			bestC, bestN = c, n
		}
	}
	delete(open, bestC)
	return bestC, bestN
}

func vecBetween(from, to grid.Coord) r3.Vec {
	return r3.Vec{
		X: float64(to.X - from.X),
		Y: float64(to.Y - from.Y),
		Z: float64(to.Z - from.Z),
	}
}

// dirDot is the dot product of the two directions normalized. A
// zero-length input yields NaN, which fails every comparison and so
// passes both direction gates.
func dirDot(a, b r3.Vec) float64 {
	return r3.Dot(a, b) / (r3.Norm(a) * r3.Norm(b))
}
