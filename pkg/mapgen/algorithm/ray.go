package algorithm

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"gridforge/pkg/engine/grid"
)

// rayWalk steps through the voxels crossed by a line segment starting at
// the center of an origin voxel and running along a direction vector.
// Successive next calls return each crossed voxel together with the arc
// length at which the segment enters it; the origin is returned first at
// arc length zero. Axis crossings that tie are resolved x before y
// before z, which keeps traversal order deterministic.
type rayWalk struct {
	cell   grid.Coord
	step   [3]int
	tMax   [3]float64
	tDelta [3]float64
	first  bool
}

func newRayWalk(origin grid.Coord, dir r3.Vec) *rayWalk {
	w := &rayWalk{cell: origin, first: true}
	mag := r3.Norm(dir)
	comps := [3]float64{dir.X, dir.Y, dir.Z}
	for i, d := range comps {
		if d == 0 || mag == 0 {
			w.tMax[i] = math.Inf(1)
			w.tDelta[i] = math.Inf(1)
			continue
		}
		u := math.Abs(d / mag)
		if d > 0 {
			w.step[i] = 1
		} else {
			w.step[i] = -1
		}
		// From the voxel center, the first boundary on each axis is half
		// a voxel away.
		w.tMax[i] = 0.5 / u
		w.tDelta[i] = 1 / u
	}
	return w
}

func (w *rayWalk) next() (float64, grid.Coord) {
	if w.first {
		w.first = false
		return 0, w.cell
	}
	axis := 0
	if w.tMax[1] < w.tMax[axis] {
		axis = 1
	}
	if w.tMax[2] < w.tMax[axis] {
		axis = 2
	}
	t := w.tMax[axis]
	w.tMax[axis] += w.tDelta[axis]
	switch axis {
	case 0:
		w.cell.X += w.step[0]
	case 1:
		w.cell.Y += w.step[1]
	default:
		w.cell.Z += w.step[2]
	}
	return t, w.cell
}
