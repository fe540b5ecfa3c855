package algorithm

import "gridforge/pkg/engine/grid"

// Fall walks each member of src one step at a time along one axis until
// the next cell is a member of solid or leaves the grid. With column set
// it records every visited cell; otherwise only the last non-solid cell
// reached. A member whose first step is already blocked still emits its
// starting coordinate.
func Fall(size grid.Size, src, solid grid.Selection, axis grid.Axis, reverse, column bool) grid.Selection {
	step := grid.Coord{}
	delta := 1
	if reverse {
		delta = -1
	}
	switch axis {
	case grid.AxisX:
		step.X = delta
	case grid.AxisY:
		step.Y = delta
	default:
		step.Z = delta
	}

	out := grid.NewSelection()
	src.Each(func(start grid.Coord) {
		cur := start
		if column {
			out.Put(cur)
		}
		for {
			next := cur.Add(step)
			if solid.Has(next) || !size.Contains(next) {
				break
			}
			cur = next
			if column {
				out.Put(cur)
			}
		}
		if !column {
			out.Put(cur)
		}
	})
	return out
}
