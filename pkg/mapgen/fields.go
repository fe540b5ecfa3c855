package mapgen

import (
	"gridforge/pkg/engine/grid"
	"gridforge/pkg/mapgen/algorithm"
)

// OuterWalls selects every voxel on the grid's six boundary faces.
type OuterWalls struct {
	needsOne
	Save string
}

// RunOne builds the boundary selection.
func (c OuterWalls) RunOne(_ int64, in *grid.DataGrid) (*grid.DataGrid, error) {
	if c.Save == "" {
		return nil, &DomainError{Msg: "outer walls: empty save name"}
	}
	size := in.Dim()
	sel := grid.NewSelection()
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			sel.Put(grid.Coord{X: x, Y: y, Z: 0})
			sel.Put(grid.Coord{X: x, Y: y, Z: size.Z - 1})
		}
		for z := 0; z < size.Z; z++ {
			sel.Put(grid.Coord{X: x, Y: 0, Z: z})
			sel.Put(grid.Coord{X: x, Y: size.Y - 1, Z: z})
		}
	}
	for y := 0; y < size.Y; y++ {
		for z := 0; z < size.Z; z++ {
			sel.Put(grid.Coord{X: 0, Y: y, Z: z})
			sel.Put(grid.Coord{X: size.X - 1, Y: y, Z: z})
		}
	}
	in.Set(c.Save, sel)
	return in, nil
}

// DropFields removes named fields from the grid. Missing names are
// no-ops.
type DropFields struct {
	needsOne
	Fields []string
}

// RunOne drops each named field.
func (c DropFields) RunOne(_ int64, in *grid.DataGrid) (*grid.DataGrid, error) {
	for _, name := range c.Fields {
		in.Drop(name)
	}
	return in, nil
}

// IntervalSelect selects every voxel on a fixed lattice: coordinates
// congruent to the offset modulo the stride on all three axes. Stride
// components below 1 are treated as 1.
type IntervalSelect struct {
	needsOne
	Stride grid.Coord
	Offset grid.Coord
	Save   string
}

// RunOne builds the lattice selection.
func (c IntervalSelect) RunOne(_ int64, in *grid.DataGrid) (*grid.DataGrid, error) {
	stride := c.Stride
	if stride.X < 1 {
		stride.X = 1
	}
	if stride.Y < 1 {
		stride.Y = 1
	}
	if stride.Z < 1 {
		stride.Z = 1
	}
	onLattice := func(v, offset, step int) bool {
		return ((v-offset)%step+step)%step == 0
	}
	sel := grid.NewSelection()
	algorithm.FullBox(in.Dim()).Each(func(p grid.Coord) {
		if onLattice(p.X, c.Offset.X, stride.X) &&
			onLattice(p.Y, c.Offset.Y, stride.Y) &&
			onLattice(p.Z, c.Offset.Z, stride.Z) {
			sel.Put(p)
		}
	})
	in.Set(c.Save, sel)
	return in, nil
}

// ListInput injects a literal configured coordinate list as a
// PositionList field.
type ListInput struct {
	needsOne
	Positions []grid.Coord
	Save      string
}

// RunOne stores a copy of the configured list.
func (c ListInput) RunOne(_ int64, in *grid.DataGrid) (*grid.DataGrid, error) {
	in.Set(c.Save, grid.PositionList(append([]grid.Coord(nil), c.Positions...)))
	return in, nil
}
