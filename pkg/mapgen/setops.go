package mapgen

import (
	"fmt"

	"gridforge/pkg/engine/grid"
	"gridforge/pkg/mapgen/algorithm"
)

// SetOp names a binary set operation over selections.
type SetOp int

const (
	SetUnion SetOp = iota
	SetIntersect
	SetDifference
)

func (op SetOp) String() string {
	switch op {
	case SetUnion:
		return "union"
	case SetIntersect:
		return "intersect"
	case SetDifference:
		return "difference"
	default:
		return fmt.Sprintf("SetOp(%d)", int(op))
	}
}

// SetOps combines two Selection fields with a set operation and saves the
// result. Difference is A minus B.
type SetOps struct {
	needsOne
	Op   SetOp
	A, B string
	Save string
}

// RunOne applies the operation. Either source not being a selection is a
// type mismatch.
func (c SetOps) RunOne(_ int64, in *grid.DataGrid) (*grid.DataGrid, error) {
	a, err := selectionField(in, c.A)
	if err != nil {
		return nil, err
	}
	b, err := selectionField(in, c.B)
	if err != nil {
		return nil, err
	}
	var out grid.Selection
	switch c.Op {
	case SetUnion:
		out = algorithm.Union(a, b)
	case SetIntersect:
		out = algorithm.Intersect(a, b)
	case SetDifference:
		out = algorithm.Difference(a, b)
	default:
		return nil, &DomainError{Msg: fmt.Sprintf("set ops: unknown operation %d", int(c.Op))}
	}
	in.Set(c.Save, out)
	return in, nil
}

// SelectFall drops every member of a source selection along one axis
// until blocked by a solid selection or the grid boundary. With Column
// set, every traversed cell is recorded instead of just the resting
// cell.
type SelectFall struct {
	needsOne
	Source  string
	Solid   string
	Axis    grid.Axis
	Reverse bool
	Column  bool
	Save    string
}

// RunOne performs the walk for every source member.
func (c SelectFall) RunOne(_ int64, in *grid.DataGrid) (*grid.DataGrid, error) {
	src, err := selectionField(in, c.Source)
	if err != nil {
		return nil, err
	}
	solid, err := selectionField(in, c.Solid)
	if err != nil {
		return nil, err
	}
	in.Set(c.Save, algorithm.Fall(in.Dim(), src, solid, c.Axis, c.Reverse, c.Column))
	return in, nil
}
