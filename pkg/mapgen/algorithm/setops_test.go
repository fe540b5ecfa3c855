package algorithm

import (
	"testing"

	"gridforge/pkg/engine/grid"
)

func coordSet(xs ...int) grid.Selection {
	s := grid.NewSelection()
	for _, x := range xs {
		s.Put(grid.Coord{X: x})
	}
	return s
}

func TestUnion(t *testing.T) {
	got := Union(coordSet(1, 2), coordSet(2, 3))
	for _, x := range []int{1, 2, 3} {
		if !got.Has(grid.Coord{X: x}) {
			t.Errorf("union missing x=%d", x)
		}
	}
	if got.Size() != 3 {
		t.Errorf("union size = %d, want 3", got.Size())
	}
}

func TestIntersect(t *testing.T) {
	got := Intersect(coordSet(1, 2, 3), coordSet(2, 3, 4))
	if got.Size() != 2 || !got.Has(grid.Coord{X: 2}) || !got.Has(grid.Coord{X: 3}) {
		t.Errorf("intersect = %v, want {2,3}", got.Sorted())
	}
}

func TestDifference_Asymmetric(t *testing.T) {
	a, b := coordSet(1, 2, 3), coordSet(2)
	got := Difference(a, b)
	if got.Size() != 2 || got.Has(grid.Coord{X: 2}) {
		t.Errorf("a-b = %v, want {1,3}", got.Sorted())
	}
	rev := Difference(b, a)
	if rev.Size() != 0 {
		t.Errorf("b-a = %v, want empty", rev.Sorted())
	}
}

func TestSetOps_DoNotMutateInputs(t *testing.T) {
	a, b := coordSet(1), coordSet(2)
	Union(a, b)
	Intersect(a, b)
	Difference(a, b)
	if a.Size() != 1 || b.Size() != 1 {
		t.Error("set operation mutated an input selection")
	}
}
