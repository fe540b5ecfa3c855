package algorithm

import "gridforge/pkg/engine/grid"

// Union returns a new selection holding every member of a or b.
func Union(a, b grid.Selection) grid.Selection {
	out := a.Clone()
	b.Each(func(c grid.Coord) { out.Put(c) })
	return out
}

// Intersect returns a new selection holding the members common to a and b.
func Intersect(a, b grid.Selection) grid.Selection {
	out := grid.NewSelection()
	a.Each(func(c grid.Coord) {
		if b.Has(c) {
			out.Put(c)
		}
	})
	return out
}

// Difference returns a new selection holding the members of a not in b.
func Difference(a, b grid.Selection) grid.Selection {
	out := grid.NewSelection()
	a.Each(func(c grid.Coord) {
		if !b.Has(c) {
			out.Put(c)
		}
	})
	return out
}
