// Package algorithm holds the generation algorithms commands are built
// from: random room placement, the synchronous cellular-automaton
// stepper, neighborhood convolution, the slope-constrained any-angle
// pathfinder, set operations and the gravity walk. Everything here is a
// pure function of its inputs; all randomness comes in as a seed.
package algorithm

import "gridforge/pkg/engine/grid"

// Box is an axis-aligned voxel region: Min inclusive, Max exclusive.
type Box struct {
	Min, Max grid.Coord
}

// FullBox covers an entire grid of the given size.
func FullBox(s grid.Size) Box {
	return Box{Max: grid.Coord{X: s.X, Y: s.Y, Z: s.Z}}
}

// Empty reports whether the box contains no voxels.
func (b Box) Empty() bool {
	return b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y || b.Max.Z <= b.Min.Z
}

// Clip intersects the box with the grid bounds.
func (b Box) Clip(s grid.Size) Box {
	out := b
	if out.Min.X < 0 {
		out.Min.X = 0
	}
	if out.Min.Y < 0 {
		out.Min.Y = 0
	}
	if out.Min.Z < 0 {
		out.Min.Z = 0
	}
	if out.Max.X > s.X {
		out.Max.X = s.X
	}
	if out.Max.Y > s.Y {
		out.Max.Y = s.Y
	}
	if out.Max.Z > s.Z {
		out.Max.Z = s.Z
	}
	return out
}

// Each visits every voxel in the box in row-major order.
func (b Box) Each(fn func(c grid.Coord)) {
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for z := b.Min.Z; z < b.Max.Z; z++ {
				fn(grid.Coord{X: x, Y: y, Z: z})
			}
		}
	}
}
