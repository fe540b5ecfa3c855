package grid

import "fmt"

// Coord identifies a single voxel by its integer (X, Y, Z) index.
// Coordinates held in sparse fields may be negative or out of bounds;
// bounds are enforced only where an operation requires them.
type Coord struct {
	X, Y, Z int
}

// Add returns the coordinate offset by o.
func (c Coord) Add(o Coord) Coord {
	return Coord{c.X + o.X, c.Y + o.Y, c.Z + o.Z}
}

// Along returns the component of the coordinate on the given axis.
func (c Coord) Along(a Axis) int {
	switch a {
	case AxisX:
		return c.X
	case AxisY:
		return c.Y
	default:
		return c.Z
	}
}

// Less orders coordinates lexicographically by X, then Y, then Z.
// Sparse fields use it wherever a deterministic iteration order matters.
func (c Coord) Less(o Coord) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.Z < o.Z
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Axis names one of the three grid axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis converts "x", "y" or "z" to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	default:
		return 0, fmt.Errorf("unknown axis %q", s)
	}
}

// Size holds the fixed dimensions of a DataGrid. Dimensions are set at
// construction and never change for the grid's lifetime.
type Size struct {
	X, Y, Z int
}

// Valid reports whether every dimension is at least 1.
func (s Size) Valid() bool {
	return s.X >= 1 && s.Y >= 1 && s.Z >= 1
}

// Count returns the number of voxels in the grid.
func (s Size) Count() int {
	return s.X * s.Y * s.Z
}

// Contains reports whether c is inside the grid bounds.
func (s Size) Contains(c Coord) bool {
	return c.X >= 0 && c.X < s.X &&
		c.Y >= 0 && c.Y < s.Y &&
		c.Z >= 0 && c.Z < s.Z
}

// Index returns the flat row-major slice index for an in-bounds coordinate.
func (s Size) Index(c Coord) int {
	return (c.X*s.Y+c.Y)*s.Z + c.Z
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%dx%d", s.X, s.Y, s.Z)
}

// EdgeMode is the policy for resolving a neighbor lookup that lands
// outside the grid bounds.
type EdgeMode int

const (
	// EdgeIgnore skips the out-of-bounds neighbor entirely.
	EdgeIgnore EdgeMode = iota
	// EdgeLoop wraps each axis index modulo the axis extent.
	EdgeLoop
	// EdgeClamp clamps each axis index to the nearest valid index.
	EdgeClamp
)

func (m EdgeMode) String() string {
	switch m {
	case EdgeIgnore:
		return "ignore"
	case EdgeLoop:
		return "loop"
	case EdgeClamp:
		return "clamp"
	default:
		return fmt.Sprintf("EdgeMode(%d)", int(m))
	}
}

// ParseEdgeMode converts "ignore", "loop" or "clamp" to an EdgeMode.
func ParseEdgeMode(s string) (EdgeMode, error) {
	switch s {
	case "ignore", "":
		return EdgeIgnore, nil
	case "loop":
		return EdgeLoop, nil
	case "clamp":
		return EdgeClamp, nil
	default:
		return 0, fmt.Errorf("unknown edge mode %q", s)
	}
}

// Resolve maps a possibly out-of-bounds coordinate to an in-bounds one
// according to the edge mode. The second result is false when the
// coordinate should be skipped (EdgeIgnore outside the bounds).
func (s Size) Resolve(c Coord, mode EdgeMode) (Coord, bool) {
	if s.Contains(c) {
		return c, true
	}
	switch mode {
	case EdgeLoop:
		return Coord{wrap(c.X, s.X), wrap(c.Y, s.Y), wrap(c.Z, s.Z)}, true
	case EdgeClamp:
		return Coord{clamp(c.X, s.X), clamp(c.Y, s.Y), clamp(c.Z, s.Z)}, true
	default:
		return Coord{}, false
	}
}

// wrap applies floored modulo so negative indices wrap to the far side.
func wrap(v, n int) int {
	return (v%n + n) % n
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
