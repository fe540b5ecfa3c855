// Package preview renders one horizontal slice of a generated grid as
// colored text, for eyeballing pipeline output in a terminal.
package preview

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/term"

	"gridforge/pkg/engine/grid"
	"gridforge/pkg/mapgen"
)

// DefaultWidth is used when the terminal width cannot be determined.
const DefaultWidth = 80

var (
	ColorLow      color.Style
	ColorMid      color.Style
	ColorHigh     color.Style
	ColorSelected color.Style
	ColorEmpty    color.Style
	ColorFrame    color.Style
)

func init() {
	ColorLow = color.Style{color.FgBlue}
	ColorMid = color.Style{color.FgYellow}
	ColorHigh = color.Style{color.FgRed, color.OpBold}
	ColorSelected = color.Style{color.FgGreen, color.OpBold}
	ColorEmpty = color.Style{color.FgGray}
	ColorFrame = color.Style{color.FgGray, color.OpBold}
}

// ramp maps a normalized value to a density character.
var ramp = []rune(" .:-=+*#%@")

// Slice renders the y-level slice of a named field, x across and z
// down. Rows wider than the terminal are truncated.
func Slice(g *grid.DataGrid, name string, y int) (string, error) {
	field, ok := g.Get(name)
	if !ok {
		return "", &mapgen.MissingFieldError{Field: name}
	}
	size := g.Dim()
	if y < 0 || y >= size.Y {
		return "", &mapgen.DomainError{Msg: fmt.Sprintf("slice level %d outside grid height %d", y, size.Y)}
	}

	var cell func(c grid.Coord) string
	switch f := field.(type) {
	case *grid.DenseInt:
		lo, hi := intRange(f, size, y)
		cell = func(c grid.Coord) string { return scalar(float64(f.At(c)), lo, hi) }
	case *grid.DenseFloat:
		lo, hi := floatRange(f, size, y)
		cell = func(c grid.Coord) string { return scalar(f.At(c), lo, hi) }
	case grid.Selection:
		cell = func(c grid.Coord) string {
			if f.Has(c) {
				return ColorSelected.Sprint("#")
			}
			return ColorEmpty.Sprint(".")
		}
	default:
		return "", &mapgen.TypeMismatchError{Field: name, Want: "int, float or selection", Got: field.Kind()}
	}

	width := terminalWidth()
	cols := size.X
	if cols > width {
		cols = width
	}

	var b strings.Builder
	b.WriteString(ColorFrame.Sprintf("%s at y=%d (%dx%d)\n", name, y, size.X, size.Z))
	for z := 0; z < size.Z; z++ {
		for x := 0; x < cols; x++ {
			b.WriteString(cell(grid.Coord{X: x, Y: y, Z: z}))
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func scalar(v, lo, hi float64) string {
	t := 0.0
	if hi > lo {
		t = (v - lo) / (hi - lo)
	}
	t = math.Max(0, math.Min(1, t))
	ch := string(ramp[int(t*float64(len(ramp)-1))])
	switch {
	case t < 1.0/3:
		return ColorLow.Sprint(ch)
	case t < 2.0/3:
		return ColorMid.Sprint(ch)
	default:
		return ColorHigh.Sprint(ch)
	}
}

func intRange(f *grid.DenseInt, size grid.Size, y int) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for x := 0; x < size.X; x++ {
		for z := 0; z < size.Z; z++ {
			v := float64(f.At(grid.Coord{X: x, Y: y, Z: z}))
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	return lo, hi
}

func floatRange(f *grid.DenseFloat, size grid.Size, y int) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for x := 0; x < size.X; x++ {
		for z := 0; z < size.Z; z++ {
			v := f.At(grid.Coord{X: x, Y: y, Z: z})
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	return lo, hi
}

// terminalWidth returns the current terminal width, falling back to
// DefaultWidth when stdout is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth
	}
	return width
}
