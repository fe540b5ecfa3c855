package preview

import (
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridforge/pkg/engine/grid"
	"gridforge/pkg/mapgen"
)

func init() {
	// Keep assertions on plain characters.
	color.Disable()
}

func TestSlice_Selection(t *testing.T) {
	g := grid.New(grid.Size{X: 3, Y: 2, Z: 2})
	g.Set("walls", grid.NewSelection(
		grid.Coord{X: 1, Y: 0, Z: 0},
		grid.Coord{X: 2, Y: 1, Z: 1},
	))

	out, err := Slice(g, "walls", 0)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3, "header plus one row per z")
	assert.Contains(t, lines[0], "walls")
	assert.Equal(t, ".#.", lines[1])
	assert.Equal(t, "...", lines[2], "members on other y levels stay hidden")
}

func TestSlice_IntRamp(t *testing.T) {
	g := grid.New(grid.Size{X: 3, Y: 1, Z: 1})
	f := grid.NewDenseInt(g.Dim())
	f.Set(grid.Coord{X: 1}, 5)
	f.Set(grid.Coord{X: 2}, 10)
	g.Set("height", f)

	out, err := Slice(g, "height", 0)
	require.NoError(t, err)
	row := strings.Split(strings.TrimRight(out, "\n"), "\n")[1]
	require.Len(t, row, 3)
	assert.Equal(t, byte(' '), row[0], "minimum maps to the lightest rune")
	assert.Equal(t, byte('@'), row[2], "maximum maps to the densest rune")
}

func TestSlice_UniformFieldStaysLow(t *testing.T) {
	g := grid.New(grid.Size{X: 2, Y: 1, Z: 1})
	g.Set("flat", grid.NewDenseFloat(g.Dim()))

	out, err := Slice(g, "flat", 0)
	require.NoError(t, err)
	row := strings.Split(strings.TrimRight(out, "\n"), "\n")[1]
	assert.Equal(t, "  ", row, "a constant field must not divide by a zero range")
}

func TestSlice_Errors(t *testing.T) {
	g := grid.New(grid.Size{X: 2, Y: 2, Z: 2})
	g.Set("pts", grid.PositionList{})
	g.Set("ok", grid.NewSelection())

	var merr *mapgen.MissingFieldError
	_, err := Slice(g, "missing", 0)
	assert.ErrorAs(t, err, &merr)

	var terr *mapgen.TypeMismatchError
	_, err = Slice(g, "pts", 0)
	assert.ErrorAs(t, err, &terr)

	var derr *mapgen.DomainError
	_, err = Slice(g, "ok", 5)
	assert.ErrorAs(t, err, &derr)
	_, err = Slice(g, "ok", -1)
	assert.ErrorAs(t, err, &derr)
}
