package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridforge/pkg/engine/grid"
)

func TestOuterWalls_SelectsBoundaryOnly(t *testing.T) {
	g := grid.New(grid.Size{X: 3, Y: 3, Z: 3})
	out, err := OuterWalls{Save: "walls"}.RunOne(0, g)
	require.NoError(t, err)

	f, _ := out.Get("walls")
	sel := f.(grid.Selection)
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				c := grid.Coord{X: x, Y: y, Z: z}
				onFace := x == 0 || x == 2 || y == 0 || y == 2 || z == 0 || z == 2
				assert.Equal(t, onFace, sel.Has(c), "voxel %v", c)
			}
		}
	}
	// Everything except the single interior voxel of a 3x3x3 grid.
	assert.Equal(t, 26, sel.Size())
}

func TestOuterWalls_EmptySaveFails(t *testing.T) {
	g := grid.New(grid.Size{X: 2, Y: 2, Z: 2})
	_, err := OuterWalls{}.RunOne(0, g)
	var derr *DomainError
	assert.ErrorAs(t, err, &derr)
}

func TestDropFields(t *testing.T) {
	g := grid.New(grid.Size{X: 1, Y: 1, Z: 1})
	g.Set("keep", grid.NewSelection())
	g.Set("toss", grid.NewSelection())

	out, err := DropFields{Fields: []string{"toss", "never-existed"}}.RunOne(0, g)
	require.NoError(t, err)
	assert.Equal(t, []string{"keep"}, out.Names())
}

func TestIntervalSelect_Lattice(t *testing.T) {
	g := grid.New(grid.Size{X: 4, Y: 4, Z: 4})
	out, err := IntervalSelect{
		Stride: grid.Coord{X: 2, Y: 2, Z: 2},
		Offset: grid.Coord{X: 1, Y: 1, Z: 1},
		Save:   "lattice",
	}.RunOne(0, g)
	require.NoError(t, err)

	f, _ := out.Get("lattice")
	sel := f.(grid.Selection)
	assert.True(t, sel.Has(grid.Coord{X: 1, Y: 1, Z: 1}))
	assert.True(t, sel.Has(grid.Coord{X: 3, Y: 1, Z: 3}))
	assert.False(t, sel.Has(grid.Coord{X: 2, Y: 1, Z: 1}))
	assert.Equal(t, 8, sel.Size())
}

func TestIntervalSelect_StrideBelowOneClamped(t *testing.T) {
	g := grid.New(grid.Size{X: 2, Y: 2, Z: 2})
	out, err := IntervalSelect{Save: "all"}.RunOne(0, g)
	require.NoError(t, err)
	f, _ := out.Get("all")
	assert.Equal(t, 8, f.(grid.Selection).Size())
}

func TestListInput_StoresCopy(t *testing.T) {
	g := grid.New(grid.Size{X: 4, Y: 1, Z: 1})
	positions := []grid.Coord{{X: 1}, {X: 3}}
	out, err := ListInput{Positions: positions, Save: "pts"}.RunOne(0, g)
	require.NoError(t, err)

	positions[0] = grid.Coord{X: 99}
	f, _ := out.Get("pts")
	list := f.(grid.PositionList)
	require.Len(t, list, 2)
	assert.Equal(t, grid.Coord{X: 1}, list[0], "stored list must not alias the configured slice")
}
