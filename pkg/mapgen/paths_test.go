package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridforge/pkg/engine/grid"
	"gridforge/pkg/mapgen/algorithm"
)

func carveGrid(waypoints ...grid.Coord) *grid.DataGrid {
	g := grid.New(grid.Size{X: 6, Y: 6, Z: 6})
	weights := grid.NewDenseFloat(g.Dim())
	algorithm.FullBox(g.Dim()).Each(func(c grid.Coord) { weights.Set(c, 1) })
	g.Set("weights", weights)
	g.Set("stops", grid.PositionList(waypoints))
	return g
}

func TestCarvePaths_ConnectsWaypointChain(t *testing.T) {
	a := grid.Coord{X: 2, Y: 2, Z: 2}
	b := grid.Coord{X: 3, Y: 2, Z: 2}
	c := grid.Coord{X: 3, Y: 2, Z: 3}
	g := carveGrid(a, b, c)

	out, err := CarvePaths{
		WeightField: "weights", Waypoints: "stops",
		MaxSlope: 1, Save: "tunnels",
	}.RunOne(0, g)
	require.NoError(t, err)

	f, _ := out.Get("tunnels")
	sel := f.(grid.Selection)
	for _, w := range []grid.Coord{a, b, c} {
		assert.True(t, sel.Has(w), "waypoint %v not carved", w)
	}
}

func TestCarvePaths_TooFewWaypoints(t *testing.T) {
	g := carveGrid(grid.Coord{X: 1, Y: 1, Z: 1})
	_, err := CarvePaths{WeightField: "weights", Waypoints: "stops", MaxSlope: 1, Save: "t"}.RunOne(0, g)
	var derr *DomainError
	assert.ErrorAs(t, err, &derr)
}

func TestCarvePaths_MissingFields(t *testing.T) {
	g := carveGrid(grid.Coord{}, grid.Coord{X: 1})
	var merr *MissingFieldError

	_, err := CarvePaths{WeightField: "nope", Waypoints: "stops", Save: "t"}.RunOne(0, g)
	assert.ErrorAs(t, err, &merr)
	_, err = CarvePaths{WeightField: "weights", Waypoints: "nope", Save: "t"}.RunOne(0, g)
	assert.ErrorAs(t, err, &merr)
}

func TestCarvePaths_UnreachableSegmentAborts(t *testing.T) {
	// With a zero slope cap every climbing move is rejected, so the
	// second segment cannot be searched.
	a := grid.Coord{X: 2, Y: 2, Z: 2}
	b := grid.Coord{X: 3, Y: 2, Z: 2}
	c := grid.Coord{X: 3, Y: 3, Z: 2}
	g := carveGrid(a, b, c)

	out, err := CarvePaths{
		WeightField: "weights", Waypoints: "stops",
		MaxSlope: 0, Save: "tunnels",
	}.RunOne(0, g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "segment 1")
	assert.Nil(t, out)
	var serr *algorithm.SearchError
	assert.ErrorAs(t, err, &serr)
}
