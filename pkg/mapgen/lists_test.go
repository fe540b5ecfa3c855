package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridforge/pkg/engine/grid"
)

func roomAt(c grid.Coord) grid.Room {
	return grid.Room{Members: grid.NewSelection(c), Center: &c}
}

func TestGetRoomCenters_PreservesOrderSkipsNil(t *testing.T) {
	g := grid.New(grid.Size{X: 8, Y: 8, Z: 8})
	g.Set("rooms", grid.RoomList{
		roomAt(grid.Coord{X: 5}),
		{Members: grid.NewSelection(grid.Coord{X: 1})},
		roomAt(grid.Coord{X: 2}),
	})
	out, err := GetRoomCenters{Source: "rooms", Save: "centers"}.RunOne(0, g)
	require.NoError(t, err)

	f, _ := out.Get("centers")
	assert.Equal(t, grid.PositionList{{X: 5}, {X: 2}}, f.(grid.PositionList))
}

func TestGetRoomCenters_TypeMismatch(t *testing.T) {
	g := grid.New(grid.Size{X: 1, Y: 1, Z: 1})
	g.Set("rooms", grid.NewSelection())
	_, err := GetRoomCenters{Source: "rooms", Save: "c"}.RunOne(0, g)
	var terr *TypeMismatchError
	assert.ErrorAs(t, err, &terr)
}

func TestSortList_ByAxis(t *testing.T) {
	g := grid.New(grid.Size{X: 8, Y: 8, Z: 8})
	g.Set("pts", grid.PositionList{{Z: 3}, {Z: 1}, {Z: 2}})

	out, err := SortList{Source: "pts", Axis: grid.AxisZ, Save: "sorted"}.RunOne(0, g)
	require.NoError(t, err)
	f, _ := out.Get("sorted")
	assert.Equal(t, grid.PositionList{{Z: 1}, {Z: 2}, {Z: 3}}, f.(grid.PositionList))

	// The unsorted source survives under its own name.
	f, _ = out.Get("pts")
	assert.Equal(t, grid.PositionList{{Z: 3}, {Z: 1}, {Z: 2}}, f.(grid.PositionList))
}

func TestSortList_ReverseAndStable(t *testing.T) {
	g := grid.New(grid.Size{X: 8, Y: 8, Z: 8})
	// Equal y keys: stability keeps the original relative order.
	g.Set("pts", grid.PositionList{{X: 1, Y: 2}, {X: 2, Y: 5}, {X: 3, Y: 2}})

	out, err := SortList{Source: "pts", Axis: grid.AxisY, Reverse: true}.RunOne(0, g)
	require.NoError(t, err)
	f, _ := out.Get("pts")
	assert.Equal(t, grid.PositionList{{X: 2, Y: 5}, {X: 1, Y: 2}, {X: 3, Y: 2}}, f.(grid.PositionList))
}

func TestListToSel_Dedupes(t *testing.T) {
	g := grid.New(grid.Size{X: 4, Y: 1, Z: 1})
	g.Set("pts", grid.PositionList{{X: 1}, {X: 1}, {X: 2}})
	out, err := ListToSel{Source: "pts", Save: "sel"}.RunOne(0, g)
	require.NoError(t, err)
	f, _ := out.Get("sel")
	assert.Equal(t, 2, f.(grid.Selection).Size())
}

func TestSelToList_LexicographicOrder(t *testing.T) {
	g := grid.New(grid.Size{X: 4, Y: 4, Z: 4})
	g.Set("sel", grid.NewSelection(
		grid.Coord{X: 2, Y: 0, Z: 0},
		grid.Coord{X: 0, Y: 0, Z: 1},
		grid.Coord{X: 0, Y: 3, Z: 0},
	))
	out, err := SelToList{Source: "sel", Save: "pts"}.RunOne(0, g)
	require.NoError(t, err)
	f, _ := out.Get("pts")
	assert.Equal(t, grid.PositionList{
		{X: 0, Y: 0, Z: 1},
		{X: 0, Y: 3, Z: 0},
		{X: 2, Y: 0, Z: 0},
	}, f.(grid.PositionList))
}

func TestListCommands_MissingSource(t *testing.T) {
	g := grid.New(grid.Size{X: 1, Y: 1, Z: 1})
	var merr *MissingFieldError

	_, err := SortList{Source: "nope"}.RunOne(0, g)
	assert.ErrorAs(t, err, &merr)
	_, err = ListToSel{Source: "nope", Save: "s"}.RunOne(0, g)
	assert.ErrorAs(t, err, &merr)
	_, err = SelToList{Source: "nope", Save: "s"}.RunOne(0, g)
	assert.ErrorAs(t, err, &merr)
}
