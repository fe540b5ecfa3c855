package mapgen

import (
	"sort"

	"gridforge/pkg/engine/grid"
)

// GetRoomCenters extracts room centers from a RoomList into a
// PositionList, preserving room order. Rooms without a center are
// skipped.
type GetRoomCenters struct {
	needsOne
	Source string
	Save   string
}

// RunOne extracts the centers.
func (c GetRoomCenters) RunOne(_ int64, in *grid.DataGrid) (*grid.DataGrid, error) {
	rooms, err := roomListField(in, c.Source)
	if err != nil {
		return nil, err
	}
	out := make(grid.PositionList, 0, len(rooms))
	for _, room := range rooms {
		if room.Center != nil {
			out = append(out, *room.Center)
		}
	}
	in.Set(c.Save, out)
	return in, nil
}

// SortList stably sorts a PositionList by one coordinate axis, ascending
// or descending. With an empty Save the sorted list replaces its source.
type SortList struct {
	needsOne
	Source  string
	Axis    grid.Axis
	Reverse bool
	Save    string
}

// RunOne sorts a copy of the list.
func (c SortList) RunOne(_ int64, in *grid.DataGrid) (*grid.DataGrid, error) {
	list, err := positionListField(in, c.Source)
	if err != nil {
		return nil, err
	}
	out := append(grid.PositionList(nil), list...)
	sort.SliceStable(out, func(i, j int) bool {
		vi, vj := out[i].Along(c.Axis), out[j].Along(c.Axis)
		if c.Reverse {
			return vi > vj
		}
		return vi < vj
	})
	save := c.Save
	if save == "" {
		save = c.Source
	}
	in.Set(save, out)
	return in, nil
}

// ListToSel converts a PositionList into a Selection. Duplicate list
// entries collapse into one member.
type ListToSel struct {
	needsOne
	Source string
	Save   string
}

// RunOne builds the selection.
func (c ListToSel) RunOne(_ int64, in *grid.DataGrid) (*grid.DataGrid, error) {
	list, err := positionListField(in, c.Source)
	if err != nil {
		return nil, err
	}
	in.Set(c.Save, grid.NewSelection(list...))
	return in, nil
}

// SelToList converts a Selection into a PositionList. Sets are unordered,
// so the list is emitted in lexicographic coordinate order to keep runs
// byte-identical.
type SelToList struct {
	needsOne
	Source string
	Save   string
}

// RunOne builds the list.
func (c SelToList) RunOne(_ int64, in *grid.DataGrid) (*grid.DataGrid, error) {
	sel, err := selectionField(in, c.Source)
	if err != nil {
		return nil, err
	}
	in.Set(c.Save, grid.PositionList(sel.Sorted()))
	return in, nil
}
