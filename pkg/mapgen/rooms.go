package mapgen

import (
	"gridforge/pkg/engine/grid"
	"gridforge/pkg/mapgen/algorithm"
)

// RandomRooms places up to Count randomly sized rooms inside a bounding
// region, saving the ordered room list and, optionally, the union of all
// room members as a selection. Placement is capped at 2×Count attempts;
// a dense region may yield fewer rooms than requested.
type RandomRooms struct {
	needsOne
	Salt         int64
	Count        int
	Within       algorithm.Box
	MinSize      grid.Coord
	MaxSize      grid.Coord
	AllowOverlap bool
	Save         string
	SaveUnion    string // empty skips saving the union
}

// RunOne draws rooms with the effective seed and stores the results.
func (c RandomRooms) RunOne(seed int64, in *grid.DataGrid) (*grid.DataGrid, error) {
	placer := algorithm.RoomPlacer{
		Count:        c.Count,
		Within:       c.Within,
		MinSize:      c.MinSize,
		MaxSize:      c.MaxSize,
		AllowOverlap: c.AllowOverlap,
	}
	rooms, union := placer.Place(seed + c.Salt)
	in.Set(c.Save, rooms)
	if c.SaveUnion != "" {
		in.Set(c.SaveUnion, union)
	}
	return in, nil
}
