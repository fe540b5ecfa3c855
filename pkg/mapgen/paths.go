package mapgen

import (
	"fmt"

	"gridforge/pkg/engine/grid"
	"gridforge/pkg/mapgen/algorithm"
)

// CarvePaths connects each consecutive pair of waypoints with the
// any-angle pathfinder over a weight field, saving the union of every
// crossed voxel as a selection. One unreachable segment aborts the whole
// command: a waypoint chain with a silently missing segment would look
// connected to downstream commands while not being so.
type CarvePaths struct {
	needsOne
	WeightField  string
	Waypoints    string
	MaxSlope     float64
	VerticalSkew float64
	Save         string
}

// RunOne searches each segment in waypoint order.
func (c CarvePaths) RunOne(_ int64, in *grid.DataGrid) (*grid.DataGrid, error) {
	weights, err := denseFloatField(in, c.WeightField)
	if err != nil {
		return nil, err
	}
	waypoints, err := positionListField(in, c.Waypoints)
	if err != nil {
		return nil, err
	}
	if len(waypoints) < 2 {
		return nil, &DomainError{Msg: fmt.Sprintf("carve paths: %d waypoints, need at least two", len(waypoints))}
	}

	search := algorithm.SearchMap{
		Weights:      weights,
		MaxSlope:     c.MaxSlope,
		VerticalSkew: c.VerticalSkew,
	}
	union := grid.NewSelection()
	for i := 0; i+1 < len(waypoints); i++ {
		segment, err := search.FindPath(waypoints[i], waypoints[i+1])
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		segment.Each(func(p grid.Coord) { union.Put(p) })
	}
	in.Set(c.Save, union)
	return in, nil
}
