package algorithm

import (
	"log/slog"

	"gridforge/pkg/engine/grid"
	"gridforge/pkg/engine/rng"
)

// RoomPlacer places rectangular rooms at random positions inside a
// bounding region, optionally rejecting candidates that overlap rooms
// already placed.
type RoomPlacer struct {
	Count        int
	Within       Box        // placement region, Max exclusive
	MinSize      grid.Coord // inclusive per-axis size range
	MaxSize      grid.Coord
	AllowOverlap bool
}

// Place draws rooms with a PRNG seeded from seed. Each attempt draws
// per-axis dimensions uniformly from the size range, then a position
// uniform over placements that keep the room inside the region. With
// overlap disallowed, a candidate is accepted only if its member set is
// disjoint from the union of all previously accepted rooms.
//
// The loop is capped at 2×Count attempts; if the cap is hit first, the
// rooms accumulated so far are returned rather than an error. Callers
// can observe the shortfall from the list length.
func (p RoomPlacer) Place(seed int64) (grid.RoomList, grid.Selection) {
	r := rng.New(seed)
	rooms := make(grid.RoomList, 0, p.Count)
	union := grid.NewSelection()

	for safety := 2 * p.Count; safety > 0 && len(rooms) < p.Count; safety-- {
		sx := r.Between(p.MinSize.X, p.MaxSize.X)
		sy := r.Between(p.MinSize.Y, p.MaxSize.Y)
		sz := r.Between(p.MinSize.Z, p.MaxSize.Z)

		spanX := p.Within.Max.X - sx - p.Within.Min.X
		spanY := p.Within.Max.Y - sy - p.Within.Min.Y
		spanZ := p.Within.Max.Z - sz - p.Within.Min.Z
		if spanX <= 0 || spanY <= 0 || spanZ <= 0 {
			continue // room cannot fit; the attempt still counts
		}

		origin := grid.Coord{
			X: p.Within.Min.X + r.IntN(spanX),
			Y: p.Within.Min.Y + r.IntN(spanY),
			Z: p.Within.Min.Z + r.IntN(spanZ),
		}

		members := grid.NewSelection()
		for x := 0; x < sx; x++ {
			for y := 0; y < sy; y++ {
				for z := 0; z < sz; z++ {
					members.Put(grid.Coord{X: origin.X + x, Y: origin.Y + y, Z: origin.Z + z})
				}
			}
		}

		if !p.AllowOverlap && !union.Disjoint(members) {
			continue
		}

		center := grid.Coord{X: origin.X + sx/2, Y: origin.Y + sy/2, Z: origin.Z + sz/2}
		members.Each(func(c grid.Coord) { union.Put(c) })
		rooms = append(rooms, grid.Room{Members: members, Center: &center})
	}

	if len(rooms) < p.Count {
		slog.Debug("room placement ran out of attempts", "placed", len(rooms), "requested", p.Count)
	}
	return rooms, union
}
