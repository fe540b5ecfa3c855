package algorithm

import (
	"testing"

	"gridforge/pkg/engine/grid"
)

func testPlacer() RoomPlacer {
	return RoomPlacer{
		Count:   5,
		Within:  Box{Max: grid.Coord{X: 20, Y: 4, Z: 20}},
		MinSize: grid.Coord{X: 2, Y: 1, Z: 2},
		MaxSize: grid.Coord{X: 4, Y: 2, Z: 4},
	}
}

func TestPlace_RoomsInsideRegionAndSized(t *testing.T) {
	p := testPlacer()
	rooms, _ := p.Place(1)
	if len(rooms) == 0 {
		t.Fatal("no rooms placed")
	}
	for i, room := range rooms {
		n := room.Members.Size()
		minN := p.MinSize.X * p.MinSize.Y * p.MinSize.Z
		maxN := p.MaxSize.X * p.MaxSize.Y * p.MaxSize.Z
		if n < minN || n > maxN {
			t.Errorf("room %d has %d members, want %d..%d", i, n, minN, maxN)
		}
		room.Members.Each(func(c grid.Coord) {
			if c.X < p.Within.Min.X || c.X >= p.Within.Max.X ||
				c.Y < p.Within.Min.Y || c.Y >= p.Within.Max.Y ||
				c.Z < p.Within.Min.Z || c.Z >= p.Within.Max.Z {
				t.Errorf("room %d member %v outside region", i, c)
			}
		})
		if room.Center == nil {
			t.Errorf("room %d has no center", i)
		} else if !room.Members.Has(*room.Center) {
			t.Errorf("room %d center %v not among its members", i, *room.Center)
		}
	}
}

func TestPlace_DisjointWithoutOverlap(t *testing.T) {
	rooms, union := testPlacer().Place(2)
	total := 0
	for i, a := range rooms {
		total += a.Members.Size()
		for j := i + 1; j < len(rooms); j++ {
			if !a.Members.Disjoint(rooms[j].Members) {
				t.Errorf("rooms %d and %d overlap", i, j)
			}
		}
	}
	// With pairwise-disjoint rooms the union size is exactly the sum.
	if union.Size() != total {
		t.Errorf("union has %d members, want %d", union.Size(), total)
	}
}

func TestPlace_Deterministic(t *testing.T) {
	p := testPlacer()
	a, unionA := p.Place(7)
	b, unionB := p.Place(7)
	if len(a) != len(b) {
		t.Fatalf("room counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if *a[i].Center != *b[i].Center || a[i].Members.Size() != b[i].Members.Size() {
			t.Errorf("room %d differs between identically seeded runs", i)
		}
	}
	if unionA.Size() != unionB.Size() {
		t.Error("unions differ between identically seeded runs")
	}
}

func TestPlace_AttemptCapStopsCrowdedRegion(t *testing.T) {
	p := RoomPlacer{
		Count:   50,
		Within:  Box{Max: grid.Coord{X: 5, Y: 2, Z: 5}},
		MinSize: grid.Coord{X: 2, Y: 1, Z: 2},
		MaxSize: grid.Coord{X: 3, Y: 1, Z: 3},
	}
	rooms, _ := p.Place(3)
	// The region cannot hold 50 disjoint rooms; the cap must end the loop
	// with a partial result rather than hanging.
	if len(rooms) == 0 || len(rooms) >= p.Count {
		t.Errorf("placed %d rooms, want a non-empty partial result below %d", len(rooms), p.Count)
	}
}

func TestPlace_UnfittableRoomYieldsNothing(t *testing.T) {
	p := RoomPlacer{
		Count:   3,
		Within:  Box{Max: grid.Coord{X: 2, Y: 2, Z: 2}},
		MinSize: grid.Coord{X: 5, Y: 5, Z: 5},
		MaxSize: grid.Coord{X: 5, Y: 5, Z: 5},
	}
	rooms, union := p.Place(4)
	if len(rooms) != 0 || union.Size() != 0 {
		t.Errorf("oversized rooms placed anyway: %d rooms", len(rooms))
	}
}
