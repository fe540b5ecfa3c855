package grid

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// FieldKind identifies the category of a grid field.
type FieldKind int

const (
	KindInt FieldKind = iota
	KindFloat
	KindSelection
	KindPositionList
	KindRoomList
)

func (k FieldKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindSelection:
		return "selection"
	case KindPositionList:
		return "position list"
	case KindRoomList:
		return "room list"
	default:
		return "unknown"
	}
}

// Field is the closed set of per-voxel field categories a DataGrid can
// hold: dense scalars, sparse selections, ordered coordinate lists and
// room lists. All implementations live in this package.
type Field interface {
	Kind() FieldKind
}

// DenseInt is a dense integer field with one value per voxel, stored flat
// in row-major order. Its shape always matches the owning grid.
type DenseInt struct {
	size Size
	vals []int64
}

// NewDenseInt allocates a zeroed dense integer field of the given size.
func NewDenseInt(size Size) *DenseInt {
	return &DenseInt{size: size, vals: make([]int64, size.Count())}
}

// Kind returns KindInt.
func (f *DenseInt) Kind() FieldKind { return KindInt }

// Size returns the field's dimensions.
func (f *DenseInt) Size() Size { return f.size }

// At returns the value at an in-bounds coordinate.
func (f *DenseInt) At(c Coord) int64 { return f.vals[f.size.Index(c)] }

// Set writes the value at an in-bounds coordinate.
func (f *DenseInt) Set(c Coord, v int64) { f.vals[f.size.Index(c)] = v }

// Clone returns a deep copy of the field.
func (f *DenseInt) Clone() *DenseInt {
	vals := make([]int64, len(f.vals))
	copy(vals, f.vals)
	return &DenseInt{size: f.size, vals: vals}
}

// DenseFloat is a dense float field with one value per voxel, stored flat
// in row-major order. Its shape always matches the owning grid.
type DenseFloat struct {
	size Size
	vals []float64
}

// NewDenseFloat allocates a zeroed dense float field of the given size.
func NewDenseFloat(size Size) *DenseFloat {
	return &DenseFloat{size: size, vals: make([]float64, size.Count())}
}

// Kind returns KindFloat.
func (f *DenseFloat) Kind() FieldKind { return KindFloat }

// Size returns the field's dimensions.
func (f *DenseFloat) Size() Size { return f.size }

// At returns the value at an in-bounds coordinate.
func (f *DenseFloat) At(c Coord) float64 { return f.vals[f.size.Index(c)] }

// Set writes the value at an in-bounds coordinate.
func (f *DenseFloat) Set(c Coord, v float64) { f.vals[f.size.Index(c)] = v }

// Clone returns a deep copy of the field.
func (f *DenseFloat) Clone() *DenseFloat {
	vals := make([]float64, len(f.vals))
	copy(vals, f.vals)
	return &DenseFloat{size: f.size, vals: vals}
}

// Selection is a sparse set of voxel coordinates: a boolean field that is
// true for members only. Coord is a comparable struct, so membership and
// disjointness checks ride on Go's built-in map hashing of the full
// (X, Y, Z) triple.
type Selection struct {
	mapset.Set[Coord]
}

// NewSelection creates a selection containing the given coordinates.
func NewSelection(members ...Coord) Selection {
	s := Selection{mapset.New[Coord]()}
	for _, c := range members {
		s.Put(c)
	}
	return s
}

// Kind returns KindSelection.
func (s Selection) Kind() FieldKind { return KindSelection }

// Sorted returns the members in lexicographic coordinate order.
func (s Selection) Sorted() []Coord {
	out := make([]Coord, 0, s.Size())
	s.Each(func(c Coord) { out = append(out, c) })
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Clone returns an independent copy of the selection.
func (s Selection) Clone() Selection {
	out := NewSelection()
	s.Each(func(c Coord) { out.Put(c) })
	return out
}

// Disjoint reports whether the two selections share no members.
func (s Selection) Disjoint(o Selection) bool {
	small, large := s, o
	if large.Size() < small.Size() {
		small, large = large, small
	}
	disjoint := true
	small.Each(func(c Coord) {
		if large.Has(c) {
			disjoint = false
		}
	})
	return disjoint
}

// PositionList is an ordered sequence of voxel coordinates. Order is
// meaningful: path waypoints visit coordinates in list order.
type PositionList []Coord

// Kind returns KindPositionList.
func (PositionList) Kind() FieldKind { return KindPositionList }

// Room is a placed room: the set of voxels it occupies plus an optional
// center coordinate.
type Room struct {
	Members Selection
	Center  *Coord
}

// RoomList is an ordered sequence of rooms.
type RoomList []Room

// Kind returns KindRoomList.
func (RoomList) Kind() FieldKind { return KindRoomList }
