// Package grid provides the typed, named voxel-field storage that
// generation commands operate on: a DataGrid of fixed dimensions holding
// dense scalar fields, sparse selections, position lists and room lists
// under unique names.
package grid

import "sort"

// DataGrid maps field names to typed voxel fields over one fixed 3-D
// extent. Dense fields always match the grid's dimensions; sparse fields
// may hold out-of-bounds coordinates. A grid's size never changes after
// construction.
type DataGrid struct {
	size   Size
	fields map[string]Field
}

// New creates an empty grid of the given size. Size must have every
// dimension at least 1; the Initialize command validates before calling.
func New(size Size) *DataGrid {
	return &DataGrid{
		size:   size,
		fields: make(map[string]Field),
	}
}

// Dim returns the grid's fixed dimensions.
func (g *DataGrid) Dim() Size { return g.size }

// Set stores a field under the given name, replacing any existing field
// with that name.
func (g *DataGrid) Set(name string, f Field) {
	g.fields[name] = f
}

// Get returns the named field, or false if absent.
func (g *DataGrid) Get(name string) (Field, bool) {
	f, ok := g.fields[name]
	return f, ok
}

// Drop removes the named field. Missing names are a no-op.
func (g *DataGrid) Drop(name string) {
	delete(g.fields, name)
}

// Names returns all field names in sorted order.
func (g *DataGrid) Names() []string {
	out := make([]string, 0, len(g.fields))
	for name := range g.fields {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Sample reads the named field at a coordinate. Dense fields return their
// scalar, selections return membership, and list fields return false
// (they have no per-voxel value). The coordinate must be in bounds for
// dense fields.
func (g *DataGrid) Sample(name string, c Coord) (any, bool) {
	f, ok := g.fields[name]
	if !ok {
		return nil, false
	}
	switch f := f.(type) {
	case *DenseInt:
		return f.At(c), true
	case *DenseFloat:
		return f.At(c), true
	case Selection:
		return f.Has(c), true
	default:
		return nil, false
	}
}
