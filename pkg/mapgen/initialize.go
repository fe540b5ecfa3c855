package mapgen

import (
	"fmt"

	"gridforge/pkg/engine/grid"
)

// Initialize is the root command: it creates a new, empty DataGrid of the
// configured size. Every pipeline starts with one.
type Initialize struct {
	needsNone
	Size grid.Size
}

// RunNone creates the grid. A size with any dimension below 1 is a
// domain error.
func (c Initialize) RunNone(int64) (*grid.DataGrid, error) {
	if !c.Size.Valid() {
		return nil, &DomainError{Msg: fmt.Sprintf("initialize size %s: every dimension must be at least 1", c.Size)}
	}
	return grid.New(c.Size), nil
}
