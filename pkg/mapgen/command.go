// Package mapgen implements the generation command set: a closed family
// of operations, each a pure transform from one DataGrid to the next.
// Commands consume their input by value and return a new (possibly the
// same, extended) grid; on failure nothing partially applied is visible
// to the caller. Randomized commands derive their effective seed from the
// pipeline seed plus their own salt.
package mapgen

import (
	"gridforge/pkg/engine/eval"
	"gridforge/pkg/engine/grid"
)

// Input describes how many input grids a command consumes.
type Input int

const (
	InputNone Input = iota
	InputOne
)

// Command is one generation operation. The command set is closed: every
// implementation lives in this package, so a type switch over commands
// can be exhaustive.
type Command interface {
	NeedsInput() Input
	RunNone(seed int64) (*grid.DataGrid, error)
	RunOne(seed int64, input *grid.DataGrid) (*grid.DataGrid, error)

	sealed()
}

// needsOne supplies the defaults for commands that transform one grid.
type needsOne struct{}

func (needsOne) NeedsInput() Input { return InputOne }

func (needsOne) RunNone(int64) (*grid.DataGrid, error) {
	return nil, &ConfigError{Msg: "command expects an input grid but ran without one"}
}

func (needsOne) sealed() {}

// needsNone supplies the defaults for root commands that produce a grid.
type needsNone struct{}

func (needsNone) NeedsInput() Input { return InputNone }

func (needsNone) RunOne(int64, *grid.DataGrid) (*grid.DataGrid, error) {
	return nil, &ConfigError{Msg: "command takes no input grid but was given one"}
}

func (needsNone) sealed() {}

func evaluatorOrDefault(ev eval.Evaluator) eval.Evaluator {
	if ev == nil {
		return eval.Default()
	}
	return ev
}

func selectionField(g *grid.DataGrid, name string) (grid.Selection, error) {
	f, ok := g.Get(name)
	if !ok {
		return grid.Selection{}, &MissingFieldError{Field: name}
	}
	sel, ok := f.(grid.Selection)
	if !ok {
		return grid.Selection{}, &TypeMismatchError{Field: name, Want: "selection", Got: f.Kind()}
	}
	return sel, nil
}

func positionListField(g *grid.DataGrid, name string) (grid.PositionList, error) {
	f, ok := g.Get(name)
	if !ok {
		return nil, &MissingFieldError{Field: name}
	}
	list, ok := f.(grid.PositionList)
	if !ok {
		return nil, &TypeMismatchError{Field: name, Want: "position list", Got: f.Kind()}
	}
	return list, nil
}

func roomListField(g *grid.DataGrid, name string) (grid.RoomList, error) {
	f, ok := g.Get(name)
	if !ok {
		return nil, &MissingFieldError{Field: name}
	}
	rooms, ok := f.(grid.RoomList)
	if !ok {
		return nil, &TypeMismatchError{Field: name, Want: "room list", Got: f.Kind()}
	}
	return rooms, nil
}

func denseFloatField(g *grid.DataGrid, name string) (*grid.DenseFloat, error) {
	f, ok := g.Get(name)
	if !ok {
		return nil, &MissingFieldError{Field: name}
	}
	dense, ok := f.(*grid.DenseFloat)
	if !ok {
		return nil, &TypeMismatchError{Field: name, Want: "float", Got: f.Kind()}
	}
	return dense, nil
}
