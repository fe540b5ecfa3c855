package mapgen

import (
	"fmt"

	"gridforge/pkg/engine/eval"
	"gridforge/pkg/engine/grid"
	"gridforge/pkg/mapgen/algorithm"
)

// ExprSpec is one named per-voxel expression. The expression sees every
// current field's value at the voxel plus the voxel position, and its
// result is written to a new field of the requested category.
type ExprSpec struct {
	Name string
	Expr string
	Type grid.FieldKind // KindInt, KindFloat or KindSelection
}

// Expressions evaluates a list of expressions per voxel, adding one field
// per entry. Entries run in order, so later expressions see the fields
// written by earlier ones.
type Expressions struct {
	needsOne
	Evaluator eval.Evaluator // nil selects eval.Default()
	List      []ExprSpec
}

// RunOne compiles each expression once and evaluates it for every voxel.
func (c Expressions) RunOne(_ int64, in *grid.DataGrid) (*grid.DataGrid, error) {
	ev := evaluatorOrDefault(c.Evaluator)
	for _, spec := range c.List {
		prog, err := ev.Compile(spec.Expr)
		if err != nil {
			return nil, fmt.Errorf("expression %q: %w", spec.Name, err)
		}
		if err := applyExpression(in, spec, prog); err != nil {
			return nil, fmt.Errorf("expression %q: %w", spec.Name, err)
		}
	}
	return in, nil
}

func applyExpression(g *grid.DataGrid, spec ExprSpec, prog eval.Program) error {
	size := g.Dim()

	// Snapshot the sampleable fields up front; the field being written is
	// not visible to its own expression.
	type input struct {
		name  string
		field grid.Field
	}
	var inputs []input
	for _, name := range g.Names() {
		f, _ := g.Get(name)
		switch f.Kind() {
		case grid.KindInt, grid.KindFloat, grid.KindSelection:
			inputs = append(inputs, input{name: name, field: f})
		}
	}

	env := make(map[string]any, len(inputs)+1)
	sample := func(c grid.Coord) (any, error) {
		env["position"] = map[string]any{"x": c.X, "y": c.Y, "z": c.Z}
		for _, in := range inputs {
			switch f := in.field.(type) {
			case *grid.DenseInt:
				env[in.name] = f.At(c)
			case *grid.DenseFloat:
				env[in.name] = f.At(c)
			case grid.Selection:
				env[in.name] = f.Has(c)
			}
		}
		return prog.Eval(env)
	}

	var err error
	switch spec.Type {
	case grid.KindInt:
		out := grid.NewDenseInt(size)
		algorithm.FullBox(size).Each(func(c grid.Coord) {
			if err != nil {
				return
			}
			v, evalErr := sample(c)
			if evalErr != nil {
				err = evalErr
				return
			}
			iv, evalErr := eval.AsInt(v)
			if evalErr != nil {
				err = evalErr
				return
			}
			out.Set(c, iv)
		})
		if err != nil {
			return err
		}
		g.Set(spec.Name, out)
	case grid.KindFloat:
		out := grid.NewDenseFloat(size)
		algorithm.FullBox(size).Each(func(c grid.Coord) {
			if err != nil {
				return
			}
			v, evalErr := sample(c)
			if evalErr != nil {
				err = evalErr
				return
			}
			fv, evalErr := eval.AsFloat(v)
			if evalErr != nil {
				err = evalErr
				return
			}
			out.Set(c, fv)
		})
		if err != nil {
			return err
		}
		g.Set(spec.Name, out)
	case grid.KindSelection:
		out := grid.NewSelection()
		algorithm.FullBox(size).Each(func(c grid.Coord) {
			if err != nil {
				return
			}
			v, evalErr := sample(c)
			if evalErr != nil {
				err = evalErr
				return
			}
			bv, evalErr := eval.AsBool(v)
			if evalErr != nil {
				err = evalErr
				return
			}
			if bv {
				out.Put(c)
			}
		})
		if err != nil {
			return err
		}
		g.Set(spec.Name, out)
	default:
		return &DomainError{Msg: fmt.Sprintf("expression result type %s: want int, float or selection", spec.Type)}
	}
	return nil
}
