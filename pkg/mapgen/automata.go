package mapgen

import (
	"gridforge/pkg/engine/eval"
	"gridforge/pkg/engine/grid"
	"gridforge/pkg/mapgen/algorithm"
)

// Rule configures a cellular automaton: the neighborhood accumulator plus
// a result expression over inputs "state" and "sum". An empty result
// expression replaces the state with the accumulated value.
type Rule struct {
	Neighborhood *Neighborhood
	Result       string
}

// CellularAutomata steps a named dense field through N synchronous
// automaton iterations over a target sub-region. With an empty Save the
// evolved field replaces its source.
type CellularAutomata struct {
	needsOne
	Source    string
	Steps     int
	Region    *algorithm.Box // nil covers the whole grid
	Rule      *Rule
	Save      string
	Evaluator eval.Evaluator // nil selects eval.Default()
}

// RunOne steps the automaton.
func (c CellularAutomata) RunOne(_ int64, in *grid.DataGrid) (*grid.DataGrid, error) {
	if c.Rule == nil || c.Rule.Neighborhood == nil {
		return nil, &ConfigError{Msg: "cellular automata: no rule supplied"}
	}
	field, ok := in.Get(c.Source)
	if !ok {
		return nil, &MissingFieldError{Field: c.Source}
	}

	ev := evaluatorOrDefault(c.Evaluator)
	kernel, err := c.Rule.Neighborhood.kernel(ev)
	if err != nil {
		return nil, err
	}
	var result eval.Program
	if c.Rule.Result != "" {
		if result, err = ev.Compile(c.Rule.Result); err != nil {
			return nil, err
		}
	}
	region := algorithm.FullBox(in.Dim())
	if c.Region != nil {
		region = *c.Region
	}
	automaton := algorithm.Automaton{
		Kernel: kernel,
		Result: result,
		Region: region,
		Steps:  c.Steps,
	}

	save := c.Save
	if save == "" {
		save = c.Source
	}
	switch f := field.(type) {
	case *grid.DenseInt:
		out, err := automaton.RunInt(f)
		if err != nil {
			return nil, err
		}
		in.Set(save, out)
	case *grid.DenseFloat:
		out, err := automaton.RunFloat(f)
		if err != nil {
			return nil, err
		}
		in.Set(save, out)
	default:
		return nil, &TypeMismatchError{Field: c.Source, Want: "int or float", Got: field.Kind()}
	}
	return in, nil
}
