package algorithm

import (
	"gridforge/pkg/engine/eval"
	"gridforge/pkg/engine/grid"
)

// Automaton runs a synchronous cellular automaton over a sub-region of a
// dense field. Each step folds the kernel over every voxel in the region
// and then maps (pre-step state, accumulated value) to the new state with
// the result rule. New values are written to a separate buffer, so every
// neighbor read within a step observes the previous step's values.
type Automaton struct {
	Kernel Kernel
	// Result maps inputs "state" and "sum" to the voxel's new value.
	// Nil selects the default rule "sum" (replace state with the
	// accumulated value).
	Result eval.Program
	Region Box
	Steps  int
}

func (a Automaton) result() eval.Program {
	if a.Result != nil {
		return a.Result
	}
	return eval.Replace()
}

// RunInt steps an integer field. The input is not modified; voxels
// outside the region carry their values forward unchanged.
func (a Automaton) RunInt(src *grid.DenseInt) (*grid.DenseInt, error) {
	combine := a.Kernel.combine(false)
	result := a.result()
	size := src.Size()
	region := a.Region.Clip(size)

	cur := src.Clone()
	for i := 0; i < a.Steps; i++ {
		next := cur.Clone()
		var err error
		region.Each(func(c grid.Coord) {
			if err != nil {
				return
			}
			acc := int64(a.Kernel.Base)
			for _, off := range a.Kernel.Offsets {
				n := c.Add(off)
				if !size.Contains(n) {
					continue
				}
				v, evalErr := combine.Eval(map[string]any{"acc": acc, "this": cur.At(n)})
				if evalErr != nil {
					err = evalErr
					return
				}
				if acc, evalErr = eval.AsInt(v); evalErr != nil {
					err = evalErr
					return
				}
			}
			v, evalErr := result.Eval(map[string]any{"state": cur.At(c), "sum": acc})
			if evalErr != nil {
				err = evalErr
				return
			}
			state, evalErr := eval.AsInt(v)
			if evalErr != nil {
				err = evalErr
				return
			}
			next.Set(c, state)
		})
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// RunFloat steps a float field. The input is not modified; voxels outside
// the region carry their values forward unchanged.
func (a Automaton) RunFloat(src *grid.DenseFloat) (*grid.DenseFloat, error) {
	combine := a.Kernel.combine(false)
	result := a.result()
	size := src.Size()
	region := a.Region.Clip(size)

	cur := src.Clone()
	for i := 0; i < a.Steps; i++ {
		next := cur.Clone()
		var err error
		region.Each(func(c grid.Coord) {
			if err != nil {
				return
			}
			acc := a.Kernel.Base
			for _, off := range a.Kernel.Offsets {
				n := c.Add(off)
				if !size.Contains(n) {
					continue
				}
				v, evalErr := combine.Eval(map[string]any{"acc": acc, "this": cur.At(n)})
				if evalErr != nil {
					err = evalErr
					return
				}
				if acc, evalErr = eval.AsFloat(v); evalErr != nil {
					err = evalErr
					return
				}
			}
			v, evalErr := result.Eval(map[string]any{"state": cur.At(c), "sum": acc})
			if evalErr != nil {
				err = evalErr
				return
			}
			state, evalErr := eval.AsFloat(v)
			if evalErr != nil {
				err = evalErr
				return
			}
			next.Set(c, state)
		})
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
