package algorithm

import (
	"gridforge/pkg/engine/eval"
	"gridforge/pkg/engine/grid"
)

// Kernel is a neighborhood: a set of relative coordinate offsets plus the
// rule combining fetched neighbor values into a running accumulator.
type Kernel struct {
	Offsets []grid.Coord
	// Combine folds one neighbor value into the accumulator, with inputs
	// "acc" and "this". Nil selects the default for the value category:
	// running sum for numbers, running OR for booleans.
	Combine eval.Program
	// Base is the accumulator's starting value. Boolean accumulators
	// treat it as true when positive.
	Base float64
}

func (k Kernel) combine(boolean bool) eval.Program {
	if k.Combine != nil {
		return k.Combine
	}
	if boolean {
		return eval.Or()
	}
	return eval.Sum()
}

// Convolver computes a per-voxel fold over a neighborhood of a dense or
// selection field. Out-of-bounds offsets are resolved by the edge mode.
type Convolver struct {
	Kernel Kernel
	Edge   grid.EdgeMode
}

// Int convolves a dense integer field into a new field of the same shape.
func (cv Convolver) Int(src *grid.DenseInt) (*grid.DenseInt, error) {
	size := src.Size()
	combine := cv.Kernel.combine(false)
	out := grid.NewDenseInt(size)
	var err error
	FullBox(size).Each(func(c grid.Coord) {
		if err != nil {
			return
		}
		acc := int64(cv.Kernel.Base)
		for _, off := range cv.Kernel.Offsets {
			n, ok := size.Resolve(c.Add(off), cv.Edge)
			if !ok {
				continue
			}
			v, evalErr := combine.Eval(map[string]any{"acc": acc, "this": src.At(n)})
			if evalErr != nil {
				err = evalErr
				return
			}
			if acc, evalErr = eval.AsInt(v); evalErr != nil {
				err = evalErr
				return
			}
		}
		out.Set(c, acc)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Float convolves a dense float field into a new field of the same shape.
func (cv Convolver) Float(src *grid.DenseFloat) (*grid.DenseFloat, error) {
	size := src.Size()
	combine := cv.Kernel.combine(false)
	out := grid.NewDenseFloat(size)
	var err error
	FullBox(size).Each(func(c grid.Coord) {
		if err != nil {
			return
		}
		acc := cv.Kernel.Base
		for _, off := range cv.Kernel.Offsets {
			n, ok := size.Resolve(c.Add(off), cv.Edge)
			if !ok {
				continue
			}
			v, evalErr := combine.Eval(map[string]any{"acc": acc, "this": src.At(n)})
			if evalErr != nil {
				err = evalErr
				return
			}
			if acc, evalErr = eval.AsFloat(v); evalErr != nil {
				err = evalErr
				return
			}
		}
		out.Set(c, acc)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Selection convolves a selection (boolean field) into a new selection.
// The accumulator starts true when the kernel base is positive.
func (cv Convolver) Selection(size grid.Size, src grid.Selection) (grid.Selection, error) {
	combine := cv.Kernel.combine(true)
	out := grid.NewSelection()
	var err error
	FullBox(size).Each(func(c grid.Coord) {
		if err != nil {
			return
		}
		acc := cv.Kernel.Base > 0
		for _, off := range cv.Kernel.Offsets {
			n, ok := size.Resolve(c.Add(off), cv.Edge)
			if !ok {
				continue
			}
			v, evalErr := combine.Eval(map[string]any{"acc": acc, "this": src.Has(n)})
			if evalErr != nil {
				err = evalErr
				return
			}
			if acc, evalErr = eval.AsBool(v); evalErr != nil {
				err = evalErr
				return
			}
		}
		if acc {
			out.Put(c)
		}
	})
	if err != nil {
		return grid.Selection{}, err
	}
	return out, nil
}
