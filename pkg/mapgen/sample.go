package mapgen

import (
	"gridforge/pkg/engine/eval"
	"gridforge/pkg/engine/grid"
	"gridforge/pkg/engine/noise"
	"gridforge/pkg/mapgen/algorithm"
)

// SampleNoise fills a new dense float field from the noise collaborator,
// seeded with the pipeline seed plus the command's salt.
type SampleNoise struct {
	needsOne
	Salt  int64
	Noise noise.Source
	Save  string
}

// RunOne samples the noise source once per voxel.
func (c SampleNoise) RunOne(seed int64, in *grid.DataGrid) (*grid.DataGrid, error) {
	if c.Noise == nil {
		return nil, &ConfigError{Msg: "sample noise: no noise source supplied"}
	}
	sample := c.Noise.Seeded(seed + c.Salt)
	out := grid.NewDenseFloat(in.Dim())
	algorithm.FullBox(in.Dim()).Each(func(c grid.Coord) {
		out.Set(c, sample(float64(c.X), float64(c.Y), float64(c.Z)))
	})
	in.Set(c.Save, out)
	return in, nil
}

// Neighborhood configures a convolution kernel: relative offsets plus an
// optional combining expression over inputs "acc" and "this". An empty
// expression selects the default rule for the source category (running
// sum, or running OR for selections).
type Neighborhood struct {
	Offsets []grid.Coord
	Combine string
	Base    float64
}

func (n Neighborhood) kernel(ev eval.Evaluator) (algorithm.Kernel, error) {
	k := algorithm.Kernel{Offsets: n.Offsets, Base: n.Base}
	if n.Combine != "" {
		prog, err := ev.Compile(n.Combine)
		if err != nil {
			return algorithm.Kernel{}, err
		}
		k.Combine = prog
	}
	return k, nil
}

// SampleNeighborhood convolves a named source field with a neighborhood
// kernel, saving a new field of the same category.
type SampleNeighborhood struct {
	needsOne
	Neighborhood *Neighborhood
	Edge         grid.EdgeMode
	Source       string
	Save         string
	Evaluator    eval.Evaluator // nil selects eval.Default()
}

// RunOne runs the convolution. Room lists have no per-voxel value and
// cannot be sampled.
func (c SampleNeighborhood) RunOne(_ int64, in *grid.DataGrid) (*grid.DataGrid, error) {
	if c.Neighborhood == nil {
		return nil, &ConfigError{Msg: "sample neighborhood: no kernel supplied"}
	}
	field, ok := in.Get(c.Source)
	if !ok {
		return nil, &MissingFieldError{Field: c.Source}
	}
	k, err := c.Neighborhood.kernel(evaluatorOrDefault(c.Evaluator))
	if err != nil {
		return nil, err
	}
	cv := algorithm.Convolver{Kernel: k, Edge: c.Edge}

	switch f := field.(type) {
	case *grid.DenseInt:
		out, err := cv.Int(f)
		if err != nil {
			return nil, err
		}
		in.Set(c.Save, out)
	case *grid.DenseFloat:
		out, err := cv.Float(f)
		if err != nil {
			return nil, err
		}
		in.Set(c.Save, out)
	case grid.Selection:
		out, err := cv.Selection(in.Dim(), f)
		if err != nil {
			return nil, err
		}
		in.Set(c.Save, out)
	default:
		return nil, &TypeMismatchError{Field: c.Source, Want: "int, float or selection", Got: field.Kind()}
	}
	return in, nil
}
