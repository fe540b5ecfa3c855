// Package noise defines the injected noise collaborator: a deterministic
// function of seed and coordinate.
package noise

import opensimplex "github.com/ojrac/opensimplex-go"

// Func samples a noise value at a coordinate. Implementations must be
// pure: the same coordinate always yields the same value.
type Func func(x, y, z float64) float64

// Source produces deterministic samplers for a given seed. Commands seed
// a source with the pipeline seed plus their own salt.
type Source interface {
	Seeded(seed int64) Func
}

// OpenSimplex returns a Source backed by OpenSimplex noise.
func OpenSimplex() Source { return openSimplexSource{} }

type openSimplexSource struct{}

func (openSimplexSource) Seeded(seed int64) Func {
	n := opensimplex.New(seed)
	return func(x, y, z float64) float64 { return n.Eval3(x, y, z) }
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(seed int64) Func

// Seeded calls the wrapped function.
func (f SourceFunc) Seeded(seed int64) Func { return f(seed) }
