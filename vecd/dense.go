package vecd

import (
	"fmt"
	"math"
)

// Dense is a heap-backed coordinate vector of arbitrary dimension.
//
// Every operation returns a freshly allocated result. Use Inline when
// allocation-free updates are required.
type Dense []float64

// NewDense returns a zero Dense vector of the given dimension. It panics if
// dim < 1.
func NewDense(dim int) Dense {
	if dim < 1 {
		panic(fmt.Sprintf("vecd: invalid dimension: %d", dim))
	}
	return make(Dense, dim)
}

// DenseOf returns a Dense vector holding a copy of the given components. It
// panics if no components are given.
func DenseOf(xs ...float64) Dense {
	if len(xs) < 1 {
		panic(fmt.Sprintf("vecd: invalid dimension: %d", len(xs)))
	}
	v := make(Dense, len(xs))
	copy(v, xs)
	return v
}

// Add returns the componentwise sum of v and other.
func (v Dense) Add(other Dense) Dense {
	mustSameDim(len(v), len(other))
	out := make(Dense, len(v))
	for i := range v {
		out[i] = v[i] + other[i]
	}
	return out
}

// Sub returns the componentwise difference of v and other.
func (v Dense) Sub(other Dense) Dense {
	mustSameDim(len(v), len(other))
	out := make(Dense, len(v))
	for i := range v {
		out[i] = v[i] - other[i]
	}
	return out
}

// Scale returns v with every component multiplied by k.
func (v Dense) Scale(k float64) Dense {
	out := make(Dense, len(v))
	for i := range v {
		out[i] = v[i] * k
	}
	return out
}

// Norm returns the Euclidean norm of v.
func (v Dense) Norm() float64 {
	var term float64
	for _, x := range v {
		term += x * x
	}
	return math.Sqrt(term)
}

// Dim returns the number of components.
func (v Dense) Dim() int { return len(v) }

// At returns the i-th component.
func (v Dense) At(i int) float64 { return v[i] }

// Randomized returns a vector of the same dimension with components drawn
// independently and uniformly from [-1, 1).
func (v Dense) Randomized(rng RandomSource) Dense {
	out := make(Dense, len(v))
	for i := range out {
		out[i] = uniform(rng)
	}
	return out
}
