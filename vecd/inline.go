package vecd

import (
	"fmt"
	"math"
)

// MaxDim is the largest dimension an Inline vector can hold.
const MaxDim = 16

// Inline is a coordinate vector with fixed inline capacity. It is a plain
// value type: copies are independent and no operation allocates, which makes
// it usable in constrained contexts and on hot paths.
//
// The dimension is fixed at construction and must be in [1, MaxDim].
type Inline struct {
	dim int
	xs  [MaxDim]float64
}

// NewInline returns a zero Inline vector of the given dimension. It panics if
// dim is outside [1, MaxDim].
func NewInline(dim int) Inline {
	if dim < 1 || dim > MaxDim {
		panic(fmt.Sprintf("vecd: invalid dimension: %d", dim))
	}
	return Inline{dim: dim}
}

// InlineOf returns an Inline vector holding the given components. It panics
// if the number of components is outside [1, MaxDim].
func InlineOf(xs ...float64) Inline {
	v := NewInline(len(xs))
	copy(v.xs[:], xs)
	return v
}

// Add returns the componentwise sum of v and other.
func (v Inline) Add(other Inline) Inline {
	mustSameDim(v.dim, other.dim)
	out := Inline{dim: v.dim}
	for i := 0; i < v.dim; i++ {
		out.xs[i] = v.xs[i] + other.xs[i]
	}
	return out
}

// Sub returns the componentwise difference of v and other.
func (v Inline) Sub(other Inline) Inline {
	mustSameDim(v.dim, other.dim)
	out := Inline{dim: v.dim}
	for i := 0; i < v.dim; i++ {
		out.xs[i] = v.xs[i] - other.xs[i]
	}
	return out
}

// Scale returns v with every component multiplied by k.
func (v Inline) Scale(k float64) Inline {
	out := Inline{dim: v.dim}
	for i := 0; i < v.dim; i++ {
		out.xs[i] = v.xs[i] * k
	}
	return out
}

// Norm returns the Euclidean norm of v.
func (v Inline) Norm() float64 {
	var term float64
	for i := 0; i < v.dim; i++ {
		term += v.xs[i] * v.xs[i]
	}
	return math.Sqrt(term)
}

// Dim returns the number of components.
func (v Inline) Dim() int { return v.dim }

// At returns the i-th component. It panics if i is out of range.
func (v Inline) At(i int) float64 {
	if i < 0 || i >= v.dim {
		panic(fmt.Sprintf("vecd: component index out of range: %d (dim %d)", i, v.dim))
	}
	return v.xs[i]
}

// Randomized returns a vector of the same dimension with components drawn
// independently and uniformly from [-1, 1).
func (v Inline) Randomized(rng RandomSource) Inline {
	out := Inline{dim: v.dim}
	for i := 0; i < v.dim; i++ {
		out.xs[i] = uniform(rng)
	}
	return out
}
