// Package vecd provides the dimensional coordinate vectors used by the
// Vivaldi update algorithm.
//
// Two interchangeable storage strategies implement the same arithmetic
// contract:
//
//   - Inline: fixed inline capacity, no heap allocation
//   - Dense: heap-backed, arbitrary dimension
//
// Algorithm code is written generically against the Vector capability set, so
// either strategy can be used wherever a vector is required.
package vecd

import (
	"fmt"
	"math"
)

// RandomSource supplies uniform random scalars in [0, 1). It is satisfied by
// *math/rand/v2.Rand.
//
// A RandomSource is always passed explicitly and never retained, keeping
// outcomes reproducible under fixed seeds. It is not safe for concurrent use
// without external synchronization.
type RandomSource interface {
	Float64() float64
}

// Vector is the arithmetic capability set shared by both storage strategies.
// All operations are value-semantic: the receiver is never mutated.
//
// Binary operations panic on mismatched dimensions. Mixing dimensions is a
// construction-time error, never something to recover from at runtime.
type Vector[V any] interface {
	// Add returns the componentwise sum of the vector and other.
	Add(other V) V
	// Sub returns the componentwise difference of the vector and other.
	Sub(other V) V
	// Scale returns the vector with every component multiplied by k.
	Scale(k float64) V
	// Norm returns the Euclidean norm. It is zero only for the zero vector.
	Norm() float64
	// Dim returns the number of components.
	Dim() int
	// At returns the i-th component.
	At(i int) float64
	// Randomized returns a vector of the same dimension with components drawn
	// independently and uniformly from [-1, 1).
	Randomized(rng RandomSource) V
}

// UnitDirection returns a unit-length vector pointing from `from` toward `to`
// along with the separation magnitude.
//
// When the two points coincide the magnitude is zero and the direction falls
// back to a uniformly random unit vector drawn via rng. Successive updates
// between overlapping coordinates therefore separate instead of dividing by
// zero.
func UnitDirection[V Vector[V]](from, to V, rng RandomSource) (V, float64) {
	diff := to.Sub(from)
	if mag := diff.Norm(); mag > 0 {
		return diff.Scale(1 / mag), mag
	}
	for {
		diff = diff.Randomized(rng)
		if m := diff.Norm(); m > 0 {
			return diff.Scale(1 / m), 0
		}
	}
}

// IsFinite reports whether every component of v is neither NaN nor infinite.
func IsFinite[V Vector[V]](v V) bool {
	for i := 0; i < v.Dim(); i++ {
		if math.IsNaN(v.At(i)) || math.IsInf(v.At(i), 0) {
			return false
		}
	}
	return true
}

// Components returns a copy of v's components as a plain slice.
func Components[V Vector[V]](v V) []float64 {
	xs := make([]float64, v.Dim())
	for i := range xs {
		xs[i] = v.At(i)
	}
	return xs
}

func uniform(rng RandomSource) float64 {
	return rng.Float64()*2 - 1
}

func mustSameDim(a, b int) {
	if a != b {
		panic(fmt.Sprintf("vecd: dimension mismatch: %d != %d", a, b))
	}
}
