package violin

import (
	"math"

	"github.com/kbknapp/violin/vecd"
)

// DefaultError is the maximal-uncertainty error estimate assigned to freshly
// constructed coordinates. A brand new coordinate should move a lot per
// sample; a converged one barely at all.
const DefaultError = 1.0

// Coord is a network coordinate: a position vector in the latency space plus
// some metadata. Distances between coordinates are measured in seconds.
//
// A Coord is a plain value; it is only replaced wholesale by Node.Update or
// read. Peer coordinates passed into updates are never mutated.
type Coord[V vecd.Vector[V]] struct {
	// Vec is the position in the latency space.
	Vec V

	// Error is the local error estimate, a confidence level. Peers receiving
	// a coordinate with a low Error will adjust more toward it.
	Error float64

	// Height models access-link latency added on top of the Euclidean
	// embedding distance, compensating for triangle-inequality violations a
	// pure embedding cannot represent. Never negative.
	Height float64

	// Offset is a manual positive addition to distance calculations.
	// Negative offsets are ignored.
	Offset float64
}

// NewCoord returns a coordinate at the given position with maximal
// uncertainty and zero height.
func NewCoord[V vecd.Vector[V]](vec V) Coord[V] {
	return Coord[V]{Vec: vec, Error: DefaultError}
}

// randRadius bounds random initial positions to ±10ms so a fresh coordinate
// starts out within one step of typical latencies instead of seconds away.
const randRadius = 0.01

// RandCoord returns a coordinate with each position component drawn uniformly
// from [-10ms, 10ms) via rng, so coordinates don't start out overlapping one
// another. proto fixes the dimension and storage strategy.
func RandCoord[V vecd.Vector[V]](proto V, rng vecd.RandomSource) Coord[V] {
	return Coord[V]{Vec: proto.Randomized(rng).Scale(randRadius), Error: DefaultError}
}

// DistanceTo estimates the latency in seconds between this coordinate and
// other, adding any positive offset from either coordinate.
func (c Coord[V]) DistanceTo(other Coord[V]) float64 {
	return c.RawDistanceTo(other) + c.Offset + other.Offset
}

// RawDistanceTo estimates the latency in seconds between this coordinate and
// other without offsets. Heights are always included.
func (c Coord[V]) RawDistanceTo(other Coord[V]) float64 {
	return c.Vec.Sub(other.Vec).Norm() + c.Height + other.Height
}

// WithHeight returns a copy of c with the given height. Negative heights are
// clamped to zero.
func (c Coord[V]) WithHeight(height float64) Coord[V] {
	c.Height = math.Max(0, height)
	return c
}

// WithOffset returns a copy of c with the given offset. Negative offsets are
// clamped to zero.
func (c Coord[V]) WithOffset(offset float64) Coord[V] {
	c.Offset = math.Max(0, offset)
	return c
}

// IsFinite reports whether every field of the coordinate is neither NaN nor
// infinite.
func (c Coord[V]) IsFinite() bool {
	return vecd.IsFinite(c.Vec) && finite(c.Error) && finite(c.Height) && finite(c.Offset)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
