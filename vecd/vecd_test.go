package vecd

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// testVector runs the shared arithmetic contract against one storage
// strategy. Both strategies must produce identical results.
func testVector[V Vector[V]](t *testing.T, of func(xs ...float64) V) {
	t.Helper()

	t.Run("Add", func(t *testing.T) {
		got := of(1, -3, 3).Add(of(-4, 5, 6))
		assert.Equal(t, []float64{-3, 2, 9}, Components(got))

		got = of(1, -3, 3).Add(of(0, 0, 0))
		assert.Equal(t, []float64{1, -3, 3}, Components(got))
	})

	t.Run("Sub", func(t *testing.T) {
		got := of(1, -3, 3).Sub(of(-4, 5, 6))
		assert.Equal(t, []float64{5, -8, -3}, Components(got))

		got = of(1, -3, 3).Sub(of(0, 0, 0))
		assert.Equal(t, []float64{1, -3, 3}, Components(got))
	})

	t.Run("Scale", func(t *testing.T) {
		got := of(1, -2, 3).Scale(2)
		assert.Equal(t, []float64{2, -4, 6}, Components(got))

		got = of(1, -2, 3).Scale(0)
		assert.Equal(t, []float64{0, 0, 0}, Components(got))
	})

	t.Run("Norm", func(t *testing.T) {
		assert.Equal(t, 0.0, of(0, 0, 0).Norm())
		assert.InDelta(t, 3.7416573867739413, of(1, -2, 3).Norm(), 1e-15)
		assert.Equal(t, 6.0, of(-2, 4, -4).Norm())
	})

	t.Run("Distance", func(t *testing.T) {
		d := of(1, 0, 5).Sub(of(0, 2, 4)).Norm()
		assert.InDelta(t, 2.449489742783178, d, 1e-15)
	})

	t.Run("DimAt", func(t *testing.T) {
		v := of(1.1, 2.2)
		require.Equal(t, 2, v.Dim())
		assert.Equal(t, 1.1, v.At(0))
		assert.Equal(t, 2.2, v.At(1))
	})

	t.Run("UnitDirection", func(t *testing.T) {
		uv, mag := UnitDirection(of(0, 2, 4), of(1, 0, 5), newRNG(1))
		assert.InDelta(t, 2.449489742783178, mag, 1e-15)
		want := []float64{0.4082482904638631, -0.8164965809277261, 0.4082482904638631}
		for i, x := range Components(uv) {
			assert.InDelta(t, want[i], x, 1e-12)
		}

		uv, mag = UnitDirection(of(0.5, 0.6, 0.7), of(1, 2, 3), newRNG(1))
		assert.InDelta(t, 2.7386127875258306, mag, 1e-12)
		want = []float64{0.18257418583505536, 0.511207720338155, 0.8398412548412546}
		for i, x := range Components(uv) {
			assert.InDelta(t, want[i], x, 1e-12)
		}
	})

	t.Run("UnitDirectionCoincident", func(t *testing.T) {
		a := of(1, 2, 3)
		uv, mag := UnitDirection(a, a, newRNG(42))
		assert.Equal(t, 0.0, mag)
		assert.InDelta(t, 1.0, uv.Norm(), 1e-12)

		// Same seed, same fallback direction.
		again, _ := UnitDirection(a, a, newRNG(42))
		assert.Equal(t, Components(uv), Components(again))
	})

	t.Run("Randomized", func(t *testing.T) {
		v := of(0, 0, 0).Randomized(newRNG(7))
		require.Equal(t, 3, v.Dim())
		for i := 0; i < v.Dim(); i++ {
			assert.GreaterOrEqual(t, v.At(i), -1.0)
			assert.Less(t, v.At(i), 1.0)
		}
	})

	t.Run("IsFinite", func(t *testing.T) {
		assert.True(t, IsFinite(of(1, 2, 3)))
		assert.False(t, IsFinite(of(1, math.NaN(), 3)))
		assert.False(t, IsFinite(of(math.Inf(1), 2, 3)))
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		assert.Panics(t, func() { of(1, 2).Add(of(1, 2, 3)) })
		assert.Panics(t, func() { of(1, 2, 3).Sub(of(1)) })
	})
}

func TestDense(t *testing.T) {
	testVector(t, func(xs ...float64) Dense { return DenseOf(xs...) })
}

func TestInline(t *testing.T) {
	testVector(t, func(xs ...float64) Inline { return InlineOf(xs...) })
}

func TestNewDense(t *testing.T) {
	v := NewDense(4)
	assert.Equal(t, 4, v.Dim())
	assert.Equal(t, []float64{0, 0, 0, 0}, Components(v))

	assert.Panics(t, func() { NewDense(0) })
	assert.Panics(t, func() { NewDense(-1) })
	assert.Panics(t, func() { DenseOf() })
}

func TestNewInline(t *testing.T) {
	v := NewInline(MaxDim)
	assert.Equal(t, MaxDim, v.Dim())

	assert.Panics(t, func() { NewInline(0) })
	assert.Panics(t, func() { NewInline(MaxDim + 1) })
	assert.Panics(t, func() { InlineOf() })
	assert.Panics(t, func() { NewInline(2).At(2) })
}

func TestDenseOfCopies(t *testing.T) {
	xs := []float64{1, 2, 3}
	v := DenseOf(xs...)
	xs[0] = 99
	assert.Equal(t, 1.0, v.At(0))
}

func TestStrategiesAgree(t *testing.T) {
	// The two storage strategies must be value-semantically identical.
	rngA, rngB := newRNG(3), newRNG(3)
	d := NewDense(8).Randomized(rngA)
	in := NewInline(8).Randomized(rngB)
	require.Equal(t, Components(d), Components(in))

	assert.Equal(t, d.Norm(), in.Norm())
	assert.Equal(t, Components(d.Scale(0.3)), Components(in.Scale(0.3)))
	assert.Equal(t, Components(d.Add(d)), Components(in.Add(in)))
	assert.Equal(t, Components(d.Sub(d.Scale(2))), Components(in.Sub(in.Scale(2))))
}
