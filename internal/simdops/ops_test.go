package simdops

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randFloats[F Float](rng *rand.Rand, n int) []F {
	out := make([]F, n)
	for i := range out {
		out[i] = F(rng.Float64()*2 - 1)
	}
	return out
}

// testOpsAgainstScalar verifies the SIMD table against the scalar table on
// the same inputs across a spread of lengths, including the short tap
// vectors the resampler actually uses.
func testOpsAgainstScalar[F Float](t *testing.T, tolerance float64) {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	simd := For[F]()
	scalar := Scalar[F]()

	for _, n := range []int{1, 2, 3, 4, 6, 7, 8, 16, 33, 256, 1023} {
		a := randFloats[F](rng, n)
		b := randFloats[F](rng, n)

		assert.InDelta(t, float64(scalar.DotProductUnsafe(a, b)),
			float64(simd.DotProductUnsafe(a, b)), tolerance,
			"dot product mismatch at n=%d", n)

		assert.InDelta(t, float64(scalar.Sum(a)), float64(simd.Sum(a)), tolerance,
			"sum mismatch at n=%d", n)

		want := make([]F, n)
		got := make([]F, n)
		scalar.Scale(want, a, F(0.3125))
		simd.Scale(got, a, F(0.3125))
		for i := range want {
			assert.InDelta(t, float64(want[i]), float64(got[i]), tolerance,
				"scale mismatch at n=%d i=%d", n, i)
		}
	}
}

// TestOps_Float32 tests SIMD/scalar agreement for float32.
func TestOps_Float32(t *testing.T) {
	testOpsAgainstScalar[float32](t, 1e-3)
}

// TestOps_Float64 tests SIMD/scalar agreement for float64.
func TestOps_Float64(t *testing.T) {
	testOpsAgainstScalar[float64](t, 1e-9)
}

// TestOps_KnownValues tests the tables against hand-computed results.
func TestOps_KnownValues(t *testing.T) {
	for _, ops := range []*Ops[float32]{For[float32](), Scalar[float32]()} {
		a := []float32{1, 2, 3, 4}
		b := []float32{0.5, 0.5, 0.5, 0.5}

		assert.InDelta(t, 5.0, float64(ops.DotProductUnsafe(a, b)), 1e-6)
		assert.InDelta(t, 10.0, float64(ops.Sum(a)), 1e-6)

		dst := make([]float32, 4)
		ops.Scale(dst, a, 2)
		assert.Equal(t, []float32{2, 4, 6, 8}, dst)
	}
}

// TestScalarOps_EmptyInput tests that the scalar table treats zero-length
// input as zero. Callers must not hand empty slices to the Unsafe SIMD
// variants; the convolution guards its tap count before dispatching.
func TestScalarOps_EmptyInput(t *testing.T) {
	ops := Scalar[float32]()
	assert.Zero(t, ops.Sum(nil))
	assert.Zero(t, ops.DotProductUnsafe(nil, nil))
}

// TestFor_SameInstance tests that For returns the shared instance, so the
// function-pointer table is built once.
func TestFor_SameInstance(t *testing.T) {
	require.Same(t, For[float32](), For[float32]())
	require.Same(t, For[float64](), For[float64]())
	require.Same(t, Scalar[float32](), Scalar[float32]())
}

// BenchmarkDotProduct_Taps benchmarks the 6-tap dot product that dominates
// the convolution inner loop.
func BenchmarkDotProduct_Taps(b *testing.B) {
	ops := For[float32]()
	x := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
	w := []float32{0.05, 0.2, 0.5, 0.5, 0.2, 0.05}
	for b.Loop() {
		_ = ops.DotProductUnsafe(x, w)
	}
}
