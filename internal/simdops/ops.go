// Package simdops provides generic SIMD operations for float32 and float64 types.
// This enables a single codebase to support both precision levels without duplication.
//
// The resampling kernels accumulate weighted pixel sums as dot products over
// gathered tap samples; delegating those to github.com/tphakala/simd keeps the
// hot path vectorized while the scalar table preserves a bit-for-bit reference
// implementation for verification and for hosts that disable SIMD.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides accelerated operations for type F.
// Function pointers allow type-safe generic code while delegating
// to optimized type-specific implementations.
type Ops[F Float] struct {
	// DotProductUnsafe computes the dot product without bounds checking.
	// Use only when slices are guaranteed to have equal length.
	DotProductUnsafe func(a, b []F) F

	// Sum returns the sum of all elements.
	Sum func(a []F) F

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []F, s F)
}

// Pre-instantiated operations for each float type.
var (
	ops32 = Ops[float32]{
		DotProductUnsafe: f32.DotProductUnsafe,
		Sum:              f32.Sum,
		Scale:            f32.Scale,
	}
	ops64 = Ops[float64]{
		DotProductUnsafe: f64.DotProductUnsafe,
		Sum:              f64.Sum,
		Scale:            f64.Scale,
	}
	scalar32 = Ops[float32]{
		DotProductUnsafe: scalarDot[float32],
		Sum:              scalarSum[float32],
		Scale:            scalarScale[float32],
	}
	scalar64 = Ops[float64]{
		DotProductUnsafe: scalarDot[float64],
		Sum:              scalarSum[float64],
		Scale:            scalarScale[float64],
	}
)

// For returns the SIMD-backed Ops instance for type F.
// The type switch happens at instantiation time, not in hot paths.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// Scalar returns a pure-Go Ops instance for type F. The scalar and SIMD
// tables satisfy the same clamping contract; accumulation order may differ,
// so agreement is to within one quantization step of the output format.
func Scalar[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&scalar32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&scalar64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

func scalarDot[F Float](a, b []F) F {
	var sum F
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func scalarSum[F Float](a []F) F {
	var sum F
	for _, v := range a {
		sum += v
	}
	return sum
}

func scalarScale[F Float](dst, a []F, s F) {
	for i := range a {
		dst[i] = a[i] * s
	}
}
