// Package mathutil provides the numeric building blocks shared by the
// resampling kernels: the Lanczos windowed-sinc kernel and the sRGB
// transfer functions with their precomputed lookup tables.
package mathutil

import "math"

// Sinc computes the normalized sinc function sin(πx)/(πx).
// The singularity at x=0 is handled with an epsilon guard rather than an
// exact comparison, so values that round to almost-zero during coordinate
// arithmetic still evaluate to 1.
func Sinc(x float64) float64 {
	if math.Abs(x) < sincEpsilon {
		return 1.0
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

// LanczosKernel evaluates the a-lobed Lanczos kernel at x:
//
//	L(x) = sinc(x) * sinc(x/a)  for |x| < a, 0 otherwise
//
// Non-finite inputs and non-positive radii evaluate to 0 so a degenerate
// coordinate can never contribute weight.
func LanczosKernel(x, a float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || a <= 0 {
		return 0
	}
	if math.Abs(x) >= a {
		return 0
	}
	return Sinc(x) * Sinc(x/a)
}
