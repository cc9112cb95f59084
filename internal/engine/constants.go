package engine

import "github.com/tphakala/go-image-resampler/internal/raster"

// bytesPerPixel mirrors the raster layout constant for offset math here.
const bytesPerPixel = raster.BytesPerPixel

// Kernel and accumulation constants.
const (
	// lanczosA is the Lanczos kernel radius in lobes.
	lanczosA = 3

	// weightEpsilon discards taps whose kernel weight is negligible;
	// they cost a multiply-add without affecting the output byte.
	weightEpsilon = 1e-6

	// weightSumEpsilon guards normalization against a near-zero
	// denominator. A pixel whose entire tap window collapsed defaults
	// to zero instead of dividing by noise.
	weightSumEpsilon = 1e-6

	// maxTapsPerAxis is the widest possible tap window per axis:
	// [center-a+1, center+a] spans 2a source samples.
	maxTapsPerAxis = 2 * lanczosA

	// MaxTaps exposes the tap window bound for introspection.
	MaxTaps = maxTapsPerAxis

	// channelMax is the upper clamp for 8-bit channel values.
	channelMax = 255.0
)
