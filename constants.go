package resampler

import "github.com/tphakala/go-image-resampler/internal/raster"

// Pixel format and limit constants, re-exported from the raster layer for
// callers sizing their own buffers.
const (
	// BytesPerPixel is the interleaved RGBA byte count per pixel.
	BytesPerPixel = raster.BytesPerPixel

	// MaxDimension is the largest accepted width or height.
	MaxDimension = raster.MaxDimension

	// MaxPixels is the largest accepted pixel count per image (256 MP).
	MaxPixels = raster.MaxPixels
)

// Default selector policy constants.
const (
	// defaultHugeDownscale is the per-axis downscale factor beyond which
	// nearest-neighbor is always selected; decimation dominates quality
	// at that point and speed matters more.
	defaultHugeDownscale = 8

	// Source pixel count boundaries between the quality tiers.
	smallImagePixels  = 1_000_000
	mediumImagePixels = 10_000_000

	// Per-tier downscale caps: Lanczos up to the first factor, bilinear
	// up to the second, nearest-neighbor beyond.
	smallLanczosMax   = 4
	smallBilinearMax  = 8
	mediumLanczosMax  = 2
	mediumBilinearMax = 4
	largeLanczosMax   = 1
	largeBilinearMax  = 2
)
