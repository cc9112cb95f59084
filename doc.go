// Package resampler provides high-quality RGBA image resampling in pure Go.
//
// The library resizes raw 8-bit RGBA pixel buffers between arbitrary
// dimensions, selecting among nearest-neighbor, bilinear, and 3-lobed
// Lanczos (separable windowed-sinc convolution) algorithms, with an
// optional gamma-correct variant that interpolates in linear light
// rather than encoded sRGB space.
//
// # Features
//
//   - Automatic algorithm selection tuned by scale factor and image size,
//     with a configurable selection policy
//   - Separable two-pass Lanczos convolution with anti-ringing clamping
//   - Gamma-correct bilinear resampling via precomputed sRGB lookup tables
//   - Optional SIMD acceleration via github.com/tphakala/simd
//   - Exhaustive parameter validation: alignment, overflow, overlap, and
//     dimension limits are checked before any pixel is touched
//   - Reusable per-context scratch buffers to amortize allocation across calls
//   - Pure Go implementation with no CGO dependencies
//
// # Quick Start
//
// For simple one-shot resizing:
//
//	dst, err := resampler.ResizeRGBA(src, 1920, 1080, 640, 360)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For repeated resizing with reusable scratch buffers:
//
//	r := resampler.NewResizer()
//	dst := resampler.AllocBuffer(640 * 360 * 4)
//	if err := r.Resize(src, 1920, 1080, dst, 640, 360); err != nil {
//	    log.Fatal(err)
//	}
//
// Explicit algorithm selection bypasses the heuristic:
//
//	err := r.ResizeLanczos(src, 1920, 1080, dst, 640, 360)
//	err = r.ResizeGammaBilinear(src, 1920, 1080, dst, 640, 360)
//
// # Pixel Format
//
// Buffers are contiguous byte sequences of width*height*4 bytes, row-major,
// four interleaved channels (R, G, B, A) per pixel, 8 bits per channel, no
// padding between rows or pixels. Source and destination must not overlap.
//
// # Algorithm Selection
//
// [Resizer.Resize] consults a [SelectorPolicy]: upscaling always uses
// Lanczos; downscaling beyond 8x per axis always uses nearest-neighbor;
// in between, a quality tier keyed by source pixel count decides how far
// Lanczos and bilinear stretch before falling back to a faster algorithm.
// The selection is advisory — the per-algorithm entry points accept any
// valid dimensions.
//
// # Error Handling
//
// Every entry point validates its parameters before touching a pixel and
// returns a sentinel error (wrapped, match with errors.Is) on failure:
// [ErrNilBuffer], [ErrAlignment], [ErrInvalidSize], [ErrOverflow],
// [ErrMemory], [ErrOverlap]. On any non-nil return the destination
// contents are undefined. [StatusOf] maps an error to the numeric
// [StatusCode] used at the host boundary.
//
// # Thread Safety
//
// A [Resizer] owns mutable scratch buffers and must not be shared between
// goroutines without external synchronization; give each worker its own
// instance instead of serializing otherwise-independent resize calls under
// a lock. The gamma lookup tables are built once and immutable afterwards,
// so they are safely shared by all Resizers.
package resampler
