package resampler

import (
	"github.com/tphakala/go-image-resampler/internal/engine"
	"github.com/tphakala/go-image-resampler/internal/raster"
)

// Sentinel errors returned by resize entry points. Match with errors.Is;
// every returned error wraps exactly one of these.
var (
	// ErrNilBuffer indicates a nil or empty source or destination buffer.
	ErrNilBuffer = raster.ErrNilBuffer

	// ErrAlignment indicates a buffer base address not 4-byte aligned.
	ErrAlignment = raster.ErrAlignment

	// ErrInvalidSize indicates zero or excessive dimensions, or a buffer
	// shorter than its dimensions imply.
	ErrInvalidSize = raster.ErrInvalidSize

	// ErrOverflow indicates 64-bit overflow in a size calculation.
	ErrOverflow = raster.ErrOverflow

	// ErrMemory indicates a buffer that could not be acquired.
	ErrMemory = raster.ErrMemory

	// ErrOverlap indicates overlapping source and destination regions.
	ErrOverlap = raster.ErrOverlap
)

// Resizer resamples RGBA buffers. It owns the per-axis lookup tables and
// the Lanczos intermediate buffer, which are rebuilt on every call but
// reuse their backing storage, so a long-lived Resizer amortizes
// allocation across calls.
//
// A Resizer is not safe for concurrent use. Give each goroutine its own
// instance; the only state shared between instances (the gamma lookup
// tables) is immutable after first use.
type Resizer struct {
	policy  SelectorPolicy
	scratch *engine.Scratch
	useSIMD bool

	lastStatus    StatusCode
	lastAlgorithm Algorithm
}

// Option configures a Resizer.
type Option func(*Resizer)

// WithSIMD enables or disables the vectorized accumulation path. Enabled
// by default; the scalar path honors the same clamping contract.
func WithSIMD(enabled bool) Option {
	return func(r *Resizer) { r.useSIMD = enabled }
}

// WithSelectorPolicy replaces the algorithm-selection thresholds. A
// policy that fails Validate is ignored in favor of the defaults.
func WithSelectorPolicy(p SelectorPolicy) Option {
	return func(r *Resizer) {
		if err := p.Validate(); err == nil {
			r.policy = p
		}
	}
}

// NewResizer creates a Resizer with the default selector policy and SIMD
// enabled.
func NewResizer(opts ...Option) *Resizer {
	r := &Resizer{
		policy:  DefaultSelectorPolicy(),
		useSIMD: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.scratch = engine.NewScratch(r.useSIMD)
	return r
}

// Resize resamples src (srcW x srcH) into dst (dstW x dstH), selecting
// the algorithm via the Resizer's selector policy. On a non-nil return
// the destination contents are undefined.
func (r *Resizer) Resize(src []byte, srcW, srcH int, dst []byte, dstW, dstH int) error {
	s, d, err := raster.ValidatePair(src, srcW, srcH, dst, dstW, dstH)
	if err != nil {
		return r.record(r.lastAlgorithm, err)
	}
	alg := r.policy.Select(srcW, srcH, dstW, dstH)
	r.dispatch(alg, &d, &s)
	return r.record(alg, nil)
}

// ResizeNearest resamples with nearest-neighbor, bypassing selection.
func (r *Resizer) ResizeNearest(src []byte, srcW, srcH int, dst []byte, dstW, dstH int) error {
	return r.resizeWith(AlgorithmNearest, src, srcW, srcH, dst, dstW, dstH)
}

// ResizeBilinear resamples with bilinear interpolation, bypassing selection.
func (r *Resizer) ResizeBilinear(src []byte, srcW, srcH int, dst []byte, dstW, dstH int) error {
	return r.resizeWith(AlgorithmBilinear, src, srcW, srcH, dst, dstW, dstH)
}

// ResizeLanczos resamples with the separable Lanczos convolution,
// bypassing selection.
func (r *Resizer) ResizeLanczos(src []byte, srcW, srcH int, dst []byte, dstW, dstH int) error {
	return r.resizeWith(AlgorithmLanczos, src, srcW, srcH, dst, dstW, dstH)
}

// ResizeGammaBilinear resamples with bilinear interpolation in linear
// light, bypassing selection.
func (r *Resizer) ResizeGammaBilinear(src []byte, srcW, srcH int, dst []byte, dstW, dstH int) error {
	return r.resizeWith(AlgorithmGammaBilinear, src, srcW, srcH, dst, dstW, dstH)
}

func (r *Resizer) resizeWith(alg Algorithm, src []byte, srcW, srcH int, dst []byte, dstW, dstH int) error {
	s, d, err := raster.ValidatePair(src, srcW, srcH, dst, dstW, dstH)
	if err != nil {
		return r.record(r.lastAlgorithm, err)
	}
	r.dispatch(alg, &d, &s)
	return r.record(alg, nil)
}

func (r *Resizer) dispatch(alg Algorithm, dst, src *raster.Image) {
	switch alg {
	case AlgorithmBilinear:
		engine.ResizeBilinear(dst, src, r.scratch)
	case AlgorithmLanczos:
		engine.ResizeLanczos(dst, src, r.scratch)
	case AlgorithmGammaBilinear:
		engine.ResizeGammaBilinear(dst, src, r.scratch)
	default:
		engine.ResizeNearest(dst, src, r.scratch)
	}
}

func (r *Resizer) record(alg Algorithm, err error) error {
	r.lastAlgorithm = alg
	r.lastStatus = StatusOf(err)
	return err
}

// LastStatus returns the status code of the most recent call on this
// Resizer.
func (r *Resizer) LastStatus() StatusCode {
	return r.lastStatus
}

// Info describes the Resizer's most recent operation and its resources.
type Info struct {
	// Algorithm is the algorithm used by the most recent call.
	Algorithm Algorithm

	// MaxTaps is the widest per-axis tap window the Lanczos kernel uses.
	MaxTaps int

	// ScratchBytes is the approximate scratch memory held for reuse.
	ScratchBytes int64

	// SIMDEnabled indicates whether the vectorized path is active.
	SIMDEnabled bool
}

// Info returns information about the Resizer.
func (r *Resizer) Info() Info {
	return Info{
		Algorithm:    r.lastAlgorithm,
		MaxTaps:      engine.MaxTaps,
		ScratchBytes: r.scratch.MemoryUsage(),
		SIMDEnabled:  r.scratch.SIMDEnabled(),
	}
}
