package resampler

import (
	"fmt"
	"math"
)

// Algorithm enumerates the resampling algorithms.
type Algorithm int

const (
	// AlgorithmNearest copies the nearest source pixel. Fastest, used for
	// heavy decimation where interpolation quality is lost anyway.
	AlgorithmNearest Algorithm = iota

	// AlgorithmBilinear interpolates the 2x2 source neighborhood.
	AlgorithmBilinear

	// AlgorithmLanczos runs the separable 3-lobed windowed-sinc
	// convolution. Highest quality, highest cost.
	AlgorithmLanczos

	// AlgorithmGammaBilinear is bilinear interpolation in linear light.
	// Never auto-selected; callers opt in explicitly.
	AlgorithmGammaBilinear
)

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmNearest:
		return "nearest"
	case AlgorithmBilinear:
		return "bilinear"
	case AlgorithmLanczos:
		return "lanczos"
	case AlgorithmGammaBilinear:
		return "gamma-bilinear"
	default:
		return "unknown"
	}
}

// SelectorTier caps, for images up to MaxSourcePixels, the downscale
// factors up to which each interpolating algorithm is used.
type SelectorTier struct {
	// MaxSourcePixels bounds the tier: it applies when the source pixel
	// count is strictly below this value.
	MaxSourcePixels uint64

	// LanczosMax is the largest per-axis downscale factor for which
	// Lanczos is still selected.
	LanczosMax int

	// BilinearMax is the largest per-axis downscale factor for which
	// bilinear is still selected; beyond it, nearest-neighbor.
	BilinearMax int
}

// SelectorPolicy is the tunable algorithm-selection heuristic. The
// thresholds are policy, not a numerical contract; the defaults trade
// quality against throughput by image size. The zero value is invalid —
// start from DefaultSelectorPolicy.
type SelectorPolicy struct {
	// HugeDownscale is the per-axis factor beyond which nearest-neighbor
	// is selected unconditionally.
	HugeDownscale int

	// Tiers, in ascending MaxSourcePixels order. The last tier should
	// carry MaxSourcePixels = math.MaxUint64 to cover all sizes.
	Tiers []SelectorTier
}

// DefaultSelectorPolicy returns the built-in selection thresholds:
// nearest beyond 8x on either axis, then per-size tiers of
// (<1MP: Lanczos to 4x, bilinear to 8x), (1-10MP: 2x/4x), (>10MP: 1x/2x).
func DefaultSelectorPolicy() SelectorPolicy {
	return SelectorPolicy{
		HugeDownscale: defaultHugeDownscale,
		Tiers: []SelectorTier{
			{MaxSourcePixels: smallImagePixels, LanczosMax: smallLanczosMax, BilinearMax: smallBilinearMax},
			{MaxSourcePixels: mediumImagePixels, LanczosMax: mediumLanczosMax, BilinearMax: mediumBilinearMax},
			{MaxSourcePixels: math.MaxUint64, LanczosMax: largeLanczosMax, BilinearMax: largeBilinearMax},
		},
	}
}

// Validate checks that the policy is internally consistent.
func (p *SelectorPolicy) Validate() error {
	if p.HugeDownscale < 1 {
		return fmt.Errorf("%w: huge-downscale factor must be at least 1", ErrInvalidSize)
	}
	if len(p.Tiers) == 0 {
		return fmt.Errorf("%w: selector policy needs at least one tier", ErrInvalidSize)
	}
	var prev uint64
	for i, t := range p.Tiers {
		if t.LanczosMax < 1 || t.BilinearMax < t.LanczosMax {
			return fmt.Errorf("%w: tier %d caps must satisfy 1 <= lanczos <= bilinear", ErrInvalidSize, i)
		}
		if t.MaxSourcePixels <= prev {
			return fmt.Errorf("%w: tier %d bounds must be ascending", ErrInvalidSize, i)
		}
		prev = t.MaxSourcePixels
	}
	return nil
}

// Select picks an algorithm for the given dimensions. Pure function of
// the four dimensions; ties resolve toward the higher-quality algorithm.
// Integer arithmetic throughout avoids floating-point threshold jitter.
func (p *SelectorPolicy) Select(srcW, srcH, dstW, dstH int) Algorithm {
	downX := srcW > dstW
	downY := srcH > dstH

	// Upscaling on both axes benefits most from high-quality
	// reconstruction.
	if !downX && !downY {
		return AlgorithmLanczos
	}

	exceeds := func(limit int) bool {
		return (downX && int64(srcW) > int64(dstW)*int64(limit)) ||
			(downY && int64(srcH) > int64(dstH)*int64(limit))
	}

	if exceeds(p.HugeDownscale) {
		return AlgorithmNearest
	}

	srcPixels := uint64(srcW) * uint64(srcH)
	tier := p.Tiers[len(p.Tiers)-1]
	for _, t := range p.Tiers {
		if srcPixels < t.MaxSourcePixels {
			tier = t
			break
		}
	}

	if !exceeds(tier.LanczosMax) {
		return AlgorithmLanczos
	}
	if !exceeds(tier.BilinearMax) {
		return AlgorithmBilinear
	}
	return AlgorithmNearest
}

// SelectAlgorithm picks an algorithm for the given dimensions under the
// default policy. The selection is advisory — any specific resampler may
// be invoked directly, bypassing it.
func SelectAlgorithm(srcW, srcH, dstW, dstH int) Algorithm {
	policy := DefaultSelectorPolicy()
	return policy.Select(srcW, srcH, dstW, dstH)
}

// IntegerScale reports, per axis, whether the resize ratio is an exact
// integer (either direction). Integer ratios admit fixed-point fast
// paths; the current kernels do not exploit this beyond the trivial 1:1
// case, but hosts use it to pick cache-friendly target sizes.
func IntegerScale(srcW, srcH, dstW, dstH int) (x, y bool) {
	x = integerAxisScale(srcW, dstW)
	y = integerAxisScale(srcH, dstH)
	return x, y
}

func integerAxisScale(src, dst int) bool {
	if src <= 0 || dst <= 0 {
		return false
	}
	if src >= dst {
		return src%dst == 0
	}
	return dst%src == 0
}
