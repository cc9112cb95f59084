package engine

import (
	"math"

	"github.com/tphakala/go-image-resampler/internal/mathutil"
	"github.com/tphakala/go-image-resampler/internal/simdops"
)

// Scratch holds the per-axis lookup tables and intermediate buffers a
// resize call needs. The tables are rebuilt on every call (dimensions may
// differ between calls) but the backing storage is reused, so a long-lived
// Scratch amortizes allocation across calls. A Scratch is not safe for
// concurrent use; callers wanting parallel resizes give each worker its
// own instance rather than sharing one under a lock.
type Scratch struct {
	ops *simdops.Ops[float32]

	// Bilinear X-axis LUT: neighbor byte offsets within a row and the
	// blend weight, one entry per destination column.
	x0 []int
	x1 []int
	fx []float32

	// Nearest-neighbor X-axis LUT: source byte offset per destination
	// column.
	nearestX []int

	// Lanczos tap lists per destination column/row.
	xTaps []TapSet
	yTaps []TapSet

	// Intermediate float buffer for the separable passes, sized
	// dstWidth × srcHeight × 4.
	temp []float32

	// Gather buffers for the weighted accumulation: per-channel samples
	// and the matching compacted weights.
	gather  [4][]float32
	weights []float32
}

// TapSet is the variable-length list of (source index, kernel weight)
// pairs contributing to one destination coordinate along an axis.
type TapSet struct {
	Indices []int32
	Weights []float32
}

// NewScratch creates a Scratch. With useSIMD the weighted accumulation
// runs on the vectorized dot-product path; otherwise a pure-Go path with
// the same clamping contract is used.
func NewScratch(useSIMD bool) *Scratch {
	sc := &Scratch{}
	if useSIMD {
		sc.ops = simdops.For[float32]()
	} else {
		sc.ops = simdops.Scalar[float32]()
	}
	for c := range sc.gather {
		sc.gather[c] = make([]float32, maxTapsPerAxis)
	}
	sc.weights = make([]float32, maxTapsPerAxis)
	return sc
}

// SIMDEnabled reports whether the vectorized accumulation path is active.
func (sc *Scratch) SIMDEnabled() bool {
	return sc.ops == simdops.For[float32]()
}

// MemoryUsage returns the approximate scratch footprint in bytes.
func (sc *Scratch) MemoryUsage() int64 {
	const intSize = 8
	n := int64(len(sc.x0)+len(sc.x1)+len(sc.nearestX)) * intSize
	n += int64(len(sc.fx)+len(sc.temp)+len(sc.weights)) * 4
	for c := range sc.gather {
		n += int64(len(sc.gather[c])) * 4
	}
	for i := range sc.xTaps {
		n += int64(len(sc.xTaps[i].Indices))*4 + int64(len(sc.xTaps[i].Weights))*4
	}
	for i := range sc.yTaps {
		n += int64(len(sc.yTaps[i].Indices))*4 + int64(len(sc.yTaps[i].Weights))*4
	}
	return n
}

// sourceCoord maps a destination coordinate to its source-space position
// using the half-pixel-center convention, which avoids systematic edge
// bias: the centers of the first and last pixels of both grids line up.
func sourceCoord(d int, scale float64) float64 {
	return (float64(d)+0.5)*scale - 0.5
}

// bilinearAxisLUT fills x0/x1/fx for one axis: the two neighboring source
// sample byte offsets and the blend weight, both indices pre-clamped into
// the source range.
func (sc *Scratch) bilinearAxisLUT(dstDim, srcDim int, scale float64) {
	sc.x0 = growInts(sc.x0, dstDim)
	sc.x1 = growInts(sc.x1, dstDim)
	sc.fx = growFloats(sc.fx, dstDim)

	for d := 0; d < dstDim; d++ {
		srcPos := sourceCoord(d, scale)
		i0 := int(math.Floor(srcPos))
		i1 := i0 + 1
		if i1 > srcDim-1 {
			i1 = srcDim - 1
		}
		f := srcPos - float64(i0)
		if f < 0 {
			f = 0
		} else if f > 1 {
			f = 1
		}

		sc.x0[d] = clampIndex(i0, srcDim) * bytesPerPixel
		sc.x1[d] = clampIndex(i1, srcDim) * bytesPerPixel
		sc.fx[d] = float32(f)
	}
}

// nearestAxisLUT fills nearestX with the source byte offset per
// destination column.
func (sc *Scratch) nearestAxisLUT(dstDim, srcDim int, scale float64) {
	sc.nearestX = growInts(sc.nearestX, dstDim)
	for d := 0; d < dstDim; d++ {
		src := int((float64(d) + 0.5) * scale)
		if src > srcDim-1 {
			src = srcDim - 1
		}
		sc.nearestX[d] = src * bytesPerPixel
	}
}

// lanczosAxisTaps rebuilds the tap lists for one axis. For each
// destination coordinate the support window [center-a+1, center+a] is
// clipped to the source range, each candidate tap is weighted by the
// kernel at its scaled distance, and negligible taps are discarded.
func lanczosAxisTaps(taps []TapSet, dstDim, srcDim int, scale float64) []TapSet {
	taps = growTaps(taps, dstDim)
	for d := 0; d < dstDim; d++ {
		srcPos := sourceCoord(d, scale)
		center := int(math.Floor(srcPos))
		start := center - lanczosA + 1
		if start < 0 {
			start = 0
		}
		end := center + lanczosA
		if end > srcDim-1 {
			end = srcDim - 1
		}

		t := &taps[d]
		t.Indices = t.Indices[:0]
		t.Weights = t.Weights[:0]
		for i := start; i <= end; i++ {
			dist := (float64(i) - srcPos) / scale
			w := mathutil.LanczosKernel(dist, lanczosA)
			if math.Abs(w) < weightEpsilon {
				continue
			}
			t.Indices = append(t.Indices, int32(i))
			t.Weights = append(t.Weights, float32(w))
		}
	}
	return taps
}

// AxisTaps computes the Lanczos tap lists for one axis into fresh storage.
// Diagnostic entry point for kernel analysis tooling; the render paths use
// the scratch-backed lanczosAxisTaps instead.
func AxisTaps(dstDim, srcDim int, scale float64) []TapSet {
	return lanczosAxisTaps(nil, dstDim, srcDim, scale)
}

func clampIndex(i, dim int) int {
	if i < 0 {
		return 0
	}
	if i > dim-1 {
		return dim - 1
	}
	return i
}

func growInts(s []int, n int) []int {
	if cap(s) < n {
		return make([]int, n)
	}
	return s[:n]
}

func growFloats(s []float32, n int) []float32 {
	if cap(s) < n {
		return make([]float32, n)
	}
	return s[:n]
}

func growTaps(s []TapSet, n int) []TapSet {
	if cap(s) < n {
		grown := make([]TapSet, n)
		copy(grown, s)
		return grown
	}
	return s[:n]
}
