package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-image-resampler/internal/raster"
	"github.com/tphakala/go-image-resampler/internal/testutil"
	"gonum.org/v1/gonum/floats"
)

// referenceLanczos runs the separable convolution entirely in float64
// using gonum primitives, with the same tap lists, normalization, and
// anti-ringing clamp as the production path. It is the precision oracle
// the float32 engine is measured against.
func referenceLanczos(src *raster.Image, dstW, dstH int) []byte {
	scaleX := float64(src.Width) / float64(dstW)
	scaleY := float64(src.Height) / float64(dstH)
	xTaps := AxisTaps(dstW, src.Width, scaleX)
	yTaps := AxisTaps(dstH, src.Height, scaleY)

	conv := func(ts TapSet, sample func(i int32, c int) float64) [4]float64 {
		var out [4]float64
		n := len(ts.Indices)
		if n == 0 {
			return out
		}
		w := make([]float64, n)
		for i, fw := range ts.Weights {
			w[i] = float64(fw)
		}
		wsum := floats.Sum(w)
		v := make([]float64, n)
		for c := 0; c < bytesPerPixel; c++ {
			lo, hi := 255.0, 0.0
			for i, si := range ts.Indices {
				v[i] = sample(si, c)
				if v[i] < lo {
					lo = v[i]
				}
				if v[i] > hi {
					hi = v[i]
				}
			}
			s := floats.Dot(v, w)
			if wsum > weightSumEpsilon || wsum < -weightSumEpsilon {
				s /= wsum
			}
			if s < lo {
				s = lo
			}
			if s > hi {
				s = hi
			}
			out[c] = s
		}
		return out
	}

	temp := make([]float64, dstW*src.Height*bytesPerPixel)
	for y := 0; y < src.Height; y++ {
		row := src.Row(y)
		for x := 0; x < dstW; x++ {
			px := conv(xTaps[x], func(i int32, c int) float64 {
				return float64(row[int(i)*bytesPerPixel+c])
			})
			copy(temp[(y*dstW+x)*bytesPerPixel:], px[:])
		}
	}

	out := make([]byte, dstW*dstH*bytesPerPixel)
	for y := 0; y < dstH; y++ {
		for x := 0; x < dstW; x++ {
			px := conv(yTaps[y], func(i int32, c int) float64 {
				return temp[(int(i)*dstW+x)*bytesPerPixel+c]
			})
			o := (y*dstW + x) * bytesPerPixel
			for c := 0; c < bytesPerPixel; c++ {
				s := px[c]
				if s < 0 {
					s = 0
				}
				if s > 255 {
					s = 255
				}
				out[o+c] = uint8(s)
			}
		}
	}
	return out
}

// TestPrecisionComparison_Lanczos compares the float32 engine against the
// float64 reference. Accumulation rounding can move a value across a
// truncation boundary, so agreement is within one output step.
func TestPrecisionComparison_Lanczos(t *testing.T) {
	cases := []struct {
		name string
		srcW int
		srcH int
		dstW int
		dstH int
	}{
		{"Downscale2x", 32, 24, 16, 12},
		{"Downscale3x", 48, 48, 16, 16},
		{"NonIntegerRatio", 40, 30, 17, 13},
		{"Upscale", 16, 16, 24, 24},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := imageOf(t, testutil.GradientImage(tc.srcW, tc.srcH), tc.srcW, tc.srcH)
			want := referenceLanczos(src, tc.dstW, tc.dstH)

			dst := blankImage(tc.dstW, tc.dstH)
			for _, simd := range []bool{false, true} {
				ResizeLanczos(dst, src, NewScratch(simd))
				require.True(t,
					testutil.AssertMaxChannelDelta(t, dst.Pix, want, 1),
					"simd=%v diverged from float64 reference", simd)
			}
		})
	}
}
