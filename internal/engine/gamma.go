package engine

import (
	"math"

	"github.com/tphakala/go-image-resampler/internal/mathutil"
	"github.com/tphakala/go-image-resampler/internal/raster"
)

// ResizeGammaBilinear is structurally ResizeBilinear, but interpolates in
// linear light: R/G/B of each neighbor are decoded through the sRGB lookup
// table before blending and re-encoded afterwards. Alpha is already linear
// and passes through unconverted. Interpolating encoded values darkens
// edges; doing it in linear light does not.
func ResizeGammaBilinear(dst, src *raster.Image, sc *Scratch) {
	scaleX := float64(src.Width) / float64(dst.Width)
	scaleY := float64(src.Height) / float64(dst.Height)

	sc.bilinearAxisLUT(dst.Width, src.Width, scaleX)

	for y := 0; y < dst.Height; y++ {
		srcY := sourceCoord(y, scaleY)
		y0 := int(math.Floor(srcY))
		y1 := y0 + 1
		if y1 > src.Height-1 {
			y1 = src.Height - 1
		}
		fy := float32(clamp01(srcY - float64(y0)))

		row0 := src.Row(clampIndex(y0, src.Height))
		row1 := src.Row(clampIndex(y1, src.Height))
		dstRow := dst.Row(y)

		for x := 0; x < dst.Width; x++ {
			x0 := sc.x0[x]
			x1 := sc.x1[x]
			fx := sc.fx[x]

			p00 := rowPixel(row0, x0)
			out := dstRow[x*bytesPerPixel : x*bytesPerPixel+bytesPerPixel]

			// Both weights zero means the destination pixel coincides
			// with a source sample; copy it verbatim instead of running
			// it through the quantized decode/encode round trip.
			if fx == 0 && fy == 0 {
				copy(out, p00[:])
				continue
			}

			p10 := rowPixel(row0, x1)
			p01 := rowPixel(row1, x0)
			p11 := rowPixel(row1, x1)

			l00 := decodePixel(p00)
			l10 := decodePixel(p10)
			l01 := decodePixel(p01)
			l11 := decodePixel(p11)

			var lin [4]float32
			for c := 0; c < bytesPerPixel; c++ {
				top := lerpUnit(l00[c], l10[c], fx)
				bot := lerpUnit(l01[c], l11[c], fx)
				lin[c] = lerpUnit(top, bot, fy)
			}

			out[0] = mathutil.LinearToSrgbLUT(lin[0])
			out[1] = mathutil.LinearToSrgbLUT(lin[1])
			out[2] = mathutil.LinearToSrgbLUT(lin[2])
			out[3] = encodeAlpha(lin[3])
		}
	}
}

// decodePixel converts an encoded pixel to linear light. Alpha is scaled
// to [0,1] without gamma decoding.
func decodePixel(p [4]byte) [4]float32 {
	return [4]float32{
		mathutil.SrgbToLinearLUT(p[0]),
		mathutil.SrgbToLinearLUT(p[1]),
		mathutil.SrgbToLinearLUT(p[2]),
		float32(p[3]) / channelMax,
	}
}

// lerpUnit interpolates two linear-light values with the result clamped to
// [0,1]. A non-finite intermediate falls back to the first operand; a NaN
// must never reach a written pixel.
func lerpUnit(a, b, t float32) float32 {
	v := a + t*(b-a)
	if v != v || v > math.MaxFloat32 || v < -math.MaxFloat32 {
		return a
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// encodeAlpha rescales a linear alpha in [0,1] back to a byte, rounding to
// nearest so exactly-representable inputs survive the float round trip.
func encodeAlpha(a float32) uint8 {
	if a != a || a <= 0 {
		return 0
	}
	if a >= 1 {
		return channelMax
	}
	return uint8(a*channelMax + 0.5)
}
