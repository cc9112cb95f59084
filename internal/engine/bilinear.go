package engine

import (
	"math"

	"github.com/tphakala/go-image-resampler/internal/raster"
)

// ResizeBilinear interpolates each destination pixel from its 2×2 source
// neighborhood using the precomputed axis LUTs. Channels are interpolated
// independently in encoded space; see ResizeGammaBilinear for the
// linear-light variant.
func ResizeBilinear(dst, src *raster.Image, sc *Scratch) {
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
			p10 := rowPixel(row0, x1)
			p01 := rowPixel(row1, x0)
			p11 := rowPixel(row1, x1)

			out := dstRow[x*bytesPerPixel : x*bytesPerPixel+bytesPerPixel]
			for c := 0; c < bytesPerPixel; c++ {
				top := lerp32(float32(p00[c]), float32(p10[c]), fx)
				bot := lerp32(float32(p01[c]), float32(p11[c]), fx)
				out[c] = clampChannel(lerp32(top, bot, fy))
			}
		}
	}
}

// rowPixel fetches the 4-byte pixel at a precomputed byte offset within a
// row. Offsets are pre-clamped by the LUT; should one still land past the
// row (a LUT defect, not an expected state), the last full pixel is
// replicated rather than reading garbage.
func rowPixel(row []byte, off int) [4]byte {
	if off < 0 || off+bytesPerPixel > len(row) {
		off = len(row) - bytesPerPixel
	}
	var p [4]byte
	copy(p[:], row[off:off+bytesPerPixel])
	return p
}

// lerp32 interpolates as a + t*(b-a), which is numerically more stable
// than a*(1-t) + b*t and exact at t=0.
func lerp32(a, b, t float32) float32 {
	return a + t*(b-a)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clampChannel clamps to [0,255] and truncates to an integer channel value.
func clampChannel(v float32) uint8 {
	if v <= 0 || v != v {
		return 0
	}
	if v >= channelMax {
		return channelMax
	}
	return uint8(v)
}
