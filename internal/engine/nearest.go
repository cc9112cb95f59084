// Package engine implements the RGBA resampling kernels: nearest-neighbor,
// bilinear, gamma-correct bilinear, and separable Lanczos. All kernels
// operate on validated raster.Image views and consume the per-axis lookup
// tables built by Scratch; none of them re-validates parameters.
package engine

import (
	"github.com/tphakala/go-image-resampler/internal/raster"
)

// ResizeNearest copies, for each destination pixel, the source pixel whose
// center is nearest under the half-pixel mapping. No interpolation, no
// gamma handling. An offset that would escape the buffers is skipped,
// leaving the destination pixel at its initial value; on validated inputs
// this never happens.
func ResizeNearest(dst, src *raster.Image, sc *Scratch) {
	if src.Width == dst.Width && src.Height == dst.Height {
		copy(dst.Pix, src.Pix)
		return
	}

	scaleX := float64(src.Width) / float64(dst.Width)
	scaleY := float64(src.Height) / float64(dst.Height)

	sc.nearestAxisLUT(dst.Width, src.Width, scaleX)

	for y := 0; y < dst.Height; y++ {
		srcY := int((float64(y) + 0.5) * scaleY)
		if srcY > src.Height-1 {
			srcY = src.Height - 1
		}
		srcRow := src.Row(srcY)
		dstRow := dst.Row(y)

		for x := 0; x < dst.Width; x++ {
			off := sc.nearestX[x]
			if off < 0 || off+bytesPerPixel > len(srcRow) {
				continue
			}
			copy(dstRow[x*bytesPerPixel:x*bytesPerPixel+bytesPerPixel], srcRow[off:off+bytesPerPixel])
		}
	}
}
