package engine

import (
	"github.com/tphakala/go-image-resampler/internal/raster"
)

// ResizeLanczos resamples with a 3-lobed windowed-sinc kernel as two
// sequential 1-D convolutions: horizontally into an intermediate float
// buffer sized dstWidth × srcHeight, then vertically into the destination.
// Separability reduces per-pixel work from taps_x × taps_y to
// taps_x + taps_y. Each output sample is normalized by its weight sum and
// clamped into the [min,max] of its contributing samples; without that
// anti-ringing clamp the kernel's negative side-lobes overshoot near
// sharp edges.
func ResizeLanczos(dst, src *raster.Image, sc *Scratch) {
	scaleX := float64(src.Width) / float64(dst.Width)
	scaleY := float64(src.Height) / float64(dst.Height)

	sc.xTaps = lanczosAxisTaps(sc.xTaps, dst.Width, src.Width, scaleX)
	sc.yTaps = lanczosAxisTaps(sc.yTaps, dst.Height, src.Height, scaleY)

	tempLen := dst.Width * src.Height * bytesPerPixel
	sc.temp = growFloats(sc.temp, tempLen)
	for i := range sc.temp {
		sc.temp[i] = 0
	}

	// Pass 1: horizontal, src grid rows into the intermediate buffer.
	for y := 0; y < src.Height; y++ {
		row := src.Row(y)
		for x := 0; x < dst.Width; x++ {
			taps := &sc.xTaps[x]
			n := 0
			mins, maxs := freshMinMax()
			for t, si := range taps.Indices {
				off := int(si) * bytesPerPixel
				if off < 0 || off+bytesPerPixel > len(row) {
					continue
				}
				for c := 0; c < bytesPerPixel; c++ {
					v := float32(row[off+c])
					sc.gather[c][n] = v
					if v < mins[c] {
						mins[c] = v
					}
					if v > maxs[c] {
						maxs[c] = v
					}
				}
				sc.weights[n] = taps.Weights[t]
				n++
			}

			out := sc.accumulate(n, mins, maxs)
			ti := (y*dst.Width + x) * bytesPerPixel
			sc.temp[ti] = out[0]
			sc.temp[ti+1] = out[1]
			sc.temp[ti+2] = out[2]
			sc.temp[ti+3] = out[3]
		}
	}

	// Pass 2: vertical, intermediate columns into the destination.
	for y := 0; y < dst.Height; y++ {
		taps := &sc.yTaps[y]
		dstRow := dst.Row(y)
		for x := 0; x < dst.Width; x++ {
			n := 0
			mins, maxs := freshMinMax()
			for t, sy := range taps.Indices {
				ti := (int(sy)*dst.Width + x) * bytesPerPixel
				if ti < 0 || ti+bytesPerPixel > len(sc.temp) {
					continue
				}
				for c := 0; c < bytesPerPixel; c++ {
					v := sc.temp[ti+c]
					sc.gather[c][n] = v
					if v < mins[c] {
						mins[c] = v
					}
					if v > maxs[c] {
						maxs[c] = v
					}
				}
				sc.weights[n] = taps.Weights[t]
				n++
			}

			out := sc.accumulate(n, mins, maxs)
			pix := dstRow[x*bytesPerPixel : x*bytesPerPixel+bytesPerPixel]
			pix[0] = clampChannel(out[0])
			pix[1] = clampChannel(out[1])
			pix[2] = clampChannel(out[2])
			pix[3] = clampChannel(out[3])
		}
	}
}

// accumulate normalizes the gathered weighted sums and applies the
// anti-ringing clamp. With no contributing taps the pixel defaults to
// zero rather than dividing by a near-zero denominator.
func (sc *Scratch) accumulate(n int, mins, maxs [4]float32) [4]float32 {
	var out [4]float32
	if n == 0 {
		return out
	}

	w := sc.weights[:n]
	wsum := sc.ops.Sum(w)
	norm := wsum > weightSumEpsilon || wsum < -weightSumEpsilon

	for c := 0; c < bytesPerPixel; c++ {
		sum := sc.ops.DotProductUnsafe(sc.gather[c][:n], w)
		if norm {
			sum /= wsum
		}
		if sum < mins[c] {
			sum = mins[c]
		}
		if sum > maxs[c] {
			sum = maxs[c]
		}
		out[c] = sum
	}
	return out
}

func freshMinMax() (mins, maxs [4]float32) {
	for c := range mins {
		mins[c] = channelMax
		maxs[c] = 0
	}
	return mins, maxs
}
