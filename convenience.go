package resampler

import "fmt"

// ResizeRGBA resamples src into a freshly allocated destination buffer,
// selecting the algorithm automatically. Convenience wrapper over
// Resizer for one-shot use; repeated callers should hold a Resizer to
// reuse its scratch buffers.
func ResizeRGBA(src []byte, srcW, srcH, dstW, dstH int) ([]byte, error) {
	return oneShot(AlgorithmLanczos, true, src, srcW, srcH, dstW, dstH)
}

// ResizeRGBANearest is ResizeRGBA with nearest-neighbor forced.
func ResizeRGBANearest(src []byte, srcW, srcH, dstW, dstH int) ([]byte, error) {
	return oneShot(AlgorithmNearest, false, src, srcW, srcH, dstW, dstH)
}

// ResizeRGBABilinear is ResizeRGBA with bilinear interpolation forced.
func ResizeRGBABilinear(src []byte, srcW, srcH, dstW, dstH int) ([]byte, error) {
	return oneShot(AlgorithmBilinear, false, src, srcW, srcH, dstW, dstH)
}

// ResizeRGBALanczos is ResizeRGBA with Lanczos forced.
func ResizeRGBALanczos(src []byte, srcW, srcH, dstW, dstH int) ([]byte, error) {
	return oneShot(AlgorithmLanczos, false, src, srcW, srcH, dstW, dstH)
}

// ResizeRGBAGamma is ResizeRGBA with gamma-correct bilinear forced.
func ResizeRGBAGamma(src []byte, srcW, srcH, dstW, dstH int) ([]byte, error) {
	return oneShot(AlgorithmGammaBilinear, false, src, srcW, srcH, dstW, dstH)
}

func oneShot(alg Algorithm, auto bool, src []byte, srcW, srcH, dstW, dstH int) ([]byte, error) {
	if dstW <= 0 || dstH <= 0 || dstW > MaxDimension || dstH > MaxDimension {
		return nil, fmt.Errorf("%w: destination %dx%d", ErrInvalidSize, dstW, dstH)
	}
	if uint64(dstW)*uint64(dstH) > MaxPixels {
		return nil, fmt.Errorf("%w: destination pixel count exceeds %d", ErrInvalidSize, MaxPixels)
	}

	dst := AllocBuffer(dstW * dstH * BytesPerPixel)
	if dst == nil {
		return nil, fmt.Errorf("%w: destination allocation failed", ErrMemory)
	}

	r := NewResizer()
	var err error
	if auto {
		err = r.Resize(src, srcW, srcH, dst, dstW, dstH)
	} else {
		err = r.resizeWith(alg, src, srcW, srcH, dst, dstW, dstH)
	}
	if err != nil {
		return nil, err
	}
	return dst, nil
}
