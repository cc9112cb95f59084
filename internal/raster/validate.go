package raster

import (
	"errors"
	"fmt"
	"math"
	"unsafe"
)

// Sentinel errors produced by validation. Each maps to one status code at
// the host boundary; callers match with errors.Is.
var (
	// ErrNilBuffer indicates a nil source or destination buffer.
	ErrNilBuffer = errors.New("nil pixel buffer")

	// ErrAlignment indicates a buffer whose base address is not 4-byte
	// aligned. Natural pixel alignment is required so every 4-byte pixel
	// access (and any future vector load) is aligned.
	ErrAlignment = errors.New("pixel buffer not 4-byte aligned")

	// ErrInvalidSize indicates zero or excessive dimensions, a buffer
	// shorter than its dimensions imply, or a non-finite scale factor.
	ErrInvalidSize = errors.New("invalid size or dimensions")

	// ErrOverflow indicates that a buffer size or offset computation
	// overflowed 64-bit arithmetic.
	ErrOverflow = errors.New("overflow in size calculation")

	// ErrMemory indicates a buffer that could not be acquired or addressed.
	ErrMemory = errors.New("memory error")

	// ErrOverlap indicates overlapping source and destination regions.
	ErrOverlap = errors.New("source and destination regions overlap")
)

// byteLen computes w*h*BytesPerPixel in 64-bit arithmetic, reporting
// overflow instead of wrapping.
func byteLen(w, h int) (uint64, error) {
	uw, uh := uint64(w), uint64(h)
	pixels := uw * uh
	if uw != 0 && pixels/uw != uh {
		return 0, ErrOverflow
	}
	size := pixels * BytesPerPixel
	if size/BytesPerPixel != pixels {
		return 0, ErrOverflow
	}
	return size, nil
}

// ValidatePair is the single validation gate every resize call passes
// through. It checks, in order: nil buffers, 4-byte base alignment, zero
// dimensions, 64-bit overflow of the implied byte sizes, dimension and
// pixel-count limits, buffer lengths, scale-factor finiteness, and
// source/destination overlap. On success it returns bounds-known Image
// views; no kernel re-validates.
func ValidatePair(src []byte, srcW, srcH int, dst []byte, dstW, dstH int) (Image, Image, error) {
	if src == nil || dst == nil {
		return Image{}, Image{}, fmt.Errorf("%w: source or destination is nil", ErrNilBuffer)
	}
	if len(src) == 0 || len(dst) == 0 {
		return Image{}, Image{}, fmt.Errorf("%w: source or destination is empty", ErrNilBuffer)
	}

	srcAddr := uintptr(unsafe.Pointer(&src[0]))
	dstAddr := uintptr(unsafe.Pointer(&dst[0]))
	if srcAddr%BytesPerPixel != 0 {
		return Image{}, Image{}, fmt.Errorf("%w: source base address %#x", ErrAlignment, srcAddr)
	}
	if dstAddr%BytesPerPixel != 0 {
		return Image{}, Image{}, fmt.Errorf("%w: destination base address %#x", ErrAlignment, dstAddr)
	}

	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return Image{}, Image{}, fmt.Errorf("%w: dimensions %dx%d -> %dx%d", ErrInvalidSize, srcW, srcH, dstW, dstH)
	}

	srcSize, err := byteLen(srcW, srcH)
	if err != nil {
		return Image{}, Image{}, fmt.Errorf("%w: source %dx%d", err, srcW, srcH)
	}
	dstSize, err := byteLen(dstW, dstH)
	if err != nil {
		return Image{}, Image{}, fmt.Errorf("%w: destination %dx%d", err, dstW, dstH)
	}

	if srcW > MaxDimension || srcH > MaxDimension || dstW > MaxDimension || dstH > MaxDimension {
		return Image{}, Image{}, fmt.Errorf("%w: dimension exceeds %d", ErrInvalidSize, MaxDimension)
	}
	if uint64(srcW)*uint64(srcH) > MaxPixels || uint64(dstW)*uint64(dstH) > MaxPixels {
		return Image{}, Image{}, fmt.Errorf("%w: pixel count exceeds %d", ErrInvalidSize, MaxPixels)
	}

	if uint64(len(src)) < srcSize {
		return Image{}, Image{}, fmt.Errorf("%w: source buffer %d bytes, need %d", ErrInvalidSize, len(src), srcSize)
	}
	if uint64(len(dst)) < dstSize {
		return Image{}, Image{}, fmt.Errorf("%w: destination buffer %d bytes, need %d", ErrInvalidSize, len(dst), dstSize)
	}

	// Scale factors are derived ratios; with the dimension checks above
	// they are always finite and positive, but a degenerate value must be
	// a validation failure, never a computation to attempt.
	scaleX := float64(srcW) / float64(dstW)
	scaleY := float64(srcH) / float64(dstH)
	if !isFinitePositive(scaleX) || !isFinitePositive(scaleY) {
		return Image{}, Image{}, fmt.Errorf("%w: degenerate scale factors %v, %v", ErrInvalidSize, scaleX, scaleY)
	}

	// Overlap check on the exact byte extents that will be touched.
	srcEnd := srcAddr + uintptr(srcSize)
	dstEnd := dstAddr + uintptr(dstSize)
	if srcAddr < dstEnd && dstAddr < srcEnd {
		return Image{}, Image{}, fmt.Errorf("%w: src [%#x,%#x) dst [%#x,%#x)", ErrOverlap, srcAddr, srcEnd, dstAddr, dstEnd)
	}

	srcImg := Image{Pix: src[:srcSize], Width: srcW, Height: srcH}
	dstImg := Image{Pix: dst[:dstSize], Width: dstW, Height: dstH}
	return srcImg, dstImg, nil
}

func isFinitePositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
