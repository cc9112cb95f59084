package resampler

import (
	"sync"
	"sync/atomic"
	"unsafe"
)

// This file is the host boundary shim: pointer/length entry points and a
// process-wide last-status cell matching the legacy
// status-code-plus-query contract. The Go API above is the real surface;
// nothing below adds semantics beyond translation.

// lastStatus records the status of the most recent pointer-based call.
// A single shared cell, as the legacy contract specifies; per-call status
// is available on a Resizer for callers who need isolation.
var lastStatus atomic.Int32

func setLastStatus(s StatusCode) {
	lastStatus.Store(int32(s))
}

// LastStatus returns the status code recorded by the most recent
// pointer-based call or AllocBuffer.
func LastStatus() StatusCode {
	return StatusCode(lastStatus.Load())
}

// LastErrorMessage returns the human-readable message for LastStatus.
// Purely diagnostic.
func LastErrorMessage() string {
	return LastStatus().Message()
}

// AllocBuffer returns a zero-initialized buffer of the given size, or nil
// when the size is invalid or exceeds the largest image the library
// accepts. Zero initialization means a partially written destination
// never exposes stale memory.
func AllocBuffer(size int) []byte {
	if size <= 0 || uint64(size) > uint64(MaxPixels)*BytesPerPixel {
		setLastStatus(StatusInvalidSize)
		return nil
	}
	setLastStatus(StatusOK)
	return make([]byte, size)
}

// FreeBuffer releases a buffer obtained from AllocBuffer. Memory is
// garbage collected; the function exists for symmetry with the host
// allocate/deallocate contract and is safe to call with nil.
func FreeBuffer([]byte) {}

// hostResizer serializes pointer-based calls; the shim owns one shared
// scratch, unlike the Go API where each caller holds its own Resizer.
var hostResizer = struct {
	sync.Mutex
	r *Resizer
}{}

// ResizePtr is the pointer-based equivalent of Resizer.Resize: it wraps
// the raw buffers implied by the pointers and dimensions and resamples
// with automatic algorithm selection. Callers must guarantee the pointers
// address src_w*src_h*4 and dst_w*dst_h*4 accessible bytes.
func ResizePtr(srcPtr unsafe.Pointer, srcW, srcH uint32, dstPtr unsafe.Pointer, dstW, dstH uint32) StatusCode {
	return resizePtr(func(r *Resizer, src, dst []byte) error {
		return r.Resize(src, int(srcW), int(srcH), dst, int(dstW), int(dstH))
	}, srcPtr, srcW, srcH, dstPtr, dstW, dstH)
}

// ResizeNearestPtr is ResizePtr with nearest-neighbor forced.
func ResizeNearestPtr(srcPtr unsafe.Pointer, srcW, srcH uint32, dstPtr unsafe.Pointer, dstW, dstH uint32) StatusCode {
	return resizePtr(func(r *Resizer, src, dst []byte) error {
		return r.ResizeNearest(src, int(srcW), int(srcH), dst, int(dstW), int(dstH))
	}, srcPtr, srcW, srcH, dstPtr, dstW, dstH)
}

// ResizeBilinearPtr is ResizePtr with bilinear interpolation forced.
func ResizeBilinearPtr(srcPtr unsafe.Pointer, srcW, srcH uint32, dstPtr unsafe.Pointer, dstW, dstH uint32) StatusCode {
	return resizePtr(func(r *Resizer, src, dst []byte) error {
		return r.ResizeBilinear(src, int(srcW), int(srcH), dst, int(dstW), int(dstH))
	}, srcPtr, srcW, srcH, dstPtr, dstW, dstH)
}

// ResizeLanczosPtr is ResizePtr with Lanczos forced.
func ResizeLanczosPtr(srcPtr unsafe.Pointer, srcW, srcH uint32, dstPtr unsafe.Pointer, dstW, dstH uint32) StatusCode {
	return resizePtr(func(r *Resizer, src, dst []byte) error {
		return r.ResizeLanczos(src, int(srcW), int(srcH), dst, int(dstW), int(dstH))
	}, srcPtr, srcW, srcH, dstPtr, dstW, dstH)
}

// ResizeGammaBilinearPtr is ResizePtr with gamma-correct bilinear forced.
func ResizeGammaBilinearPtr(srcPtr unsafe.Pointer, srcW, srcH uint32, dstPtr unsafe.Pointer, dstW, dstH uint32) StatusCode {
	return resizePtr(func(r *Resizer, src, dst []byte) error {
		return r.ResizeGammaBilinear(src, int(srcW), int(srcH), dst, int(dstW), int(dstH))
	}, srcPtr, srcW, srcH, dstPtr, dstW, dstH)
}

func resizePtr(call func(*Resizer, []byte, []byte) error, srcPtr unsafe.Pointer, srcW, srcH uint32, dstPtr unsafe.Pointer, dstW, dstH uint32) StatusCode {
	// The same pre-checks the validator performs, in the same order, so
	// the slices below can be constructed safely; the validator remains
	// the single gate for everything it can express on slices.
	if srcPtr == nil || dstPtr == nil {
		setLastStatus(StatusNullPointer)
		return StatusNullPointer
	}
	if srcW == 0 || srcH == 0 || dstW == 0 || dstH == 0 {
		setLastStatus(StatusInvalidSize)
		return StatusInvalidSize
	}
	srcPixels := uint64(srcW) * uint64(srcH)
	dstPixels := uint64(dstW) * uint64(dstH)
	if srcPixels > MaxPixels || dstPixels > MaxPixels {
		setLastStatus(StatusInvalidSize)
		return StatusInvalidSize
	}
	srcSize := srcPixels * BytesPerPixel
	dstSize := dstPixels * BytesPerPixel

	src := unsafe.Slice((*byte)(srcPtr), srcSize)
	dst := unsafe.Slice((*byte)(dstPtr), dstSize)

	hostResizer.Lock()
	if hostResizer.r == nil {
		hostResizer.r = NewResizer()
	}
	err := call(hostResizer.r, src, dst)
	hostResizer.Unlock()

	status := StatusOf(err)
	setLastStatus(status)
	return status
}
