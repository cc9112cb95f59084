// Package testutil provides reusable test helper functions for image
// resampler tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bytesPerPixel = 4

// ConstImage returns a w x h RGBA buffer filled with one pixel value.
func ConstImage(w, h int, pixel [4]byte) []byte {
	buf := make([]byte, w*h*bytesPerPixel)
	for i := 0; i < len(buf); i += bytesPerPixel {
		copy(buf[i:i+bytesPerPixel], pixel[:])
	}
	return buf
}

// GradientImage returns a w x h RGBA buffer with a deterministic
// per-channel gradient, useful for identity and precision tests.
func GradientImage(w, h int) []byte {
	buf := make([]byte, w*h*bytesPerPixel)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * bytesPerPixel
			buf[i] = byte((x * 255) / max(w-1, 1))
			buf[i+1] = byte((y * 255) / max(h-1, 1))
			buf[i+2] = byte(((x + y) * 255) / max(w+h-2, 1))
			buf[i+3] = 255
		}
	}
	return buf
}

// StepEdgeImage returns a w x h RGBA buffer whose left half is black and
// right half is white, both fully opaque. Sharp edges provoke ringing in
// sinc-based kernels.
func StepEdgeImage(w, h int) []byte {
	buf := make([]byte, w*h*bytesPerPixel)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * bytesPerPixel
			var v byte
			if x >= w/2 {
				v = 255
			}
			buf[i], buf[i+1], buf[i+2], buf[i+3] = v, v, v, 255
		}
	}
	return buf
}

// UnalignedBuffer returns a byte slice whose base address is offset one
// byte from an allocation boundary, guaranteed not 4-byte aligned.
func UnalignedBuffer(size int) []byte {
	backing := make([]byte, size+bytesPerPixel)
	return backing[1 : 1+size]
}

// PixelAt returns the pixel at (x, y) of a w-wide RGBA buffer.
func PixelAt(buf []byte, w, x, y int) [4]byte {
	var p [4]byte
	copy(p[:], buf[(y*w+x)*bytesPerPixel:])
	return p
}

// AssertUniform verifies that every pixel of the buffer equals the given
// value.
func AssertUniform(t *testing.T, buf []byte, pixel [4]byte, msgAndArgs ...any) bool {
	t.Helper()
	require.Zero(t, len(buf)%bytesPerPixel, "buffer length %d is not a pixel multiple", len(buf))
	for i := 0; i < len(buf); i += bytesPerPixel {
		for c := 0; c < bytesPerPixel; c++ {
			if buf[i+c] != pixel[c] {
				return assert.Fail(t, "pixel mismatch",
					"pixel %d channel %d = %d, want %d", i/bytesPerPixel, c, buf[i+c], pixel[c])
			}
		}
	}
	return true
}

// AssertRelativeError verifies that actual is within a relative tolerance
// of expected. Falls back to absolute tolerance near zero.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relErr := (actual - expected) / expected
	if relErr < 0 {
		relErr = -relErr
	}
	return assert.LessOrEqual(t, relErr, tolerance,
		"relative error %v exceeds tolerance %v (expected %v, actual %v)",
		relErr, tolerance, expected, actual)
}

// AssertInRange verifies that value lies in [minVal, maxVal].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	ok := assert.GreaterOrEqual(t, value, minVal, msgAndArgs...)
	return assert.LessOrEqual(t, value, maxVal, msgAndArgs...) && ok
}

// AssertMaxChannelDelta verifies that two equal-length RGBA buffers agree
// within maxDelta on every channel.
func AssertMaxChannelDelta(t *testing.T, got, want []byte, maxDelta int, msgAndArgs ...any) bool {
	t.Helper()
	require.Len(t, got, len(want), "buffer length mismatch")
	for i := range got {
		d := int(got[i]) - int(want[i])
		if d < 0 {
			d = -d
		}
		if d > maxDelta {
			return assert.Fail(t, "channel delta too large",
				"byte %d: got %d, want %d (delta %d > %d)", i, got[i], want[i], d, maxDelta)
		}
	}
	return true
}

// AssertPixelNear verifies that a pixel matches within maxDelta per
// channel.
func AssertPixelNear(t *testing.T, got, want [4]byte, maxDelta int, msgAndArgs ...any) bool {
	t.Helper()
	for c := range got {
		d := int(got[c]) - int(want[c])
		if d < 0 {
			d = -d
		}
		if d > maxDelta {
			return assert.Fail(t, "pixel channel mismatch",
				"channel %d: got %d, want %d (delta %d > %d)", c, got[c], want[c], d, maxDelta)
		}
	}
	return true
}
