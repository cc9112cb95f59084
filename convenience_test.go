package resampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-image-resampler/internal/testutil"
)

// TestResizeRGBA tests the allocating auto-selection wrapper.
func TestResizeRGBA(t *testing.T) {
	src := testutil.GradientImage(16, 16)

	dst, err := ResizeRGBA(src, 16, 16, 8, 8)
	require.NoError(t, err)
	assert.Len(t, dst, 8*8*BytesPerPixel)
}

// TestResizeRGBA_Identity tests the same-size path; auto-selection picks
// Lanczos, which is exact at 1:1.
func TestResizeRGBA_Identity(t *testing.T) {
	src := testutil.GradientImage(12, 9)

	dst, err := ResizeRGBA(src, 12, 9, 12, 9)
	require.NoError(t, err)
	assert.Equal(t, src, dst)
}

// TestResizeRGBA_ForcedAlgorithms tests each forcing wrapper on a solid
// color, which every kernel must preserve.
func TestResizeRGBA_ForcedAlgorithms(t *testing.T) {
	pixel := [4]byte{255, 128, 50, 255}
	src := testutil.ConstImage(10, 10, pixel)

	wrappers := map[string]func([]byte, int, int, int, int) ([]byte, error){
		"Nearest":  ResizeRGBANearest,
		"Bilinear": ResizeRGBABilinear,
		"Lanczos":  ResizeRGBALanczos,
		"Gamma":    ResizeRGBAGamma,
	}

	for name, resize := range wrappers {
		t.Run(name, func(t *testing.T) {
			dst, err := resize(src, 10, 10, 4, 6)
			require.NoError(t, err)
			require.Len(t, dst, 4*6*BytesPerPixel)
			testutil.AssertUniform(t, dst, pixel)
		})
	}
}

// TestResizeRGBA_Errors tests rejection before any allocation-dependent
// work happens.
func TestResizeRGBA_Errors(t *testing.T) {
	src := testutil.GradientImage(4, 4)

	_, err := ResizeRGBA(src, 4, 4, 0, 8)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = ResizeRGBA(src, 4, 4, MaxDimension+1, 1)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = ResizeRGBA(src, 4, 4, 20000, 20000)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = ResizeRGBA(nil, 4, 4, 2, 2)
	assert.ErrorIs(t, err, ErrNilBuffer)

	// Source shorter than its claimed dimensions.
	_, err = ResizeRGBA(src, 8, 8, 2, 2)
	assert.ErrorIs(t, err, ErrInvalidSize)
}
