// Package raster provides bounds-validated views over raw RGBA pixel
// buffers. All resampling kernels operate on Image views constructed by
// ValidatePair; offset arithmetic lives here and nowhere else, so a kernel
// cannot express an out-of-range pixel access.
package raster

// RGBA layout constants.
const (
	// BytesPerPixel is the interleaved channel count times one byte each.
	BytesPerPixel = 4

	// MaxDimension bounds each axis to what fits a uint16. Larger axes
	// risk overflow in intermediate coordinate math and imply buffers no
	// host realistically hands over.
	MaxDimension = 65535

	// MaxPixels bounds an image to 256 megapixels (1 GiB of RGBA).
	MaxPixels = 268_435_456
)

// Image is a validated view over a contiguous row-major RGBA buffer.
// Width and Height are guaranteed positive and within MaxDimension, and
// Pix is guaranteed to hold at least Width*Height*BytesPerPixel bytes.
type Image struct {
	Pix    []byte
	Width  int
	Height int
}

// Stride returns the byte length of one pixel row.
func (im *Image) Stride() int {
	return im.Width * BytesPerPixel
}

// Row returns the pixel bytes of row y. The caller must pass a valid row;
// validation guarantees every y in [0, Height) is addressable.
func (im *Image) Row(y int) []byte {
	off := y * im.Stride()
	return im.Pix[off : off+im.Stride()]
}

// PixelOffset returns the byte offset of pixel (x, y) and whether the full
// 4-byte pixel lies within the buffer. Kernels treat a false return as
// "skip this sample" rather than panicking; on validated inputs it never
// occurs, and the test suite asserts as much.
func (im *Image) PixelOffset(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= im.Width || y >= im.Height {
		return 0, false
	}
	off := (y*im.Width + x) * BytesPerPixel
	if off < 0 || off+BytesPerPixel > len(im.Pix) {
		return 0, false
	}
	return off, true
}

// At returns the pixel at (x, y) with coordinates clamped into the image,
// replicating the nearest edge pixel for out-of-range requests.
func (im *Image) At(x, y int) [4]byte {
	x = clampInt(x, 0, im.Width-1)
	y = clampInt(y, 0, im.Height-1)
	off := (y*im.Width + x) * BytesPerPixel
	var p [4]byte
	copy(p[:], im.Pix[off:off+BytesPerPixel])
	return p
}

// SetPixel writes the pixel at (x, y). Returns false without writing when
// the target lies outside the buffer (fails closed, same policy as
// PixelOffset).
func (im *Image) SetPixel(x, y int, p [4]byte) bool {
	off, ok := im.PixelOffset(x, y)
	if !ok {
		return false
	}
	copy(im.Pix[off:off+BytesPerPixel], p[:])
	return true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
