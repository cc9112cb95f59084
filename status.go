package resampler

import (
	"errors"

	"github.com/tphakala/go-image-resampler/internal/raster"
)

// StatusCode is the numeric result of a resize call, as reported across
// the host boundary. The internal API returns typed errors; StatusOf
// translates between the two.
type StatusCode int32

const (
	// StatusOK indicates the destination holds the fully resampled image.
	StatusOK StatusCode = iota

	// StatusNullPointer indicates a nil source or destination buffer.
	StatusNullPointer

	// StatusInvalidSize indicates zero, excessive, or inconsistent
	// dimensions, or a degenerate scale factor.
	StatusInvalidSize

	// StatusOverflow indicates 64-bit overflow in a size calculation.
	StatusOverflow

	// StatusMemoryError indicates a buffer that could not be acquired.
	StatusMemoryError

	// StatusAlignmentError indicates a buffer base address that is not
	// 4-byte aligned.
	StatusAlignmentError

	// StatusOverlapError indicates overlapping source and destination.
	StatusOverlapError
)

// String returns the identifier-style name of the status code.
func (s StatusCode) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusNullPointer:
		return "NullPointer"
	case StatusInvalidSize:
		return "InvalidSize"
	case StatusOverflow:
		return "Overflow"
	case StatusMemoryError:
		return "MemoryError"
	case StatusAlignmentError:
		return "AlignmentError"
	case StatusOverlapError:
		return "OverlapError"
	default:
		return "Unknown"
	}
}

// Message returns the human-readable diagnostic string for the status.
func (s StatusCode) Message() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusNullPointer:
		return "NULL pointer"
	case StatusInvalidSize:
		return "Invalid size or dimensions"
	case StatusOverflow:
		return "Overflow in size calculation"
	case StatusMemoryError:
		return "Memory error"
	case StatusAlignmentError:
		return "Pointer alignment error"
	case StatusOverlapError:
		return "Memory regions overlap"
	default:
		return "Unknown error"
	}
}

// StatusOf maps an error returned by this package to its status code.
// A nil error maps to StatusOK; an unrecognized error maps to
// StatusMemoryError, the catch-all for buffer acquisition failures.
func StatusOf(err error) StatusCode {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, raster.ErrNilBuffer):
		return StatusNullPointer
	case errors.Is(err, raster.ErrAlignment):
		return StatusAlignmentError
	case errors.Is(err, raster.ErrInvalidSize):
		return StatusInvalidSize
	case errors.Is(err, raster.ErrOverflow):
		return StatusOverflow
	case errors.Is(err, raster.ErrOverlap):
		return StatusOverlapError
	default:
		return StatusMemoryError
	}
}
