package resampler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestStatusCode_String tests the identifier-style names.
func TestStatusCode_String(t *testing.T) {
	tests := []struct {
		status StatusCode
		want   string
	}{
		{StatusOK, "OK"},
		{StatusNullPointer, "NullPointer"},
		{StatusInvalidSize, "InvalidSize"},
		{StatusOverflow, "Overflow"},
		{StatusMemoryError, "MemoryError"},
		{StatusAlignmentError, "AlignmentError"},
		{StatusOverlapError, "OverlapError"},
		{StatusCode(42), "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.status.String())
	}
}

// TestStatusCode_Message tests the diagnostic strings reported across the
// host boundary.
func TestStatusCode_Message(t *testing.T) {
	tests := []struct {
		status StatusCode
		want   string
	}{
		{StatusOK, "OK"},
		{StatusNullPointer, "NULL pointer"},
		{StatusInvalidSize, "Invalid size or dimensions"},
		{StatusOverflow, "Overflow in size calculation"},
		{StatusMemoryError, "Memory error"},
		{StatusAlignmentError, "Pointer alignment error"},
		{StatusOverlapError, "Memory regions overlap"},
		{StatusCode(-1), "Unknown error"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.status.Message())
	}
}

// TestStatusCode_Values tests the numeric contract; hosts match on these.
func TestStatusCode_Values(t *testing.T) {
	assert.EqualValues(t, 0, StatusOK)
	assert.EqualValues(t, 1, StatusNullPointer)
	assert.EqualValues(t, 2, StatusInvalidSize)
	assert.EqualValues(t, 3, StatusOverflow)
	assert.EqualValues(t, 4, StatusMemoryError)
	assert.EqualValues(t, 5, StatusAlignmentError)
	assert.EqualValues(t, 6, StatusOverlapError)
}

// TestStatusOf tests the error-to-status translation, including wrapped
// errors and the memory-error catch-all.
func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want StatusCode
	}{
		{"Nil", nil, StatusOK},
		{"Nil buffer", ErrNilBuffer, StatusNullPointer},
		{"Alignment", ErrAlignment, StatusAlignmentError},
		{"Invalid size", ErrInvalidSize, StatusInvalidSize},
		{"Overflow", ErrOverflow, StatusOverflow},
		{"Overlap", ErrOverlap, StatusOverlapError},
		{"Memory", ErrMemory, StatusMemoryError},
		{"Wrapped", fmt.Errorf("context: %w", ErrOverlap), StatusOverlapError},
		{"Foreign error", errors.New("something else"), StatusMemoryError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}
