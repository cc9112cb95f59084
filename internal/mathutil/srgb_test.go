package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/go-image-resampler/internal/testutil"
)

// TestSrgbToLinear tests the decode transfer function against known values.
func TestSrgbToLinear(t *testing.T) {
	tests := []struct {
		name      string
		srgb      float64
		expected  float64
		tolerance float64
	}{
		{"Black", 0.0, 0.0, 1e-15},
		{"White", 1.0, 1.0, 1e-12},
		{"Linear segment", 0.02, 0.02 / 12.92, 1e-12},
		{"Mid gray", 0.5, 0.214041, 1e-5},
		{"Quarter", 0.25, 0.050876, 1e-5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SrgbToLinear(tt.srgb)
			assert.InDelta(t, tt.expected, result, tt.tolerance,
				"SrgbToLinear(%v) = %v, want %v", tt.srgb, result, tt.expected)
		})
	}
}

// TestSrgbTransfer_RoundTrip tests encode(decode(x)) = x for every 8-bit
// code value.
func TestSrgbTransfer_RoundTrip(t *testing.T) {
	for v := 0; v < GammaLUTSize; v++ {
		s := float64(v) / maxChannelValue
		got := LinearToSrgb(SrgbToLinear(s))
		assert.InDelta(t, s, got, 1e-9,
			"round trip drift at code value %d", v)
	}
}

// TestSrgbTransfer_ThresholdContinuity tests that the linear and power-law
// segments meet without a visible step.
func TestSrgbTransfer_ThresholdContinuity(t *testing.T) {
	below := SrgbToLinear(srgbEncodedThreshold)
	above := SrgbToLinear(srgbEncodedThreshold + 1e-9)
	assert.InDelta(t, below, above, 1e-5, "decode discontinuous at threshold")

	below = LinearToSrgb(srgbLinearThreshold)
	above = LinearToSrgb(srgbLinearThreshold + 1e-9)
	assert.InDelta(t, below, above, 1e-5, "encode discontinuous at threshold")
}

// TestSrgbTransfer_DegenerateInputs tests that NaN and out-of-range inputs
// are clamped to valid output instead of propagating.
func TestSrgbTransfer_DegenerateInputs(t *testing.T) {
	assert.Zero(t, SrgbToLinear(math.NaN()))
	assert.Zero(t, SrgbToLinear(math.Inf(-1)))
	// Inf clamps to 0 rather than 1. Any non-finite value means the pixel
	// math upstream already failed, so the darkest output is the safe one.
	assert.Zero(t, SrgbToLinear(math.Inf(1)))
	assert.Equal(t, 0.0, SrgbToLinear(-0.5))
	assert.Equal(t, 1.0, SrgbToLinear(1.5))

	assert.Zero(t, LinearToSrgb(math.NaN()))
	assert.Equal(t, 0.0, LinearToSrgb(-0.5))
	assert.Equal(t, 1.0, LinearToSrgb(2.0))
}

// TestSrgbLUT_Monotonic tests that both lookup tables are monotonic.
func TestSrgbLUT_Monotonic(t *testing.T) {
	prevLin := SrgbToLinearLUT(0)
	for v := 1; v < GammaLUTSize; v++ {
		lin := SrgbToLinearLUT(uint8(v))
		assert.Greater(t, lin, prevLin, "decode LUT not increasing at %d", v)
		prevLin = lin
	}

	prevByte := LinearToSrgbLUT(0)
	for v := 1; v < GammaLUTSize; v++ {
		b := LinearToSrgbLUT(float32(v) / maxChannelValue)
		assert.GreaterOrEqual(t, b, prevByte, "encode LUT not monotonic at %d", v)
		prevByte = b
	}
}

// TestSrgbLUT_Endpoints tests that the table endpoints are exact. Black
// and white must survive a gamma-correct resize bit for bit.
func TestSrgbLUT_Endpoints(t *testing.T) {
	assert.Equal(t, float32(0), SrgbToLinearLUT(0))
	assert.Equal(t, float32(1), SrgbToLinearLUT(255))
	assert.Equal(t, uint8(0), LinearToSrgbLUT(0))
	assert.Equal(t, uint8(255), LinearToSrgbLUT(1))
}

// TestSrgbLUT_RoundTrip tests byte round trips through the quantized
// tables. The encode table indexes linear light uniformly, which is coarse
// near black: sRGB codes up to 12 decode below one table step and collapse
// to 0. Elsewhere the truncating index can only round downward, so the
// round trip never brightens a pixel.
func TestSrgbLUT_RoundTrip(t *testing.T) {
	exact := []uint8{0, 50, 128, 255}
	for _, v := range exact {
		got := LinearToSrgbLUT(SrgbToLinearLUT(v))
		assert.Equal(t, v, got, "exact code value %d drifted to %d", v, got)
	}

	for v := 0; v < GammaLUTSize; v++ {
		got := LinearToSrgbLUT(SrgbToLinearLUT(uint8(v)))
		assert.LessOrEqual(t, got, uint8(v), "round trip brightened code %d to %d", v, got)
		testutil.AssertInRange(t, float64(got), float64(v)-13, float64(v),
			"code value %d drifted to %d", v, got)
	}
}

// TestSrgbLUT_OutOfRangeInputs tests the clamping of the encode LUT.
func TestSrgbLUT_OutOfRangeInputs(t *testing.T) {
	assert.Equal(t, uint8(0), LinearToSrgbLUT(float32(math.NaN())))
	assert.Equal(t, uint8(0), LinearToSrgbLUT(-1))
	assert.Equal(t, uint8(255), LinearToSrgbLUT(2))
	assert.Equal(t, uint8(255), LinearToSrgbLUT(float32(math.Inf(1))))
}

// BenchmarkSrgbToLinearLUT benchmarks a table decode.
func BenchmarkSrgbToLinearLUT(b *testing.B) {
	for b.Loop() {
		_ = SrgbToLinearLUT(137)
	}
}

// BenchmarkLinearToSrgbLUT benchmarks a table encode.
func BenchmarkLinearToSrgbLUT(b *testing.B) {
	for b.Loop() {
		_ = LinearToSrgbLUT(0.42)
	}
}
