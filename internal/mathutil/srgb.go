package mathutil

import (
	"math"
	"sync"
)

// SrgbToLinear decodes an encoded sRGB value in [0,1] to linear light.
// Out-of-range and non-finite inputs are clamped so the result is always a
// finite value in [0,1]; a NaN must never propagate into pixel math.
func SrgbToLinear(srgb float64) float64 {
	s := clampUnit(srgb)
	if s <= srgbEncodedThreshold {
		return s / srgbLinearScale
	}
	r := math.Pow((s+srgbNonlinearOffset)/srgbNonlinearScale, srgbGamma)
	return clampUnit(r)
}

// LinearToSrgb encodes a linear-light value in [0,1] to encoded sRGB.
// The same clamping and finiteness guarantees as SrgbToLinear apply.
func LinearToSrgb(linear float64) float64 {
	l := clampUnit(linear)
	if l <= srgbLinearThreshold {
		return l * srgbLinearScale
	}
	r := srgbNonlinearScale*math.Pow(l, srgbGammaInv) - srgbNonlinearOffset
	return clampUnit(r)
}

// clampUnit clamps v into [0,1], mapping NaN and Inf to 0.
func clampUnit(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Gamma lookup tables. Built once on first use and immutable afterwards,
// so concurrent resize calls may share them without locking.
var (
	gammaOnce       sync.Once
	srgbToLinearTab [GammaLUTSize]float32
	linearToSrgbTab [GammaLUTSize]uint8
)

func initGammaLUTs() {
	for i := 0; i < GammaLUTSize; i++ {
		v := float64(i) / maxChannelValue
		srgbToLinearTab[i] = float32(SrgbToLinear(v))

		encoded := LinearToSrgb(v) * maxChannelValue
		linearToSrgbTab[i] = uint8(math.Round(encoded))
	}
}

// SrgbToLinearLUT returns the linear-light value for an encoded sRGB byte.
func SrgbToLinearLUT(srgb uint8) float32 {
	gammaOnce.Do(initGammaLUTs)
	return srgbToLinearTab[srgb]
}

// LinearToSrgbLUT returns the encoded sRGB byte for a linear-light value,
// quantized to 256 levels. Inputs outside [0,1] are clamped first.
func LinearToSrgbLUT(linear float32) uint8 {
	gammaOnce.Do(initGammaLUTs)
	l := float64(linear)
	if math.IsNaN(l) || l < 0 {
		l = 0
	} else if l > 1 {
		l = 1
	}
	idx := int(l * maxChannelValue)
	if idx >= GammaLUTSize {
		idx = GammaLUTSize - 1
	}
	return linearToSrgbTab[idx]
}
