package mathutil

// sRGB transfer function constants (IEC 61966-2-1)
const (
	// Exponents for the nonlinear segment
	srgbGamma    = 2.4
	srgbGammaInv = 1.0 / 2.4

	// Breakpoints between the linear and nonlinear segments
	srgbEncodedThreshold = 0.04045
	srgbLinearThreshold  = 0.0031308

	// Linear-segment slope and nonlinear-segment scale/offset
	srgbLinearScale     = 12.92
	srgbNonlinearScale  = 1.055
	srgbNonlinearOffset = 0.055
)

// GammaLUTSize is the gamma lookup table size (one entry per 8-bit code value).
const GammaLUTSize = 256

// Lanczos kernel constants
const (
	// LanczosRadius is the kernel support radius (3-lobed windowed sinc).
	LanczosRadius = 3.0

	// sincEpsilon guards the sinc singularity at x=0. A literal zero
	// comparison misses values that underflow after coordinate arithmetic.
	sincEpsilon = 1e-10
)

// maxChannelValue is the largest representable 8-bit channel value.
const maxChannelValue = 255.0
