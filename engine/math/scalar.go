// Package math is a float32 vector, matrix, quaternion and orthonormal-basis
// kernel for 2D/3D work. Every type is an immutable-by-convention value type:
// operations read their inputs in full and return a fresh value, so callers
// never have to worry about aliasing.
package math

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
)

const (
	// An approximate representation of PI.
	K_PI float32 = math32.Pi
	// An approximate representation of PI multiplied by 2.
	K_PI_2 float32 = 2.0 * K_PI
	// An approximate representation of PI divided by 2.
	K_HALF_PI float32 = 0.5 * K_PI
	// An approximate representation of PI divided by 4.
	K_QUARTER_PI float32 = 0.25 * K_PI
	// A multiplier used to convert degrees to radians.
	K_DEG2RAD_MULTIPLIER float32 = K_PI / 180.0
	// A multiplier used to convert radians to degrees.
	K_RAD2DEG_MULTIPLIER float32 = 180.0 / K_PI
	// Tolerance under which a determinant or length is treated as zero.
	K_EPSILON float32 = 1e-6
	// Smallest positive number where 1.0 + FLOAT_EPSILON != 1.0
	K_FLOAT_EPSILON float32 = 1.192092896e-07
)

// DegToRad converts the provided degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

// RadToDeg converts the provided radians to degrees.
func RadToDeg(radians float32) float32 {
	return radians * K_RAD2DEG_MULTIPLIER
}

// NormalizeAngle wraps an angle in radians into the range [0, 2*PI).
func NormalizeAngle(radians float32) float32 {
	r := math32.Mod(radians, K_PI_2)
	if r < 0 {
		r += K_PI_2
	}
	return r
}

// NormalizeDegrees wraps an angle in degrees into the range [0, 360).
func NormalizeDegrees(degrees float32) float32 {
	d := math32.Mod(degrees, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Lerp linearly interpolates between a and b by t. The parameter is not
// clamped, so values outside [0, 1] extrapolate.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// RangeConvertFloat32 remaps value from [oldMin, oldMax] to [newMin, newMax].
func RangeConvertFloat32(value, oldMin, oldMax, newMin, newMax float32) float32 {
	return ((value-oldMin)/(oldMax-oldMin))*(newMax-newMin) + newMin
}

// FloatCompare reports whether a and b differ by no more than tolerance.
func FloatCompare(a, b, tolerance float32) bool {
	return math32.Abs(a-b) <= tolerance
}

// RandomInRange returns a pseudo-random float32 in [min, max).
func RandomInRange(rng *rand.Rand, min, max float32) float32 {
	return min + rng.Float32()*(max-min)
}
