package math

import "github.com/chewxy/math32"

// Vec4 represents a 4D vector.
type Vec4 struct {
	X, Y, Z, W float32
}

// NewVec4 creates and returns a new 4-element vector using the supplied values.
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

// NewVec4FromVec3 returns a new Vec4 using v as the x, y and z components and
// w for w.
func NewVec4FromVec3(v Vec3, w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// NewVec4Zero returns a 4-component vector with all components set to 0.
func NewVec4Zero() Vec4 {
	return Vec4{}
}

// NewVec4One returns a 4-component vector with all components set to 1.
func NewVec4One() Vec4 {
	return Vec4{1.0, 1.0, 1.0, 1.0}
}

// ToVec3 returns a new Vec3 containing the x, y and z components of v,
// essentially dropping the w component.
func (v Vec4) ToVec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Add adds other to v and returns a copy of the result.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub subtracts other from v and returns a copy of the result.
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Mul multiplies v by other componentwise and returns a copy of the result.
func (v Vec4) Mul(other Vec4) Vec4 {
	return Vec4{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

// Div divides v by other componentwise. Division by zero follows IEEE-754
// semantics.
func (v Vec4) Div(other Vec4) Vec4 {
	return Vec4{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

// MulScalar multiplies all elements of v by scalar.
func (v Vec4) MulScalar(scalar float32) Vec4 {
	return Vec4{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

// Negate returns v with all components negated.
func (v Vec4) Negate() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

// Dot returns the dot product of v and other.
func (v Vec4) Dot(other Vec4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// LengthSquared returns the squared length of the provided vector.
func (v Vec4) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Length returns the length of the provided vector.
func (v Vec4) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// Normalized returns a unit-length copy of v. A zero-length input returns the
// zero vector rather than NaN.
func (v Vec4) Normalized() Vec4 {
	length := v.Length()
	if length == 0 {
		return Vec4{}
	}
	return Vec4{v.X / length, v.Y / length, v.Z / length, v.W / length}
}

// Lerp linearly interpolates from v to other by t. The parameter is not
// clamped, so values outside [0, 1] extrapolate.
func (v Vec4) Lerp(other Vec4, t float32) Vec4 {
	return Vec4{
		Lerp(v.X, other.X, t),
		Lerp(v.Y, other.Y, t),
		Lerp(v.Z, other.Z, t),
		Lerp(v.W, other.W, t),
	}
}

// Compare reports whether all elements of v and other differ by no more than
// tolerance.
func (v Vec4) Compare(other Vec4, tolerance float32) bool {
	if math32.Abs(v.X-other.X) > tolerance {
		return false
	}
	if math32.Abs(v.Y-other.Y) > tolerance {
		return false
	}
	if math32.Abs(v.Z-other.Z) > tolerance {
		return false
	}
	if math32.Abs(v.W-other.W) > tolerance {
		return false
	}
	return true
}
