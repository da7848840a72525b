package math

import "github.com/chewxy/math32"

// Vec3 represents a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// NewVec3 creates and returns a new 3-element vector using the supplied values.
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// NewVec3FromVec4 returns a new Vec3 containing the x, y and z components of
// the supplied Vec4, essentially dropping the w component.
func NewVec3FromVec4(vector Vec4) Vec3 {
	return Vec3{vector.X, vector.Y, vector.Z}
}

// NewVec3Zero returns a 3-component vector with all components set to 0.
func NewVec3Zero() Vec3 {
	return Vec3{}
}

// NewVec3One returns a 3-component vector with all components set to 1.
func NewVec3One() Vec3 {
	return Vec3{1.0, 1.0, 1.0}
}

// NewVec3Up returns a 3-component vector pointing up (0, 1, 0).
func NewVec3Up() Vec3 {
	return Vec3{0.0, 1.0, 0.0}
}

// NewVec3Down returns a 3-component vector pointing down (0, -1, 0).
func NewVec3Down() Vec3 {
	return Vec3{0.0, -1.0, 0.0}
}

// NewVec3Left returns a 3-component vector pointing left (-1, 0, 0).
func NewVec3Left() Vec3 {
	return Vec3{-1.0, 0.0, 0.0}
}

// NewVec3Right returns a 3-component vector pointing right (1, 0, 0).
func NewVec3Right() Vec3 {
	return Vec3{1.0, 0.0, 0.0}
}

// NewVec3Forward returns a 3-component vector pointing forward (0, 0, -1).
func NewVec3Forward() Vec3 {
	return Vec3{0.0, 0.0, -1.0}
}

// NewVec3Back returns a 3-component vector pointing backward (0, 0, 1).
func NewVec3Back() Vec3 {
	return Vec3{0.0, 0.0, 1.0}
}

// ToVec4 returns a new Vec4 using v as the x, y and z components and w for w.
func (v Vec3) ToVec4(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// Add adds other to v and returns a copy of the result.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub subtracts other from v and returns a copy of the result.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Mul multiplies v by other componentwise and returns a copy of the result.
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Div divides v by other componentwise. Division by zero follows IEEE-754
// semantics.
func (v Vec3) Div(other Vec3) Vec3 {
	return Vec3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// MulScalar multiplies all elements of v by scalar.
func (v Vec3) MulScalar(scalar float32) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// DivScalar divides all elements of v by scalar.
func (v Vec3) DivScalar(scalar float32) Vec3 {
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// Negate returns v with all components negated.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of v and other. Typically used to calculate
// the difference in direction.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of v and other, a new vector orthogonal
// to both.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// LengthSquared returns the squared length of the provided vector.
func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the length of the provided vector.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// Normalized returns a unit-length copy of v. A zero-length input returns the
// zero vector rather than NaN.
func (v Vec3) Normalized() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Distance returns the distance between v and other.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// DistanceSquared returns the squared distance between v and other.
func (v Vec3) DistanceSquared(other Vec3) float32 {
	return v.Sub(other).LengthSquared()
}

// Lerp linearly interpolates from v to other by t. The parameter is not
// clamped, so values outside [0, 1] extrapolate.
func (v Vec3) Lerp(other Vec3, t float32) Vec3 {
	return Vec3{
		Lerp(v.X, other.X, t),
		Lerp(v.Y, other.Y, t),
		Lerp(v.Z, other.Z, t),
	}
}

// Reflect reflects v about the plane described by the unit normal.
func (v Vec3) Reflect(normal Vec3) Vec3 {
	return v.Sub(normal.MulScalar(2.0 * v.Dot(normal)))
}

// Compare reports whether all elements of v and other differ by no more than
// tolerance.
func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	if math32.Abs(v.X-other.X) > tolerance {
		return false
	}
	if math32.Abs(v.Y-other.Y) > tolerance {
		return false
	}
	if math32.Abs(v.Z-other.Z) > tolerance {
		return false
	}
	return true
}

// Transform transforms v by m. It is assumed that v is a point, not a
// direction, and is calculated as if a w component with a value of 1.0 is
// there.
func (v Vec3) Transform(m Mat4) Vec3 {
	return m.TransformPoint(v)
}
