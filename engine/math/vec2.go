package math

import "github.com/chewxy/math32"

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float32
}

// NewVec2 creates and returns a new 2-element vector using the supplied values.
func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// NewVec2Zero returns a 2-component vector with all components set to 0.
func NewVec2Zero() Vec2 {
	return Vec2{}
}

// NewVec2One returns a 2-component vector with all components set to 1.
func NewVec2One() Vec2 {
	return Vec2{1.0, 1.0}
}

// NewVec2Up returns a 2-component vector pointing up (0, 1).
func NewVec2Up() Vec2 {
	return Vec2{0.0, 1.0}
}

// NewVec2Down returns a 2-component vector pointing down (0, -1).
func NewVec2Down() Vec2 {
	return Vec2{0.0, -1.0}
}

// NewVec2Left returns a 2-component vector pointing left (-1, 0).
func NewVec2Left() Vec2 {
	return Vec2{-1.0, 0.0}
}

// NewVec2Right returns a 2-component vector pointing right (1, 0).
func NewVec2Right() Vec2 {
	return Vec2{1.0, 0.0}
}

// Add adds other to v and returns a copy of the result.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts other from v and returns a copy of the result.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Mul multiplies v by other componentwise and returns a copy of the result.
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

// Div divides v by other componentwise. Division by zero follows IEEE-754
// semantics.
func (v Vec2) Div(other Vec2) Vec2 {
	return Vec2{v.X / other.X, v.Y / other.Y}
}

// MulScalar multiplies all elements of v by scalar.
func (v Vec2) MulScalar(scalar float32) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

// DivScalar divides all elements of v by scalar.
func (v Vec2) DivScalar(scalar float32) Vec2 {
	return Vec2{v.X / scalar, v.Y / scalar}
}

// Negate returns v with all components negated.
func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Dot returns the dot product of v and other.
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the scalar pseudo-cross product of v and other, the z
// component of the 3D cross product of the two vectors lifted into the plane.
func (v Vec2) Cross(other Vec2) float32 {
	return v.X*other.Y - v.Y*other.X
}

// LengthSquared returns the squared length of the provided vector.
func (v Vec2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the length of the provided vector.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// Normalized returns a unit-length copy of v. A zero-length input returns the
// zero vector rather than NaN.
func (v Vec2) Normalized() Vec2 {
	length := v.Length()
	if length == 0 {
		return Vec2{}
	}
	return Vec2{v.X / length, v.Y / length}
}

// Distance returns the distance between v and other.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// DistanceSquared returns the squared distance between v and other.
func (v Vec2) DistanceSquared(other Vec2) float32 {
	return v.Sub(other).LengthSquared()
}

// Lerp linearly interpolates from v to other by t. The parameter is not
// clamped, so values outside [0, 1] extrapolate.
func (v Vec2) Lerp(other Vec2, t float32) Vec2 {
	return Vec2{
		Lerp(v.X, other.X, t),
		Lerp(v.Y, other.Y, t),
	}
}

// Reflect reflects v about the plane described by the unit normal.
func (v Vec2) Reflect(normal Vec2) Vec2 {
	return v.Sub(normal.MulScalar(2.0 * v.Dot(normal)))
}

// Rotate rotates v counter-clockwise by the given angle in radians.
func (v Vec2) Rotate(radians float32) Vec2 {
	c := math32.Cos(radians)
	s := math32.Sin(radians)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// AngleTo returns the angle in radians between v and other. Zero-length
// inputs yield 0 rather than NaN.
func (v Vec2) AngleTo(other Vec2) float32 {
	d := v.Length() * other.Length()
	if d == 0 {
		return 0
	}
	return math32.Acos(Clamp(v.Dot(other)/d, -1.0, 1.0))
}

// Compare reports whether all elements of v and other differ by no more than
// tolerance.
func (v Vec2) Compare(other Vec2, tolerance float32) bool {
	if math32.Abs(v.X-other.X) > tolerance {
		return false
	}
	if math32.Abs(v.Y-other.Y) > tolerance {
		return false
	}
	return true
}
