package math

import "github.com/chewxy/math32"

// Quaternion represents a rotational orientation as a unit 4-tuple
// (x, y, z, w). Construction does not enforce unit length; Normalized,
// Lerp and Slerp do.
type Quaternion Vec4

// Slerp falls back to normalized lerp when the inputs are closer than this.
// Deliberately independent of K_EPSILON.
const slerpDotThreshold float32 = 0.9995

// NewQuatIdentity creates an identity quaternion.
func NewQuatIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1.0}
}

// NewQuatFromAxisAngle creates a quaternion from the given axis and angle in
// radians. The axis does not need to be pre-normalized.
func NewQuatFromAxisAngle(axis Vec3, angle float32) Quaternion {
	n := axis.Normalized()
	halfAngle := 0.5 * angle
	s := math32.Sin(halfAngle)
	c := math32.Cos(halfAngle)
	return Quaternion{s * n.X, s * n.Y, s * n.Z, c}
}

// NewQuatFromEuler creates a quaternion from Euler angles in radians:
// pitch about X, yaw about Y, roll about Z, composed as qz * qy * qx.
// The composition matches NewBasisFromEuler exactly.
func NewQuatFromEuler(pitch, yaw, roll float32) Quaternion {
	c1 := math32.Cos(roll * 0.5)
	s1 := math32.Sin(roll * 0.5)
	c2 := math32.Cos(yaw * 0.5)
	s2 := math32.Sin(yaw * 0.5)
	c3 := math32.Cos(pitch * 0.5)
	s3 := math32.Sin(pitch * 0.5)

	return Quaternion{
		X: c1*c2*s3 - s1*s2*c3,
		Y: c1*s2*c3 + s1*c2*s3,
		Z: s1*c2*c3 - c1*s2*s3,
		W: c1*c2*c3 + s1*s2*s3,
	}
}

// NewQuatFromBasis extracts the rotation of the provided basis. The basis is
// assumed orthonormal.
func NewQuatFromBasis(b Basis) Quaternion {
	return quatFromBasis(b)
}

// Normal returns the length of the provided quaternion.
func (q Quaternion) Normal() float32 {
	return math32.Sqrt(q.NormalSquared())
}

// NormalSquared returns the squared length of the provided quaternion.
func (q Quaternion) NormalSquared() float32 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Normalized returns a unit-length copy of q. A zero quaternion maps to the
// identity rather than NaN.
func (q Quaternion) Normalized() Quaternion {
	normal := q.Normal()
	if normal == 0 {
		return NewQuatIdentity()
	}
	return Quaternion{q.X / normal, q.Y / normal, q.Z / normal, q.W / normal}
}

// Conjugate returns the conjugate of q: the x, y and z elements negated, the
// w element untouched. For a unit quaternion this is also the inverse.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

// Inverse returns the multiplicative inverse, conjugate divided by the
// squared norm. A zero quaternion maps to the identity.
func (q Quaternion) Inverse() Quaternion {
	ns := q.NormalSquared()
	if ns == 0 {
		return NewQuatIdentity()
	}
	c := q.Conjugate()
	return Quaternion{c.X / ns, c.Y / ns, c.Z / ns, c.W / ns}
}

// Negate returns q with all four components negated. It represents the same
// rotation as q.
func (q Quaternion) Negate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, -q.W}
}

// Mul returns the Hamilton product q*other. The product is not commutative:
// as a rotation of vectors, q.Mul(other) applies other first, then q.
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		X: q.X*other.W + q.W*other.X + q.Y*other.Z - q.Z*other.Y,
		Y: q.Y*other.W + q.W*other.Y + q.Z*other.X - q.X*other.Z,
		Z: q.Z*other.W + q.W*other.Z + q.X*other.Y - q.Y*other.X,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Dot returns the dot product of the provided quaternions.
func (q Quaternion) Dot(other Quaternion) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// RotateVec3 rotates v by q through the sandwich product q*v*q^-1, expanded
// so no intermediate quaternion is built.
func (q Quaternion) RotateVec3(v Vec3) Vec3 {
	qv := Vec3{q.X, q.Y, q.Z}
	t := qv.Cross(v).MulScalar(2.0)
	return v.Add(t.MulScalar(q.W)).Add(qv.Cross(t))
}

// ToEuler returns the Euler angles of q in radians as (pitch about X,
// yaw about Y, roll about Z), the inverse of NewQuatFromEuler.
func (q Quaternion) ToEuler() (pitch, yaw, roll float32) {
	pitch = math32.Atan2(2.0*(q.W*q.X+q.Y*q.Z), 1.0-2.0*(q.X*q.X+q.Y*q.Y))
	yaw = math32.Asin(Clamp(2.0*(q.W*q.Y-q.Z*q.X), -1.0, 1.0))
	roll = math32.Atan2(2.0*(q.W*q.Z+q.X*q.Y), 1.0-2.0*(q.Y*q.Y+q.Z*q.Z))
	return pitch, yaw, roll
}

// ToAxisAngle returns the rotation axis and angle in radians of q. A
// near-identity quaternion (|w| > 0.9999) short-circuits to angle 0 about
// the X axis to avoid dividing by a near-zero sin(angle/2).
func (q Quaternion) ToAxisAngle() (axis Vec3, angle float32) {
	n := q.Normalized()
	if math32.Abs(n.W) > 0.9999 {
		return NewVec3Right(), 0
	}
	angle = 2.0 * math32.Acos(Clamp(n.W, -1.0, 1.0))
	s := math32.Sqrt(1.0 - n.W*n.W)
	return Vec3{n.X / s, n.Y / s, n.Z / s}, angle
}

// ToBasis converts q to an orthonormal basis. The quaternion is normalized
// first.
func (q Quaternion) ToBasis() Basis {
	return basisFromQuat(q)
}

// ToMat4 creates a rotation matrix from q.
func (q Quaternion) ToMat4() Mat4 {
	out := NewMat4Identity()
	out.SetBasis(q.ToBasis())
	return out
}

// Lerp interpolates componentwise from q to other by t and renormalizes.
// Cheaper than Slerp but not constant angular velocity.
func (q Quaternion) Lerp(other Quaternion, t float32) Quaternion {
	return Quaternion{
		Lerp(q.X, other.X, t),
		Lerp(q.Y, other.Y, t),
		Lerp(q.Z, other.Z, t),
		Lerp(q.W, other.W, t),
	}.Normalized()
}

// Slerp spherically interpolates from q to other by t along the shorter arc.
// Only unit quaternions are valid rotations, so both inputs are normalized
// first. Nearly-parallel inputs fall back to Lerp to avoid dividing by a
// near-zero sin.
func (q Quaternion) Slerp(other Quaternion, t float32) Quaternion {
	v0 := q.Normalized()
	v1 := other.Normalized()

	dot := v0.Dot(v1)

	// q and -q are the same rotation; negate one operand so the
	// interpolation takes the shorter path.
	if dot < 0.0 {
		v1 = v1.Negate()
		dot = -dot
	}

	if dot > slerpDotThreshold {
		return v0.Lerp(v1, t)
	}

	// Since dot is in [0, slerpDotThreshold], acos is safe.
	theta0 := math32.Acos(dot)
	theta := theta0 * t
	sinTheta := math32.Sin(theta)
	sinTheta0 := math32.Sin(theta0)

	s0 := math32.Cos(theta) - dot*sinTheta/sinTheta0 // == sin(theta0 - theta) / sin(theta0)
	s1 := sinTheta / sinTheta0

	return Quaternion{
		v0.X*s0 + v1.X*s1,
		v0.Y*s0 + v1.Y*s1,
		v0.Z*s0 + v1.Z*s1,
		v0.W*s0 + v1.W*s1,
	}
}

// Compare reports whether all elements of q and other differ by no more than
// tolerance.
func (q Quaternion) Compare(other Quaternion, tolerance float32) bool {
	return Vec4(q).Compare(Vec4(other), tolerance)
}
