package math

import "github.com/chewxy/math32"

// Basis is a 3x3 matrix stored as three row vectors, ideally representing an
// orthonormal rotation frame. Orthonormality is not enforced: a basis may
// carry scale (determinant != +-1) or reflection (determinant < 0), e.g.
// after Scale. Operations that require a pure rotation (ToQuat, ToEuler,
// Slerp) assume the caller kept the invariant or called Orthonormalize.
type Basis struct {
	X, Y, Z Vec3
}

// NewBasis creates an identity basis.
func NewBasis() Basis {
	return Basis{
		X: Vec3{1, 0, 0},
		Y: Vec3{0, 1, 0},
		Z: Vec3{0, 0, 1},
	}
}

// NewBasisFromAxes creates a basis from three row vectors. No orthonormality
// check is performed; that is the caller's responsibility.
func NewBasisFromAxes(x, y, z Vec3) Basis {
	return Basis{X: x, Y: y, Z: z}
}

// NewBasisFromEuler creates a basis from Euler angles in radians: pitch about
// X, yaw about Y, roll about Z, composed as Rz(roll) * Ry(yaw) * Rx(pitch).
func NewBasisFromEuler(pitch, yaw, roll float32) Basis {
	cp := math32.Cos(pitch)
	sp := math32.Sin(pitch)
	cy := math32.Cos(yaw)
	sy := math32.Sin(yaw)
	cr := math32.Cos(roll)
	sr := math32.Sin(roll)

	return Basis{
		X: Vec3{cr * cy, cr*sy*sp - sr*cp, cr*sy*cp + sr*sp},
		Y: Vec3{sr * cy, sr*sy*sp + cr*cp, sr*sy*cp - cr*sp},
		Z: Vec3{-sy, cy * sp, cy * cp},
	}
}

// NewBasisFromAxisAngle creates a basis rotating by angle radians about the
// given axis, via Rodrigues' formula. The axis does not need to be
// pre-normalized.
func NewBasisFromAxisAngle(axis Vec3, angle float32) Basis {
	n := axis.Normalized()
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	t := 1.0 - c

	return Basis{
		X: Vec3{t*n.X*n.X + c, t*n.X*n.Y - s*n.Z, t*n.X*n.Z + s*n.Y},
		Y: Vec3{t*n.X*n.Y + s*n.Z, t*n.Y*n.Y + c, t*n.Y*n.Z - s*n.X},
		Z: Vec3{t*n.X*n.Z - s*n.Y, t*n.Y*n.Z + s*n.X, t*n.Z*n.Z + c},
	}
}

// NewBasisFromQuat creates a basis from the rotation of q.
func NewBasisFromQuat(q Quaternion) Basis {
	return basisFromQuat(q)
}

// Mul returns the matrix product b*other in standard row-by-column form.
// As a transform of vectors, b.Mul(other) applies other first, then b:
// combine transforms by putting the one applied second on the left.
func (b Basis) Mul(other Basis) Basis {
	return Basis{
		X: Vec3{
			b.X.X*other.X.X + b.X.Y*other.Y.X + b.X.Z*other.Z.X,
			b.X.X*other.X.Y + b.X.Y*other.Y.Y + b.X.Z*other.Z.Y,
			b.X.X*other.X.Z + b.X.Y*other.Y.Z + b.X.Z*other.Z.Z,
		},
		Y: Vec3{
			b.Y.X*other.X.X + b.Y.Y*other.Y.X + b.Y.Z*other.Z.X,
			b.Y.X*other.X.Y + b.Y.Y*other.Y.Y + b.Y.Z*other.Z.Y,
			b.Y.X*other.X.Z + b.Y.Y*other.Y.Z + b.Y.Z*other.Z.Z,
		},
		Z: Vec3{
			b.Z.X*other.X.X + b.Z.Y*other.Y.X + b.Z.Z*other.Z.X,
			b.Z.X*other.X.Y + b.Z.Y*other.Y.Y + b.Z.Z*other.Z.Y,
			b.Z.X*other.X.Z + b.Z.Y*other.Y.Z + b.Z.Z*other.Z.Z,
		},
	}
}

// Transposed returns the transpose of b. For a pure rotation this equals the
// inverse.
func (b Basis) Transposed() Basis {
	return Basis{
		X: Vec3{b.X.X, b.Y.X, b.Z.X},
		Y: Vec3{b.X.Y, b.Y.Y, b.Z.Y},
		Z: Vec3{b.X.Z, b.Y.Z, b.Z.Z},
	}
}

// Determinant returns the determinant of b by cofactor expansion. Identity
// and pure rotations have determinant 1; a reflection is negative; per-axis
// scale multiplies in.
func (b Basis) Determinant() float32 {
	return b.X.X*(b.Y.Y*b.Z.Z-b.Y.Z*b.Z.Y) -
		b.X.Y*(b.Y.X*b.Z.Z-b.Y.Z*b.Z.X) +
		b.X.Z*(b.Y.X*b.Z.Y-b.Y.Y*b.Z.X)
}

// Inverse returns the inverse of b. A near-singular basis (|det| < K_EPSILON)
// returns the identity instead of failing; callers that need to distinguish
// the degenerate case should check Determinant first. Note Matrix3.Inverse
// signals singularity explicitly instead.
func (b Basis) Inverse() Basis {
	det := b.Determinant()
	if math32.Abs(det) < K_EPSILON {
		return NewBasis()
	}
	inv := 1.0 / det
	return Basis{
		X: Vec3{
			(b.Y.Y*b.Z.Z - b.Y.Z*b.Z.Y) * inv,
			(b.X.Z*b.Z.Y - b.X.Y*b.Z.Z) * inv,
			(b.X.Y*b.Y.Z - b.X.Z*b.Y.Y) * inv,
		},
		Y: Vec3{
			(b.Y.Z*b.Z.X - b.Y.X*b.Z.Z) * inv,
			(b.X.X*b.Z.Z - b.X.Z*b.Z.X) * inv,
			(b.X.Z*b.Y.X - b.X.X*b.Y.Z) * inv,
		},
		Z: Vec3{
			(b.Y.X*b.Z.Y - b.Y.Y*b.Z.X) * inv,
			(b.X.Y*b.Z.X - b.X.X*b.Z.Y) * inv,
			(b.X.X*b.Y.Y - b.X.Y*b.Y.X) * inv,
		},
	}
}

// RotateVec3 transforms v by b.
func (b Basis) RotateVec3(v Vec3) Vec3 {
	return Vec3{b.X.Dot(v), b.Y.Dot(v), b.Z.Dot(v)}
}

// Axis returns row i of b (0 = X, 1 = Y, 2 = Z).
func (b Basis) Axis(i int) Vec3 {
	switch i {
	case 0:
		return b.X
	case 1:
		return b.Y
	default:
		return b.Z
	}
}

// SetAxis returns a copy of b with row i replaced by v, the other two rows
// untouched.
func (b Basis) SetAxis(i int, v Vec3) Basis {
	switch i {
	case 0:
		b.X = v
	case 1:
		b.Y = v
	default:
		b.Z = v
	}
	return b
}

// ToEuler decomposes b into Euler angles in radians (pitch about X, yaw
// about Y, roll about Z), the inverse of NewBasisFromEuler. At gimbal lock
// (|sin(yaw)| >= 1) one degree of freedom is lost; roll is fixed to 0 and
// pitch absorbs the remaining rotation.
func (b Basis) ToEuler() (pitch, yaw, roll float32) {
	sy := -b.Z.X
	if math32.Abs(sy) < 1.0 {
		yaw = math32.Asin(sy)
		pitch = math32.Atan2(b.Z.Y, b.Z.Z)
		roll = math32.Atan2(b.Y.X, b.X.X)
		return pitch, yaw, roll
	}

	roll = 0
	if sy >= 1.0 {
		yaw = K_HALF_PI
		pitch = math32.Atan2(b.X.Y, b.X.Z)
	} else {
		yaw = -K_HALF_PI
		pitch = math32.Atan2(-b.X.Y, -b.X.Z)
	}
	return pitch, yaw, roll
}

// ToQuat extracts the rotation of b as a quaternion. The basis is assumed
// orthonormal.
func (b Basis) ToQuat() Quaternion {
	return quatFromBasis(b)
}

// Orthonormalized returns b restored to a right-handed orthonormal frame by
// Gram-Schmidt: X is normalized, Y has its X component projected out and is
// normalized, and Z is derived as cross(X, Y) rather than orthonormalized
// independently, so the result is right-handed regardless of input skew.
func (b Basis) Orthonormalized() Basis {
	x := b.X.Normalized()
	y := b.Y.Sub(x.MulScalar(b.Y.Dot(x))).Normalized()
	z := x.Cross(y)
	return Basis{X: x, Y: y, Z: z}
}

// Scale returns b with axis i multiplied by scale component i, baking a
// (generally non-uniform) scale into the transform. The result is no longer
// orthonormal.
func (b Basis) Scale(scale Vec3) Basis {
	return Basis{
		X: b.X.MulScalar(scale.X),
		Y: b.Y.MulScalar(scale.Y),
		Z: b.Z.MulScalar(scale.Z),
	}
}

// Lerp interpolates from b to other by t through quaternion space
// (lerp + renormalize). The nine components are never interpolated directly,
// which would not preserve orthonormality.
func (b Basis) Lerp(other Basis, t float32) Basis {
	return basisFromQuat(b.ToQuat().Lerp(other.ToQuat(), t))
}

// Slerp spherically interpolates from b to other by t through quaternion
// space, taking the shorter arc.
func (b Basis) Slerp(other Basis, t float32) Basis {
	return basisFromQuat(b.ToQuat().Slerp(other.ToQuat(), t))
}

// Rotate applies an axis-angle rotation to b in the global frame: the
// rotation matrix is pre-multiplied, so the axis is interpreted in world
// space.
func (b Basis) Rotate(axis Vec3, angle float32) Basis {
	return NewBasisFromAxisAngle(axis, angle).Mul(b)
}

// RotateLocal applies an axis-angle rotation to b in its own local frame:
// the rotation matrix is post-multiplied, so the axis is interpreted in the
// basis' space. On the identity basis Rotate and RotateLocal agree; on any
// other they generally differ.
func (b Basis) RotateLocal(axis Vec3, angle float32) Basis {
	return b.Mul(NewBasisFromAxisAngle(axis, angle))
}

// Compare reports whether all nine elements of b and other differ by no more
// than tolerance.
func (b Basis) Compare(other Basis, tolerance float32) bool {
	return b.X.Compare(other.X, tolerance) &&
		b.Y.Compare(other.Y, tolerance) &&
		b.Z.Compare(other.Z, tolerance)
}
