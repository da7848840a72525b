package math

import "github.com/chewxy/math32"

// Mat4 is a 4x4 affine transform matrix in column-major layout
// (Data[col*4+row]), acting on column vectors.
type Mat4 struct {
	Data [16]float32
}

// NewMat4Identity creates and returns an identity matrix.
func NewMat4Identity() Mat4 {
	out := Mat4{}
	out.Data[0] = 1.0
	out.Data[5] = 1.0
	out.Data[10] = 1.0
	out.Data[15] = 1.0
	return out
}

// Mul returns the matrix applying mt's transform followed by other's
// transform to a column vector; in conventional notation the product
// other x mt. The operand order is deliberate and relied on by Transform and
// the camera constructors: chained calls read in application order,
// a.Mul(b).Mul(c) applies a, then b, then c.
func (mt Mat4) Mul(other Mat4) Mat4 {
	out := Mat4{}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += mt.Data[i*4+k] * other.Data[k*4+j]
			}
			out.Data[i*4+j] = sum
		}
	}
	return out
}

// NewMat4Orthographic creates an orthographic projection matrix. Typically
// used to render flat or 2D scenes. The clip-space conventions are
// OpenGL-style; Data[15] stays 1.
func NewMat4Orthographic(left, right, bottom, top, nearClip, farClip float32) Mat4 {
	out := NewMat4Identity()

	lr := 1.0 / (left - right)
	bt := 1.0 / (bottom - top)
	nf := 1.0 / (nearClip - farClip)

	out.Data[0] = -2.0 * lr
	out.Data[5] = -2.0 * bt
	out.Data[10] = 2.0 * nf

	out.Data[12] = (left + right) * lr
	out.Data[13] = (top + bottom) * bt
	out.Data[14] = (farClip + nearClip) * nf
	return out
}

// NewMat4Perspective creates a perspective projection matrix. The field of
// view is in radians. OpenGL-style clip space: far/near land in the w divide
// through Data[11] = -1.
func NewMat4Perspective(fovRadians, aspectRatio, nearClip, farClip float32) Mat4 {
	halfTanFov := math32.Tan(fovRadians * 0.5)
	out := Mat4{}
	out.Data[0] = 1.0 / (aspectRatio * halfTanFov)
	out.Data[5] = 1.0 / halfTanFov
	out.Data[10] = -((farClip + nearClip) / (farClip - nearClip))
	out.Data[11] = -1.0
	out.Data[14] = -((2.0 * farClip * nearClip) / (farClip - nearClip))
	return out
}

// NewMat4LookAt creates a view matrix looking at target from position, with
// the camera-space basis built by Gram-Schmidt from the forward and up
// directions. A degenerate input (position on top of target) returns the
// identity.
func NewMat4LookAt(position, target, up Vec3) Mat4 {
	forward := target.Sub(position)
	if forward.LengthSquared() < K_EPSILON*K_EPSILON {
		return NewMat4Identity()
	}

	zAxis := forward.Normalized()
	xAxis := up.Cross(zAxis).Normalized()
	yAxis := zAxis.Cross(xAxis)

	out := Mat4{}
	out.Data[0] = xAxis.X
	out.Data[1] = yAxis.X
	out.Data[2] = -zAxis.X
	out.Data[4] = xAxis.Y
	out.Data[5] = yAxis.Y
	out.Data[6] = -zAxis.Y
	out.Data[8] = xAxis.Z
	out.Data[9] = yAxis.Z
	out.Data[10] = -zAxis.Z
	out.Data[12] = -xAxis.Dot(position)
	out.Data[13] = -yAxis.Dot(position)
	out.Data[14] = zAxis.Dot(position)
	out.Data[15] = 1.0

	return out
}

// Transposed returns a transposed copy of the provided matrix.
func (mt Mat4) Transposed() Mat4 {
	out := Mat4{}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.Data[i*4+j] = mt.Data[j*4+i]
		}
	}
	return out
}

// Inverse creates and returns an inverse of the provided matrix. A singular
// matrix yields IEEE-754 infinities/NaNs; affine transform matrices built
// from the constructors in this package are always invertible.
func (mt Mat4) Inverse() Mat4 {
	m := mt.Data

	t0 := m[10] * m[15]
	t1 := m[14] * m[11]
	t2 := m[6] * m[15]
	t3 := m[14] * m[7]
	t4 := m[6] * m[11]
	t5 := m[10] * m[7]
	t6 := m[2] * m[15]
	t7 := m[14] * m[3]
	t8 := m[2] * m[11]
	t9 := m[10] * m[3]
	t10 := m[2] * m[7]
	t11 := m[6] * m[3]
	t12 := m[8] * m[13]
	t13 := m[12] * m[9]
	t14 := m[4] * m[13]
	t15 := m[12] * m[5]
	t16 := m[4] * m[9]
	t17 := m[8] * m[5]
	t18 := m[0] * m[13]
	t19 := m[12] * m[1]
	t20 := m[0] * m[9]
	t21 := m[8] * m[1]
	t22 := m[0] * m[5]
	t23 := m[4] * m[1]

	out := Mat4{}
	o := &out.Data

	o[0] = (t0*m[5] + t3*m[9] + t4*m[13]) - (t1*m[5] + t2*m[9] + t5*m[13])
	o[1] = (t1*m[1] + t6*m[9] + t9*m[13]) - (t0*m[1] + t7*m[9] + t8*m[13])
	o[2] = (t2*m[1] + t7*m[5] + t10*m[13]) - (t3*m[1] + t6*m[5] + t11*m[13])
	o[3] = (t5*m[1] + t8*m[5] + t11*m[9]) - (t4*m[1] + t9*m[5] + t10*m[9])

	d := 1.0 / (m[0]*o[0] + m[4]*o[1] + m[8]*o[2] + m[12]*o[3])

	o[0] = d * o[0]
	o[1] = d * o[1]
	o[2] = d * o[2]
	o[3] = d * o[3]
	o[4] = d * ((t1*m[4] + t2*m[8] + t5*m[12]) - (t0*m[4] + t3*m[8] + t4*m[12]))
	o[5] = d * ((t0*m[0] + t7*m[8] + t8*m[12]) - (t1*m[0] + t6*m[8] + t9*m[12]))
	o[6] = d * ((t3*m[0] + t6*m[4] + t11*m[12]) - (t2*m[0] + t7*m[4] + t10*m[12]))
	o[7] = d * ((t4*m[0] + t9*m[4] + t10*m[8]) - (t5*m[0] + t8*m[4] + t11*m[8]))
	o[8] = d * ((t12*m[7] + t15*m[11] + t16*m[15]) - (t13*m[7] + t14*m[11] + t17*m[15]))
	o[9] = d * ((t13*m[3] + t18*m[11] + t21*m[15]) - (t12*m[3] + t19*m[11] + t20*m[15]))
	o[10] = d * ((t14*m[3] + t19*m[7] + t22*m[15]) - (t15*m[3] + t18*m[7] + t23*m[15]))
	o[11] = d * ((t17*m[3] + t20*m[7] + t23*m[11]) - (t16*m[3] + t21*m[7] + t22*m[11]))
	o[12] = d * ((t14*m[10] + t17*m[14] + t13*m[6]) - (t16*m[14] + t12*m[6] + t15*m[10]))
	o[13] = d * ((t20*m[14] + t12*m[2] + t19*m[10]) - (t18*m[10] + t21*m[14] + t13*m[2]))
	o[14] = d * ((t18*m[6] + t23*m[14] + t15*m[2]) - (t22*m[14] + t14*m[2] + t19*m[6]))
	o[15] = d * ((t22*m[10] + t16*m[2] + t21*m[6]) - (t20*m[6] + t23*m[10] + t17*m[2]))

	return out
}

// NewMat4Translation creates a translation matrix from the given position.
func NewMat4Translation(position Vec3) Mat4 {
	out := NewMat4Identity()
	out.Data[12] = position.X
	out.Data[13] = position.Y
	out.Data[14] = position.Z
	return out
}

// NewMat4Scale returns a scale matrix using the provided scale.
func NewMat4Scale(scale Vec3) Mat4 {
	out := NewMat4Identity()
	out.Data[0] = scale.X
	out.Data[5] = scale.Y
	out.Data[10] = scale.Z
	return out
}

// NewMat4EulerX creates a rotation matrix about the X axis from the provided
// angle in radians.
func NewMat4EulerX(angleRadians float32) Mat4 {
	out := NewMat4Identity()
	c := math32.Cos(angleRadians)
	s := math32.Sin(angleRadians)

	out.Data[5] = c
	out.Data[6] = s
	out.Data[9] = -s
	out.Data[10] = c
	return out
}

// NewMat4EulerY creates a rotation matrix about the Y axis from the provided
// angle in radians.
func NewMat4EulerY(angleRadians float32) Mat4 {
	out := NewMat4Identity()
	c := math32.Cos(angleRadians)
	s := math32.Sin(angleRadians)

	out.Data[0] = c
	out.Data[2] = -s
	out.Data[8] = s
	out.Data[10] = c
	return out
}

// NewMat4EulerZ creates a rotation matrix about the Z axis from the provided
// angle in radians.
func NewMat4EulerZ(angleRadians float32) Mat4 {
	out := NewMat4Identity()
	c := math32.Cos(angleRadians)
	s := math32.Sin(angleRadians)

	out.Data[0] = c
	out.Data[1] = s
	out.Data[4] = -s
	out.Data[5] = c
	return out
}

// NewMat4EulerXYZ creates a rotation matrix from the provided x, y and z
// axis rotations, applied in that order.
func NewMat4EulerXYZ(xRadians, yRadians, zRadians float32) Mat4 {
	rx := NewMat4EulerX(xRadians)
	ry := NewMat4EulerY(yRadians)
	rz := NewMat4EulerZ(zRadians)
	return rx.Mul(ry).Mul(rz)
}

// NewMat4FromAxisAngle creates a rotation matrix about an arbitrary axis.
// The axis does not need to be pre-normalized.
func NewMat4FromAxisAngle(axis Vec3, angleRadians float32) Mat4 {
	out := NewMat4Identity()
	out.SetBasis(NewBasisFromAxisAngle(axis, angleRadians))
	return out
}

// Compare reports whether all elements of mt and other are within tolerance
// of each other.
func (mt Mat4) Compare(other Mat4, tolerance float32) bool {
	for i := 0; i < 16; i++ {
		if math32.Abs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}

// SetBasis overwrites the rotation 3x3 sub-block of mt with b, leaving the
// translation and the fourth row and column untouched.
func (mt *Mat4) SetBasis(b Basis) {
	mt.Data[0] = b.X.X
	mt.Data[4] = b.X.Y
	mt.Data[8] = b.X.Z
	mt.Data[1] = b.Y.X
	mt.Data[5] = b.Y.Y
	mt.Data[9] = b.Y.Z
	mt.Data[2] = b.Z.X
	mt.Data[6] = b.Z.Y
	mt.Data[10] = b.Z.Z
}

// GetBasis extracts the rotation 3x3 sub-block of mt.
func (mt Mat4) GetBasis() Basis {
	return Basis{
		X: Vec3{mt.Data[0], mt.Data[4], mt.Data[8]},
		Y: Vec3{mt.Data[1], mt.Data[5], mt.Data[9]},
		Z: Vec3{mt.Data[2], mt.Data[6], mt.Data[10]},
	}
}

// TransformPoint transforms v as a point (w = 1) by mt, applying the
// perspective divide. The divide is skipped when the resulting w is 0.
func (mt Mat4) TransformPoint(v Vec3) Vec3 {
	m := mt.Data
	out := Vec3{
		X: v.X*m[0] + v.Y*m[4] + v.Z*m[8] + m[12],
		Y: v.X*m[1] + v.Y*m[5] + v.Z*m[9] + m[13],
		Z: v.X*m[2] + v.Y*m[6] + v.Z*m[10] + m[14],
	}
	w := v.X*m[3] + v.Y*m[7] + v.Z*m[11] + m[15]
	if w != 0 {
		out = out.DivScalar(w)
	}
	return out
}

// TransformDirection transforms v as a direction (w = 0) by mt: rotation and
// scale apply, translation does not.
func (mt Mat4) TransformDirection(v Vec3) Vec3 {
	m := mt.Data
	return Vec3{
		X: v.X*m[0] + v.Y*m[4] + v.Z*m[8],
		Y: v.X*m[1] + v.Y*m[5] + v.Z*m[9],
		Z: v.X*m[2] + v.Y*m[6] + v.Z*m[10],
	}
}

// Forward returns a normalized forward vector relative to the provided
// matrix.
func (mt Mat4) Forward() Vec3 {
	return Vec3{-mt.Data[2], -mt.Data[6], -mt.Data[10]}.Normalized()
}

// Backward returns a normalized backward vector relative to the provided
// matrix.
func (mt Mat4) Backward() Vec3 {
	return Vec3{mt.Data[2], mt.Data[6], mt.Data[10]}.Normalized()
}

// Up returns a normalized upward vector relative to the provided matrix.
func (mt Mat4) Up() Vec3 {
	return Vec3{mt.Data[1], mt.Data[5], mt.Data[9]}.Normalized()
}

// Down returns a normalized downward vector relative to the provided matrix.
func (mt Mat4) Down() Vec3 {
	return Vec3{-mt.Data[1], -mt.Data[5], -mt.Data[9]}.Normalized()
}

// Left returns a normalized left vector relative to the provided matrix.
func (mt Mat4) Left() Vec3 {
	return Vec3{-mt.Data[0], -mt.Data[4], -mt.Data[8]}.Normalized()
}

// Right returns a normalized right vector relative to the provided matrix.
func (mt Mat4) Right() Vec3 {
	return Vec3{mt.Data[0], mt.Data[4], mt.Data[8]}.Normalized()
}
