package math

import "github.com/chewxy/math32"

// Mat3 is a 3x3 affine 2D transform matrix in column-major layout
// (Data[col*3+row]), acting on column vectors. Unlike Basis it is not a
// rotation frame; it carries 2D translation in its third column.
type Mat3 struct {
	Data [9]float32
}

// NewMat3Identity creates and returns an identity matrix.
func NewMat3Identity() Mat3 {
	out := Mat3{}
	out.Data[0] = 1.0
	out.Data[4] = 1.0
	out.Data[8] = 1.0
	return out
}

// NewMat3Translation creates a 2D translation matrix from the given position.
func NewMat3Translation(position Vec2) Mat3 {
	out := NewMat3Identity()
	out.Data[6] = position.X
	out.Data[7] = position.Y
	return out
}

// NewMat3Rotation creates a 2D rotation matrix from the provided angle in
// radians.
func NewMat3Rotation(angleRadians float32) Mat3 {
	out := NewMat3Identity()
	c := math32.Cos(angleRadians)
	s := math32.Sin(angleRadians)
	out.Data[0] = c
	out.Data[1] = s
	out.Data[3] = -s
	out.Data[4] = c
	return out
}

// NewMat3Scale returns a 2D scale matrix using the provided scale.
func NewMat3Scale(scale Vec2) Mat3 {
	out := NewMat3Identity()
	out.Data[0] = scale.X
	out.Data[4] = scale.Y
	return out
}

// NewMat3FromMat4 extracts the upper-left 3x3 block of m, dropping the
// translation and the fourth row and column.
func NewMat3FromMat4(m Mat4) Mat3 {
	out := Mat3{}
	out.Data[0] = m.Data[0]
	out.Data[1] = m.Data[1]
	out.Data[2] = m.Data[2]
	out.Data[3] = m.Data[4]
	out.Data[4] = m.Data[5]
	out.Data[5] = m.Data[6]
	out.Data[6] = m.Data[8]
	out.Data[7] = m.Data[9]
	out.Data[8] = m.Data[10]
	return out
}

// NewMat3NormalMatrix builds the normal matrix of m: the inverse transpose of
// its upper-left 3x3 block, which transforms normals correctly under
// non-uniform scale. Returns ok=false when the block is singular.
func NewMat3NormalMatrix(m Mat4) (Mat3, bool) {
	inv, ok := NewMat3FromMat4(m).Inverse()
	if !ok {
		return Mat3{}, false
	}
	return inv.Transposed(), true
}

// Mul returns the matrix applying mt's transform followed by other's
// transform to a column vector, matching the operand order of Mat4.Mul:
// a.Mul(b).Mul(c) applies a, then b, then c.
func (mt Mat3) Mul(other Mat3) Mat3 {
	out := Mat3{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := float32(0)
			for k := 0; k < 3; k++ {
				sum += mt.Data[i*3+k] * other.Data[k*3+j]
			}
			out.Data[i*3+j] = sum
		}
	}
	return out
}

// Determinant returns the determinant of mt by cofactor expansion.
func (mt Mat3) Determinant() float32 {
	m := mt.Data
	return m[0]*(m[4]*m[8]-m[5]*m[7]) +
		m[1]*(m[5]*m[6]-m[3]*m[8]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Inverse returns the inverse of mt and whether it exists. A near-singular
// matrix (|det| < K_EPSILON) returns ok=false and the zero matrix; callers
// must check. Basis.Inverse falls back to identity instead, since a basis
// always stands in for a rotation.
func (mt Mat3) Inverse() (Mat3, bool) {
	m := mt.Data

	b0 := m[4]*m[8] - m[5]*m[7]
	b1 := m[5]*m[6] - m[3]*m[8]
	b2 := m[3]*m[7] - m[4]*m[6]

	det := m[0]*b0 + m[1]*b1 + m[2]*b2
	if math32.Abs(det) < K_EPSILON {
		return Mat3{}, false
	}
	d := 1.0 / det

	out := Mat3{}
	out.Data[0] = b0 * d
	out.Data[1] = (m[2]*m[7] - m[1]*m[8]) * d
	out.Data[2] = (m[1]*m[5] - m[2]*m[4]) * d
	out.Data[3] = b1 * d
	out.Data[4] = (m[0]*m[8] - m[2]*m[6]) * d
	out.Data[5] = (m[2]*m[3] - m[0]*m[5]) * d
	out.Data[6] = b2 * d
	out.Data[7] = (m[1]*m[6] - m[0]*m[7]) * d
	out.Data[8] = (m[0]*m[4] - m[1]*m[3]) * d
	return out, true
}

// Transposed returns a transposed copy of the provided matrix.
func (mt Mat3) Transposed() Mat3 {
	out := Mat3{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.Data[i*3+j] = mt.Data[j*3+i]
		}
	}
	return out
}

// TransformPoint transforms v as a 2D point: rotation, scale and translation
// all apply.
func (mt Mat3) TransformPoint(v Vec2) Vec2 {
	m := mt.Data
	return Vec2{
		X: v.X*m[0] + v.Y*m[3] + m[6],
		Y: v.X*m[1] + v.Y*m[4] + m[7],
	}
}

// TransformVector transforms v as a 2D direction: rotation and scale apply,
// translation does not.
func (mt Mat3) TransformVector(v Vec2) Vec2 {
	m := mt.Data
	return Vec2{
		X: v.X*m[0] + v.Y*m[3],
		Y: v.X*m[1] + v.Y*m[4],
	}
}
