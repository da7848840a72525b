package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tolAssertBasis(t *testing.T, tol float32, want, got Basis) {
	t.Helper()
	assert.True(t, want.Compare(got, tol), "want %v, got %v", want, got)
}

func TestBasisIdentity(t *testing.T) {
	b := NewBasis()
	v := NewVec3(1, -2, 3)
	assert.Equal(t, v, b.RotateVec3(v))
	assert.Equal(t, float32(1), b.Determinant())
}

func TestBasisRotateVec3(t *testing.T) {
	b := NewBasisFromAxisAngle(NewVec3(0, 0, 1), DegToRad(90))
	tolAssertVec3(t, rotationTol, NewVec3(0, 1, 0), b.RotateVec3(NewVec3(1, 0, 0)))
	tolAssertVec3(t, rotationTol, NewVec3(-1, 0, 0), b.RotateVec3(NewVec3(0, 1, 0)))
	tolAssertVec3(t, rotationTol, NewVec3(0, 0, 1), b.RotateVec3(NewVec3(0, 0, 1)))
}

func TestBasisMulComposition(t *testing.T) {
	rx := NewBasisFromAxisAngle(NewVec3Right(), DegToRad(90))
	rz := NewBasisFromAxisAngle(NewVec3(0, 0, 1), DegToRad(90))

	// rz.Mul(rx) applies rx first, then rz.
	v := rz.Mul(rx).RotateVec3(NewVec3(0, 1, 0))
	tolAssertVec3(t, rotationTol, NewVec3(0, 0, 1), v)

	// Matches quaternion composition with the same operand order.
	q := rz.ToQuat().Mul(rx.ToQuat())
	tolAssertVec3(t, rotationTol, v, q.RotateVec3(NewVec3(0, 1, 0)))
}

func TestBasisDeterminant(t *testing.T) {
	assert.InDelta(t, 1, NewBasis().Determinant(), standardTol)
	assert.InDelta(t, 1, NewBasisFromEuler(0.4, -1.1, 2.0).Determinant(), rotationTol)
	assert.InDelta(t, 2*3*4, NewBasis().Scale(NewVec3(2, 3, 4)).Determinant(), rotationTol)
	// Reflection flips the sign.
	assert.InDelta(t, -1, NewBasis().Scale(NewVec3(-1, 1, 1)).Determinant(), standardTol)
}

func TestBasisInverse(t *testing.T) {
	b := NewBasisFromEuler(0.4, -0.2, 0.9)
	tolAssertBasis(t, rotationTol, NewBasis(), b.Mul(b.Inverse()))
	// For a pure rotation the inverse is the transpose.
	tolAssertBasis(t, rotationTol, b.Transposed(), b.Inverse())
}

func TestBasisInverseSingular(t *testing.T) {
	// Rank-deficient input falls back to identity.
	flat := NewBasisFromAxes(NewVec3(1, 0, 0), NewVec3(2, 0, 0), NewVec3(0, 0, 1))
	assert.Equal(t, NewBasis(), flat.Inverse())
}

func TestBasisEulerRoundTrip(t *testing.T) {
	for _, angles := range [][3]float32{
		{0, 0, 0},
		{0.3, -0.6, 1.1},
		{-1.2, 0.8, -0.4},
		{0.1, 1.4, 2.9},
	} {
		b := NewBasisFromEuler(angles[0], angles[1], angles[2])
		pitch, yaw, roll := b.ToEuler()
		tolAssertBasis(t, rotationTol, b, NewBasisFromEuler(pitch, yaw, roll))
	}
}

func TestBasisEulerGimbalLock(t *testing.T) {
	b := NewBasisFromEuler(0.5, K_HALF_PI, 0.3)
	pitch, yaw, roll := b.ToEuler()
	// One degree of freedom is lost; roll is fixed to 0 but the rebuilt
	// basis must still represent the same rotation.
	assert.Equal(t, float32(0), roll)
	tolAssertBasis(t, 1e-3, b, NewBasisFromEuler(pitch, yaw, roll))
}

func TestBasisQuatRoundTrip(t *testing.T) {
	b := NewBasisFromEuler(0.7, -1.2, 0.4)
	tolAssertBasis(t, rotationTol, b, b.ToQuat().ToBasis())
}

func TestBasisOrthonormalized(t *testing.T) {
	skewed := NewBasisFromAxes(
		NewVec3(2, 0.1, 0),
		NewVec3(0.3, 1.5, 0.2),
		NewVec3(0.7, -0.4, 3),
	)
	o := skewed.Orthonormalized()

	assert.InDelta(t, 1, o.X.Length(), standardTol)
	assert.InDelta(t, 1, o.Y.Length(), standardTol)
	assert.InDelta(t, 1, o.Z.Length(), standardTol)
	assert.InDelta(t, 0, o.X.Dot(o.Y), standardTol)
	assert.InDelta(t, 0, o.X.Dot(o.Z), standardTol)
	assert.InDelta(t, 0, o.Y.Dot(o.Z), standardTol)
	// Right-handed regardless of input skew.
	assert.InDelta(t, 1, o.Determinant(), standardTol)
}

func TestBasisAxisSetAxis(t *testing.T) {
	b := NewBasis()
	assert.Equal(t, NewVec3(0, 1, 0), b.Axis(1))

	b2 := b.SetAxis(1, NewVec3(0, 5, 0))
	assert.Equal(t, NewVec3(0, 5, 0), b2.Axis(1))
	assert.Equal(t, b.X, b2.X)
	assert.Equal(t, b.Z, b2.Z)
	// Value semantics; the original is untouched.
	assert.Equal(t, NewVec3(0, 1, 0), b.Axis(1))
}

func TestBasisLerpSlerpBoundaries(t *testing.T) {
	a := NewBasisFromEuler(0.2, 0.1, -0.3)
	b := NewBasisFromEuler(-0.9, 1.2, 0.6)

	tolAssertBasis(t, rotationTol, a, a.Lerp(b, 0))
	tolAssertBasis(t, rotationTol, b, a.Lerp(b, 1))
	tolAssertBasis(t, rotationTol, a, a.Slerp(b, 0))
	tolAssertBasis(t, rotationTol, b, a.Slerp(b, 1))

	// Interpolation goes through quaternion space, so midpoints stay
	// orthonormal even though componentwise lerp would not.
	mid := a.Slerp(b, 0.5)
	assert.InDelta(t, 1, mid.Determinant(), rotationTol)
}

func TestBasisRotateGlobalVsLocal(t *testing.T) {
	axis := NewVec3(0.3, 1, -0.2)
	angle := DegToRad(40)

	// On the identity the two agree.
	id := NewBasis()
	tolAssertBasis(t, rotationTol, id.Rotate(axis, angle), id.RotateLocal(axis, angle))

	// On a non-identity basis they generally differ.
	b := NewBasisFromEuler(0.5, -0.7, 0.2)
	global := b.Rotate(axis, angle)
	local := b.RotateLocal(axis, angle)
	assert.False(t, global.Compare(local, 1e-3))
}

func TestBasisScaleNotOrthonormal(t *testing.T) {
	b := NewBasisFromEuler(0.3, 0.2, 0.1).Scale(NewVec3(2, 1, 1))
	assert.InDelta(t, 2, b.X.Length(), rotationTol)
	assert.InDelta(t, 2, b.Determinant(), rotationTol)
}
