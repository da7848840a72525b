package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Rotation round-trip tolerance. Trig chains in float32 lose a few digits
// over the plain algebra tolerance.
const rotationTol = 1.0e-4

func tolAssertQuat(t *testing.T, tol float32, want, got Quaternion) {
	t.Helper()
	// q and -q are the same rotation.
	if want.Dot(got) < 0 {
		got = got.Negate()
	}
	assert.True(t, want.Compare(got, tol), "want %v, got %v", want, got)
}

func TestQuatIdentity(t *testing.T) {
	q := NewQuatIdentity()
	assert.Equal(t, float32(1), q.W)
	assert.InDelta(t, 1, q.Normal(), standardTol)

	v := NewVec3(1, 2, 3)
	assert.Equal(t, v, q.RotateVec3(v))
}

func TestQuatNormalizedZero(t *testing.T) {
	assert.Equal(t, NewQuatIdentity(), Quaternion{}.Normalized())
	assert.Equal(t, NewQuatIdentity(), Quaternion{}.Inverse())
}

func TestQuatRotateVec3(t *testing.T) {
	q := NewQuatFromAxisAngle(NewVec3(0, 0, 1), DegToRad(90))
	tolAssertVec3(t, rotationTol, NewVec3(0, 1, 0), q.RotateVec3(NewVec3(1, 0, 0)))
	tolAssertVec3(t, rotationTol, NewVec3(-1, 0, 0), q.RotateVec3(NewVec3(0, 1, 0)))

	// Non-normalized axis is normalized internally.
	q2 := NewQuatFromAxisAngle(NewVec3(0, 0, 10), DegToRad(90))
	tolAssertQuat(t, standardTol, q, q2)
}

func TestQuatMulComposition(t *testing.T) {
	qx := NewQuatFromAxisAngle(NewVec3Right(), DegToRad(90))
	qz := NewQuatFromAxisAngle(NewVec3(0, 0, 1), DegToRad(90))

	// qz.Mul(qx) applies qx first, then qz.
	v := qz.Mul(qx).RotateVec3(NewVec3(0, 1, 0))
	// (0,1,0) -> rotate 90 about X -> (0,0,1) -> rotate 90 about Z -> (0,0,1)
	tolAssertVec3(t, rotationTol, NewVec3(0, 0, 1), v)

	v = qx.Mul(qz).RotateVec3(NewVec3(0, 1, 0))
	// (0,1,0) -> rotate 90 about Z -> (-1,0,0) -> rotate 90 about X -> (-1,0,0)
	tolAssertVec3(t, rotationTol, NewVec3(-1, 0, 0), v)
}

func TestQuatInverse(t *testing.T) {
	q := NewQuatFromEuler(0.3, -0.8, 1.2)
	tolAssertQuat(t, rotationTol, NewQuatIdentity(), q.Mul(q.Inverse()))

	v := NewVec3(1, -2, 0.5)
	tolAssertVec3(t, rotationTol, v, q.Inverse().RotateVec3(q.RotateVec3(v)))
}

func TestQuatEulerRoundTrip(t *testing.T) {
	pitch, yaw, roll := float32(0.3), float32(-0.6), float32(1.1)
	q := NewQuatFromEuler(pitch, yaw, roll)
	p2, y2, r2 := q.ToEuler()
	assert.InDelta(t, pitch, p2, rotationTol)
	assert.InDelta(t, yaw, y2, rotationTol)
	assert.InDelta(t, roll, r2, rotationTol)
}

func TestQuatEulerMatchesBasis(t *testing.T) {
	pitch, yaw, roll := float32(-0.4), float32(0.9), float32(0.2)
	q := NewQuatFromEuler(pitch, yaw, roll)
	b := NewBasisFromEuler(pitch, yaw, roll)

	v := NewVec3(0.5, -1, 2)
	tolAssertVec3(t, rotationTol, b.RotateVec3(v), q.RotateVec3(v))
}

func TestQuatToAxisAngle(t *testing.T) {
	axis := NewVec3(1, 2, -0.5).Normalized()
	angle := DegToRad(70)
	a2, ang2 := NewQuatFromAxisAngle(axis, angle).ToAxisAngle()
	assert.InDelta(t, angle, ang2, rotationTol)
	tolAssertVec3(t, rotationTol, axis, a2)

	// Near-identity short-circuits to angle 0 about +X.
	a3, ang3 := NewQuatIdentity().ToAxisAngle()
	assert.Equal(t, float32(0), ang3)
	assert.Equal(t, NewVec3Right(), a3)
}

func TestQuatBasisRoundTrip(t *testing.T) {
	q := NewQuatFromEuler(0.7, -1.2, 0.4).Normalized()
	tolAssertQuat(t, rotationTol, q, q.ToBasis().ToQuat())

	// Exercise the non-positive-trace branches too.
	q = NewQuatFromAxisAngle(NewVec3(1, 0, 0), DegToRad(179))
	tolAssertQuat(t, rotationTol, q, q.ToBasis().ToQuat())
	q = NewQuatFromAxisAngle(NewVec3(0, 1, 0), DegToRad(179))
	tolAssertQuat(t, rotationTol, q, q.ToBasis().ToQuat())
	q = NewQuatFromAxisAngle(NewVec3(0, 0, 1), DegToRad(179))
	tolAssertQuat(t, rotationTol, q, q.ToBasis().ToQuat())
}

func TestQuatLerpBoundaries(t *testing.T) {
	a := NewQuatFromAxisAngle(NewVec3Up(), DegToRad(10))
	b := NewQuatFromAxisAngle(NewVec3Up(), DegToRad(120))

	tolAssertQuat(t, standardTol, a, a.Lerp(b, 0))
	tolAssertQuat(t, standardTol, b, a.Lerp(b, 1))
	assert.InDelta(t, 1, a.Lerp(b, 0.37).Normal(), standardTol)
}

func TestQuatSlerp(t *testing.T) {
	a := NewQuatFromAxisAngle(NewVec3Up(), 0)
	b := NewQuatFromAxisAngle(NewVec3Up(), DegToRad(120))

	tolAssertQuat(t, rotationTol, a, a.Slerp(b, 0))
	tolAssertQuat(t, rotationTol, b, a.Slerp(b, 1))

	// Constant angular velocity: the midpoint is the half rotation.
	mid := NewQuatFromAxisAngle(NewVec3Up(), DegToRad(60))
	tolAssertQuat(t, rotationTol, mid, a.Slerp(b, 0.5))
}

func TestQuatSlerpShortestArc(t *testing.T) {
	a := NewQuatFromAxisAngle(NewVec3Up(), DegToRad(10))
	b := NewQuatFromAxisAngle(NewVec3Up(), DegToRad(50))

	// b and -b are the same rotation, so both interpolations must follow
	// the same short arc.
	tolAssertQuat(t, rotationTol, a.Slerp(b, 0.25), a.Slerp(b.Negate(), 0.25))
}

func TestQuatSlerpNearlyParallel(t *testing.T) {
	a := NewQuatFromAxisAngle(NewVec3Up(), DegToRad(10))
	b := NewQuatFromAxisAngle(NewVec3Up(), DegToRad(10.01))

	got := a.Slerp(b, 0.5)
	assert.InDelta(t, 1, got.Normal(), standardTol)
	tolAssertQuat(t, rotationTol, NewQuatFromAxisAngle(NewVec3Up(), DegToRad(10.005)), got)
}
