package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtentsContainsPoint(t *testing.T) {
	e2 := Extents2D{Min: NewVec2(-1, -1), Max: NewVec2(1, 1)}
	assert.True(t, e2.ContainsPoint(NewVec2Zero()))
	assert.True(t, e2.ContainsPoint(NewVec2(1, 1)))
	assert.False(t, e2.ContainsPoint(NewVec2(1.01, 0)))

	e3 := Extents3D{Min: NewVec3(0, 0, 0), Max: NewVec3(2, 2, 2)}
	assert.True(t, e3.ContainsPoint(NewVec3One()))
	assert.False(t, e3.ContainsPoint(NewVec3(1, 1, -0.1)))
}

func TestRayIntersectsExtents(t *testing.T) {
	box := Extents3D{Min: NewVec3(-1, -1, -1), Max: NewVec3(1, 1, 1)}

	r := Ray{Origin: NewVec3(0, 0, 5), Direction: NewVec3(0, 0, -1)}
	dist, hit := r.IntersectsExtents(box)
	assert.True(t, hit)
	assert.InDelta(t, 4, dist, standardTol)

	// Pointing away.
	r = Ray{Origin: NewVec3(0, 0, 5), Direction: NewVec3(0, 0, 1)}
	_, hit = r.IntersectsExtents(box)
	assert.False(t, hit)

	// Parallel to a slab, outside it.
	r = Ray{Origin: NewVec3(5, 0, 0), Direction: NewVec3(0, 0, -1)}
	_, hit = r.IntersectsExtents(box)
	assert.False(t, hit)

	// Starting inside hits at distance 0.
	r = Ray{Origin: NewVec3Zero(), Direction: NewVec3(1, 0, 0)}
	dist, hit = r.IntersectsExtents(box)
	assert.True(t, hit)
	assert.Equal(t, float32(0), dist)
}

func TestRayIntersectsSphere(t *testing.T) {
	r := Ray{Origin: NewVec3(0, 0, 5), Direction: NewVec3(0, 0, -1)}

	dist, hit := r.IntersectsSphere(NewVec3Zero(), 1)
	assert.True(t, hit)
	assert.InDelta(t, 4, dist, standardTol)

	_, hit = r.IntersectsSphere(NewVec3(10, 0, 0), 1)
	assert.False(t, hit)

	// Inside the sphere.
	dist, hit = Ray{Origin: NewVec3Zero(), Direction: NewVec3(1, 0, 0)}.IntersectsSphere(NewVec3Zero(), 2)
	assert.True(t, hit)
	assert.Equal(t, float32(0), dist)
}
