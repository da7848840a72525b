package math

import "github.com/chewxy/math32"

// Extents2D is an axis-aligned 2D bounding box.
type Extents2D struct {
	Min Vec2
	Max Vec2
}

// Extents3D is an axis-aligned 3D bounding box.
type Extents3D struct {
	Min Vec3
	Max Vec3
}

// ContainsPoint reports whether p lies inside e, boundary included.
func (e Extents2D) ContainsPoint(p Vec2) bool {
	return p.X >= e.Min.X && p.X <= e.Max.X &&
		p.Y >= e.Min.Y && p.Y <= e.Max.Y
}

// ContainsPoint reports whether p lies inside e, boundary included.
func (e Extents3D) ContainsPoint(p Vec3) bool {
	return p.X >= e.Min.X && p.X <= e.Max.X &&
		p.Y >= e.Min.Y && p.Y <= e.Max.Y &&
		p.Z >= e.Min.Z && p.Z <= e.Max.Z
}

// Ray is a half-line from Origin along Direction. Direction is assumed
// normalized by the predicates below.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// IntersectsExtents performs a slab test of r against e. Returns the
// distance along the ray to the entry point and whether the ray hits at all.
// A ray starting inside the box hits at distance 0.
func (r Ray) IntersectsExtents(e Extents3D) (float32, bool) {
	tMin := math32.Inf(-1)
	tMax := math32.Inf(1)

	origin := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float32{e.Min.X, e.Min.Y, e.Min.Z}
	hi := [3]float32{e.Max.X, e.Max.Y, e.Max.Z}

	for i := 0; i < 3; i++ {
		if math32.Abs(dir[i]) < K_EPSILON {
			// Parallel to this slab; miss unless the origin is inside it.
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return 0, false
			}
			continue
		}
		inv := 1.0 / dir[i]
		t1 := (lo[i] - origin[i]) * inv
		t2 := (hi[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, false
		}
	}

	if tMax < 0 {
		return 0, false
	}
	if tMin < 0 {
		return 0, true
	}
	return tMin, true
}

// IntersectsSphere reports whether r hits the sphere at center with the
// given radius, and the distance along the ray to the nearest hit.
func (r Ray) IntersectsSphere(center Vec3, radius float32) (float32, bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Direction)
	c := oc.LengthSquared() - radius*radius

	// Ray points away from a sphere it is outside of.
	if c > 0 && b > 0 {
		return 0, false
	}

	disc := b*b - c
	if disc < 0 {
		return 0, false
	}

	t := -b - math32.Sqrt(disc)
	if t < 0 {
		t = 0
	}
	return t, true
}
