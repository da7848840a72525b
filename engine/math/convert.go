package math

import "github.com/chewxy/math32"

// The quaternion<->basis conversions live here as a single free function
// pair; Quaternion.ToBasis, Basis.ToQuat, NewQuatFromBasis and
// NewBasisFromQuat all delegate to it so the two directions cannot drift
// apart.

// quatFromBasis extracts a quaternion from an orthonormal basis using
// Shepperd's method: branch on the trace sign, or the largest diagonal
// element when the trace is non-positive, so the square root argument stays
// well away from zero.
func quatFromBasis(b Basis) Quaternion {
	trace := b.X.X + b.Y.Y + b.Z.Z

	if trace > 0 {
		s := 0.5 / math32.Sqrt(trace+1.0)
		return Quaternion{
			X: (b.Z.Y - b.Y.Z) * s,
			Y: (b.X.Z - b.Z.X) * s,
			Z: (b.Y.X - b.X.Y) * s,
			W: 0.25 / s,
		}
	}

	if b.X.X > b.Y.Y && b.X.X > b.Z.Z {
		s := 2.0 * math32.Sqrt(1.0+b.X.X-b.Y.Y-b.Z.Z)
		return Quaternion{
			X: 0.25 * s,
			Y: (b.X.Y + b.Y.X) / s,
			Z: (b.X.Z + b.Z.X) / s,
			W: (b.Z.Y - b.Y.Z) / s,
		}
	}

	if b.Y.Y > b.Z.Z {
		s := 2.0 * math32.Sqrt(1.0+b.Y.Y-b.X.X-b.Z.Z)
		return Quaternion{
			X: (b.X.Y + b.Y.X) / s,
			Y: 0.25 * s,
			Z: (b.Y.Z + b.Z.Y) / s,
			W: (b.X.Z - b.Z.X) / s,
		}
	}

	s := 2.0 * math32.Sqrt(1.0+b.Z.Z-b.X.X-b.Y.Y)
	return Quaternion{
		X: (b.X.Z + b.Z.X) / s,
		Y: (b.Y.Z + b.Z.Y) / s,
		Z: 0.25 * s,
		W: (b.Y.X - b.X.Y) / s,
	}
}

// basisFromQuat expands a quaternion into its rotation matrix. The
// quaternion is normalized first so a drifted input still yields a proper
// rotation.
func basisFromQuat(q Quaternion) Basis {
	n := q.Normalized()
	x, y, z, w := n.X, n.Y, n.Z, n.W

	return Basis{
		X: Vec3{1.0 - 2.0*(y*y+z*z), 2.0 * (x*y - z*w), 2.0 * (x*z + y*w)},
		Y: Vec3{2.0 * (x*y + z*w), 1.0 - 2.0*(x*x+z*z), 2.0 * (y*z - x*w)},
		Z: Vec3{2.0 * (x*z - y*w), 2.0 * (y*z + x*w), 1.0 - 2.0*(x*x+y*y)},
	}
}
