package vmath

import "math"

// Quat is a rotation quaternion (X, Y, Z imaginary, W real)
// Composition QMul(a, b) applies b first, then a
type Quat struct {
	X, Y, Z, W float64
}

// QIdentity is the no-rotation quaternion
var QIdentity = Quat{W: 1}

// QFromAxisAngle builds a rotation of angle radians about axis
// axis is normalized here; a degenerate axis yields identity
func QFromAxisAngle(axis Vec3F, angle float64) Quat {
	n := V3FNormalize(axis)
	if n == (Vec3F{}) {
		return QIdentity
	}
	s, c := math.Sincos(angle * 0.5)
	return Quat{n.X * s, n.Y * s, n.Z * s, c}
}

func QFromRotationX(angle float64) Quat {
	s, c := math.Sincos(angle * 0.5)
	return Quat{X: s, W: c}
}

func QFromRotationY(angle float64) Quat {
	s, c := math.Sincos(angle * 0.5)
	return Quat{Y: s, W: c}
}

func QFromRotationZ(angle float64) Quat {
	s, c := math.Sincos(angle * 0.5)
	return Quat{Z: s, W: c}
}

// QMul returns the Hamilton product a*b
func QMul(a, b Quat) Quat {
	return Quat{
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

func QDot(a, b Quat) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

func QLen(q Quat) float64 {
	return math.Sqrt(QDot(q, q))
}

// QNormalize rescales q to unit length, zero quaternion becomes identity
func QNormalize(q Quat) Quat {
	l := QLen(q)
	if l < Epsilon || !Finite(l) {
		return QIdentity
	}
	inv := 1.0 / l
	return Quat{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// QConj returns the conjugate, the inverse for unit quaternions
func QConj(q Quat) Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// QRotate applies q to v
// v' = v + 2w(u×v) + 2u×(u×v), u = q.xyz
func QRotate(q Quat, v Vec3F) Vec3F {
	u := Vec3F{q.X, q.Y, q.Z}
	t := V3FScale(V3FCross(u, v), 2)
	return V3FAdd(V3FAdd(v, V3FScale(t, q.W)), V3FCross(u, t))
}

// QToAxisAngle decomposes a unit quaternion, returning +X and 0 for no rotation
func QToAxisAngle(q Quat) (Vec3F, float64) {
	v := Vec3F{q.X, q.Y, q.Z}
	l := V3FMag(v)
	if l < 1e-8 {
		return V3FUnitX, 0
	}
	return V3FScale(v, 1/l), 2 * math.Atan2(l, q.W)
}

// QSlerp interpolates along the shortest arc from a to b
func QSlerp(a, b Quat, t float64) Quat {
	d := QDot(a, b)
	if d < 0 {
		b = Quat{-b.X, -b.Y, -b.Z, -b.W}
		d = -d
	}

	// Nearly parallel: nlerp avoids dividing by sin(θ) ≈ 0
	if d > 0.9995 {
		return QNormalize(Quat{
			a.X + (b.X-a.X)*t,
			a.Y + (b.Y-a.Y)*t,
			a.Z + (b.Z-a.Z)*t,
			a.W + (b.W-a.W)*t,
		})
	}

	theta := math.Acos(d)
	sinTheta := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta
	return Quat{
		a.X*wa + b.X*wb,
		a.Y*wa + b.Y*wb,
		a.Z*wa + b.Z*wb,
		a.W*wa + b.W*wb,
	}
}

// QNear reports whether a and b represent the same rotation within tol
// q and -q are treated as equal
func QNear(a, b Quat, tol float64) bool {
	return math.Abs(math.Abs(QDot(a, b))-1) <= tol
}
