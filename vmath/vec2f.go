package vmath

import "math"

// Vec2F is a float64 2D vector, used for horizontal (x, z) plane quantities
type Vec2F struct {
	X, Y float64
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FDot(a, b Vec2F) float64 {
	return a.X*b.X + a.Y*b.Y
}

func V2FMag(v Vec2F) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// V2FNormalize returns the unit vector, zero vector stays zero
func V2FNormalize(v Vec2F) Vec2F {
	mag := V2FMag(v)
	if mag == 0 {
		return Vec2F{}
	}
	return Vec2F{v.X / mag, v.Y / mag}
}

// V2FTo3 lifts a horizontal point to 3D at height y
func V2FTo3(v Vec2F, y float64) Vec3F {
	return Vec3F{v.X, y, v.Y}
}
