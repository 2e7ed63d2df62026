// Package sky turns boat displacement into rotation of the celestial dome.
//
// The sea is treated as a sphere of radius 1/scale world units. Travelling a
// distance d along the surface rotates the sky by d*scale radians about the
// horizontal axis perpendicular to the travel direction.
package sky

import (
	"math"

	"github.com/lixenwraith/skysail/vmath"
)

// yaw90 turns a travel direction into its rotation axis
var yaw90 = vmath.QFromRotationY(math.Pi / 2)

// Increment returns the sky rotation for one jump
// A zero jump yields identity
func Increment(jump vmath.Vec3F, scale float64) vmath.Quat {
	dist := vmath.V3FMag(jump)
	if dist < vmath.Epsilon || !vmath.Finite(dist) {
		return vmath.QIdentity
	}
	axis := vmath.V3FNormalize(vmath.QRotate(yaw90, jump))
	return vmath.QFromAxisAngle(axis, -dist*scale)
}

// Advance composes the jump increment onto rot
func Advance(rot vmath.Quat, jump vmath.Vec3F, scale float64) vmath.Quat {
	return vmath.QNormalize(vmath.QMul(Increment(jump, scale), rot))
}

// RotateAlong turns rot about the axis perpendicular to the horizontal from→to
// Degenerate directions leave rot unchanged
func RotateAlong(rot vmath.Quat, from, to vmath.Vec3F, angle float64) vmath.Quat {
	dir := vmath.V3FNormalize(vmath.V3FSub(vmath.V3FFlat(from), vmath.V3FFlat(to)))
	if dir == vmath.V3FZero {
		return rot
	}
	axis := vmath.QRotate(yaw90, dir)
	return vmath.QNormalize(vmath.QMul(vmath.QFromAxisAngle(axis, angle), rot))
}

// Dome is the accumulated celestial rotation
// Locked freezes dead reckoning while anchored to an island
type Dome struct {
	Rotation vmath.Quat
	Locked   bool
}

func NewDome() *Dome {
	return &Dome{Rotation: vmath.QIdentity}
}

// Advance applies dead reckoning for one jump
func (d *Dome) Advance(jump vmath.Vec3F, scale float64) {
	d.Rotation = Advance(d.Rotation, jump, scale)
}

// Apply left-multiplies q onto the dome
func (d *Dome) Apply(q vmath.Quat) {
	d.Rotation = vmath.QNormalize(vmath.QMul(q, d.Rotation))
}

// Direction returns where a celestial rotation currently points in world space
func (d Dome) Direction(celestial vmath.Quat) vmath.Vec3F {
	return vmath.QRotate(vmath.QMul(d.Rotation, celestial), vmath.V3FUnitY)
}
