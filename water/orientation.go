package water

import (
	"math"

	"github.com/lixenwraith/skysail/parameter"
	"github.com/lixenwraith/skysail/vmath"
)

// SurfaceOrientation returns the minimal rotation taking world-up onto normal
func SurfaceOrientation(normal vmath.Vec3F) vmath.Quat {
	switch {
	case normal.Y > parameter.SurfaceAlignedY:
		return vmath.QIdentity
	case normal.Y < parameter.SurfaceInvertedY:
		// Any horizontal axis flips up; X keeps it deterministic
		return vmath.Quat{X: 1}
	}
	// up × normal, horizontal since up has no x/z part
	axis := vmath.V3FNormalize(vmath.Vec3F{X: normal.Z, Z: -normal.X})
	return vmath.QFromAxisAngle(axis, math.Acos(vmath.ClampF(normal.Y, -1, 1)))
}

// FloatRotation orients a floating body: surface tilt applied after its yaw
func FloatRotation(normal vmath.Vec3F, yaw float64) vmath.Quat {
	return vmath.QMul(SurfaceOrientation(normal), vmath.QFromRotationY(yaw))
}
