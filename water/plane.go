package water

import (
	"math"

	"github.com/lixenwraith/skysail/vmath"
)

// AnchorPlane snaps the finite water mesh origin to a step grid under pos
// Snapping keeps the mesh under the boat without sliding vertices every tick
func AnchorPlane(pos vmath.Vec3F, step float64) vmath.Vec3F {
	if step <= 0 || !vmath.Finite(step) {
		return vmath.V3FFlat(pos)
	}
	return vmath.Vec3F{
		X: pos.X - math.Mod(pos.X, step),
		Z: pos.Z - math.Mod(pos.Z, step),
	}
}
