package sky

import (
	"math"

	"github.com/lixenwraith/skysail/parameter"
	"github.com/lixenwraith/skysail/vmath"
)

type IslandID string

const (
	Home    IslandID = "home"
	IslandA IslandID = "island_a"
)

// Island is a fixed direction on the celestial sphere
// Rotation applied to world-up gives the island's zenith direction
type Island struct {
	ID       IslandID
	Rotation vmath.Quat
}

// Up returns the island direction in the celestial frame
func (i Island) Up() vmath.Vec3F {
	return vmath.QRotate(i.Rotation, vmath.V3FUnitY)
}

// Turns converts quarter-turn units to radians
func Turns(t float64) float64 {
	return math.Pi / 2 * t
}

// DefaultIslands returns the built-in chart
func DefaultIslands() []Island {
	return []Island{
		{
			ID: Home,
			Rotation: vmath.QMul(
				vmath.QFromRotationX(Turns(parameter.SkyHomePitchTurns)),
				vmath.QFromRotationY(Turns(parameter.SkyHomeYawTurns)),
			),
		},
		{
			ID: IslandA,
			Rotation: vmath.QMul(
				vmath.QFromRotationX(Turns(parameter.SkyIslandAPitchTurns)),
				vmath.QFromRotationZ(Turns(parameter.SkyIslandARollTurns)),
			),
		},
	}
}
