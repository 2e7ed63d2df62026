package sky

import (
	"math"

	"github.com/lixenwraith/skysail/vmath"
)

// GlobeFix is the boat's virtual position on the celestial globe, in degrees
// Sailing +Z increases Lat, sailing +X increases Lon
type GlobeFix struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Fix reads the current zenith in the dome frame
func (d Dome) Fix() GlobeFix {
	return FixOf(d.Rotation)
}

func FixOf(rot vmath.Quat) GlobeFix {
	z := vmath.QRotate(vmath.QConj(rot), vmath.V3FUnitY)
	const deg = 180 / math.Pi
	return GlobeFix{
		Lat: math.Asin(vmath.ClampF(z.Z, -1, 1)) * deg,
		Lon: math.Atan2(z.X, z.Y) * deg,
	}
}
