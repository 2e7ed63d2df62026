package water

import (
	"math"

	"github.com/lixenwraith/skysail/parameter"
	"github.com/lixenwraith/skysail/vmath"
)

// SurfaceSample is the displaced surface point and its frame
// Normal = normalize(Binormal × Tangent), world-up when degenerate
type SurfaceSample struct {
	Position vmath.Vec3F
	Tangent  vmath.Vec3F
	Binormal vmath.Vec3F
	Normal   vmath.Vec3F
}

// Sample evaluates the Gerstner superposition at base point (x, z) and phase time t
// Waves accumulate into the same running offset, tangent and binormal; each
// wave's phase is taken at the undisplaced base point
func Sample(point vmath.Vec2F, t float64, waves *WaveField) SurfaceSample {
	pos := vmath.Vec3F{X: point.X, Z: point.Y}
	tangent := vmath.V3FUnitX
	binormal := vmath.V3FUnitZ

	for i := range waves {
		w := &waves[i]
		// Flat or malformed waves are skipped outright, not multiplied by zero
		if w.Steepness == 0 || w.Wavelength <= 0 {
			continue
		}
		d := vmath.V2FNormalize(w.Direction)

		k := 2 * math.Pi / w.Wavelength
		c := math.Sqrt(parameter.Gravity / k)
		f := k * (vmath.V2FDot(point, d) - c*t)
		a := w.Steepness / k
		sinF, cosF := math.Sincos(f)
		s := w.Steepness

		pos.X += d.X * a * cosF
		pos.Y += a*sinF + a
		pos.Z += d.Y * a * cosF

		tangent.X += -d.X * d.X * s * sinF
		tangent.Y += d.X * s * cosF
		tangent.Z += -d.X * d.Y * s * sinF

		binormal.X += -d.X * d.Y * s * sinF
		binormal.Y += d.Y * s * cosF
		binormal.Z += -d.Y * d.Y * s * sinF
	}

	return SurfaceSample{
		Position: pos,
		Tangent:  tangent,
		Binormal: binormal,
		Normal:   vmath.V3FNormalizeOr(vmath.V3FCross(binormal, tangent), vmath.V3FUnitY),
	}
}

// HeightAt returns the surface height at (x, z), a projection of Sample
func HeightAt(point vmath.Vec2F, t float64, waves *WaveField) float64 {
	return Sample(point, t, waves).Position.Y
}
