package water

import (
	"math"
	"testing"

	"github.com/lixenwraith/skysail/vmath"
)

func TestSurfaceOrientationBranches(t *testing.T) {
	if q := SurfaceOrientation(vmath.V3FUnitY); q != vmath.QIdentity {
		t.Errorf("aligned normal = %+v, want identity", q)
	}
	if q := SurfaceOrientation(vmath.Vec3F{Y: -1}); q != (vmath.Quat{X: 1}) {
		t.Errorf("inverted normal = %+v, want 180° about X", q)
	}
}

func TestSurfaceOrientationMapsUpToNormal(t *testing.T) {
	normals := []vmath.Vec3F{
		{X: 0.3, Y: 0.9, Z: -0.1},
		{X: -0.7, Y: 0.2, Z: 0.5},
		{X: 0, Y: 0, Z: 1},
		{X: 0.01, Y: -0.5, Z: 0.2},
	}
	for _, n := range normals {
		n = vmath.V3FNormalize(n)
		q := SurfaceOrientation(n)
		if math.Abs(vmath.QLen(q)-1) > 1e-5 {
			t.Errorf("|q| = %v for %+v", vmath.QLen(q), n)
		}
		if got := vmath.QRotate(q, vmath.V3FUnitY); !vmath.V3FNear(got, n, 1e-9) {
			t.Errorf("q·up = %+v, want %+v", got, n)
		}
	}
}

func TestSurfaceOrientationOfSampledNormals(t *testing.T) {
	waves := DeriveWaves(3)
	for x := -50.0; x < 50; x += 11 {
		s := Sample(vmath.Vec2F{X: x, Y: x * 0.7}, 1.1, &waves)
		q := SurfaceOrientation(s.Normal)
		if math.Abs(vmath.QLen(q)-1) > 1e-5 {
			t.Errorf("|q| = %v at x=%v", vmath.QLen(q), x)
		}
	}
}

func TestFloatRotationKeepsYawOnFlatWater(t *testing.T) {
	q := FloatRotation(vmath.V3FUnitY, math.Pi/2)
	if !vmath.QNear(q, vmath.QFromRotationY(math.Pi/2), 1e-12) {
		t.Errorf("flat float rotation = %+v", q)
	}
}
