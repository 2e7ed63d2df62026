package water

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/skysail/parameter"
	"github.com/lixenwraith/skysail/vmath"
)

// Probe is a floating point of interest: buoy, debris, buoyancy probe
type Probe struct {
	Position vmath.Vec2F // base (x, z)
	Yaw      float64
}

// ProbeTransform is a probe riding the surface
type ProbeTransform struct {
	Position vmath.Vec3F // base (x, z) at surface height
	Rotation vmath.Quat
	Sample   SurfaceSample
}

// Float places a single probe on the surface
func Float(p Probe, t float64, waves *WaveField) ProbeTransform {
	s := Sample(p.Position, t, waves)
	return ProbeTransform{
		Position: vmath.V2FTo3(p.Position, s.Position.Y),
		Rotation: FloatRotation(s.Normal, p.Yaw),
		Sample:   s,
	}
}

// SampleProbes floats every probe concurrently; sampling is pure so workers share nothing
// workers <= 0 uses the default bound
func SampleProbes(ctx context.Context, probes []Probe, t float64, waves *WaveField, workers int) ([]ProbeTransform, error) {
	out := make([]ProbeTransform, len(probes))
	if len(probes) == 0 {
		return out, nil
	}
	if workers <= 0 {
		workers = parameter.WaveProbeWorkers
	}

	// Private copy so a caller mutating its field mid-flight cannot tear reads
	field := *waves

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range probes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = Float(probes[i], t, &field)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
