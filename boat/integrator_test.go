package boat

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/skysail/vmath"
	"github.com/lixenwraith/skysail/water"
)

func newTestIntegrator(t *testing.T) *Integrator {
	t.Helper()
	it, err := NewIntegrator(DefaultConfig())
	if err != nil {
		t.Fatalf("NewIntegrator: %v", err)
	}
	return it
}

func calmWaves() *water.WaveField {
	f := water.DeriveWaves(0)
	return &f
}

func TestStepFullThrottleFromRest(t *testing.T) {
	it := newTestIntegrator(t)
	b := New(vmath.Vec3F{})
	waves := water.DeriveWaves(2)

	ev, moved, err := it.Step(b, Input{Throttle: 1, Dt: 0.1}, &waves)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !moved {
		t.Fatal("expected a move event")
	}
	if b.Speed <= 0 {
		t.Errorf("speed = %v, want > 0", b.Speed)
	}
	if ev.Jump.Z <= 0 {
		t.Errorf("jump.z = %v, want > 0", ev.Jump.Z)
	}
	if ev.Translation != b.Position {
		t.Errorf("translation %+v != position %+v", ev.Translation, b.Position)
	}
}

func TestStepAtRestEmitsNothing(t *testing.T) {
	it := newTestIntegrator(t)
	b := New(vmath.Vec3F{})

	_, moved, err := it.Step(b, Input{Dt: 0.1}, calmWaves())
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if moved {
		t.Error("boat at rest with no throttle emitted a move")
	}
}

func TestStepZeroDt(t *testing.T) {
	it := newTestIntegrator(t)
	b := New(vmath.Vec3F{})
	b.Velocity = vmath.Vec3F{Z: 3}
	b.Speed = 3

	_, moved, err := it.Step(b, Input{Throttle: 1, Dt: 0}, calmWaves())
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if moved {
		t.Error("dt=0 produced displacement")
	}
}

func TestStepRejectsBadInput(t *testing.T) {
	it := newTestIntegrator(t)
	inputs := []Input{
		{Dt: -0.1},
		{Dt: math.NaN()},
		{Dt: math.Inf(1)},
		{Dt: 0.1, Throttle: math.NaN()},
		{Dt: 0.1, Steer: math.Inf(-1)},
	}
	for _, in := range inputs {
		b := New(vmath.Vec3F{})
		before := *b
		if _, _, err := it.Step(b, in, calmWaves()); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Step(%+v) err = %v, want ErrInvalidInput", in, err)
		}
		if *b != before {
			t.Errorf("Step(%+v) mutated boat on error", in)
		}
	}
}

func TestStepSteerChangesHeading(t *testing.T) {
	it := newTestIntegrator(t)
	b := New(vmath.Vec3F{})

	if _, _, err := it.Step(b, Input{Steer: 1, Dt: 0.5}, calmWaves()); err != nil {
		t.Fatal(err)
	}
	want := -DefaultConfig().TurnRate * 0.5
	if math.Abs(b.Heading-want) > 1e-12 {
		t.Errorf("heading = %v, want %v", b.Heading, want)
	}
}

func TestStepTerminalSpeed(t *testing.T) {
	it := newTestIntegrator(t)
	b := New(vmath.Vec3F{})
	waves := calmWaves()

	for range 2000 {
		if _, _, err := it.Step(b, Input{Throttle: 1, Dt: 0.02}, waves); err != nil {
			t.Fatal(err)
		}
	}
	// thrust = drag*v² + friction*v
	cfg := DefaultConfig()
	want := (-cfg.Friction + math.Sqrt(cfg.Friction*cfg.Friction+4*cfg.Drag*cfg.EngineForce)) / (2 * cfg.Drag)
	if math.Abs(b.Speed-want) > 1e-3 {
		t.Errorf("terminal speed = %v, want %v", b.Speed, want)
	}
}

func TestStepRidesSurface(t *testing.T) {
	it := newTestIntegrator(t)
	b := New(vmath.Vec3F{Y: 50})
	waves := water.DeriveWaves(2)

	for i := range 100 {
		in := Input{Throttle: 1, Steer: 0.3, Dt: 0.05, Time: float64(i) * 0.05}
		if _, _, err := it.Step(b, in, &waves); err != nil {
			t.Fatal(err)
		}
		surf := water.HeightAt(vmath.V3FXZ(b.Position), in.Time, &waves)
		if b.Position.Y < surf-1e-9 {
			t.Fatalf("tick %d: boat y %v below surface %v", i, b.Position.Y, surf)
		}
		if math.Abs(vmath.QLen(b.Rotation)-1) > 1e-9 {
			t.Fatalf("tick %d: rotation not unit", i)
		}
	}
}

func TestStepFlatWaterKeepsBoatLevel(t *testing.T) {
	it := newTestIntegrator(t)
	b := New(vmath.Vec3F{})

	for range 10 {
		if _, _, err := it.Step(b, Input{Throttle: 1, Dt: 0.1}, calmWaves()); err != nil {
			t.Fatal(err)
		}
	}
	if b.Position.Y != 0 {
		t.Errorf("y = %v on calm water", b.Position.Y)
	}
	if !vmath.QNear(b.Rotation, vmath.QIdentity, 1e-12) {
		t.Errorf("rotation = %+v, want identity", b.Rotation)
	}
}

// steepWaves is a single crest along +X, tilted at the origin at t=0
func steepWaves(t *testing.T) *water.WaveField {
	t.Helper()
	w, err := water.NewWaveDescriptor(40, 0.5, vmath.Vec2F{X: 1})
	if err != nil {
		t.Fatalf("NewWaveDescriptor: %v", err)
	}
	var f water.WaveField
	f[0] = w
	return &f
}

func TestStepTakeoffHoldsHeight(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TakeoffFactor = 0.05
	it, err := NewIntegrator(cfg)
	if err != nil {
		t.Fatalf("NewIntegrator: %v", err)
	}
	waves := steepWaves(t)

	b := New(vmath.Vec3F{Y: 50})
	b.Velocity = vmath.Vec3F{Z: 10}
	b.Speed = 10
	prevY := b.Position.Y

	for i := range 5 {
		in := Input{Throttle: 1, Dt: 0.05, Time: float64(i) * 0.05}
		if _, _, err := it.Step(b, in, waves); err != nil {
			t.Fatal(err)
		}
		waveY := water.Sample(vmath.V3FXZ(b.Position), in.Time, waves).Position.Y
		hold := vmath.ClampF(b.Speed*cfg.TakeoffFactor, 0, cfg.TakeoffMax)
		want := vmath.LerpF(waveY, prevY, hold)

		if math.Abs(b.Position.Y-want) > 1e-9 {
			t.Errorf("tick %d: y = %v, want %v", i, b.Position.Y, want)
		}
		if b.Position.Y <= waveY {
			t.Errorf("tick %d: y %v did not lag above wave %v", i, b.Position.Y, waveY)
		}
		if b.Position.Y >= prevY {
			t.Errorf("tick %d: y %v did not descend from %v", i, b.Position.Y, prevY)
		}
		prevY = b.Position.Y
	}
}

func TestStepTakeoffNeverBelowSurface(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TakeoffFactor = 0.05
	it, err := NewIntegrator(cfg)
	if err != nil {
		t.Fatalf("NewIntegrator: %v", err)
	}
	waves := steepWaves(t)

	// Starting under the crest snaps up to the surface
	b := New(vmath.Vec3F{Y: -30})
	b.Velocity = vmath.Vec3F{Z: 10}
	b.Speed = 10

	if _, _, err := it.Step(b, Input{Throttle: 1, Dt: 0.05}, waves); err != nil {
		t.Fatal(err)
	}
	waveY := water.Sample(vmath.V3FXZ(b.Position), 0, waves).Position.Y
	if b.Position.Y != waveY {
		t.Errorf("y = %v, want wave height %v", b.Position.Y, waveY)
	}
}

func TestStepRotationIsDamped(t *testing.T) {
	it := newTestIntegrator(t)
	waves := steepWaves(t)
	b := New(vmath.Vec3F{})

	const dt = 0.02
	if _, _, err := it.Step(b, Input{Dt: dt}, waves); err != nil {
		t.Fatal(err)
	}

	target := b.SurfaceRotation
	if vmath.QNear(target, vmath.QIdentity, 1e-3) {
		t.Fatal("surface is flat at the origin")
	}
	want := vmath.QSlerp(vmath.QIdentity, target, dt*DefaultConfig().RotationDamping)
	if !vmath.QNear(b.Rotation, want, 1e-9) {
		t.Errorf("rotation = %+v, want %+v", b.Rotation, want)
	}
	if vmath.QNear(b.Rotation, target, 1e-3) {
		t.Error("rotation snapped to the surface")
	}
	if vmath.QNear(b.Rotation, vmath.QIdentity, 1e-6) {
		t.Error("rotation did not move toward the surface")
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	bad := []func(*Config){
		func(c *Config) { c.Mass = 0 },
		func(c *Config) { c.Drag = -1 },
		func(c *Config) { c.TakeoffMax = 1 },
		func(c *Config) { c.TurnRate = math.NaN() },
	}
	for i, mut := range bad {
		c := DefaultConfig()
		mut(&c)
		if _, err := NewIntegrator(c); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("case %d: err = %v, want ErrInvalidConfig", i, err)
		}
	}
}
