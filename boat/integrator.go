package boat

import (
	"fmt"

	"github.com/lixenwraith/skysail/vmath"
	"github.com/lixenwraith/skysail/water"
)

// Input is one tick of control
type Input struct {
	Throttle float64
	Steer    float64
	Dt       float64 // seconds, >= 0
	Time     float64 // wave phase time
}

// Integrator advances boat kinematics; stateless beyond its config
type Integrator struct {
	cfg Config
}

func NewIntegrator(cfg Config) (*Integrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Integrator{cfg: cfg}, nil
}

func (it *Integrator) Config() Config {
	return it.cfg
}

// Step advances b by one tick over waves
// Returns the move and true when the boat was displaced
func (it *Integrator) Step(b *Boat, in Input, waves *water.WaveField) (MoveEvent, bool, error) {
	if !vmath.Finite(in.Dt) || in.Dt < 0 {
		return MoveEvent{}, false, fmt.Errorf("%w: dt %v", ErrInvalidInput, in.Dt)
	}
	if !vmath.Finite(in.Throttle) || !vmath.Finite(in.Steer) || !vmath.Finite(in.Time) {
		return MoveEvent{}, false, fmt.Errorf("%w: non-finite control %+v", ErrInvalidInput, in)
	}
	cfg := &it.cfg
	dt := in.Dt

	b.Throttle = vmath.ClampF(in.Throttle, -1, 1)
	b.Steer = vmath.ClampF(in.Steer, -1, 1)

	// Heading
	b.Heading += -b.Steer * cfg.TurnRate * dt
	headingQuat := vmath.QFromRotationY(b.Heading)

	// Forces: thrust along heading, quadratic drag, linear friction
	thrust := vmath.V3FScale(vmath.QRotate(headingQuat, vmath.V3FUnitZ), cfg.EngineForce*b.Throttle)
	drag := vmath.V3FScale(b.Velocity, -cfg.Drag*b.Speed)
	friction := vmath.V3FScale(b.Velocity, -cfg.Friction)
	force := vmath.V3FAdd(vmath.V3FAdd(thrust, drag), friction)

	accel := vmath.V3FScale(force, 1/cfg.Mass)
	b.Velocity = vmath.V3FAdd(b.Velocity, vmath.V3FScale(accel, dt))
	b.Speed = vmath.V3FMag(b.Velocity)

	jump := vmath.V3FScale(b.Velocity, dt)
	pos := vmath.V3FAdd(b.Position, jump)

	// Ride the surface
	s := water.Sample(vmath.V3FXZ(pos), in.Time, waves)
	waveY := s.Position.Y
	hold := vmath.ClampF(b.Speed*cfg.TakeoffFactor, 0, cfg.TakeoffMax)
	pos.Y = max(waveY, vmath.LerpF(waveY, b.Position.Y, hold))
	b.Position = pos

	b.SurfaceRotation = water.SurfaceOrientation(s.Normal)
	target := vmath.QMul(b.SurfaceRotation, headingQuat)
	b.Rotation = vmath.QNormalize(vmath.QSlerp(b.Rotation, target, vmath.ClampF(dt*cfg.RotationDamping, 0, 1)))

	if vmath.V3FMagSq(jump) == 0 {
		return MoveEvent{}, false, nil
	}
	return MoveEvent{Jump: jump, Translation: pos}, true, nil
}
