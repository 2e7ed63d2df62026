// Package boat integrates the player boat: helm input, propulsion with drag,
// and anchoring to the wave surface.
package boat

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/skysail/parameter"
	"github.com/lixenwraith/skysail/vmath"
)

var (
	ErrInvalidInput  = errors.New("invalid boat input")
	ErrInvalidConfig = errors.New("invalid boat config")
)

// Boat is the kinematic state; only Integrator.Step mutates it
type Boat struct {
	Throttle float64 // [-1, 1]
	Steer    float64 // [-1, 1], positive decreases Heading
	Heading  float64 // yaw accumulator, radians
	Speed    float64 // |Velocity|

	Position vmath.Vec3F
	Velocity vmath.Vec3F

	Rotation        vmath.Quat // rendered hull rotation
	SurfaceRotation vmath.Quat // last wave-normal alignment
}

// New places a boat at rest
func New(position vmath.Vec3F) *Boat {
	return &Boat{
		Position:        position,
		Rotation:        vmath.QIdentity,
		SurfaceRotation: vmath.QIdentity,
	}
}

// Forward is the boat-local +Z in world space
func (b *Boat) Forward() vmath.Vec3F {
	return vmath.QRotate(vmath.QFromRotationY(b.Heading), vmath.V3FUnitZ)
}

// MoveEvent is one tick of boat displacement
type MoveEvent struct {
	Jump        vmath.Vec3F // displacement this tick
	Translation vmath.Vec3F // resulting world position
}

// Config holds integrator tunables
type Config struct {
	Mass            float64
	EngineForce     float64
	Drag            float64
	Friction        float64
	TurnRate        float64
	RotationDamping float64
	TakeoffFactor   float64
	TakeoffMax      float64
}

func DefaultConfig() Config {
	return Config{
		Mass:            parameter.BoatMass,
		EngineForce:     parameter.BoatEngineForce,
		Drag:            parameter.BoatDrag,
		Friction:        parameter.BoatFriction,
		TurnRate:        parameter.BoatTurnRate,
		RotationDamping: parameter.BoatRotationDamping,
		TakeoffFactor:   parameter.BoatTakeoffFactor,
		TakeoffMax:      parameter.BoatTakeoffMax,
	}
}

func (c Config) Validate() error {
	if !(c.Mass > 0) || !vmath.Finite(c.Mass) {
		return fmt.Errorf("%w: mass %v must be positive", ErrInvalidConfig, c.Mass)
	}
	for name, v := range map[string]float64{
		"engine force":     c.EngineForce,
		"drag":             c.Drag,
		"friction":         c.Friction,
		"turn rate":        c.TurnRate,
		"rotation damping": c.RotationDamping,
		"takeoff factor":   c.TakeoffFactor,
	} {
		if !vmath.Finite(v) || v < 0 {
			return fmt.Errorf("%w: %s %v must be non-negative", ErrInvalidConfig, name, v)
		}
	}
	if !vmath.Finite(c.TakeoffMax) || c.TakeoffMax < 0 || c.TakeoffMax >= 1 {
		return fmt.Errorf("%w: takeoff max %v must be in [0, 1)", ErrInvalidConfig, c.TakeoffMax)
	}
	return nil
}
