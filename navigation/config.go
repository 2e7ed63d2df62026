package navigation

import (
	"fmt"

	"github.com/lixenwraith/skysail/parameter"
	"github.com/lixenwraith/skysail/vmath"
)

// Config holds navigation thresholds
type Config struct {
	JumpScale       float64
	EnterAlignment  float64
	LandingDistance float64
	LeaveThreshold  float64
	LockFraction    float64
	UnlockTurns     float64
	DarknessOffset  float64
	DarknessGain    float64
	DarknessCap     float64
}

func DefaultConfig() Config {
	return Config{
		JumpScale:       parameter.SkyJumpScale,
		EnterAlignment:  parameter.NavEnterAlignment,
		LandingDistance: parameter.NavLandingDistance,
		LeaveThreshold:  parameter.NavLeaveThreshold,
		LockFraction:    parameter.NavLockFraction,
		UnlockTurns:     parameter.NavUnlockTurns,
		DarknessOffset:  parameter.NavDarknessOffset,
		DarknessGain:    parameter.NavDarknessGain,
		DarknessCap:     parameter.NavDarknessCap,
	}
}

func (c Config) Validate() error {
	switch {
	case !(c.JumpScale > 0) || !vmath.Finite(c.JumpScale):
		return fmt.Errorf("jump scale %v must be positive", c.JumpScale)
	case !(c.EnterAlignment > 0 && c.EnterAlignment < 1):
		return fmt.Errorf("enter alignment %v must be in (0, 1)", c.EnterAlignment)
	case !(c.LandingDistance > 0) || !vmath.Finite(c.LandingDistance):
		return fmt.Errorf("landing distance %v must be positive", c.LandingDistance)
	case !(c.LeaveThreshold > 0) || !vmath.Finite(c.LeaveThreshold):
		return fmt.Errorf("leave threshold %v must be positive", c.LeaveThreshold)
	case !(c.LockFraction > 0 && c.LockFraction < 1):
		return fmt.Errorf("lock fraction %v must be in (0, 1)", c.LockFraction)
	case !vmath.Finite(c.UnlockTurns):
		return fmt.Errorf("unlock turns %v must be finite", c.UnlockTurns)
	case !(c.DarknessCap >= 0 && c.DarknessCap <= 1):
		return fmt.Errorf("darkness cap %v must be in [0, 1]", c.DarknessCap)
	case !vmath.Finite(c.DarknessOffset) || !vmath.Finite(c.DarknessGain):
		return fmt.Errorf("darkness curve must be finite")
	}
	return nil
}

// darkness maps approach fraction onto sky darkness
func (c *Config) darkness(fraction float64) float64 {
	return vmath.ClampF((fraction-c.DarknessOffset)*c.DarknessGain, 0, c.DarknessCap)
}
