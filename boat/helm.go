package boat

import "github.com/lixenwraith/skysail/parameter"

// HelmConfig shapes key-held ramping
type HelmConfig struct {
	ThrottleAccel float64
	SteerAccel    float64
	Decay         float64
	MaxThrottle   float64
	MaxReverse    float64
}

func DefaultHelmConfig() HelmConfig {
	return HelmConfig{
		ThrottleAccel: parameter.HelmThrottleAccel,
		SteerAccel:    parameter.HelmSteerAccel,
		Decay:         parameter.HelmDecay,
		MaxThrottle:   parameter.HelmMaxThrottle,
		MaxReverse:    parameter.HelmMaxReverse,
	}
}

// Keys is the set of helm keys held this tick
type Keys struct {
	Ahead, Astern bool
	Left, Right   bool
}

// Helm turns digital key state into smooth throttle and steer
type Helm struct {
	cfg      HelmConfig
	Throttle float64
	Steer    float64
}

func NewHelm(cfg HelmConfig) *Helm {
	return &Helm{cfg: cfg}
}

// Update ramps toward held keys and decays toward zero otherwise
func (h *Helm) Update(k Keys, dt float64) {
	if dt <= 0 {
		return
	}
	c := &h.cfg

	switch {
	case k.Ahead && !k.Astern:
		h.Throttle = min(h.Throttle+c.ThrottleAccel*dt, c.MaxThrottle)
	case k.Astern && !k.Ahead:
		h.Throttle = max(h.Throttle-c.ThrottleAccel*dt, -c.MaxReverse)
	default:
		h.Throttle = decay(h.Throttle, c.Decay*dt)
	}

	switch {
	case k.Right && !k.Left:
		h.Steer = min(h.Steer+c.SteerAccel*dt, 1)
	case k.Left && !k.Right:
		h.Steer = max(h.Steer-c.SteerAccel*dt, -1)
	default:
		h.Steer = decay(h.Steer, c.Decay*dt)
	}
}

// decay moves v toward zero by step without overshoot
func decay(v, step float64) float64 {
	if v > 0 {
		return max(v-step, 0)
	}
	return min(v+step, 0)
}
