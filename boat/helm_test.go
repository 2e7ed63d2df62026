package boat

import "testing"

func TestHelmRampsAndDecays(t *testing.T) {
	h := NewHelm(DefaultHelmConfig())

	h.Update(Keys{Ahead: true}, 0.05)
	if h.Throttle != 0.5 {
		t.Errorf("throttle = %v, want 0.5", h.Throttle)
	}
	h.Update(Keys{Ahead: true}, 1)
	if h.Throttle != 1 {
		t.Errorf("throttle = %v, want capped at 1", h.Throttle)
	}
	h.Update(Keys{}, 0.05)
	if h.Throttle != 0.5 {
		t.Errorf("throttle = %v, want decayed to 0.5", h.Throttle)
	}
	h.Update(Keys{}, 1)
	if h.Throttle != 0 {
		t.Errorf("throttle = %v, want 0 without overshoot", h.Throttle)
	}
}

func TestHelmReverseCap(t *testing.T) {
	h := NewHelm(DefaultHelmConfig())
	h.Update(Keys{Astern: true}, 1)
	if h.Throttle != -0.5 {
		t.Errorf("throttle = %v, want -0.5", h.Throttle)
	}
}

func TestHelmSteer(t *testing.T) {
	h := NewHelm(DefaultHelmConfig())
	h.Update(Keys{Left: true}, 1)
	if h.Steer != -1 {
		t.Errorf("steer = %v, want -1", h.Steer)
	}
	h.Update(Keys{Left: true, Right: true}, 0.05)
	if h.Steer != -0.5 {
		t.Errorf("opposing keys should decay, steer = %v", h.Steer)
	}
}
