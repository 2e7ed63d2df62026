package water

import "github.com/lixenwraith/skysail/vmath"

// Weather drives wave intensity; approach darkness calms the sea
type Weather struct {
	Base      float64
	Intensity float64
}

func NewWeather(base float64) *Weather {
	base = max(base, 0)
	return &Weather{Base: base, Intensity: base}
}

// Calm lowers intensity in proportion to darkness ∈ [0, 1]
func (w *Weather) Calm(darkness float64) {
	w.Intensity = w.Base * (1 - vmath.ClampF(darkness, 0, 1))
}

// Restore returns to open-sea intensity
func (w *Weather) Restore() {
	w.Intensity = w.Base
}

// Waves derives the current wave field
func (w *Weather) Waves(cfg WaveConfig) (WaveField, error) {
	return cfg.Derive(w.Intensity)
}
