// Package water implements an analytic Gerstner ocean: wave derivation from a
// weather intensity, surface sampling at arbitrary points and times, and the
// orientation of floating bodies on that surface.
package water

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/skysail/parameter"
	"github.com/lixenwraith/skysail/vmath"
)

// ErrInvalidWave is returned for wave parameters that would produce NaN downstream
var ErrInvalidWave = errors.New("invalid wave parameters")

// WaveCount is the fixed number of superposed waves
const WaveCount = 3

// WaveDescriptor is one Gerstner wave
type WaveDescriptor struct {
	Wavelength float64     // > 0
	Steepness  float64     // >= 0, 0 is flat water
	Direction  vmath.Vec2F // unit, in the (x, z) plane
}

// WaveField holds the superposed waves; order fixes summation order only
type WaveField [WaveCount]WaveDescriptor

// NewWaveDescriptor validates and normalizes a wave
func NewWaveDescriptor(wavelength, steepness float64, direction vmath.Vec2F) (WaveDescriptor, error) {
	if !vmath.Finite(wavelength) || wavelength <= 0 {
		return WaveDescriptor{}, fmt.Errorf("%w: wavelength %v must be positive", ErrInvalidWave, wavelength)
	}
	if !vmath.Finite(steepness) || steepness < 0 {
		return WaveDescriptor{}, fmt.Errorf("%w: steepness %v must be non-negative", ErrInvalidWave, steepness)
	}
	if !vmath.Finite(direction.X) || !vmath.Finite(direction.Y) {
		return WaveDescriptor{}, fmt.Errorf("%w: direction %+v not finite", ErrInvalidWave, direction)
	}
	d := vmath.V2FNormalize(direction)
	if d == (vmath.Vec2F{}) {
		return WaveDescriptor{}, fmt.Errorf("%w: zero direction", ErrInvalidWave)
	}
	return WaveDescriptor{Wavelength: wavelength, Steepness: steepness, Direction: d}, nil
}

// NewWaveField validates every descriptor
func NewWaveField(descs ...WaveDescriptor) (WaveField, error) {
	var f WaveField
	if len(descs) != WaveCount {
		return f, fmt.Errorf("%w: need %d waves, got %d", ErrInvalidWave, WaveCount, len(descs))
	}
	for i, d := range descs {
		w, err := NewWaveDescriptor(d.Wavelength, d.Steepness, d.Direction)
		if err != nil {
			return WaveField{}, fmt.Errorf("wave %d: %w", i, err)
		}
		f[i] = w
	}
	return f, nil
}

// WaveConfig holds the tunables of wave derivation
type WaveConfig struct {
	Lengths         [WaveCount]float64
	Directions      [WaveCount]vmath.Vec2F
	SteepnessFactor float64
	Speed           float64 // simulation time → phase time
}

// DefaultWaveConfig returns the stock tuning
func DefaultWaveConfig() WaveConfig {
	cfg := WaveConfig{
		Lengths:         parameter.WaveBaseLengths,
		SteepnessFactor: parameter.WaveSteepnessFactor,
		Speed:           parameter.WaveSpeed,
	}
	for i, d := range parameter.WaveBaseDirections {
		cfg.Directions[i] = vmath.Vec2F{X: d[0], Y: d[1]}
	}
	return cfg
}

// Validate checks the config the same way Derive would at intensity 0
func (c WaveConfig) Validate() error {
	if !vmath.Finite(c.SteepnessFactor) || c.SteepnessFactor < 0 {
		return fmt.Errorf("%w: steepness factor %v", ErrInvalidWave, c.SteepnessFactor)
	}
	if !vmath.Finite(c.Speed) || c.Speed < 0 {
		return fmt.Errorf("%w: wave speed %v", ErrInvalidWave, c.Speed)
	}
	_, err := c.Derive(0)
	return err
}

// Derive builds the wave field for a weather intensity
// Negative intensity is treated as calm
func (c WaveConfig) Derive(intensity float64) (WaveField, error) {
	if !vmath.Finite(intensity) {
		return WaveField{}, fmt.Errorf("%w: intensity %v", ErrInvalidWave, intensity)
	}
	steepness := max(intensity, 0) * c.SteepnessFactor

	var f WaveField
	for i := range f {
		w, err := NewWaveDescriptor(c.Lengths[i], steepness, c.Directions[i])
		if err != nil {
			return WaveField{}, fmt.Errorf("wave %d: %w", i, err)
		}
		f[i] = w
	}
	return f, nil
}

// Phase converts simulation time into wave phase time
func (c WaveConfig) Phase(simTime float64) float64 {
	return simTime * c.Speed
}

// DeriveWaves builds the stock wave field for an intensity
// Non-finite intensity is treated as calm
func DeriveWaves(intensity float64) WaveField {
	if !vmath.Finite(intensity) {
		intensity = 0
	}
	// Stock lengths and directions always validate
	f, _ := DefaultWaveConfig().Derive(intensity)
	return f
}
