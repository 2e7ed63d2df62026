package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/skysail/parameter"
	"github.com/lixenwraith/skysail/vmath"
)

// SampleRate is the rate every cue is synthesized at
const SampleRate = beep.SampleRate(parameter.AudioSampleRate)

// LandfallBell rings when an island rises overhead
func LandfallBell(vol float64) beep.Streamer {
	fund := NewOscillator(parameter.BellFundamental, parameter.BellSoundDuration, WaveSine, SampleRate)
	fundShaped := NewEnvelope(fund, parameter.BellSoundDuration, parameter.BellSoundAttack, parameter.BellSoundFundamentalRelease, SampleRate)

	// Octave and twelfth partials
	over := NewOscillator(parameter.BellFundamental*2, parameter.BellSoundDuration, WaveSine, SampleRate)
	overShaped := NewEnvelope(over, parameter.BellSoundDuration, parameter.BellSoundAttack, parameter.BellSoundOvertoneRelease, SampleRate)
	twelfth := NewOscillator(parameter.BellFundamental*3, parameter.BellSoundDuration, WaveSine, SampleRate)
	twelfthShaped := NewEnvelope(twelfth, parameter.BellSoundDuration, parameter.BellSoundAttack, parameter.BellSoundOvertoneRelease/2, SampleRate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.6),
		newVolume(overShaped, 0.25),
		newVolume(twelfthShaped, 0.15),
	)
	return newVolume(mixed, vol)
}

// SunsetHorn sounds when the boat sails back into night
func SunsetHorn(vol float64) beep.Streamer {
	horn := NewGlide(parameter.HornStartFreq, parameter.HornEndFreq, parameter.HornSoundDuration, WaveSaw, SampleRate)
	shaped := NewEnvelope(horn, parameter.HornSoundDuration, parameter.HornSoundAttack, parameter.HornSoundRelease, SampleRate)
	return newVolume(newLowpass(shaped, 0.2), vol)
}

// Surf is one wash of water noise, intensity in [0, 1]
func Surf(intensity, vol float64) beep.Streamer {
	noise := NewOscillator(0, parameter.SurfSoundDuration, WaveNoise, SampleRate)
	shaped := NewEnvelope(noise, parameter.SurfSoundDuration, parameter.SurfSoundAttack, parameter.SurfSoundRelease, SampleRate)
	return newVolume(newLowpass(shaped, parameter.SurfSmoothing), vmath.ClampF(intensity, 0, 1)*vol)
}
