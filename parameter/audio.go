package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer, latency versus underrun
	AudioBufferDuration = 100 * time.Millisecond
)

// Landfall Bell
const (
	BellSoundDuration           = 1200 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 1100 * time.Millisecond
	BellSoundOvertoneRelease    = 400 * time.Millisecond
	BellFundamental             = 523.25 // Hz, C5
)

// Sunset Horn, a falling fifth
const (
	HornSoundDuration = 1500 * time.Millisecond
	HornSoundAttack   = 200 * time.Millisecond
	HornSoundRelease  = 600 * time.Millisecond
	HornStartFreq     = 110.0 // Hz
	HornEndFreq       = 73.42 // Hz
)

// Surf
const (
	SurfSoundDuration = 400 * time.Millisecond
	SurfSoundAttack   = 150 * time.Millisecond
	SurfSoundRelease  = 200 * time.Millisecond

	// SurfSmoothing is the one-pole lowpass coefficient on the noise
	SurfSmoothing = 0.08

	// SurfEvery is boat moves between surf segments
	SurfEvery = 12

	// SurfFullSpeed is the boat speed at full surf volume
	SurfFullSpeed = 20.0
)
