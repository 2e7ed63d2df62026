package parameter

// Gerstner wave field
const (
	// Gravity drives the deep-water dispersion relation c = sqrt(g/k)
	Gravity = 9.8

	// WaveSteepnessFactor converts weather intensity into per-wave steepness
	WaveSteepnessFactor = 0.1

	// WaveSpeed scales simulation time into wave phase time
	WaveSpeed = 0.8

	// WavePlaneStep is the grid the rendered water plane snaps to under the boat
	WavePlaneStep = 20.0

	// WaveProbeWorkers bounds concurrent probe sampling
	WaveProbeWorkers = 8
)

// Base wavelengths, incommensurate to avoid visible beating
var WaveBaseLengths = [3]float64{60, 31, 18}

// Base directions, normalized at derivation time
var WaveBaseDirections = [3][2]float64{
	{1.0, 0.0},
	{1.0, 0.6},
	{1.0, 1.3},
}

// Surface orientation thresholds on normal.y
const (
	SurfaceAlignedY  = 0.99999
	SurfaceInvertedY = -0.99999
)

// Weather
const (
	// WeatherBaseIntensity is the open-sea wave intensity
	WeatherBaseIntensity = 2.0
)
