package parameter

// Celestial dead reckoning
const (
	// SkyJumpScale converts travelled distance into sky rotation radians
	// The virtual globe radius is 1/SkyJumpScale world units
	SkyJumpScale = 1e-3
)

// Default celestial islands, rotations in quarter turns (π/2 units)
const (
	SkyHomePitchTurns = 0.1
	SkyHomeYawTurns   = 0.2

	SkyIslandAPitchTurns = -0.15
	SkyIslandARollTurns  = 0.12
)
