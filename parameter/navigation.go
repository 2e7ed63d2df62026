package parameter

// Night phase: island alignment
const (
	// NavEnterAlignment is the dot(islandDir, up) above which an island is overhead
	NavEnterAlignment = 0.99

	// NavLandingDistance projects the landing point along the island direction
	NavLandingDistance = 5000.0
)

// Day phase: approach
const (
	// NavLeaveThreshold is the distance beyond which the island is left behind
	NavLeaveThreshold = 700.0

	// NavLockFraction is the approach fraction that anchors the dome to the island
	NavLockFraction = 0.2

	// NavUnlockTurns is the corrective rotation on unlock, in quarter turns
	NavUnlockTurns = 0.05

	// NavDarknessOffset and NavDarknessGain shape the approach darkness curve
	NavDarknessOffset = 0.1
	NavDarknessGain   = 10.0

	// NavDarknessCap bounds the approach darkness
	NavDarknessCap = 0.75
)
