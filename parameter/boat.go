package parameter

// Boat kinematics
const (
	BoatMass = 1.0

	// BoatEngineForce is thrust at throttle 1
	BoatEngineForce = 40.0

	// BoatDrag is the quadratic drag coefficient, drag = -k·v·|v|
	BoatDrag = 0.05

	// BoatFriction is the linear damping coefficient
	BoatFriction = 0.5

	// BoatTurnRate is heading change in rad/s at full steer
	BoatTurnRate = 1.0

	// BoatRotationDamping is the per-second slerp rate toward the wave-aligned rotation
	BoatRotationDamping = 5.0

	// BoatTakeoffFactor converts speed into a height-hold blend, 0 disables lift-off
	BoatTakeoffFactor = 0.0

	// BoatTakeoffMax caps the height-hold blend
	BoatTakeoffMax = 0.9
)

// Helm input ramping
const (
	HelmThrottleAccel = 10.0
	HelmSteerAccel    = 10.0
	HelmDecay         = 10.0
	HelmMaxThrottle   = 1.0
	HelmMaxReverse    = 0.5
)
