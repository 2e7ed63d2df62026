package parameter

import "time"

// Voyage loop timing
const (
	// TickInterval is the simulation step of the interactive sandbox (~30 Hz)
	TickInterval = 33 * time.Millisecond

	// TickMaxDt caps a single step after a stall so the integrator stays stable
	TickMaxDt = 0.1

	// HeadlessDt is the fixed step used by headless runs
	HeadlessDt = 1.0 / 30
)

// Event queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Probes sampled around the boat for rendering floating debris
const (
	ProbeRingCount  = 8
	ProbeRingRadius = 30.0
)

// Terminal sandbox view
const (
	// ViewCellMeters is the world width of one terminal column, rows are twice as tall
	ViewCellMeters = 4.0

	// KeyHoldWindow treats a key as held this long after its last repeat
	KeyHoldWindow = 150 * time.Millisecond

	// TrackSpacing is the minimum projected distance between kept track fixes
	TrackSpacing = 500.0
)
