package event

// EventType represents the type of voyage event
type EventType int

const (
	// EventBoatMove reports one tick of boat displacement
	// Trigger: boat integrator when |jump| > 0
	// Consumer: navigator, telemetry | Payload: *BoatMovePayload
	EventBoatMove EventType = iota + 1

	// EventIslandEnter signals sailing under an island at night
	// Trigger: navigator overhead rising edge
	// Consumer: logbook, audio | Payload: *IslandEnterPayload
	EventIslandEnter

	// EventIslandApproach reports approach progress during the day
	// Trigger: navigator within leave threshold
	// Consumer: weather, HUD | Payload: *IslandApproachPayload
	EventIslandApproach

	// EventIslandLeave signals the landing was left behind
	// Trigger: navigator beyond leave threshold
	// Consumer: logbook, audio | Payload: *IslandLeavePayload
	EventIslandLeave

	// EventModeChange reports a committed Night/Day transition
	// Trigger: voyage after a successful Apply
	// Consumer: logbook, audio | Payload: *ModeChangePayload
	EventModeChange
)

// GameEvent represents a single voyage event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    int64   // Simulation tick that produced the event
	SimTime float64 // Simulation seconds at emission
}

var eventNames = [...]string{
	EventBoatMove:       "boat_move",
	EventIslandEnter:    "island_enter",
	EventIslandApproach: "island_approach",
	EventIslandLeave:    "island_leave",
	EventModeChange:     "mode_change",
}

func (t EventType) String() string {
	if t > 0 && int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}
