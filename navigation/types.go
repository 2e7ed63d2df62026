// Package navigation runs the Night/Day state machine that decides when the
// boat sails under a celestial island, approaches its landing and leaves it.
package navigation

import (
	"errors"

	"github.com/lixenwraith/skysail/sky"
	"github.com/lixenwraith/skysail/vmath"
)

// ErrInvalidTransition is returned by Apply for an event the current mode cannot accept
var ErrInvalidTransition = errors.New("invalid navigation transition")

// Mode is the day phase
type Mode uint8

const (
	Night Mode = iota
	Day
)

func (m Mode) String() string {
	switch m {
	case Night:
		return "night"
	case Day:
		return "day"
	}
	return "unknown"
}

// EventKind distinguishes navigation events
type EventKind uint8

const (
	Enter EventKind = iota
	Approach
	Leave
)

func (k EventKind) String() string {
	switch k {
	case Enter:
		return "enter"
	case Approach:
		return "approach"
	case Leave:
		return "leave"
	}
	return "unknown"
}

// Event is emitted by Observe and consumed by Apply
// Enter carries Island, IslandRotation and Landing
// Approach carries Fraction and Darkness
type Event struct {
	Kind           EventKind
	Island         sky.IslandID
	IslandRotation vmath.Quat
	Landing        vmath.Vec3F
	Fraction       float64 // 1 at the landing, 0 at the leave threshold
	Darkness       float64 // [0, DarknessCap]
}
