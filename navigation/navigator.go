package navigation

import (
	"fmt"
	"math"

	"github.com/lixenwraith/skysail/boat"
	"github.com/lixenwraith/skysail/sky"
	"github.com/lixenwraith/skysail/vmath"
)

// Navigator owns the dome and the day phase
// Observe reads moves and emits events, Apply is the only mode mutation path
type Navigator struct {
	cfg     Config
	dome    *sky.Dome
	islands []sky.Island

	mode       Mode
	target     sky.Island
	landing    vmath.Vec3F
	hasLanding bool

	// overhead tracks islands that already fired this night
	// An island re-arms when it drops below alignment or at sunset
	overhead map[sky.IslandID]bool
}

func New(cfg Config, islands []sky.Island) (*Navigator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Navigator{
		cfg:      cfg,
		dome:     sky.NewDome(),
		islands:  append([]sky.Island(nil), islands...),
		mode:     Night,
		overhead: make(map[sky.IslandID]bool, len(islands)),
	}, nil
}

func (n *Navigator) Mode() Mode {
	return n.mode
}

// Dome returns a snapshot of the dome
func (n *Navigator) Dome() sky.Dome {
	return *n.dome
}

func (n *Navigator) Islands() []sky.Island {
	return n.islands
}

// Landing returns the materialized landing point while in Day
func (n *Navigator) Landing() (vmath.Vec3F, bool) {
	return n.landing, n.hasLanding
}

// Target returns the island being approached while in Day
func (n *Navigator) Target() (sky.Island, bool) {
	return n.target, n.hasLanding
}

func (n *Navigator) Fix() sky.GlobeFix {
	return n.dome.Fix()
}

func (n *Navigator) aligned(dir vmath.Vec3F) bool {
	return vmath.V3FDot(dir, vmath.V3FUnitY) > n.cfg.EnterAlignment
}

// Observe folds one boat move into the dome and reports navigation events
func (n *Navigator) Observe(mv boat.MoveEvent) []Event {
	if n.mode == Day && n.hasLanding {
		return n.observeDay(mv)
	}
	return n.observeNight(mv)
}

func (n *Navigator) observeNight(mv boat.MoveEvent) []Event {
	n.dome.Advance(mv.Jump, n.cfg.JumpScale)

	var events []Event
	for _, isl := range n.islands {
		dir := n.dome.Direction(isl.Rotation)
		if !n.aligned(dir) {
			n.overhead[isl.ID] = false
			continue
		}
		if n.overhead[isl.ID] || len(events) > 0 {
			// Already fired, or another island claimed this tick
			continue
		}
		n.overhead[isl.ID] = true

		landing := vmath.V3FAdd(mv.Translation, vmath.V3FScale(dir, n.cfg.LandingDistance))
		landing.Y = 0
		events = append(events, Event{
			Kind:           Enter,
			Island:         isl.ID,
			IslandRotation: isl.Rotation,
			Landing:        landing,
		})
	}
	return events
}

func (n *Navigator) observeDay(mv boat.MoveEvent) []Event {
	dist := vmath.V3FDist(mv.Translation, n.landing)
	if dist > n.cfg.LeaveThreshold {
		return []Event{{Kind: Leave, Island: n.target.ID}}
	}

	fraction := 1 - dist/n.cfg.LeaveThreshold
	ev := Event{
		Kind:     Approach,
		Island:   n.target.ID,
		Fraction: fraction,
		Darkness: n.cfg.darkness(fraction),
	}

	switch {
	case fraction > n.cfg.LockFraction && !n.dome.Locked:
		// Cancel the island's offset so it sits exactly at the zenith
		axis, angle := vmath.QToAxisAngle(vmath.QMul(n.dome.Rotation, n.target.Rotation))
		n.dome.Apply(vmath.QFromAxisAngle(axis, -angle))
		n.dome.Locked = true
	case fraction < n.cfg.LockFraction && n.dome.Locked:
		n.dome.Rotation = sky.RotateAlong(n.dome.Rotation, mv.Translation, n.landing, -sky.Turns(n.cfg.UnlockTurns))
		n.dome.Locked = false
	case fraction < n.cfg.LockFraction:
		n.dome.Advance(mv.Jump, n.cfg.JumpScale)
	}
	return []Event{ev}
}

// Apply commits an event to the day phase
func (n *Navigator) Apply(ev Event) error {
	switch {
	case ev.Kind == Enter && n.mode == Night:
		n.mode = Day
		n.target = sky.Island{ID: ev.Island, Rotation: ev.IslandRotation}
		n.landing = ev.Landing
		n.hasLanding = true
		return nil
	case ev.Kind == Leave && n.mode == Day:
		n.mode = Night
		n.target = sky.Island{}
		n.landing = vmath.Vec3F{}
		n.hasLanding = false
		n.dome.Locked = false
		// Sunset re-arms every island for the coming night
		clear(n.overhead)
		return nil
	case ev.Kind == Approach && n.mode == Day:
		return nil
	}
	return fmt.Errorf("%w: %s during %s", ErrInvalidTransition, ev.Kind, n.mode)
}

// Zenith reports how close an island is to overhead, 1 meaning directly above
func (n *Navigator) Zenith(id sky.IslandID) (float64, bool) {
	for _, isl := range n.islands {
		if isl.ID == id {
			return vmath.V3FDot(n.dome.Direction(isl.Rotation), vmath.V3FUnitY), true
		}
	}
	return math.NaN(), false
}
