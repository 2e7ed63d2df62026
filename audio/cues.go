package audio

import (
	"github.com/lixenwraith/skysail/event"
	"github.com/lixenwraith/skysail/navigation"
	"github.com/lixenwraith/skysail/parameter"
	"github.com/lixenwraith/skysail/vmath"
)

// Cues turns voyage events into sounds
// Surf follows boat speed and fades with approach darkness like the weather
type Cues struct {
	player   Player
	volume   float64
	darkness float64
	moves    int
}

func NewCues(player Player, volume float64) *Cues {
	return &Cues{player: player, volume: vmath.ClampF(volume, 0, 1)}
}

func (c *Cues) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventBoatMove,
		event.EventIslandEnter,
		event.EventIslandApproach,
		event.EventIslandLeave,
		event.EventModeChange,
	}
}

func (c *Cues) HandleEvent(ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.IslandEnterPayload:
		c.player.Play(LandfallBell(c.volume))
	case *event.IslandApproachPayload:
		c.darkness = p.Darkness
	case *event.IslandLeavePayload:
		c.darkness = 0
	case *event.ModeChangePayload:
		if p.To == navigation.Night.String() {
			c.player.Play(SunsetHorn(c.volume))
		}
	case *event.BoatMovePayload:
		c.moves++
		if c.moves%parameter.SurfEvery != 0 {
			return
		}
		intensity := c.SurfIntensity(p.Speed)
		if intensity <= 0 {
			return
		}
		c.player.Play(Surf(intensity, c.volume))
	}
}

// SurfIntensity maps boat speed to surf loudness under the current darkness
func (c *Cues) SurfIntensity(speed float64) float64 {
	s := vmath.ClampF(speed/parameter.SurfFullSpeed, 0, 1)
	return s * (1 - c.darkness)
}
