package chart

import (
	"math"

	geom "github.com/peterstace/simplefeatures/geom"

	"github.com/lixenwraith/skysail/event"
	"github.com/lixenwraith/skysail/sky"
)

// Track accumulates projected fixes as a polyline
// Fixes closer than Spacing meters to the previous one are dropped
type Track struct {
	Spacing float64
	coords  []float64
}

func NewTrack(spacing float64) *Track {
	return &Track{Spacing: spacing}
}

// Add appends a fix, reporting whether it was kept
func (t *Track) Add(fix sky.GlobeFix) bool {
	x, y := Project(fix)
	if n := len(t.coords); n >= 2 {
		if math.Hypot(x-t.coords[n-2], y-t.coords[n-1]) < t.Spacing {
			return false
		}
	}
	t.coords = append(t.coords, x, y)
	return true
}

// Len returns the number of kept fixes
func (t *Track) Len() int {
	return len(t.coords) / 2
}

// LineString returns the track, empty until two fixes are kept
func (t *Track) LineString() geom.LineString {
	if t.Len() < 2 {
		return geom.LineString{}
	}
	seq := geom.NewSequence(append([]float64(nil), t.coords...), geom.DimXY)
	return geom.NewLineString(seq)
}

// WKT renders the track as well-known text
func (t *Track) WKT() string {
	return t.LineString().AsText()
}

// Length is the projected track length in meters
func (t *Track) Length() float64 {
	return t.LineString().Length()
}

// HandleEvent records the fix carried by each boat move
func (t *Track) HandleEvent(ev event.GameEvent) {
	if p, ok := ev.Payload.(*event.BoatMovePayload); ok {
		t.Add(p.Fix)
	}
}

func (t *Track) EventTypes() []event.EventType {
	return []event.EventType{event.EventBoatMove}
}
