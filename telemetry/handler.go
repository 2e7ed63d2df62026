package telemetry

import (
	"context"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"

	"github.com/lixenwraith/skysail/event"
)

// Handler samples boat moves into points
type Handler struct {
	exporter *Exporter
	voyageID string
	every    int
	epoch    time.Time

	moves   int
	written int
	failed  int
}

// NewHandler writes every Nth move, timestamped epoch + simulation time
func NewHandler(exp *Exporter, voyageID string, every int, epoch time.Time) *Handler {
	if every < 1 {
		every = 1
	}
	return &Handler{exporter: exp, voyageID: voyageID, every: every, epoch: epoch}
}

func (h *Handler) EventTypes() []event.EventType {
	return []event.EventType{event.EventBoatMove}
}

func (h *Handler) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.BoatMovePayload)
	if !ok {
		return
	}
	h.moves++
	if (h.moves-1)%h.every != 0 {
		return
	}

	pos := p.Translation
	point := influxdb2.NewPoint(Measurement,
		map[string]string{
			"voyage": h.voyageID,
			"mode":   p.Mode,
		},
		map[string]interface{}{
			"x":     pos.X,
			"z":     pos.Z,
			"speed": p.Speed,
			"lat":   p.Fix.Lat,
			"lon":   p.Fix.Lon,
		},
		h.epoch.Add(time.Duration(ev.SimTime*float64(time.Second))),
	)

	if err := h.exporter.WritePoint(context.Background(), point); err != nil {
		h.failed++
		h.exporter.log.Error().Err(err).Int64("tick", ev.Tick).Msg("telemetry write failed")
		return
	}
	h.written++
}

// Written returns the number of points accepted
func (h *Handler) Written() int {
	return h.written
}

func (h *Handler) Failed() int {
	return h.failed
}
