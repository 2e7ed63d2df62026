// Package metrics exposes the voyage OpenTelemetry instruments.
// Without a configured global provider every instrument is a no-op.
package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/lixenwraith/skysail/metrics"

// Metrics holds the voyage instruments
type Metrics struct {
	ticks     metric.Int64Counter
	navEvents metric.Int64Counter
	speed     metric.Float64Histogram
	probes    metric.Int64Counter
}

// New creates instruments on m
func New(m metric.Meter) (*Metrics, error) {
	var (
		mt  Metrics
		err error
	)

	mt.ticks, err = m.Int64Counter(
		"skysail.ticks",
		metric.WithDescription("Simulation ticks advanced"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ticks counter: %w", err)
	}

	mt.navEvents, err = m.Int64Counter(
		"skysail.navigation.events",
		metric.WithDescription("Navigation events emitted, by kind"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating navigation events counter: %w", err)
	}

	mt.speed, err = m.Float64Histogram(
		"skysail.boat.speed",
		metric.WithDescription("Boat speed per tick"),
		metric.WithUnit("m/s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating speed histogram: %w", err)
	}

	mt.probes, err = m.Int64Counter(
		"skysail.probe.samples",
		metric.WithDescription("Surface probes sampled"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating probe counter: %w", err)
	}

	return &mt, nil
}

// Global creates instruments on the global provider
func Global() (*Metrics, error) {
	return New(otel.Meter(instrumentationName))
}

// Nop returns instruments that record nothing
func Nop() *Metrics {
	m, _ := New(noop.Meter{})
	return m
}

func (m *Metrics) Tick(ctx context.Context) {
	m.ticks.Add(ctx, 1)
}

func (m *Metrics) NavigationEvent(ctx context.Context, kind string) {
	m.navEvents.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

func (m *Metrics) BoatSpeed(ctx context.Context, speed float64) {
	m.speed.Record(ctx, speed)
}

func (m *Metrics) ProbeSamples(ctx context.Context, n int) {
	m.probes.Add(ctx, int64(n))
}
