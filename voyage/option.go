package voyage

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/skysail/event"
	"github.com/lixenwraith/skysail/logging"
	"github.com/lixenwraith/skysail/metrics"
	"github.com/lixenwraith/skysail/sky"
	"github.com/lixenwraith/skysail/vmath"
)

type options struct {
	log      zerolog.Logger
	trace    zerolog.Logger
	metrics  *metrics.Metrics
	islands  []sky.Island
	handlers []event.Handler
	start    vmath.Vec3F
}

// Option configures New
type Option func(*options)

// WithLogging attaches the root and sampled loggers
func WithLogging(l *logging.Logging) Option {
	return func(o *options) {
		o.log = l.Logger.With().Str("component", "voyage").Logger()
		o.trace = l.Trace.With().Str("component", "voyage").Logger()
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithIslands replaces the default chart
func WithIslands(islands []sky.Island) Option {
	return func(o *options) { o.islands = islands }
}

func WithHandlers(hs ...event.Handler) Option {
	return func(o *options) { o.handlers = append(o.handlers, hs...) }
}

// WithStart places the boat
func WithStart(p vmath.Vec3F) Option {
	return func(o *options) { o.start = p }
}
