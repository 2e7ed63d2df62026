// Package voyage composes the sea, the boat, the dome and the navigator into
// a single-threaded tick pipeline and fans the results out as events.
package voyage

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/skysail/boat"
	"github.com/lixenwraith/skysail/config"
	"github.com/lixenwraith/skysail/event"
	"github.com/lixenwraith/skysail/metrics"
	"github.com/lixenwraith/skysail/navigation"
	"github.com/lixenwraith/skysail/parameter"
	"github.com/lixenwraith/skysail/sky"
	"github.com/lixenwraith/skysail/vmath"
	"github.com/lixenwraith/skysail/water"
)

// Controls is one tick of external input
type Controls struct {
	Dt       float64
	Throttle float64
	Steer    float64
}

// Voyage owns every mutable piece of simulation state
// Not safe for concurrent use; Probes may run alongside rendering reads
type Voyage struct {
	waveCfg   water.WaveConfig
	planeStep float64
	workers   int

	integrator *boat.Integrator
	helm       *boat.Helm
	boat       *boat.Boat
	nav        *navigation.Navigator
	weather    *water.Weather
	waves      water.WaveField

	queue  *event.EventQueue
	router *event.Router

	log     zerolog.Logger
	trace   zerolog.Logger
	metrics *metrics.Metrics

	tick     int64
	simTime  float64
	approach navigation.Event
	probes   []water.Probe
}

// New builds a voyage from settings
func New(cfg *config.Config, opts ...Option) (*Voyage, error) {
	o := options{
		log:     zerolog.Nop(),
		trace:   zerolog.Nop(),
		islands: sky.DefaultIslands(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.metrics == nil {
		o.metrics = metrics.Nop()
	}

	waveCfg, err := cfg.WaveConfig()
	if err != nil {
		return nil, fmt.Errorf("wave config: %w", err)
	}
	integrator, err := boat.NewIntegrator(cfg.BoatConfig())
	if err != nil {
		return nil, fmt.Errorf("boat config: %w", err)
	}
	nav, err := navigation.New(cfg.NavigationConfig(), o.islands)
	if err != nil {
		return nil, fmt.Errorf("navigation config: %w", err)
	}

	v := &Voyage{
		waveCfg:    waveCfg,
		planeStep:  cfg.Wave.PlaneStep,
		workers:    cfg.Wave.ProbeWorkers,
		integrator: integrator,
		helm:       boat.NewHelm(cfg.HelmConfig()),
		boat:       boat.New(o.start),
		nav:        nav,
		weather:    water.NewWeather(cfg.Weather.BaseIntensity),
		queue:      event.NewEventQueue(),
		log:        o.log,
		trace:      o.trace,
		metrics:    o.metrics,
		probes:     ringProbes(parameter.ProbeRingCount, parameter.ProbeRingRadius),
	}
	v.router = event.NewRouter(v.queue)
	for _, h := range o.handlers {
		v.router.Register(h)
	}
	if v.waves, err = v.weather.Waves(v.waveCfg); err != nil {
		return nil, err
	}

	v.log.Info().
		Int("islands", len(o.islands)).
		Float64("intensity", v.weather.Intensity).
		Msg("voyage ready")
	return v, nil
}

// Register adds an event handler after construction
func (v *Voyage) Register(h event.Handler) {
	v.router.Register(h)
}

// TickKeys ramps the helm from held keys and advances one tick
func (v *Voyage) TickKeys(ctx context.Context, keys boat.Keys, dt float64) error {
	v.helm.Update(keys, dt)
	return v.Tick(ctx, Controls{Dt: dt, Throttle: v.helm.Throttle, Steer: v.helm.Steer})
}

// Tick advances the simulation by c.Dt seconds
// An invalid navigation transition is returned unrecovered
func (v *Voyage) Tick(ctx context.Context, c Controls) error {
	if !vmath.Finite(c.Dt) || c.Dt < 0 {
		return fmt.Errorf("tick %d: %w: dt %v", v.tick+1, boat.ErrInvalidInput, c.Dt)
	}
	if !vmath.Finite(c.Throttle) || !vmath.Finite(c.Steer) {
		return fmt.Errorf("tick %d: %w: non-finite controls %+v", v.tick+1, boat.ErrInvalidInput, c)
	}
	v.tick++
	v.simTime += c.Dt

	waves, err := v.weather.Waves(v.waveCfg)
	if err != nil {
		return fmt.Errorf("tick %d: %w", v.tick, err)
	}
	v.waves = waves

	in := boat.Input{Throttle: c.Throttle, Steer: c.Steer, Dt: c.Dt, Time: v.phase()}
	mv, moved, err := v.integrator.Step(v.boat, in, &v.waves)
	if err != nil {
		return fmt.Errorf("tick %d: %w", v.tick, err)
	}

	v.metrics.Tick(ctx)
	v.metrics.BoatSpeed(ctx, v.boat.Speed)

	if moved {
		// Observe first so the move carries this tick's fix
		evs := v.nav.Observe(mv)
		v.push(event.EventBoatMove, &event.BoatMovePayload{
			Jump:        mv.Jump,
			Translation: mv.Translation,
			Speed:       v.boat.Speed,
			Heading:     v.boat.Heading,
			Fix:         v.nav.Fix(),
			Mode:        v.nav.Mode().String(),
		})

		for _, ev := range evs {
			if err := v.compose(ctx, ev, mv); err != nil {
				return err
			}
		}
	}

	v.trace.Trace().
		Int64("tick", v.tick).
		Float64("speed", v.boat.Speed).
		Str("mode", v.nav.Mode().String()).
		Int("pending", v.queue.Len()).
		Uint64("dropped", v.queue.Dropped()).
		Msg("tick")

	v.router.DispatchAll()
	return nil
}

// compose commits one navigation event and couples the world to it
func (v *Voyage) compose(ctx context.Context, ev navigation.Event, mv boat.MoveEvent) error {
	v.metrics.NavigationEvent(ctx, ev.Kind.String())
	from := v.nav.Mode()

	if err := v.nav.Apply(ev); err != nil {
		v.log.Error().Err(err).
			Int64("tick", v.tick).
			Str("island", string(ev.Island)).
			Msg("navigation transition rejected")
		return fmt.Errorf("tick %d: %w", v.tick, err)
	}

	fix := v.nav.Fix()
	switch ev.Kind {
	case navigation.Enter:
		v.push(event.EventIslandEnter, &event.IslandEnterPayload{
			Island:   ev.Island,
			Rotation: ev.IslandRotation,
			Landing:  ev.Landing,
			Position: mv.Translation,
			Fix:      fix,
		})
		v.log.Info().
			Str("island", string(ev.Island)).
			Float64("landing_x", ev.Landing.X).
			Float64("landing_z", ev.Landing.Z).
			Msg("island overhead, sunrise")

	case navigation.Approach:
		v.approach = ev
		v.weather.Calm(ev.Darkness)
		v.push(event.EventIslandApproach, &event.IslandApproachPayload{
			Island:   ev.Island,
			Fraction: ev.Fraction,
			Darkness: ev.Darkness,
			Locked:   v.nav.Dome().Locked,
		})

	case navigation.Leave:
		v.approach = navigation.Event{}
		v.weather.Restore()
		v.push(event.EventIslandLeave, &event.IslandLeavePayload{
			Island:   ev.Island,
			Position: mv.Translation,
			Fix:      fix,
		})
		v.log.Info().Str("island", string(ev.Island)).Msg("island left, sunset")
	}

	if to := v.nav.Mode(); to != from {
		v.push(event.EventModeChange, &event.ModeChangePayload{
			From:     from.String(),
			To:       to.String(),
			Island:   ev.Island,
			Position: mv.Translation,
			Fix:      fix,
		})
		v.log.Info().Stringer("from", from).Stringer("to", to).Msg("mode change")
	}
	return nil
}

func (v *Voyage) push(t event.EventType, payload any) {
	v.queue.Push(event.GameEvent{
		Type:    t,
		Payload: payload,
		Tick:    v.tick,
		SimTime: v.simTime,
	})
}

func (v *Voyage) phase() float64 {
	return v.waveCfg.Phase(v.simTime)
}

// Boat returns a snapshot of the boat
func (v *Voyage) Boat() boat.Boat {
	return *v.boat
}

// Dome returns a snapshot of the dome
func (v *Voyage) Dome() sky.Dome {
	return v.nav.Dome()
}

func (v *Voyage) Mode() navigation.Mode {
	return v.nav.Mode()
}

func (v *Voyage) Fix() sky.GlobeFix {
	return v.nav.Fix()
}

func (v *Voyage) Navigator() *navigation.Navigator {
	return v.nav
}

// Weather exposes the wave intensity for external control
func (v *Voyage) Weather() *water.Weather {
	return v.weather
}

// Approach returns the last approach event while in Day
func (v *Voyage) Approach() (navigation.Event, bool) {
	return v.approach, v.nav.Mode() == navigation.Day && v.approach.Kind == navigation.Approach
}

func (v *Voyage) TickCount() int64 {
	return v.tick
}

func (v *Voyage) SimTime() float64 {
	return v.simTime
}

// Waves returns the wave field of the last tick
func (v *Voyage) Waves() water.WaveField {
	return v.waves
}

// HeightAt samples the current sea surface
func (v *Voyage) HeightAt(p vmath.Vec2F) float64 {
	return water.HeightAt(p, v.phase(), &v.waves)
}

// PlaneOrigin is where the rendered water mesh is anchored
func (v *Voyage) PlaneOrigin() vmath.Vec3F {
	return water.AnchorPlane(v.boat.Position, v.planeStep)
}

// Probes floats the debris ring around the boat
func (v *Voyage) Probes(ctx context.Context) ([]water.ProbeTransform, error) {
	origin := vmath.V3FXZ(v.boat.Position)
	probes := make([]water.Probe, len(v.probes))
	for i, p := range v.probes {
		probes[i] = water.Probe{Position: vmath.V2FAdd(origin, p.Position), Yaw: p.Yaw}
	}
	out, err := water.SampleProbes(ctx, probes, v.phase(), &v.waves, v.workers)
	if err != nil {
		return nil, err
	}
	v.metrics.ProbeSamples(ctx, len(out))
	return out, nil
}

// ringProbes spaces n probes evenly on a circle, each yawed along the ring
func ringProbes(n int, radius float64) []water.Probe {
	probes := make([]water.Probe, n)
	for i := range probes {
		a := 2 * math.Pi * float64(i) / float64(n)
		probes[i] = water.Probe{
			Position: vmath.Vec2F{X: radius * math.Sin(a), Y: radius * math.Cos(a)},
			Yaw:      a + math.Pi/2,
		}
	}
	return probes
}
