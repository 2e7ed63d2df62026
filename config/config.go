// Package config loads skysail settings from defaults, an optional file and
// SKYSAIL_ environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/lixenwraith/skysail/boat"
	"github.com/lixenwraith/skysail/navigation"
	"github.com/lixenwraith/skysail/parameter"
	"github.com/lixenwraith/skysail/vmath"
	"github.com/lixenwraith/skysail/water"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix namespaces environment overrides, e.g. SKYSAIL_BOAT_MASS
const EnvPrefix = "SKYSAIL"

type WaveConfig struct {
	Lengths         []float64   `mapstructure:"lengths"`
	Directions      [][]float64 `mapstructure:"directions"`
	SteepnessFactor float64     `mapstructure:"steepnessFactor"`
	Speed           float64     `mapstructure:"speed"`
	PlaneStep       float64     `mapstructure:"planeStep"`
	ProbeWorkers    int         `mapstructure:"probeWorkers"`
}

type BoatConfig struct {
	Mass            float64 `mapstructure:"mass"`
	EngineForce     float64 `mapstructure:"engineForce"`
	Drag            float64 `mapstructure:"drag"`
	Friction        float64 `mapstructure:"friction"`
	TurnRate        float64 `mapstructure:"turnRate"`
	RotationDamping float64 `mapstructure:"rotationDamping"`
	TakeoffFactor   float64 `mapstructure:"takeoffFactor"`
	TakeoffMax      float64 `mapstructure:"takeoffMax"`
}

type HelmConfig struct {
	ThrottleAccel float64 `mapstructure:"throttleAccel"`
	SteerAccel    float64 `mapstructure:"steerAccel"`
	Decay         float64 `mapstructure:"decay"`
	MaxThrottle   float64 `mapstructure:"maxThrottle"`
	MaxReverse    float64 `mapstructure:"maxReverse"`
}

type SkyConfig struct {
	JumpScale float64 `mapstructure:"jumpScale"`
}

type NavigationConfig struct {
	EnterAlignment  float64 `mapstructure:"enterAlignment"`
	LandingDistance float64 `mapstructure:"landingDistance"`
	LeaveThreshold  float64 `mapstructure:"leaveThreshold"`
	LockFraction    float64 `mapstructure:"lockFraction"`
	UnlockTurns     float64 `mapstructure:"unlockTurns"`
	DarknessOffset  float64 `mapstructure:"darknessOffset"`
	DarknessGain    float64 `mapstructure:"darknessGain"`
	DarknessCap     float64 `mapstructure:"darknessCap"`
}

type WeatherConfig struct {
	BaseIntensity float64 `mapstructure:"baseIntensity"`
}

type GraylogConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

type LogConfig struct {
	Level   string        `mapstructure:"level"`
	Dir     string        `mapstructure:"dir"`
	Graylog GraylogConfig `mapstructure:"graylog"`
}

type LogbookConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type TelemetryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
	Token   string `mapstructure:"token"`
	Org     string `mapstructure:"org"`
	Bucket  string `mapstructure:"bucket"`
	Every   int    `mapstructure:"every"`
	Backup  string `mapstructure:"backup"`
}

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

type ChartConfig struct {
	Path string `mapstructure:"path"`
}

// Config is the full settings tree
type Config struct {
	Wave       WaveConfig       `mapstructure:"wave"`
	Boat       BoatConfig       `mapstructure:"boat"`
	Helm       HelmConfig       `mapstructure:"helm"`
	Sky        SkyConfig        `mapstructure:"sky"`
	Navigation NavigationConfig `mapstructure:"navigation"`
	Weather    WeatherConfig    `mapstructure:"weather"`
	Log        LogConfig        `mapstructure:"log"`
	Logbook    LogbookConfig    `mapstructure:"logbook"`
	Telemetry  TelemetryConfig  `mapstructure:"telemetry"`
	Audio      AudioConfig      `mapstructure:"audio"`
	Chart      ChartConfig      `mapstructure:"chart"`
}

func setDefaults(v *viper.Viper) {
	dirs := make([][]float64, 0, len(parameter.WaveBaseDirections))
	for _, d := range parameter.WaveBaseDirections {
		dirs = append(dirs, []float64{d[0], d[1]})
	}
	v.SetDefault("wave.lengths", parameter.WaveBaseLengths[:])
	v.SetDefault("wave.directions", dirs)
	v.SetDefault("wave.steepnessFactor", parameter.WaveSteepnessFactor)
	v.SetDefault("wave.speed", parameter.WaveSpeed)
	v.SetDefault("wave.planeStep", parameter.WavePlaneStep)
	v.SetDefault("wave.probeWorkers", parameter.WaveProbeWorkers)

	v.SetDefault("boat.mass", parameter.BoatMass)
	v.SetDefault("boat.engineForce", parameter.BoatEngineForce)
	v.SetDefault("boat.drag", parameter.BoatDrag)
	v.SetDefault("boat.friction", parameter.BoatFriction)
	v.SetDefault("boat.turnRate", parameter.BoatTurnRate)
	v.SetDefault("boat.rotationDamping", parameter.BoatRotationDamping)
	v.SetDefault("boat.takeoffFactor", parameter.BoatTakeoffFactor)
	v.SetDefault("boat.takeoffMax", parameter.BoatTakeoffMax)

	v.SetDefault("helm.throttleAccel", parameter.HelmThrottleAccel)
	v.SetDefault("helm.steerAccel", parameter.HelmSteerAccel)
	v.SetDefault("helm.decay", parameter.HelmDecay)
	v.SetDefault("helm.maxThrottle", parameter.HelmMaxThrottle)
	v.SetDefault("helm.maxReverse", parameter.HelmMaxReverse)

	v.SetDefault("sky.jumpScale", parameter.SkyJumpScale)

	v.SetDefault("navigation.enterAlignment", parameter.NavEnterAlignment)
	v.SetDefault("navigation.landingDistance", parameter.NavLandingDistance)
	v.SetDefault("navigation.leaveThreshold", parameter.NavLeaveThreshold)
	v.SetDefault("navigation.lockFraction", parameter.NavLockFraction)
	v.SetDefault("navigation.unlockTurns", parameter.NavUnlockTurns)
	v.SetDefault("navigation.darknessOffset", parameter.NavDarknessOffset)
	v.SetDefault("navigation.darknessGain", parameter.NavDarknessGain)
	v.SetDefault("navigation.darknessCap", parameter.NavDarknessCap)

	v.SetDefault("weather.baseIntensity", parameter.WeatherBaseIntensity)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "./logs")
	v.SetDefault("log.graylog.enabled", false)
	v.SetDefault("log.graylog.address", "localhost:12201")

	v.SetDefault("logbook.enabled", false)
	v.SetDefault("logbook.path", "skysail.db")

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.url", "http://localhost:8086")
	v.SetDefault("telemetry.token", "")
	v.SetDefault("telemetry.org", "skysail")
	v.SetDefault("telemetry.bucket", "voyage")
	v.SetDefault("telemetry.every", 10)
	v.SetDefault("telemetry.backup", "")

	v.SetDefault("audio.enabled", false)
	v.SetDefault("audio.volume", 0.5)

	v.SetDefault("chart.path", "")
}

// Load reads path (toml, yaml or json by extension) over defaults
// An empty path loads defaults and environment only
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Default returns the built-in settings
func Default() *Config {
	c, err := Load("")
	if err != nil {
		// Built-in defaults always validate unless the environment breaks them
		panic(err)
	}
	return c
}

// Validate checks every section against its component's rules
func (c *Config) Validate() error {
	if _, err := c.WaveConfig(); err != nil {
		return fmt.Errorf("%w: wave: %w", ErrInvalidConfig, err)
	}
	if !(c.Wave.PlaneStep > 0) {
		return fmt.Errorf("%w: wave plane step %v must be positive", ErrInvalidConfig, c.Wave.PlaneStep)
	}
	if err := c.BoatConfig().Validate(); err != nil {
		return fmt.Errorf("%w: boat: %w", ErrInvalidConfig, err)
	}
	if h := c.Helm; h.ThrottleAccel < 0 || h.SteerAccel < 0 || h.Decay < 0 ||
		!(h.MaxThrottle > 0) || h.MaxReverse < 0 {
		return fmt.Errorf("%w: helm %+v", ErrInvalidConfig, h)
	}
	if err := c.NavigationConfig().Validate(); err != nil {
		return fmt.Errorf("%w: navigation: %w", ErrInvalidConfig, err)
	}
	if !vmath.Finite(c.Weather.BaseIntensity) || c.Weather.BaseIntensity < 0 {
		return fmt.Errorf("%w: weather base intensity %v", ErrInvalidConfig, c.Weather.BaseIntensity)
	}
	if c.Telemetry.Enabled && c.Telemetry.Every <= 0 {
		return fmt.Errorf("%w: telemetry every %d must be positive", ErrInvalidConfig, c.Telemetry.Every)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume %v outside [0, 1]", ErrInvalidConfig, c.Audio.Volume)
	}
	return nil
}

// WaveConfig converts the wave section
func (c *Config) WaveConfig() (water.WaveConfig, error) {
	w := water.WaveConfig{
		SteepnessFactor: c.Wave.SteepnessFactor,
		Speed:           c.Wave.Speed,
	}
	if len(c.Wave.Lengths) != water.WaveCount || len(c.Wave.Directions) != water.WaveCount {
		return w, fmt.Errorf("%w: need %d lengths and directions, got %d and %d",
			water.ErrInvalidWave, water.WaveCount, len(c.Wave.Lengths), len(c.Wave.Directions))
	}
	for i := range water.WaveCount {
		d := c.Wave.Directions[i]
		if len(d) != 2 {
			return w, fmt.Errorf("%w: direction %d needs 2 components", water.ErrInvalidWave, i)
		}
		w.Lengths[i] = c.Wave.Lengths[i]
		w.Directions[i] = vmath.Vec2F{X: d[0], Y: d[1]}
	}
	return w, w.Validate()
}

func (c *Config) BoatConfig() boat.Config {
	b := c.Boat
	return boat.Config{
		Mass:            b.Mass,
		EngineForce:     b.EngineForce,
		Drag:            b.Drag,
		Friction:        b.Friction,
		TurnRate:        b.TurnRate,
		RotationDamping: b.RotationDamping,
		TakeoffFactor:   b.TakeoffFactor,
		TakeoffMax:      b.TakeoffMax,
	}
}

func (c *Config) HelmConfig() boat.HelmConfig {
	h := c.Helm
	return boat.HelmConfig{
		ThrottleAccel: h.ThrottleAccel,
		SteerAccel:    h.SteerAccel,
		Decay:         h.Decay,
		MaxThrottle:   h.MaxThrottle,
		MaxReverse:    h.MaxReverse,
	}
}

func (c *Config) NavigationConfig() navigation.Config {
	n := c.Navigation
	return navigation.Config{
		JumpScale:       c.Sky.JumpScale,
		EnterAlignment:  n.EnterAlignment,
		LandingDistance: n.LandingDistance,
		LeaveThreshold:  n.LeaveThreshold,
		LockFraction:    n.LockFraction,
		UnlockTurns:     n.UnlockTurns,
		DarknessOffset:  n.DarknessOffset,
		DarknessGain:    n.DarknessGain,
		DarknessCap:     n.DarknessCap,
	}
}
