package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/skysail/boat"
	"github.com/lixenwraith/skysail/navigation"
	"github.com/lixenwraith/skysail/water"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, boat.DefaultConfig(), c.BoatConfig())
	assert.Equal(t, boat.DefaultHelmConfig(), c.HelmConfig())
	assert.Equal(t, navigation.DefaultConfig(), c.NavigationConfig())

	wc, err := c.WaveConfig()
	require.NoError(t, err)
	assert.Equal(t, water.DefaultWaveConfig(), wc)

	assert.Equal(t, 2.0, c.Weather.BaseIntensity)
	assert.Equal(t, "info", c.Log.Level)
	assert.False(t, c.Logbook.Enabled)
}

func TestLoadTOMLFile(t *testing.T) {
	path := writeFile(t, "skysail.toml", `
[boat]
mass = 2.5
engineForce = 60

[navigation]
leaveThreshold = 900

[telemetry]
enabled = true
every = 3
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2.5, c.Boat.Mass)
	assert.Equal(t, 60.0, c.Boat.EngineForce)
	assert.Equal(t, 0.05, c.Boat.Drag, "unset keys keep defaults")
	assert.Equal(t, 900.0, c.NavigationConfig().LeaveThreshold)
	assert.True(t, c.Telemetry.Enabled)
	assert.Equal(t, 3, c.Telemetry.Every)
}

func TestLoadYAMLFile(t *testing.T) {
	path := writeFile(t, "skysail.yaml", `
wave:
  lengths: [40, 20, 10]
sky:
  jumpScale: 0.002
`)
	c, err := Load(path)
	require.NoError(t, err)

	wc, err := c.WaveConfig()
	require.NoError(t, err)
	assert.Equal(t, [3]float64{40, 20, 10}, wc.Lengths)
	assert.Equal(t, 0.002, c.NavigationConfig().JumpScale)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SKYSAIL_BOAT_MASS", "4")
	t.Setenv("SKYSAIL_LOG_LEVEL", "debug")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4.0, c.Boat.Mass)
	assert.Equal(t, "debug", c.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestValidateRejects(t *testing.T) {
	tests := map[string]func(*Config){
		"zero mass":          func(c *Config) { c.Boat.Mass = 0 },
		"negative length":    func(c *Config) { c.Wave.Lengths = []float64{60, -1, 18} },
		"two waves":          func(c *Config) { c.Wave.Lengths = []float64{60, 31} },
		"lock fraction":      func(c *Config) { c.Navigation.LockFraction = 1.2 },
		"leave threshold":    func(c *Config) { c.Navigation.LeaveThreshold = 0 },
		"plane step":         func(c *Config) { c.Wave.PlaneStep = 0 },
		"telemetry interval": func(c *Config) { c.Telemetry.Enabled, c.Telemetry.Every = true, 0 },
		"volume":             func(c *Config) { c.Audio.Volume = 2 },
	}
	for name, mut := range tests {
		t.Run(name, func(t *testing.T) {
			c := Default()
			mut(c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoadInvalidFileValue(t *testing.T) {
	path := writeFile(t, "bad.json", `{"boat": {"mass": -1}}`)
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, boat.ErrInvalidConfig)
}
