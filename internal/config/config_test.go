package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/somtsp/internal/config"
	"github.com/katalvlaran/somtsp/som"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "somtsp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
run:
  epochs: 250
  learningRate: 0.5
  seed: 9
  points:
    - [0, 0]
    - [100, 0]
    - [100, 100]
driver:
  interval: 15ms
polish:
  enabled: true
server:
  addr: ":9090"
log:
  level: debug
  format: json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 250, cfg.Run.Epochs)
	require.Equal(t, 0.5, cfg.Run.LearningRate)
	require.Equal(t, int64(9), cfg.Run.Seed)
	require.Equal(t, [][2]float64{{0, 0}, {100, 0}, {100, 100}}, cfg.Run.Points)
	require.Equal(t, 15*time.Millisecond, cfg.Driver.Interval)
	require.True(t, cfg.Polish.Enabled)
	require.Equal(t, ":9090", cfg.Server.Addr)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)

	// Untouched keys keep their defaults.
	require.Equal(t, 800.0, cfg.Run.Width)
	require.Equal(t, time.Second, cfg.Driver.ProgressEvery)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "run:\n  epochs: 250\n  cities: 12\n")
	t.Setenv("SOMTSP_RUN_EPOCHS", "40")
	t.Setenv("SOMTSP_DRIVER_INTERVAL", "2ms")
	t.Setenv("SOMTSP_LOG_LEVEL", "warn")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 40, cfg.Run.Epochs)
	require.Equal(t, 12, cfg.Run.Cities)
	require.Equal(t, 2*time.Millisecond, cfg.Driver.Interval)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "run: [not, a, map]\n"))
	require.Error(t, err)

	t.Setenv("SOMTSP_RUN_EPOCHS", "many")
	_, err = config.Load("")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{"zero rate", func(c *config.Config) { c.Run.LearningRate = 0 }},
		{"negative epochs", func(c *config.Config) { c.Run.Epochs = -1 }},
		{"no cities", func(c *config.Config) { c.Run.Cities = 0 }},
		{"zero width", func(c *config.Config) { c.Run.Width = 0 }},
		{"negative interval", func(c *config.Config) { c.Driver.Interval = -time.Second }},
		{"bad level", func(c *config.Config) { c.Log.Level = "loud" }},
		{"bad format", func(c *config.Config) { c.Log.Format = "xml" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}

	// Explicit points make the city count optional.
	cfg := config.Default()
	cfg.Run.Cities = 0
	cfg.Run.Points = [][2]float64{{1, 2}}
	require.NoError(t, cfg.Validate())
}

func TestRun_SOM(t *testing.T) {
	r := config.Default().Run
	sc := r.SOM()
	require.Equal(t, 30, sc.NumCities)
	require.Empty(t, sc.Cities)
	require.Equal(t, som.Rect(800, 600), sc.Bounds)
	require.Equal(t, 1000, sc.MaxEpochs)
	require.Equal(t, 0.2, sc.LearningRate)

	r.Points = [][2]float64{{1, 2}, {3, 4}}
	sc = r.SOM()
	require.Equal(t, []som.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}, sc.Cities)
}
