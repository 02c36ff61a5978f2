// Package config loads the somtsp run configuration.
//
// Precedence, lowest to highest: Default(), the YAML file, SOMTSP_*
// environment variables, then whatever the caller sets afterwards (CLI flags).
// Validate is run by Load and should be run again after flag overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/somtsp/som"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SOMTSP_"

// Config is the full configuration of one somtsp process.
type Config struct {
	Run    Run    `yaml:"run" envPrefix:"RUN_"`
	Driver Driver `yaml:"driver" envPrefix:"DRIVER_"`
	Polish Polish `yaml:"polish" envPrefix:"POLISH_"`
	Server Server `yaml:"server" envPrefix:"SERVER_"`
	Log    Log    `yaml:"log" envPrefix:"LOG_"`
}

// Run holds the SOM run parameters.
type Run struct {
	// Cities is the number of random cities; ignored when Points is set.
	Cities int `yaml:"cities" env:"CITIES" validate:"required_without=Points,gte=0"`

	// Points is an explicit city list as [x, y] pairs.
	Points [][2]float64 `yaml:"points"`

	Width        float64 `yaml:"width" env:"WIDTH" validate:"gt=0"`
	Height       float64 `yaml:"height" env:"HEIGHT" validate:"gt=0"`
	Epochs       int     `yaml:"epochs" env:"EPOCHS" validate:"gte=0"`
	LearningRate float64 `yaml:"learningRate" env:"LEARNING_RATE" validate:"gt=0"`
	Seed         int64   `yaml:"seed" env:"SEED"`
}

// Driver paces the epoch loop.
type Driver struct {
	// Interval between epochs; 0 runs epochs back to back.
	Interval time.Duration `yaml:"interval" env:"INTERVAL" validate:"gte=0"`

	// ProgressEvery throttles progress log lines.
	ProgressEvery time.Duration `yaml:"progressEvery" env:"PROGRESS_EVERY" validate:"gt=0"`
}

// Polish configures 2-opt refinement of the final tour.
type Polish struct {
	Enabled  bool    `yaml:"enabled" env:"ENABLED"`
	MaxIters int     `yaml:"maxIters" env:"MAX_ITERS" validate:"gte=0"`
	Eps      float64 `yaml:"eps" env:"EPS" validate:"gte=0"`
}

// Server configures the optional HTTP surface; an empty Addr disables it.
type Server struct {
	Addr            string        `yaml:"addr" env:"ADDR"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" env:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
	// Linger keeps the server up after the run so clients can fetch the result.
	Linger time.Duration `yaml:"linger" env:"LINGER" validate:"gte=0"`
}

// Log configures the process logger.
type Log struct {
	Level  string `yaml:"level" env:"LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" env:"FORMAT" validate:"oneof=text json"`
}

// Default returns the built-in configuration: 30 random cities on an
// 800×600 canvas, 1000 epochs at learning rate 0.2.
func Default() Config {
	return Config{
		Run: Run{
			Cities:       30,
			Width:        800,
			Height:       600,
			Epochs:       1000,
			LearningRate: 0.2,
		},
		Driver: Driver{
			ProgressEvery: time.Second,
		},
		Polish: Polish{
			Eps: 1e-12,
		},
		Server: Server{
			ShutdownTimeout: 5 * time.Second,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		aggErr := env.AggregateError{}
		if errors.As(err, &aggErr) && len(aggErr.Errors) > 0 {
			// The first error keeps the log line readable.
			return Config{}, fmt.Errorf("config: env: %w", aggErr.Errors[0])
		}
		return Config{}, fmt.Errorf("config: env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// SOM converts the run section into a trainer configuration.
func (r Run) SOM() som.Config {
	cfg := som.Config{
		NumCities:    r.Cities,
		Bounds:       som.Rect(r.Width, r.Height),
		MaxEpochs:    r.Epochs,
		LearningRate: r.LearningRate,
	}
	if len(r.Points) > 0 {
		cfg.Cities = make([]som.Point, len(r.Points))
		for i, p := range r.Points {
			cfg.Cities[i] = som.Point{X: p[0], Y: p[1]}
		}
	}
	return cfg
}
