// Command somtsp trains a self-organizing ring over a set of cities and
// prints the tour it settles on.
//
// Usage:
//
//	somtsp [-config somtsp.yaml] [-cities 30] [-epochs 1000] [-rate 0.2] [-seed 0]
//	       [-width 800] [-height 600] [-interval 0] [-addr :8080] [-polish]
//
// Flags override the config file and SOMTSP_* environment variables. With
// -addr set, the run is observable over HTTP: /healthz, /metrics, /snapshot,
// /ws (one JSON frame per epoch) and POST /stop.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/somtsp/internal/config"
	"github.com/katalvlaran/somtsp/internal/driver"
	"github.com/katalvlaran/somtsp/internal/metrics"
	"github.com/katalvlaran/somtsp/internal/report"
	"github.com/katalvlaran/somtsp/internal/server"
	"github.com/katalvlaran/somtsp/internal/stream"
	"github.com/katalvlaran/somtsp/som"
	"github.com/katalvlaran/somtsp/tour"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		slog.Error("somtsp failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(args, stderr)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log, stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	var (
		m       = metrics.New(true)
		broker  = stream.NewBroker()
		trainer = som.New(som.WithSeed(cfg.Run.Seed))
	)
	d := driver.New(trainer, driver.Config{
		Run:           cfg.Run.SOM(),
		Interval:      cfg.Driver.Interval,
		ProgressEvery: cfg.Driver.ProgressEvery,
		Polish:        cfg.Polish.Enabled,
		PolishOptions: tour.Options{Eps: cfg.Polish.Eps, MaxIters: cfg.Polish.MaxIters},
	},
		driver.WithLogger(logger),
		driver.WithMetrics(m),
		driver.WithSinks(broker),
	)

	var (
		srvCtx, stopServer = context.WithCancel(ctx)
		srvErr             = make(chan error, 1)
	)
	defer stopServer()
	if cfg.Server.Addr != "" {
		h := server.New(broker, m, d, logger)
		go func() {
			srvErr <- server.ListenAndServe(srvCtx, cfg.Server.Addr, h, cfg.Server.ShutdownTimeout, logger)
		}()
	} else {
		srvErr <- nil
	}

	res, runErr := d.Run(ctx)
	switch {
	case runErr == nil:
	case errors.Is(runErr, context.Canceled), errors.Is(runErr, context.DeadlineExceeded):
		logger.Warn("run interrupted", "epoch", res.Epochs)
	default:
		broker.Close()
		stopServer()
		<-srvErr
		return runErr
	}

	if err = report.Write(stdout, res, trainer.CityPositions()); err != nil {
		return err
	}

	if cfg.Server.Addr != "" && cfg.Server.Linger > 0 && ctx.Err() == nil {
		logger.Info("serving final snapshot", "linger", cfg.Server.Linger)
		select {
		case <-ctx.Done():
		case <-time.After(cfg.Server.Linger):
		}
	}
	broker.Close()
	stopServer()
	if err = <-srvErr; err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// loadConfig layers the command-line flags over the file and environment.
func loadConfig(args []string, stderr io.Writer) (config.Config, error) {
	fs := flag.NewFlagSet("somtsp", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		path     = fs.String("config", "", "YAML config file")
		cities   = fs.Int("cities", 0, "number of random cities")
		epochs   = fs.Int("epochs", 0, "epoch budget")
		lr       = fs.Float64("rate", 0, "learning rate")
		seed     = fs.Int64("seed", 0, "random seed (0 selects the fixed default stream)")
		width    = fs.Float64("width", 0, "width of the city space")
		height   = fs.Float64("height", 0, "height of the city space")
		interval = fs.Duration("interval", 0, "pause between epochs")
		addr     = fs.String("addr", "", "HTTP listen address; empty disables the server")
		polish   = fs.Bool("polish", false, "refine the extracted tour with 2-opt")
	)
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(*path)
	if err != nil {
		return config.Config{}, err
	}

	// Only flags given explicitly override the lower layers.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "cities":
			cfg.Run.Cities = *cities
			cfg.Run.Points = nil
		case "epochs":
			cfg.Run.Epochs = *epochs
		case "rate":
			cfg.Run.LearningRate = *lr
		case "seed":
			cfg.Run.Seed = *seed
		case "width":
			cfg.Run.Width = *width
		case "height":
			cfg.Run.Height = *height
		case "interval":
			cfg.Driver.Interval = *interval
		case "addr":
			cfg.Server.Addr = *addr
		case "polish":
			cfg.Polish.Enabled = *polish
		}
	})
	if err = cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(c config.Log, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
