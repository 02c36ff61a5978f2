// Package driver is the headless render loop around a som.Trainer.
//
// It plays the role of the interactive front-end: it starts a run, calls
// Epoch on a fixed cadence while the trainer reports running, hands a
// snapshot of the ring to every Sink after each epoch, and finally reads the
// city tour off the trained ring.
//
// The driver is the only goroutine that touches the trainer. Stop and Latest
// are safe to call from any goroutine.
package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/somtsp/internal/metrics"
	"github.com/katalvlaran/somtsp/som"
	"github.com/katalvlaran/somtsp/tour"
)

// Sink consumes the snapshots produced by the loop. Publish must not retain
// s.Nodes or s.Cities beyond the call unless it copies them; a failing sink
// is logged and does not stop the run.
type Sink interface {
	Publish(ctx context.Context, s som.Snapshot) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, s som.Snapshot) error

// Publish calls f.
func (f SinkFunc) Publish(ctx context.Context, s som.Snapshot) error { return f(ctx, s) }

// Config paces the loop and configures the post-run tour pass.
type Config struct {
	Run           som.Config
	Interval      time.Duration
	ProgressEvery time.Duration
	Polish        bool
	PolishOptions tour.Options
}

// Result summarizes a finished run.
type Result struct {
	RunID          string
	Cities         int
	Nodes          int
	Epochs         int
	MaxEpochs      int
	Completed      bool // false when stopped before the epoch budget
	RingLength     float64
	Tour           []int
	TourLength     float64
	Polished       []int // nil unless polishing is enabled
	PolishedLength float64
	Elapsed        time.Duration
}

// Driver runs one trainer.
type Driver struct {
	trainer *som.Trainer
	cfg     Config
	logger  *slog.Logger
	metrics *metrics.Metrics
	sinks   []Sink

	stopOnce sync.Once
	stopCh   chan struct{}

	mu     sync.RWMutex
	latest som.Snapshot
}

// Option configures a Driver.
type Option func(d *Driver)

// WithLogger sets the logger; the default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithMetrics records loop metrics into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(d *Driver) { d.metrics = m }
}

// WithSinks appends snapshot consumers.
func WithSinks(sinks ...Sink) Option {
	return func(d *Driver) { d.sinks = append(d.sinks, sinks...) }
}

// New returns a driver for trainer. The trainer must not be used elsewhere
// while Run is in progress.
func New(trainer *som.Trainer, cfg Config, opts ...Option) *Driver {
	d := &Driver{
		trainer: trainer,
		cfg:     cfg,
		logger:  slog.Default(),
		stopCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.cfg.ProgressEvery <= 0 {
		d.cfg.ProgressEvery = time.Second
	}
	return d
}

// Stop asks the loop to stop the trainer before its next epoch. Idempotent.
func (d *Driver) Stop() {
	d.stopOnce.Do(func() { close(d.stopCh) })
}

// Latest returns the most recent snapshot published by the loop.
func (d *Driver) Latest() som.Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.latest
}

// Run starts the trainer from the configured run and drives it until the
// epoch budget is spent, Stop is called, or ctx is done. A cancelled ctx
// still yields the partial Result, together with ctx.Err().
func (d *Driver) Run(ctx context.Context) (Result, error) {
	if err := d.trainer.Start(d.cfg.Run); err != nil {
		return Result{}, fmt.Errorf("driver: start: %w", err)
	}

	var (
		runID    = uuid.New().String()
		log      = d.logger.With("run", runID)
		began    = time.Now()
		progress = rate.Sometimes{Interval: d.cfg.ProgressEvery}
	)
	log.Info("run started",
		"cities", d.trainer.NumCities(),
		"nodes", d.trainer.NumNodes(),
		"maxEpochs", d.trainer.MaxEpochs(),
		"learningRate", d.trainer.LearningRate())
	if d.metrics != nil {
		d.metrics.RunStarted()
	}
	d.publish(ctx, log, d.trainer.Snapshot())

	var tick <-chan time.Time
	if d.cfg.Interval > 0 {
		ticker := time.NewTicker(d.cfg.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	var runErr error
loop:
	for d.trainer.IsRunning() {
		if tick != nil {
			select {
			case <-ctx.Done():
			case <-d.stopCh:
			case <-tick:
			}
		}
		select {
		case <-ctx.Done():
			d.trainer.Stop()
			runErr = ctx.Err()
			break loop
		case <-d.stopCh:
			d.trainer.Stop()
			log.Info("run stopped on request", "epoch", d.trainer.CurrentEpoch())
			break loop
		default:
		}

		t0 := time.Now()
		if err := d.trainer.Epoch(); err != nil {
			if errors.Is(err, som.ErrNotRunning) {
				break
			}
			return Result{}, fmt.Errorf("driver: epoch: %w", err)
		}
		snap := d.trainer.Snapshot()
		if d.metrics != nil {
			d.metrics.ObserveEpoch(time.Since(t0), tour.RingLength(snap.Nodes))
		}
		d.publish(ctx, log, snap)
		progress.Do(func() {
			log.Info("progress", "epoch", snap.Epoch, "maxEpochs", snap.MaxEpochs)
		})
	}

	// Sinks always see the stopped state last.
	final := d.trainer.Snapshot()
	if !d.lastWasFinal() {
		d.publish(ctx, log, final)
	}

	res, err := d.result(runID, final, time.Since(began))
	if err != nil {
		return Result{}, err
	}
	if d.metrics != nil {
		d.metrics.RunFinished(res.Completed)
		d.metrics.TourLength.WithLabelValues("ring").Set(res.TourLength)
		if res.Polished != nil {
			d.metrics.TourLength.WithLabelValues("polished").Set(res.PolishedLength)
		}
	}
	log.Info("run finished",
		"epochs", res.Epochs,
		"completed", res.Completed,
		"tourLength", res.TourLength,
		"elapsed", res.Elapsed)
	return res, runErr
}

// result reads the tour off the final ring and optionally polishes it.
func (d *Driver) result(runID string, final som.Snapshot, elapsed time.Duration) (Result, error) {
	res := Result{
		RunID:      runID,
		Cities:     len(final.Cities),
		Nodes:      len(final.Nodes),
		Epochs:     final.Epoch,
		MaxEpochs:  final.MaxEpochs,
		Completed:  final.Epoch == final.MaxEpochs,
		RingLength: tour.RingLength(final.Nodes),
		Elapsed:    elapsed,
	}

	t, err := tour.FromRing(final.Cities, final.Nodes)
	if err != nil {
		return Result{}, fmt.Errorf("driver: extract tour: %w", err)
	}
	res.Tour = t
	if res.TourLength, err = tour.Length(final.Cities, t); err != nil {
		return Result{}, fmt.Errorf("driver: tour length: %w", err)
	}

	if d.cfg.Polish {
		res.Polished, res.PolishedLength, err = tour.TwoOpt(final.Cities, t, d.cfg.PolishOptions)
		if err != nil {
			return Result{}, fmt.Errorf("driver: polish: %w", err)
		}
	}
	return res, nil
}

// publish stores snap as the latest snapshot and fans it out to the sinks.
func (d *Driver) publish(ctx context.Context, log *slog.Logger, snap som.Snapshot) {
	d.mu.Lock()
	d.latest = snap
	d.mu.Unlock()

	for _, s := range d.sinks {
		if err := s.Publish(ctx, snap); err != nil {
			log.Warn("sink publish failed", "epoch", snap.Epoch, "error", err)
		}
	}
}

// lastWasFinal reports whether the latest published snapshot already shows
// the trainer stopped.
func (d *Driver) lastWasFinal() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return !d.latest.Running
}
