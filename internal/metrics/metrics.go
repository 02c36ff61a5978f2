// Package metrics holds the Prometheus collectors of the driver loop.
//
// Every Metrics value owns its own registry so independent drivers (and
// tests) never collide on registration.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics groups the collectors updated by the driver.
type Metrics struct {
	// Registry is the dedicated registry served on /metrics.
	Registry *prometheus.Registry

	// Epochs counts completed epochs across runs.
	Epochs prometheus.Counter
	// EpochDuration records the wall time of a single Epoch call in seconds.
	EpochDuration prometheus.Histogram
	// Runs counts finished runs by outcome ("completed", "stopped").
	Runs *prometheus.CounterVec
	// Running is 1 while a run is in progress.
	Running prometheus.Gauge
	// RingLength is the perimeter of the node ring after the latest epoch.
	RingLength prometheus.Gauge
	// TourLength is the length of the latest extracted tour, by stage ("ring", "polished").
	TourLength *prometheus.GaugeVec
}

// New builds and registers all collectors, plus Go and process collectors
// when withRuntime is set.
func New(withRuntime bool) *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Epochs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "somtsp", Name: "epochs_total", Help: "Completed SOM epochs.",
		}),
		EpochDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "somtsp", Name: "epoch_duration_seconds", Help: "Wall time of one SOM epoch.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "somtsp", Name: "runs_total", Help: "Finished runs by outcome.",
		}, []string{"outcome"}),
		Running: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "somtsp", Name: "running", Help: "1 while a run is in progress.",
		}),
		RingLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "somtsp", Name: "ring_length", Help: "Perimeter of the node ring.",
		}),
		TourLength: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "somtsp", Name: "tour_length", Help: "Length of the extracted city tour.",
		}, []string{"stage"}),
	}
	m.Registry.MustRegister(m.Epochs, m.EpochDuration, m.Runs, m.Running, m.RingLength, m.TourLength)
	if withRuntime {
		m.Registry.MustRegister(collectors.NewGoCollector())
		m.Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
	return m
}

// ObserveEpoch records one completed epoch.
func (m *Metrics) ObserveEpoch(d time.Duration, ringLength float64) {
	m.Epochs.Inc()
	m.EpochDuration.Observe(d.Seconds())
	m.RingLength.Set(ringLength)
}

// RunStarted marks a run as in progress.
func (m *Metrics) RunStarted() {
	m.Running.Set(1)
}

// RunFinished records the outcome of a run.
func (m *Metrics) RunFinished(completed bool) {
	m.Running.Set(0)
	if completed {
		m.Runs.WithLabelValues("completed").Inc()
	} else {
		m.Runs.WithLabelValues("stopped").Inc()
	}
}
