package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/somtsp/internal/metrics"
)

func TestMetrics_Lifecycle(t *testing.T) {
	m := metrics.New(false)

	m.RunStarted()
	require.Equal(t, 1.0, testutil.ToFloat64(m.Running))

	m.ObserveEpoch(3*time.Millisecond, 123.5)
	m.ObserveEpoch(time.Millisecond, 120)
	require.Equal(t, 2.0, testutil.ToFloat64(m.Epochs))
	require.Equal(t, 120.0, testutil.ToFloat64(m.RingLength))

	m.RunFinished(true)
	m.RunFinished(false)
	require.Equal(t, 0.0, testutil.ToFloat64(m.Running))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("completed")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("stopped")))

	// epochs, duration, running, ring length, one runs series per outcome.
	n, err := testutil.GatherAndCount(m.Registry)
	require.NoError(t, err)
	require.Equal(t, 6, n)
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a := metrics.New(true)
	b := metrics.New(true)
	a.ObserveEpoch(time.Microsecond, 1)
	require.Equal(t, 1.0, testutil.ToFloat64(a.Epochs))
	require.Equal(t, 0.0, testutil.ToFloat64(b.Epochs))
}
