// Package som_test provides helpers shared across the trainer tests.
package som_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/somtsp/som"
)

const (
	// seedDet is the fixed seed used by deterministic tests.
	seedDet = int64(42)

	// rateDefault matches the front-end default learning rate.
	rateDefault = 0.2

	// epsTiny is the tolerance for reproducing node updates by hand.
	epsTiny = 1e-12
)

// squareCorners returns the corners of the side×side square in perimeter order.
func squareCorners(side float64) []som.Point {
	return []som.Point{{X: 0, Y: 0}, {X: side, Y: 0}, {X: side, Y: side}, {X: 0, Y: side}}
}

// circlePoints returns n points evenly spaced on a circle of radius r around (r, r).
func circlePoints(n int, r float64) []som.Point {
	pts := make([]som.Point, n)
	var (
		i  int
		th float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		pts[i] = som.Point{X: r + r*math.Cos(th), Y: r + r*math.Sin(th)}
	}
	return pts
}

// runToCompletion calls Epoch until the trainer stops and returns the number of calls.
func runToCompletion(t *testing.T, tr *som.Trainer) int {
	t.Helper()
	var calls int
	for tr.IsRunning() {
		require.NoError(t, tr.Epoch())
		calls++
	}
	return calls
}

// nearestDistance returns the distance from p to the closest point of pts.
func nearestDistance(pts []som.Point, p som.Point) float64 {
	var best = math.Inf(1)
	for _, q := range pts {
		best = math.Min(best, math.Hypot(q.X-p.X, q.Y-p.Y))
	}
	return best
}

// Repeat runs fn n times as subtests to expose hidden nondeterminism.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		t.Run("rep", fn)
	}
}
