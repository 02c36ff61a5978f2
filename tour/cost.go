// Package tour - Euclidean cost utilities.
//
// Costs are summed along closed cycles and rounded to 1e-9 to avoid
// cross-platform FP noise in comparisons and printed output.
package tour

import (
	"math"

	"github.com/katalvlaran/somtsp/som"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// Length returns the closed Euclidean length of tour over points.
//
// Contract:
//   - tour is closed: len(tour) >= 2, tour[0] == tour[len-1].
//   - every index lies in [0, len(points)).
//   - every visited point is finite, else ErrNonFinite.
//
// Complexity: O(n).
func Length(points []som.Point, t []int) (float64, error) {
	if len(t) < 2 || t[0] != t[len(t)-1] {
		return 0, ErrDimensionMismatch
	}

	var (
		n   = len(points)
		sum float64
		i   int
		u   int
		v   int
		d   float64
	)
	for i = 0; i < len(t)-1; i++ {
		u = t[i]
		v = t[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
		d = dist(points[u], points[v])
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return 0, ErrNonFinite
		}
		sum += d
	}
	return round1e9(sum), nil
}

// RingLength returns the perimeter of the closed polygon nodes[0], nodes[1],
// …, nodes[k-1], nodes[0]. An empty or single-node ring has length 0.
//
// Complexity: O(k).
func RingLength(nodes []som.Point) float64 {
	var k = len(nodes)
	if k < 2 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < k; i++ {
		sum += dist(nodes[i], nodes[(i+1)%k])
	}
	return round1e9(sum)
}

// dist is the Euclidean distance between a and b.
func dist(a, b som.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
