// Package tour - 2-opt local search on Euclidean tours.
//
// TwoOpt performs deterministic first-improvement 2-opt on a closed tour:
// for a=T[i−1], b=T[i], c=T[k], d=T[k+1] the move reverses T[i..k] when
//
//	Δ = |ac| + |bd| − |ab| − |cd| < −Eps.
//
// The SOM ring usually leaves a few local crossings in dense regions; this
// pass removes them without changing the start city.
//
// Complexity:
//   - One pass: O(n²) candidate checks; the scan restarts after each accepted move.
//   - Each accepted move costs O(k−i).
//   - Pairwise distances are precomputed once: O(n²) space.
package tour

import "github.com/katalvlaran/somtsp/som"

// TwoOpt improves initTour over points and returns the new closed tour (same
// start, input left untouched) with its stabilized length. The result never
// exceeds the input length.
func TwoOpt(points []som.Point, initTour []int, opts Options) ([]int, float64, error) {
	if len(initTour) < 2 {
		return nil, 0, ErrDimensionMismatch
	}
	var n = len(initTour) - 1
	if n != len(points) {
		return nil, 0, ErrDimensionMismatch
	}
	if err := ValidateTour(initTour, n, initTour[0]); err != nil {
		return nil, 0, err
	}
	if !allFinite(points) {
		return nil, 0, ErrNonFinite
	}

	cur := CopyTour(initTour)
	if n < 4 {
		// Every tour over ≤3 cities has the same length.
		cost, err := Length(points, cur)
		return cur, cost, err
	}

	// Linearized distance table w[u*n+v] keeps the hot loop free of math calls.
	w := make([]float64, n*n)
	{
		var u, v int
		for u = 0; u < n; u++ {
			for v = u + 1; v < n; v++ {
				w[u*n+v] = dist(points[u], points[v])
				w[v*n+u] = w[u*n+v]
			}
		}
	}
	at := func(u, v int) float64 { return w[u*n+v] }

	var eps = opts.Eps
	if eps < 0 {
		eps = 0
	}

	var accepted int
	for {
		var (
			improved   bool
			a, b, c, d int
			delta      float64
			i, k       int
		)
		for i = 1; i <= n-2 && !improved; i++ {
			for k = i + 1; k <= n-1; k++ {
				a = cur[i-1]
				b = cur[i]
				c = cur[k]
				d = cur[k+1]
				delta = (at(a, c) + at(b, d)) - (at(a, b) + at(c, d))
				if delta >= -eps {
					continue
				}
				if err := reverseArcInPlace(cur, i, k); err != nil {
					return nil, 0, err
				}
				accepted++
				improved = true
				break
			}
		}
		if !improved || (opts.MaxIters > 0 && accepted >= opts.MaxIters) {
			break
		}
	}

	cost, err := Length(points, cur)
	if err != nil {
		return nil, 0, err
	}
	return cur, cost, nil
}
