// Package som - RNG utilities for city placement, node initialization and the
// per-epoch visiting order.
//
// Goals:
//   - Determinism: same seed ⇒ identical runs across platforms.
//   - Encapsulation: one RNG per Trainer; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe, and neither is a Trainer built on it.
package som

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// shuffleIntsInPlace performs an unbiased in-place Fisher–Yates shuffle of a.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, r *rand.Rand) {
	var n int
	n = len(a)
	if n <= 1 {
		return
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// fillIdentity writes 0..len(a)-1 into a.
//
// Complexity: O(n).
func fillIdentity(a []int) {
	var i int
	for i = range a {
		a[i] = i
	}
}

// uniformIn draws a point uniformly from b.
//
// Complexity: O(1).
func uniformIn(b Bounds, r *rand.Rand) Point {
	return Point{
		X: b.MinX + r.Float64()*(b.MaxX-b.MinX),
		Y: b.MinY + r.Float64()*(b.MaxY-b.MinY),
	}
}
