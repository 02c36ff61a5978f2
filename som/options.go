package som

import "math/rand"

// Option configures a Trainer at construction time.
type Option func(t *Trainer)

// WithSeed makes the trainer draw from a deterministic stream.
// seed==0 selects the package default seed.
func WithSeed(seed int64) Option {
	return func(t *Trainer) {
		t.rng = rngFromSeed(seed)
	}
}

// WithRand injects a caller-owned random source. A nil r is ignored.
// The trainer takes exclusive use of r.
func WithRand(r *rand.Rand) Option {
	return func(t *Trainer) {
		if r != nil {
			t.rng = r
		}
	}
}

// WithVisitHook registers fn to observe the city visiting order of every
// epoch, before any node moves. order is only valid during the call.
func WithVisitHook(fn func(epoch int, order []int)) Option {
	return func(t *Trainer) {
		t.onVisit = fn
	}
}
