package tour

import "errors"

var (
	// ErrDimensionMismatch indicates a malformed tour or permutation: wrong
	// length, an out-of-range index, a duplicate, or an unclosed cycle.
	ErrDimensionMismatch = errors.New("tour: dimension mismatch")

	// ErrStartOutOfRange indicates a start city outside [0, n).
	ErrStartOutOfRange = errors.New("tour: start vertex out of range")

	// ErrEmptyRing indicates that no cities or no ring nodes were supplied.
	ErrEmptyRing = errors.New("tour: empty city set or ring")

	// ErrNonFinite indicates a NaN or ±Inf coordinate.
	ErrNonFinite = errors.New("tour: coordinate is not finite")
)

// DefaultEps is the default strict-improvement threshold for TwoOpt.
const DefaultEps = 1e-12

// Options configures TwoOpt.
type Options struct {
	// Eps: a move is accepted only when it shortens the tour by more than Eps.
	Eps float64

	// MaxIters bounds the number of accepted moves; 0 means until a local optimum.
	MaxIters int
}

// DefaultOptions returns Options{Eps: DefaultEps, MaxIters: 0}.
func DefaultOptions() Options {
	return Options{Eps: DefaultEps}
}
