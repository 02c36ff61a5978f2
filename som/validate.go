package som

import (
	"fmt"
	"math"
)

// validateConfig checks cfg and returns the city count it describes.
// Every failure wraps ErrInvalidConfiguration and one specific sentinel.
//
// Complexity: O(len(cfg.Cities)).
func validateConfig(cfg Config) (int, error) {
	var n int
	if len(cfg.Cities) > 0 {
		n = len(cfg.Cities)
	} else {
		n = cfg.NumCities
	}
	if n < 1 {
		return 0, invalid(ErrNoCities, "got %d cities", n)
	}
	if cfg.MaxEpochs < 0 {
		return 0, invalid(ErrNegativeEpochs, "got %d", cfg.MaxEpochs)
	}
	if !(cfg.LearningRate > 0) || math.IsInf(cfg.LearningRate, 0) {
		return 0, invalid(ErrLearningRate, "got %v", cfg.LearningRate)
	}

	var i int
	for i = range cfg.Cities {
		if !finite(cfg.Cities[i].X) || !finite(cfg.Cities[i].Y) {
			return 0, invalid(ErrNonFinite, "city %d", i)
		}
	}

	// Random cities need an explicit space; explicit cities fall back to their box.
	if len(cfg.Cities) == 0 && cfg.Bounds.IsZero() {
		return 0, invalid(ErrBadBounds, "random cities need bounds")
	}
	if !cfg.Bounds.IsZero() {
		if err := validateBounds(cfg.Bounds); err != nil {
			return 0, err
		}
	}

	return n, nil
}

// validateBounds rejects non-finite or inverted bounds. Degenerate (zero
// width or height) bounds are allowed.
func validateBounds(b Bounds) error {
	if !finite(b.MinX) || !finite(b.MinY) || !finite(b.MaxX) || !finite(b.MaxY) {
		return invalid(ErrBadBounds, "non-finite bound")
	}
	if b.MaxX < b.MinX || b.MaxY < b.MinY {
		return invalid(ErrBadBounds, "inverted bounds %+v", b)
	}
	return nil
}

// boundingBox returns the smallest Bounds containing every point in pts.
// pts must be non-empty.
func boundingBox(pts []Point) Bounds {
	b := Bounds{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}

	var i int
	for i = 1; i < len(pts); i++ {
		b.MinX = math.Min(b.MinX, pts[i].X)
		b.MinY = math.Min(b.MinY, pts[i].Y)
		b.MaxX = math.Max(b.MaxX, pts[i].X)
		b.MaxY = math.Max(b.MaxY, pts[i].Y)
	}
	return b
}

func invalid(cause error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrInvalidConfiguration, cause, fmt.Sprintf(format, args...))
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
