package som

import "errors"

// Sentinel errors returned by the trainer. Start wraps the configuration
// sentinels in ErrInvalidConfiguration, so callers may match either.
var (
	// ErrInvalidConfiguration is returned by Start for any rejected Config.
	ErrInvalidConfiguration = errors.New("som: invalid configuration")

	// ErrNoCities indicates a run with fewer than one city.
	ErrNoCities = errors.New("som: at least one city is required")

	// ErrLearningRate indicates a learning rate that is not a positive finite number.
	ErrLearningRate = errors.New("som: learning rate must be positive and finite")

	// ErrNegativeEpochs indicates a negative epoch budget.
	ErrNegativeEpochs = errors.New("som: epoch budget must be non-negative")

	// ErrBadBounds indicates inverted or non-finite coordinate bounds.
	ErrBadBounds = errors.New("som: invalid coordinate bounds")

	// ErrNonFinite indicates a city coordinate that is NaN or ±Inf.
	ErrNonFinite = errors.New("som: city coordinate is not finite")

	// ErrNotRunning is returned by Epoch when the trainer is not running.
	ErrNotRunning = errors.New("som: trainer is not running")

	// ErrNeighborhoodDomain is returned by Neighborhood for arguments outside
	// its domain (epoch < 1, ring size < 1, indices outside the ring).
	ErrNeighborhoodDomain = errors.New("som: neighborhood arguments out of domain")
)

// Point is a real-valued 2D coordinate. Cities and ring nodes are both Points.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Bounds is the axis-aligned coordinate space in which random cities and the
// initial node positions are drawn. The zero value means "unset".
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Rect returns Bounds spanning [0,width]×[0,height], the canvas-sized space
// used by interactive front-ends.
func Rect(width, height float64) Bounds {
	return Bounds{MaxX: width, MaxY: height}
}

// IsZero reports whether b is the zero value.
func (b Bounds) IsZero() bool {
	return b == Bounds{}
}

// Config describes one run.
//
// Exactly one city source is used: when Cities is non-empty it is copied and
// NumCities is ignored; otherwise NumCities cities are drawn uniformly from
// Bounds. With explicit cities and zero Bounds, nodes are drawn from the
// bounding box of the cities.
type Config struct {
	// Cities is an explicit city list.
	Cities []Point

	// NumCities is the number of random cities when Cities is empty.
	NumCities int

	// Bounds is the coordinate space for random cities and initial nodes.
	Bounds Bounds

	// MaxEpochs is the epoch budget; 0 starts the run already stopped.
	MaxEpochs int

	// LearningRate scales every node update; must be > 0.
	LearningRate float64
}

// State is the trainer lifecycle state.
type State int

const (
	// Idle is the state of a trainer that was never started.
	Idle State = iota

	// Running means Epoch will advance the simulation.
	Running

	// Stopped means the run completed its budget or was stopped explicitly.
	Stopped
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Snapshot is an independent copy of the observable trainer state, as handed
// to renderers after every epoch.
type Snapshot struct {
	Epoch     int     `json:"epoch"`
	MaxEpochs int     `json:"maxEpochs"`
	State     State   `json:"-"`
	Running   bool    `json:"running"`
	Nodes     []Point `json:"nodes"`
	Cities    []Point `json:"cities,omitempty"`
}
