package som

import "math/rand"

// Trainer owns the state of one SOM run: the fixed cities, the node ring,
// the epoch counter, the learning rate and the run/stop flag.
//
// The zero value is not usable; construct with New.
type Trainer struct {
	rng     *rand.Rand
	onVisit func(epoch int, order []int)

	cities []Point
	nodes  []Point
	order  []int // reused per-epoch permutation buffer

	maxEpochs    int
	currentEpoch int
	learningRate float64
	state        State
}

// New returns an Idle trainer. Without WithSeed or WithRand it draws from the
// deterministic default stream.
func New(opts ...Option) *Trainer {
	t := &Trainer{state: Idle}
	for _, opt := range opts {
		opt(t)
	}
	if t.rng == nil {
		t.rng = rngFromSeed(0)
	}
	return t
}

// Start (re)initializes the trainer from cfg, discarding all prior state:
// cities are copied or drawn at random, 2·n nodes are placed uniformly at
// random, the epoch counter is reset to 0 and the trainer is Running when
// cfg.MaxEpochs > 0 (Stopped otherwise).
//
// On error the trainer is left unchanged. Errors wrap ErrInvalidConfiguration.
//
// Complexity: O(n).
func (t *Trainer) Start(cfg Config) error {
	n, err := validateConfig(cfg)
	if err != nil {
		return err
	}

	var space = cfg.Bounds
	cities := make([]Point, n)
	if len(cfg.Cities) > 0 {
		copy(cities, cfg.Cities)
		if space.IsZero() {
			space = boundingBox(cities)
		}
	} else {
		var i int
		for i = range cities {
			cities[i] = uniformIn(space, t.rng)
		}
	}

	nodes := make([]Point, 2*n)
	var i int
	for i = range nodes {
		nodes[i] = uniformIn(space, t.rng)
	}

	t.cities = cities
	t.nodes = nodes
	t.order = make([]int, n)
	t.maxEpochs = cfg.MaxEpochs
	t.currentEpoch = 0
	t.learningRate = cfg.LearningRate
	if cfg.MaxEpochs > 0 {
		t.state = Running
	} else {
		t.state = Stopped
	}
	return nil
}

// StartCities starts a run over an explicit city list.
func (t *Trainer) StartCities(cities []Point, maxEpochs int, learningRate float64) error {
	return t.Start(Config{Cities: cities, MaxEpochs: maxEpochs, LearningRate: learningRate})
}

// StartRandom starts a run over numCities cities drawn uniformly from bounds.
func (t *Trainer) StartRandom(numCities int, bounds Bounds, maxEpochs int, learningRate float64) error {
	return t.Start(Config{NumCities: numCities, Bounds: bounds, MaxEpochs: maxEpochs, LearningRate: learningRate})
}

// Epoch advances the run by exactly one epoch:
//  1. increment the epoch counter (the first call runs epoch 1);
//  2. visit every city once in a uniformly random order;
//  3. for each city, find the winning node and pull every node toward the
//     city by theta·learningRate, sequentially, so later cities see the
//     positions left by earlier ones;
//  4. stop when the counter reaches the epoch budget.
//
// Policy: when the trainer is not Running, Epoch returns ErrNotRunning and
// changes nothing.
//
// Complexity: O(numCities · numNodes).
func (t *Trainer) Epoch() error {
	if t.state != Running {
		return ErrNotRunning
	}

	t.currentEpoch++

	fillIdentity(t.order)
	shuffleIntsInPlace(t.order, t.rng)
	if t.onVisit != nil {
		t.onVisit(t.currentEpoch, t.order)
	}

	var (
		k       = len(t.nodes)
		epoch   = t.currentEpoch
		lr      = t.learningRate
		ci      int
		city    Point
		winner  int
		nodeIdx int
		w       float64
	)
	for _, ci = range t.order {
		city = t.cities[ci]
		winner = WinningNode(t.nodes, city)
		for nodeIdx = 0; nodeIdx < k; nodeIdx++ {
			w = theta(winner, nodeIdx, epoch, k) * lr
			t.nodes[nodeIdx].X += w * (city.X - t.nodes[nodeIdx].X)
			t.nodes[nodeIdx].Y += w * (city.Y - t.nodes[nodeIdx].Y)
		}
	}

	if t.currentEpoch == t.maxEpochs {
		t.state = Stopped
	}
	return nil
}

// Stop ends the run. It is idempotent and never fails. An Idle trainer stays Idle.
func (t *Trainer) Stop() {
	if t.state == Running {
		t.state = Stopped
	}
}

// IsRunning reports whether Epoch will advance the run.
func (t *Trainer) IsRunning() bool { return t.state == Running }

// State returns the lifecycle state.
func (t *Trainer) State() State { return t.state }

// CurrentEpoch returns the number of completed epochs of the current run.
func (t *Trainer) CurrentEpoch() int { return t.currentEpoch }

// MaxEpochs returns the epoch budget of the current run.
func (t *Trainer) MaxEpochs() int { return t.maxEpochs }

// LearningRate returns the learning rate of the current run.
func (t *Trainer) LearningRate() float64 { return t.learningRate }

// NumCities returns the number of cities of the current run.
func (t *Trainer) NumCities() int { return len(t.cities) }

// NumNodes returns the ring size, always 2·NumCities.
func (t *Trainer) NumNodes() int { return len(t.nodes) }

// NodePositions returns a copy of the ring in ring order. The closing edge
// runs from the last node back to the first.
func (t *Trainer) NodePositions() []Point {
	return clonePoints(t.nodes)
}

// CityPositions returns a copy of the fixed city set.
func (t *Trainer) CityPositions() []Point {
	return clonePoints(t.cities)
}

// Snapshot returns a copy of the observable state, cities included.
func (t *Trainer) Snapshot() Snapshot {
	return Snapshot{
		Epoch:     t.currentEpoch,
		MaxEpochs: t.maxEpochs,
		State:     t.state,
		Running:   t.state == Running,
		Nodes:     clonePoints(t.nodes),
		Cities:    clonePoints(t.cities),
	}
}

func clonePoints(src []Point) []Point {
	if src == nil {
		return nil
	}
	out := make([]Point, len(src))
	copy(out, src)
	return out
}
