// Package som_test provides runnable, deterministic examples of driving a
// trainer the way a render loop would.
package som_test

import (
	"fmt"

	"github.com/katalvlaran/somtsp/som"
	"github.com/katalvlaran/somtsp/tour"
)

// ExampleTrainer drives a run to completion and reads the tour off the ring.
func ExampleTrainer() {
	// 1) Four cities on the corners of a square, listed in perimeter order.
	cities := []som.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}

	// 2) A seeded trainer; the ring gets 2·4 = 8 nodes.
	tr := som.New(som.WithSeed(42))
	if err := tr.StartCities(cities, 500, 0.2); err != nil {
		fmt.Println("start:", err)
		return
	}
	fmt.Println("nodes:", tr.NumNodes(), "running:", tr.IsRunning())

	// 3) The driver loop: one Epoch per tick until the budget is spent.
	for tr.IsRunning() {
		if err := tr.Epoch(); err != nil {
			fmt.Println("epoch:", err)
			return
		}
	}
	fmt.Println("epochs:", tr.CurrentEpoch(), "running:", tr.IsRunning())

	// 4) Further calls are rejected.
	fmt.Println("extra epoch:", tr.Epoch())

	// 5) The ring visits every city exactly once.
	t, _ := tour.FromRing(cities, tr.NodePositions())
	fmt.Println("tour valid:", tour.ValidateTour(t, len(cities), 0) == nil)

	// Output:
	// nodes: 8 running: true
	// epochs: 500 running: false
	// extra epoch: som: trainer is not running
	// tour valid: true
}

// ExampleNeighborhood shows the kernel narrowing as epochs advance.
func ExampleNeighborhood() {
	for _, e := range []int{1, 100, 300} {
		th, _ := som.Neighborhood(0, 2, e, 8)
		fmt.Printf("epoch %3d: theta(d=2) = %.4f\n", e, th)
	}

	// Output:
	// epoch   1: theta(d=2) = 1.0000
	// epoch 100: theta(d=2) = 0.6065
	// epoch 300: theta(d=2) = 0.0111
}
