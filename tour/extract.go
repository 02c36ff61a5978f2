package tour

import (
	"math"
	"sort"

	"github.com/katalvlaran/somtsp/som"
)

// FromRing reads the city tour encoded by a trained ring.
//
// Algorithm:
//  1. For every city, find its winning node (nearest, lowest index on ties).
//  2. Order cities by (winning node index, city index); cities sharing a
//     winner keep their input order.
//  3. Close the resulting cycle and rotate it to start at city 0.
//
// Returns a closed tour of length len(cities)+1, ErrEmptyRing when either
// input is empty, or ErrNonFinite for a NaN/Inf coordinate.
//
// Complexity: O(n·k + n log n) for n cities and k nodes.
func FromRing(cities, nodes []som.Point) ([]int, error) {
	if len(cities) == 0 || len(nodes) == 0 {
		return nil, ErrEmptyRing
	}
	if !allFinite(cities) || !allFinite(nodes) {
		return nil, ErrNonFinite
	}

	var (
		n     = len(cities)
		owner = make([]int, n)
		order = make([]int, n)
		i     int
	)
	for i = 0; i < n; i++ {
		owner[i] = som.WinningNode(nodes, cities[i])
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return owner[order[a]] < owner[order[b]]
	})

	return RotateTourToStart(order, 0)
}

func allFinite(pts []som.Point) bool {
	var i int
	for i = range pts {
		if math.IsNaN(pts[i].X) || math.IsInf(pts[i].X, 0) ||
			math.IsNaN(pts[i].Y) || math.IsInf(pts[i].Y, 0) {
			return false
		}
	}
	return true
}
