// Package som - neighborhood kernel and winner search.
//
// Both helpers are pure functions of their arguments. The trainer calls the
// unchecked forms; the exported forms validate their domain.
package som

import "math"

// annealScale is the per-epoch factor of the kernel width schedule.
const annealScale = 0.01

// Neighborhood returns the weight in (0,1] by which node is pulled toward the
// current city when winner is the nearest node, at the given 1-based epoch on
// a ring of numNodes nodes.
//
//	d     = min(|winner−node|, numNodes−|winner−node|)
//	theta = exp(−d² / (numNodes / (0.01·epoch)²))
//
// Returns ErrNeighborhoodDomain for epoch < 1, numNodes < 1 or an index
// outside [0, numNodes).
//
// Complexity: O(1).
func Neighborhood(winner, node, epoch, numNodes int) (float64, error) {
	if epoch < 1 || numNodes < 1 {
		return 0, ErrNeighborhoodDomain
	}
	if winner < 0 || winner >= numNodes || node < 0 || node >= numNodes {
		return 0, ErrNeighborhoodDomain
	}
	return theta(winner, node, epoch, numNodes), nil
}

// RingDistance is the number of ring hops between nodes a and b on a ring of
// numNodes nodes, taking the shorter way around.
//
// Complexity: O(1).
func RingDistance(a, b, numNodes int) int {
	var cw int
	cw = a - b
	if cw < 0 {
		cw = -cw
	}
	var ccw = numNodes - cw
	if ccw < cw {
		return ccw
	}
	return cw
}

// theta is Neighborhood without argument checks. epoch must be ≥ 1.
func theta(winner, node, epoch, numNodes int) float64 {
	var (
		d     = float64(RingDistance(winner, node, numNodes))
		width = annealScale * float64(epoch)
	)
	return math.Exp(-(d * d) / (float64(numNodes) / (width * width)))
}

// WinningNode returns the index of the node nearest to city in Euclidean
// distance. Ties go to the lowest index. Returns -1 for an empty ring.
//
// Complexity: O(len(nodes)).
func WinningNode(nodes []Point, city Point) int {
	if len(nodes) == 0 {
		return -1
	}

	var (
		best     = 0
		bestDist = euclid(nodes[0], city)
		i        int
		dist     float64
	)
	for i = 1; i < len(nodes); i++ {
		dist = euclid(nodes[i], city)
		if dist < bestDist { // strict: the first minimum wins
			best = i
			bestDist = dist
		}
	}
	return best
}

// euclid is the Euclidean distance between a and b.
func euclid(a, b Point) float64 {
	var (
		dx = b.X - a.X
		dy = b.Y - a.Y
	)
	return math.Sqrt(dx*dx + dy*dy)
}
