// Package tour reads a city tour out of a trained SOM ring and works with it.
//
// A trained ring visits the cities implicitly: each city is "owned" by its
// nearest node, and walking the ring in index order visits the owners in tour
// order. FromRing turns that into an explicit closed tour over city indices.
//
// Tours follow one representation throughout: a closed Hamiltonian cycle over
// n cities is a slice of length n+1 with tour[0] == tour[n] == start, every
// city appearing exactly once in tour[0:n].
//
// Provided:
//   - FromRing: city tour from (cities, ring).
//   - Length, RingLength: closed Euclidean lengths, stabilized to 1e-9.
//   - TwoOpt: first-improvement 2-opt polishing of a tour.
//   - Crossings, IsSimple: proper self-intersections of a closed polygon.
//   - Validation and rotation helpers shared by the above.
//
// No logging, no panics on user input: only sentinel errors from types.go.
package tour
