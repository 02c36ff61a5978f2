// Package tour - structural helpers that operate on index sequences only.
//
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - ValidateTour: enforce closed Hamiltonian cycle invariants.
//   - RotateTourToStart: cyclic shift so the tour starts/ends at a given city.
//   - CanonicalizeOrientationInPlace: one fixed direction for the same cycle.
//   - EqualToursModuloRotation: equality under rotation and, optionally, reversal.
//   - reverseArcInPlace: in-place segment reversal (2-opt primitive).
//
// All helpers are O(n) time; in-place mutations avoid extra allocations.
package tour

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}
	return nil
}

// ValidateTour enforces
//
//	len(tour) == n+1, tour[0] == tour[n] == start,
//	each city v∈[0..n-1] appears exactly once in tour[0:n].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(t []int, n int, start int) error {
	if n <= 0 || len(t) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if t[0] != start || t[n] != start {
		return ErrDimensionMismatch
	}
	return ValidatePermutation(t[:n], n)
}

// RotateTourToStart returns a fresh closed tour with out[0] == out[n] == start.
// The input may be closed (len n+1, first == last) or an open cycle (len n).
// A single-city input [v] or [v v] is treated as n == 1.
//
// Complexity: O(n) time, O(n) space.
func RotateTourToStart(t []int, start int) ([]int, error) {
	if len(t) == 0 {
		return nil, ErrDimensionMismatch
	}

	var n int
	if len(t) > 1 && t[0] == t[len(t)-1] {
		n = len(t) - 1
	} else {
		n = len(t)
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	var (
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if t[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrDimensionMismatch
	}

	out := make([]int, n+1)
	for i = 0; i < n; i++ {
		out[i] = t[(pivot+i)%n]
	}
	out[n] = start
	return out, nil
}

// CanonicalizeOrientationInPlace reverses the interior [1..n-1] of a closed
// tour when its right neighbor of start is larger than its left neighbor,
// so that both directions of the same cycle map to one representation.
//
// Complexity: O(n) time, O(1) space.
func CanonicalizeOrientationInPlace(t []int) error {
	if len(t) < 2 {
		return ErrDimensionMismatch
	}
	var n = len(t) - 1
	if t[0] != t[n] {
		return ErrDimensionMismatch
	}
	if n < 3 {
		return nil // one orientation only
	}
	if t[1] > t[n-1] {
		return reverseArcInPlace(t, 1, n-1)
	}
	return nil
}

// reverseArcInPlace reverses the inclusive segment t[i..k] of a closed tour,
// keeping both copies of the start intact. Requires 1 ≤ i < k ≤ n-1.
//
// Complexity: O(k-i) time, O(1) space.
func reverseArcInPlace(t []int, i, k int) error {
	var n = len(t) - 1
	if n < 2 || t[0] != t[n] {
		return ErrDimensionMismatch
	}
	if i < 1 || k > n-1 || i >= k {
		return ErrDimensionMismatch
	}
	for i < k {
		t[i], t[k] = t[k], t[i]
		i++
		k--
	}
	return nil
}

// CopyTour returns an independent copy of t.
func CopyTour(t []int) []int {
	if t == nil {
		return nil
	}
	out := make([]int, len(t))
	copy(out, t)
	return out
}

// EqualToursModuloRotation reports whether closed tours a and b describe the
// same cycle up to rotation. With allowReverse, the opposite direction also
// counts as equal.
//
// Complexity: O(n) time.
func EqualToursModuloRotation(a, b []int, allowReverse bool) bool {
	if len(a) != len(b) || len(a) < 2 {
		return false
	}
	var n = len(a) - 1
	if a[0] != a[n] || b[0] != b[n] {
		return false
	}

	var (
		j int
		p = -1
	)
	for j = 0; j < n; j++ {
		if b[j] == a[0] {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}

	var (
		i       int
		forward = true
		reverse = allowReverse
	)
	for i = 0; i < n && (forward || reverse); i++ {
		if a[i] != b[(p+i)%n] {
			forward = false
		}
		if a[i] != b[(p-i+n)%n] {
			reverse = false
		}
	}
	return forward || reverse
}
