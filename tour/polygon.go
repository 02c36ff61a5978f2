package tour

import "github.com/katalvlaran/somtsp/som"

// Crossings counts pairs of non-adjacent edges of the closed polygon
// poly[0], poly[1], …, poly[k-1], poly[0] that properly cross each other,
// i.e. each edge strictly separates the endpoints of the other. Touching,
// overlapping and collinear contacts are not counted.
//
// Complexity: O(k²).
func Crossings(poly []som.Point) int {
	var k = len(poly)
	if k < 4 {
		return 0
	}

	var (
		count int
		i, j  int
	)
	for i = 0; i < k; i++ {
		for j = i + 2; j < k; j++ {
			if i == 0 && j == k-1 {
				continue // edges k-1 and 0 share poly[0]
			}
			if properCross(poly[i], poly[(i+1)%k], poly[j], poly[(j+1)%k]) {
				count++
			}
		}
	}
	return count
}

// IsSimple reports whether the closed polygon poly has no proper
// self-crossings.
func IsSimple(poly []som.Point) bool {
	return Crossings(poly) == 0
}

// TourPolygon returns the points of a closed tour in visiting order, without
// the closing repeat.
func TourPolygon(points []som.Point, t []int) ([]som.Point, error) {
	if len(t) < 2 {
		return nil, ErrDimensionMismatch
	}
	out := make([]som.Point, len(t)-1)

	var i int
	for i = range out {
		if t[i] < 0 || t[i] >= len(points) {
			return nil, ErrDimensionMismatch
		}
		out[i] = points[t[i]]
	}
	return out, nil
}

// properCross reports whether segments pq and rs cross at a single interior point.
func properCross(p, q, r, s som.Point) bool {
	var (
		d1 = orient(p, q, r)
		d2 = orient(p, q, s)
		d3 = orient(r, s, p)
		d4 = orient(r, s, q)
	)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// orient is the signed doubled area of triangle (a, b, c):
// > 0 counter-clockwise, < 0 clockwise, 0 collinear.
func orient(a, b, c som.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
