package geom

import "math"

// truncScale is the fixed comparison scale: five decimal places.
const truncScale = 1e5

// trunc5 truncates v toward zero at the fifth decimal place. Adding +0
// collapses a negative zero so crossings never report "-0".
func trunc5(v float64) float64 {
	return math.Trunc(v*truncScale)/truncScale + 0
}

// units converts a distance to integer units of 1e-5, truncating toward zero.
// Summing and comparing distances in integer units reproduces fixed-scale
// decimal arithmetic exactly, so the tolerance in OnSegment is a crisp
// "zero or one unit" test rather than a float comparison.
func units(v float64) int64 {
	return int64(math.Trunc(v * truncScale))
}

// Intersect returns the crossing point of two finite segments.
//
// The underlying infinite lines are solved in implicit form a*x + b*y = c via
// Cramer's rule. A zero determinant means the lines are parallel or
// coincident; coincident segments deliberately report no intersection rather
// than "infinitely many". The candidate crossing point is truncated at five
// decimal places and accepted only if it lies on both finite segments per
// OnSegment with the same includeEndpoints policy.
func Intersect(s1, s2 Segment, includeEndpoints bool) (Point, bool) {
	// Segment s1 as a1*x + b1*y = c1, s2 likewise.
	a1 := s1.B.Y - s1.A.Y
	b1 := s1.A.X - s1.B.X
	a2 := s2.B.Y - s2.A.Y
	b2 := s2.A.X - s2.B.X

	det := a1*b2 - a2*b1
	if det == 0 {
		return Point{}, false
	}

	c1 := a1*s1.A.X + b1*s1.A.Y
	c2 := a2*s2.A.X + b2*s2.A.Y

	cross := Point{
		X: trunc5((b2*c1 - b1*c2) / det),
		Y: trunc5((a1*c2 - a2*c1) / det),
	}

	if !OnSegment(cross, s1, includeEndpoints) || !OnSegment(cross, s2, includeEndpoints) {
		return Point{}, false
	}
	return cross, true
}

// OnSegment reports whether p lies on the finite segment s.
//
// When includeEndpoints is false a point exactly equal to either endpoint is
// rejected outright, even though it lies on the segment geometrically.
//
// Membership is a distance-sum test: p is on s iff
// dist(p, A) + dist(p, B) == length(s), with each distance truncated to five
// decimal places first. The comparison accepts an exact match or a difference
// of exactly one unit in the fifth decimal place (0.00001). That narrow band
// absorbs the truncation error of the crossing coordinates; it is not a
// general epsilon, and a difference of two units is rejected.
func OnSegment(p Point, s Segment, includeEndpoints bool) bool {
	if !includeEndpoints && (p == s.A || p == s.B) {
		return false
	}

	sum := units(p.Distance(s.A)) + units(p.Distance(s.B))
	length := units(s.Length())

	diff := sum - length
	if diff < 0 {
		diff = -diff
	}
	return diff == 0 || diff == 1
}

// IntersectRect returns the crossing points between the boundary of r and the
// segment s, in the edge-test order top, bottom, left, right.
//
// Each edge is intersected with endpoints included; a segment passing exactly
// through a rectangle vertex hits two edges at the same point and is kept
// once. Vertex and endpoint filtering happens afterward, on the aggregate:
// when includeEndpoints is false and exactly one point was found, that lone
// point is discarded if it sits on an endpoint of s or on any rectangle
// vertex — a single raw hit that is only a touch is not a crossing. Results
// of two or more points already imply the segment crosses the interior and
// pass through unfiltered.
func IntersectRect(r Rect, s Segment, includeEndpoints bool) []Point {
	edges := r.Edges()

	var points []Point
	for _, edge := range edges {
		p, ok := Intersect(edge, s, true)
		if !ok {
			continue
		}
		if !containsPoint(points, p) {
			points = append(points, p)
		}
	}

	if includeEndpoints || len(points) != 1 {
		return points
	}

	p := points[0]
	if isEndpoint(p, s) {
		return nil
	}
	for _, edge := range edges {
		if isEndpoint(p, edge) {
			return nil
		}
	}
	return points
}

// isEndpoint reports whether p exactly equals one of the segment's endpoints.
func isEndpoint(p Point, s Segment) bool {
	return p == s.A || p == s.B
}

func containsPoint(pts []Point, p Point) bool {
	for _, q := range pts {
		if q == p {
			return true
		}
	}
	return false
}
