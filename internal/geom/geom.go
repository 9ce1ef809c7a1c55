// Package geom computes intersections between finite line segments and the
// boundaries of axis-aligned rectangles. It contains no external dependencies
// so the math stays pure and testable.
//
// All comparisons that decide whether a candidate point lies on a finite
// segment are done at a fixed scale of five decimal places, truncating toward
// zero. See OnSegment for the exact tolerance rules.
package geom

import (
	"fmt"
	"math"
)

// Point is an immutable 2D coordinate pair. Equality is exact float64
// equality of both coordinates.
type Point struct {
	X, Y float64
}

// Pt creates a new point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance from p to q.
func (p Point) Distance(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// String formats the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Segment is a finite line bounded by two endpoints. A degenerate segment
// (A == B) is not rejected anywhere: intersections against it fall through to
// "no result" via the zero determinant, and OnSegment collapses to a
// distance check against a single point.
type Segment struct {
	A, B Point
}

// Seg creates a new segment from a to b.
func Seg(a, b Point) Segment {
	return Segment{A: a, B: b}
}

// Length returns the distance between the segment's endpoints.
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// Rect is an axis-aligned rectangle anchored at its upper-left corner (X, Y).
// Height extends downward: the lower edge sits at Y-H, so "lower" means
// smaller y.
type Rect struct {
	X, Y, W, H float64
}

// NewRect creates a rectangle with the given upper-left corner and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Corners returns the four vertices of the rectangle.
func (r Rect) Corners() (upperLeft, upperRight, lowerLeft, lowerRight Point) {
	upperLeft = Point{X: r.X, Y: r.Y}
	upperRight = Point{X: r.X + r.W, Y: r.Y}
	lowerLeft = Point{X: r.X, Y: r.Y - r.H}
	lowerRight = Point{X: r.X + r.W, Y: r.Y - r.H}
	return upperLeft, upperRight, lowerLeft, lowerRight
}

// Edges returns the four boundary segments in top, bottom, left, right order.
// Results of IntersectRect follow this order.
func (r Rect) Edges() [4]Segment {
	ul, ur, ll, lr := r.Corners()
	return [4]Segment{
		{A: ul, B: ur}, // top
		{A: ll, B: lr}, // bottom
		{A: ul, B: ll}, // left
		{A: ur, B: lr}, // right
	}
}
