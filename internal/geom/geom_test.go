package geom

import (
	"math"
	"testing"
)

func TestRectCorners(t *testing.T) {
	r := NewRect(0, 0, 4, 4)

	ul, ur, ll, lr := r.Corners()

	if ul != (Point{0, 0}) {
		t.Errorf("upper-left = %v, expected (0, 0)", ul)
	}
	if ur != (Point{4, 0}) {
		t.Errorf("upper-right = %v, expected (4, 0)", ur)
	}
	if ll != (Point{0, -4}) {
		t.Errorf("lower-left = %v, expected (0, -4)", ll)
	}
	if lr != (Point{4, -4}) {
		t.Errorf("lower-right = %v, expected (4, -4)", lr)
	}
}

func TestRectEdgesOrder(t *testing.T) {
	r := NewRect(1, 2, 3, 5)
	edges := r.Edges()

	// top, bottom, left, right
	expected := [4]Segment{
		{Point{1, 2}, Point{4, 2}},
		{Point{1, -3}, Point{4, -3}},
		{Point{1, 2}, Point{1, -3}},
		{Point{4, 2}, Point{4, -3}},
	}

	for i, e := range expected {
		if edges[i] != e {
			t.Errorf("edge %d = %v, expected %v", i, edges[i], e)
		}
	}
}

func TestPointDistance(t *testing.T) {
	tests := []struct {
		name     string
		p, q     Point
		expected float64
	}{
		{"same point", Pt(1, 1), Pt(1, 1), 0},
		{"horizontal", Pt(0, 0), Pt(3, 0), 3},
		{"vertical", Pt(0, 0), Pt(0, 4), 4},
		{"3-4-5 triangle", Pt(0, 0), Pt(3, 4), 5},
		{"negative coords", Pt(-1, -1), Pt(2, 3), 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.p.Distance(tc.q)
			if math.Abs(got-tc.expected) > 1e-12 {
				t.Errorf("Distance() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSegmentLength(t *testing.T) {
	s := Seg(Pt(0, 0), Pt(4, 4))
	if got := s.Length(); math.Abs(got-math.Sqrt(32)) > 1e-12 {
		t.Errorf("Length() = %v, expected sqrt(32)", got)
	}
}

func TestPointString(t *testing.T) {
	tests := []struct {
		p        Point
		expected string
	}{
		{Pt(2, 2), "(2, 2)"},
		{Pt(2, -4), "(2, -4)"},
		{Pt(0.5, 1.25), "(0.5, 1.25)"},
	}

	for _, tc := range tests {
		if got := tc.p.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}
