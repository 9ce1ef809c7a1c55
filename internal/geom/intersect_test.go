package geom

import (
	"testing"
)

func TestIntersect(t *testing.T) {
	tests := []struct {
		name             string
		s1, s2           Segment
		includeEndpoints bool
		expected         Point
		found            bool
	}{
		{
			name:     "diagonal cross at center",
			s1:       Seg(Pt(0, 0), Pt(4, 4)),
			s2:       Seg(Pt(0, 4), Pt(4, 0)),
			expected: Pt(2, 2),
			found:    true,
		},
		{
			name:  "T junction strictly inside both",
			s1:    Seg(Pt(0, 0), Pt(4, 0)),
			s2:    Seg(Pt(2, -2), Pt(2, 2)),
			found: true, expected: Pt(2, 0),
		},
		{
			name: "parallel lines",
			s1:   Seg(Pt(0, 0), Pt(1, 1)),
			s2:   Seg(Pt(1, 0), Pt(2, 1)),
		},
		{
			name: "coincident lines report no single point",
			s1:   Seg(Pt(0, 0), Pt(2, 2)),
			s2:   Seg(Pt(1, 1), Pt(3, 3)),
		},
		{
			name:             "coincident lines with endpoints included",
			s1:               Seg(Pt(0, 0), Pt(2, 2)),
			s2:               Seg(Pt(1, 1), Pt(3, 3)),
			includeEndpoints: true,
		},
		{
			name: "lines cross but segments do not reach",
			s1:   Seg(Pt(0, 0), Pt(1, 1)),
			s2:   Seg(Pt(3, 0), Pt(3, 4)),
		},
		{
			name: "shared endpoint excluded",
			s1:   Seg(Pt(0, 0), Pt(2, 2)),
			s2:   Seg(Pt(2, 2), Pt(4, 0)),
		},
		{
			name:             "shared endpoint included",
			s1:               Seg(Pt(0, 0), Pt(2, 2)),
			s2:               Seg(Pt(2, 2), Pt(4, 0)),
			includeEndpoints: true,
			expected:         Pt(2, 2),
			found:            true,
		},
		{
			name:     "non-terminating crossing truncated at 5 decimals",
			s1:       Seg(Pt(0, 0), Pt(1, 1)),
			s2:       Seg(Pt(0, 1), Pt(2, 0)),
			expected: Pt(0.66666, 0.66666),
			found:    true,
		},
		{
			name: "degenerate segment yields zero determinant",
			s1:   Seg(Pt(1, 1), Pt(1, 1)),
			s2:   Seg(Pt(0, 0), Pt(2, 2)),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Intersect(tc.s1, tc.s2, tc.includeEndpoints)
			if ok != tc.found {
				t.Fatalf("Intersect() found = %v, expected %v", ok, tc.found)
			}
			if ok && got != tc.expected {
				t.Errorf("Intersect() = %v, expected %v", got, tc.expected)
			}

			// Intersection is symmetric in its segment arguments.
			rev, revOK := Intersect(tc.s2, tc.s1, tc.includeEndpoints)
			if revOK != ok {
				t.Errorf("Intersect() (reversed) found = %v, expected %v", revOK, ok)
			}
			if revOK && rev != got {
				t.Errorf("Intersect() (reversed) = %v, expected %v", rev, got)
			}
		})
	}
}

func TestOnSegment(t *testing.T) {
	diag := Seg(Pt(0, 0), Pt(4, 4))
	flat := Seg(Pt(0, 0), Pt(4, 0))

	tests := []struct {
		name             string
		p                Point
		s                Segment
		includeEndpoints bool
		expected         bool
	}{
		{"midpoint of diagonal", Pt(2, 2), diag, false, true},
		{"midpoint of horizontal", Pt(2, 0), flat, false, true},
		{"endpoint A excluded", Pt(0, 0), diag, false, false},
		{"endpoint B excluded", Pt(4, 4), diag, false, false},
		{"endpoint A included", Pt(0, 0), diag, true, true},
		{"endpoint B included", Pt(4, 4), diag, true, true},
		{"off the segment", Pt(2, 2.1), diag, false, false},
		{"on the line but beyond endpoint", Pt(5, 5), diag, true, false},
		{"degenerate segment, same point", Pt(1, 1), Seg(Pt(1, 1), Pt(1, 1)), true, true},
		{"degenerate segment, other point", Pt(2, 2), Seg(Pt(1, 1), Pt(1, 1)), true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := OnSegment(tc.p, tc.s, tc.includeEndpoints)
			if got != tc.expected {
				t.Errorf("OnSegment(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

// The tolerance band accepts a distance-sum off by exactly one unit in the
// fifth decimal place, which is what truncation of the two partial distances
// can cost. Two units must be rejected.
func TestOnSegmentToleranceBand(t *testing.T) {
	s := Seg(Pt(0, 0), Pt(1, 1))

	// Truncated crossing coordinates land one unit short of the length sum.
	if !OnSegment(Pt(0.66666, 0.66666), s, false) {
		t.Error("point one truncation unit off must be accepted")
	}

	// A distance sum four units over the length is outside the band:
	// 2*sqrt(4 + 0.01^2) exceeds 4 by about 5e-5.
	flat := Seg(Pt(0, 0), Pt(4, 0))
	if OnSegment(Pt(2, 0.01), flat, false) {
		t.Error("distance sum beyond the band must be rejected")
	}
}

func TestIntersectRect(t *testing.T) {
	square := NewRect(0, 0, 4, 4) // corners (0,0) (4,0) (0,-4) (4,-4)

	tests := []struct {
		name             string
		r                Rect
		s                Segment
		includeEndpoints bool
		expected         []Point
	}{
		{
			name: "vertical segment through top and bottom",
			r:    square,
			s:    Seg(Pt(2, 1), Pt(2, -5)),
			expected: []Point{
				Pt(2, 0), Pt(2, -4),
			},
		},
		{
			name:             "vertical segment through top and bottom, endpoints included",
			r:                square,
			s:                Seg(Pt(2, 1), Pt(2, -5)),
			includeEndpoints: true,
			expected: []Point{
				Pt(2, 0), Pt(2, -4),
			},
		},
		{
			name: "segment fully outside",
			r:    square,
			s:    Seg(Pt(10, 10), Pt(12, 12)),
		},
		{
			name: "segment fully inside",
			r:    square,
			s:    Seg(Pt(1, -1), Pt(3, -3)),
		},
		{
			name: "diagonal through two opposite vertices deduplicates",
			r:    square,
			s:    Seg(Pt(-1, 1), Pt(5, -5)),
			expected: []Point{
				Pt(0, 0), Pt(4, -4),
			},
		},
		{
			name: "segment endpoint on rectangle vertex is not a crossing",
			r:    square,
			s:    Seg(Pt(4, 0), Pt(8, 1)),
		},
		{
			name:             "segment endpoint on rectangle vertex, endpoints included",
			r:                square,
			s:                Seg(Pt(4, 0), Pt(8, 1)),
			includeEndpoints: true,
			expected:         []Point{Pt(4, 0)},
		},
		{
			name: "segment grazing a corner is not a crossing",
			r:    square,
			s:    Seg(Pt(2, 2), Pt(6, -2)),
		},
		{
			name:             "segment grazing a corner, endpoints included",
			r:                square,
			s:                Seg(Pt(2, 2), Pt(6, -2)),
			includeEndpoints: true,
			expected:         []Point{Pt(4, 0)},
		},
		{
			name: "segment terminating on an edge is not a crossing",
			r:    square,
			s:    Seg(Pt(2, 0), Pt(2, 3)),
		},
		{
			name:             "segment terminating on an edge, endpoints included",
			r:                square,
			s:                Seg(Pt(2, 0), Pt(2, 3)),
			includeEndpoints: true,
			expected:         []Point{Pt(2, 0)},
		},
		{
			name: "zero-size rectangle",
			r:    NewRect(0, 0, 0, 0),
			s:    Seg(Pt(-1, -1), Pt(1, 1)),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := IntersectRect(tc.r, tc.s, tc.includeEndpoints)
			if len(got) != len(tc.expected) {
				t.Fatalf("IntersectRect() = %v, expected %v", got, tc.expected)
			}
			for i, p := range tc.expected {
				if got[i] != p {
					t.Errorf("point %d = %v, expected %v", i, got[i], p)
				}
			}
		})
	}
}

func TestTrunc5(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{2.0 / 3.0, 0.66666},
		{-2.0 / 3.0, -0.66666}, // toward zero, not floor
		{1.999999, 1.99999},
		{2, 2},
		{-0.0000001, 0}, // negative zero collapses
	}

	for _, tc := range tests {
		if got := trunc5(tc.in); got != tc.expected {
			t.Errorf("trunc5(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}
