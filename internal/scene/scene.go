// Package scene loads sets of segments and rectangles from YAML files and
// computes every crossing between them. It depends on geom but geom does not
// depend on scene.
package scene

import (
	"fmt"

	"github.com/vkuzn/isect/internal/geom"
)

// SegmentDef is the YAML form of a segment.
type SegmentDef struct {
	Label string  `yaml:"label,omitempty"`
	X1    float64 `yaml:"x1"`
	Y1    float64 `yaml:"y1"`
	X2    float64 `yaml:"x2"`
	Y2    float64 `yaml:"y2"`
}

// Segment converts the definition to a geom.Segment.
func (d SegmentDef) Segment() geom.Segment {
	return geom.Seg(geom.Pt(d.X1, d.Y1), geom.Pt(d.X2, d.Y2))
}

// RectDef is the YAML form of a rectangle. X, Y anchor the upper-left corner;
// the height extends downward.
type RectDef struct {
	Label string  `yaml:"label,omitempty"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
}

// Rect converts the definition to a geom.Rect.
func (d RectDef) Rect() geom.Rect {
	return geom.NewRect(d.X, d.Y, d.W, d.H)
}

// Scene is a named collection of segments and rectangles.
type Scene struct {
	Name     string       `yaml:"name"`
	Segments []SegmentDef `yaml:"segments"`
	Rects    []RectDef    `yaml:"rects"`
	FilePath string       `yaml:"-"`
}

// SegmentLabel returns the label of segment i, defaulting to "s<i+1>".
func (s *Scene) SegmentLabel(i int) string {
	if l := s.Segments[i].Label; l != "" {
		return l
	}
	return fmt.Sprintf("s%d", i+1)
}

// RectLabel returns the label of rectangle i, defaulting to "r<i+1>".
func (s *Scene) RectLabel(i int) string {
	if l := s.Rects[i].Label; l != "" {
		return l
	}
	return fmt.Sprintf("r%d", i+1)
}

// CrossKind distinguishes the two crossing computations.
type CrossKind string

// Crossing kinds.
const (
	CrossSegments    CrossKind = "segments"
	CrossRectSegment CrossKind = "rect-segment"
)

// Crossing is one computed intersection between two scene elements.
// Points is empty when the pair does not intersect.
type Crossing struct {
	Kind   CrossKind
	A, B   string // labels of the participants
	Points []geom.Point
}

// Crossings computes every crossing in the scene: each segment pair once
// (i < j) and each rectangle against each segment. Pairs that do not
// intersect are omitted. Order is deterministic: segment pairs first, then
// rectangle/segment pairs, both in definition order.
func (s *Scene) Crossings(includeEndpoints bool) []Crossing {
	var out []Crossing

	for i := 0; i < len(s.Segments); i++ {
		for j := i + 1; j < len(s.Segments); j++ {
			p, ok := geom.Intersect(s.Segments[i].Segment(), s.Segments[j].Segment(), includeEndpoints)
			if !ok {
				continue
			}
			out = append(out, Crossing{
				Kind:   CrossSegments,
				A:      s.SegmentLabel(i),
				B:      s.SegmentLabel(j),
				Points: []geom.Point{p},
			})
		}
	}

	for i := range s.Rects {
		for j := range s.Segments {
			pts := geom.IntersectRect(s.Rects[i].Rect(), s.Segments[j].Segment(), includeEndpoints)
			if len(pts) == 0 {
				continue
			}
			out = append(out, Crossing{
				Kind:   CrossRectSegment,
				A:      s.RectLabel(i),
				B:      s.SegmentLabel(j),
				Points: pts,
			})
		}
	}

	return out
}

// Bounds returns every defining point of the scene (segment endpoints and
// rectangle corners), suitable for fitting a viewport.
func (s *Scene) Bounds() []geom.Point {
	var pts []geom.Point
	for _, d := range s.Segments {
		seg := d.Segment()
		pts = append(pts, seg.A, seg.B)
	}
	for _, d := range s.Rects {
		ul, ur, ll, lr := d.Rect().Corners()
		pts = append(pts, ul, ur, ll, lr)
	}
	return pts
}

// Empty reports whether the scene has no elements.
func (s *Scene) Empty() bool {
	return len(s.Segments) == 0 && len(s.Rects) == 0
}
