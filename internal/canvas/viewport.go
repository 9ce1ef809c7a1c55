package canvas

import (
	"math"

	"github.com/vkuzn/isect/internal/geom"
)

// Viewport is the world-coordinate window projected onto a canvas. World y
// grows upward while canvas y grows downward; the projection flips the axis.
type Viewport struct {
	MinX, MinY, MaxX, MaxY float64
}

// FitViewport returns a viewport covering all given points with the given
// padding on every side. A degenerate extent (single point, empty input) is
// widened to a unit window so projection never divides by zero.
func FitViewport(points []geom.Point, pad float64) Viewport {
	if len(points) == 0 {
		return Viewport{MinX: -pad, MinY: -pad, MaxX: 1 + pad, MaxY: 1 + pad}
	}

	v := Viewport{
		MinX: points[0].X, MaxX: points[0].X,
		MinY: points[0].Y, MaxY: points[0].Y,
	}
	for _, p := range points[1:] {
		v.MinX = math.Min(v.MinX, p.X)
		v.MaxX = math.Max(v.MaxX, p.X)
		v.MinY = math.Min(v.MinY, p.Y)
		v.MaxY = math.Max(v.MaxY, p.Y)
	}

	if v.MaxX-v.MinX == 0 {
		v.MaxX = v.MinX + 1
	}
	if v.MaxY-v.MinY == 0 {
		v.MaxY = v.MinY + 1
	}

	v.MinX -= pad
	v.MinY -= pad
	v.MaxX += pad
	v.MaxY += pad
	return v
}

// Cell projects a world point onto a canvas of the given dimensions.
// Returns false if the point falls outside the viewport.
func (v Viewport) Cell(p geom.Point, width, height int) (int, int, bool) {
	if width <= 0 || height <= 0 {
		return 0, 0, false
	}

	fx := (p.X - v.MinX) / (v.MaxX - v.MinX)
	fy := (v.MaxY - p.Y) / (v.MaxY - v.MinY) // flip: world up is canvas up

	if fx < 0 || fx > 1 || fy < 0 || fy > 1 {
		return 0, 0, false
	}

	x := int(fx * float64(width-1))
	y := int(fy * float64(height-1))
	return x, y, true
}

// Pan shifts the viewport by a fraction of its own extent.
func (v Viewport) Pan(dx, dy float64) Viewport {
	w := v.MaxX - v.MinX
	h := v.MaxY - v.MinY
	return Viewport{
		MinX: v.MinX + dx*w,
		MaxX: v.MaxX + dx*w,
		MinY: v.MinY + dy*h,
		MaxY: v.MaxY + dy*h,
	}
}

// Zoom scales the viewport around its center. Factors below 1 zoom in.
func (v Viewport) Zoom(factor float64) Viewport {
	cx := (v.MinX + v.MaxX) / 2
	cy := (v.MinY + v.MaxY) / 2
	hw := (v.MaxX - v.MinX) / 2 * factor
	hh := (v.MaxY - v.MinY) / 2 * factor
	return Viewport{
		MinX: cx - hw,
		MaxX: cx + hw,
		MinY: cy - hh,
		MaxY: cy + hh,
	}
}

// PlotPoint draws a single world point.
func (c *Canvas) PlotPoint(v Viewport, p geom.Point, r rune, col Color) {
	if x, y, ok := v.Cell(p, c.width, c.height); ok {
		c.Set(x, y, r, col)
	}
}

// PlotSegment draws a segment by sampling it parametrically. The sample count
// scales with the canvas size so lines stay connected at any zoom.
func (c *Canvas) PlotSegment(v Viewport, s geom.Segment, r rune, col Color) {
	steps := 2 * (c.width + c.height)
	if steps < 2 {
		steps = 2
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := geom.Point{
			X: s.A.X + t*(s.B.X-s.A.X),
			Y: s.A.Y + t*(s.B.Y-s.A.Y),
		}
		c.PlotPoint(v, p, r, col)
	}
}

// PlotRect draws the four boundary edges of a rectangle.
func (c *Canvas) PlotRect(v Viewport, rect geom.Rect, r rune, col Color) {
	for _, edge := range rect.Edges() {
		c.PlotSegment(v, edge, r, col)
	}
}
