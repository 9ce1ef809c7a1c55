// Package canvas provides a 2D character buffer for plotting geometry in the
// terminal. It contains no TUI dependencies (especially no Bubble Tea) so the
// plotting logic stays pure and testable; styling happens in the platform
// layer.
package canvas

import "strings"

// Color represents a foreground color for a canvas cell.
type Color uint8

// Predefined colors for plotted elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
)

// Cell is a single canvas position: a rune and its color.
type Cell struct {
	Rune  rune
	Color Color
}

// Canvas is a 2D cell buffer. Cell (0, 0) is the upper-left corner.
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// New creates a canvas with the given dimensions, cleared to spaces.
func New(width, height int) *Canvas {
	c := &Canvas{
		width:  width,
		height: height,
	}
	c.allocate()
	c.Clear()
	return c
}

func (c *Canvas) allocate() {
	c.cells = make([][]Cell, c.height)
	for y := range c.cells {
		c.cells[y] = make([]Cell, c.width)
	}
}

// Width returns the canvas width in characters.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in characters.
func (c *Canvas) Height() int {
	return c.height
}

// Resize changes the canvas dimensions and clears the buffer.
func (c *Canvas) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.width = width
	c.height = height
	c.allocate()
	c.Clear()
}

// Clear fills the entire canvas with spaces in the default color.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = Cell{Rune: ' ', Color: ColorDefault}
		}
	}
}

// Set places a colored rune at the given cell.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, r rune, col Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = Cell{Rune: r, Color: col}
}

// Get returns the cell at the given position.
// Returns a default space cell for out-of-bounds coordinates.
func (c *Canvas) Get(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Cell{Rune: ' ', Color: ColorDefault}
	}
	return c.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y) in the given
// color. Characters beyond the canvas bounds are clipped.
func (c *Canvas) DrawText(x, y int, text string, col Color) {
	for i, r := range text {
		c.Set(x+i, y, r, col)
	}
}

// String converts the canvas to a plain (unstyled) string, rows joined with
// newlines.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height + c.height)

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < c.width; x++ {
			sb.WriteRune(c.cells[y][x].Rune)
		}
	}
	return sb.String()
}
