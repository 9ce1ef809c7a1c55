package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vkuzn/isect/internal/canvas"
)

// colorStyles maps canvas.Color to lipgloss styles.
var colorStyles = map[canvas.Color]lipgloss.Style{
	canvas.ColorDefault: lipgloss.NewStyle(),
	canvas.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	canvas.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	canvas.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	canvas.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	canvas.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	canvas.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	canvas.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	canvas.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderCanvas converts a canvas to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderCanvas(c *canvas.Canvas) string {
	var sb strings.Builder
	sb.Grow(c.Width()*c.Height()*2 + c.Height())

	for y := 0; y < c.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < c.Width() {
			startColor := c.Get(x, y).Color

			var run strings.Builder
			for x < c.Width() {
				cell := c.Get(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[canvas.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
