// Package tui provides the Bubble Tea scene viewer and its SSH server.
// Plotting itself lives in the canvas package; this layer handles input,
// styling and the terminal loop.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vkuzn/isect/internal/canvas"
	"github.com/vkuzn/isect/internal/config"
	"github.com/vkuzn/isect/internal/scene"
)

// panStep is the pan distance per keypress, as a fraction of the viewport.
const panStep = 0.1

var statusStyle = lipgloss.NewStyle().Bold(true)

// ViewerModel is the Bubble Tea model that displays a scene and its
// crossings.
type ViewerModel struct {
	scene            *scene.Scene
	cfg              config.ViewerConfig
	keys             ViewerKeyMap
	help             help.Model
	viewport         canvas.Viewport
	homeViewport     canvas.Viewport
	includeEndpoints bool
	crossings        []scene.Crossing
	width            int
	height           int
	quitting         bool
	goingBack        bool
}

// NewViewerModel creates a viewer for the given scene.
func NewViewerModel(sc *scene.Scene, cfg config.ViewerConfig, width, height int) ViewerModel {
	vp := canvas.FitViewport(sc.Bounds(), cfg.Padding)

	m := ViewerModel{
		scene:            sc,
		cfg:              cfg,
		keys:             DefaultViewerKeyMap(),
		help:             help.New(),
		viewport:         vp,
		homeViewport:     vp,
		includeEndpoints: cfg.IncludeEndpoints,
		width:            width,
		height:           height,
	}
	m.crossings = sc.Crossings(m.includeEndpoints)
	return m
}

// Init initializes the viewer. The viewer is purely event-driven; there is no
// simulation tick.
func (m ViewerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.viewport = m.viewport.Pan(0, panStep)
		case key.Matches(msg, m.keys.Down):
			m.viewport = m.viewport.Pan(0, -panStep)
		case key.Matches(msg, m.keys.Left):
			m.viewport = m.viewport.Pan(-panStep, 0)
		case key.Matches(msg, m.keys.Right):
			m.viewport = m.viewport.Pan(panStep, 0)
		case key.Matches(msg, m.keys.ZoomIn):
			m.viewport = m.viewport.Zoom(0.8)
		case key.Matches(msg, m.keys.ZoomOut):
			m.viewport = m.viewport.Zoom(1.25)
		case key.Matches(msg, m.keys.Reset):
			m.viewport = m.homeViewport
		case key.Matches(msg, m.keys.Endpoints):
			m.includeEndpoints = !m.includeEndpoints
			m.crossings = m.scene.Crossings(m.includeEndpoints)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// View renders the scene.
func (m ViewerModel) View() string {
	if m.quitting {
		return ""
	}

	canvasH := m.height - 2 // status bar + help line
	if canvasH < 1 {
		canvasH = 1
	}
	canvasW := m.width
	if canvasW < 1 {
		canvasW = 1
	}

	c := canvas.New(canvasW, canvasH)
	m.plot(c)

	return RenderCanvas(c) + "\n" + m.statusLine() + "\n" + m.help.View(m.keys)
}

// plot draws the scene elements and the crossing points.
func (m ViewerModel) plot(c *canvas.Canvas) {
	rectGlyph := config.Rune(m.cfg.Glyphs.Rect, '░')
	segGlyph := config.Rune(m.cfg.Glyphs.Segment, '·')
	endGlyph := config.Rune(m.cfg.Glyphs.Endpoint, 'o')
	crossGlyph := config.Rune(m.cfg.Glyphs.Crossing, '╳')

	for _, d := range m.scene.Rects {
		c.PlotRect(m.viewport, d.Rect(), rectGlyph, canvas.ColorBlue)
	}
	for _, d := range m.scene.Segments {
		seg := d.Segment()
		c.PlotSegment(m.viewport, seg, segGlyph, canvas.ColorCyan)
		c.PlotPoint(m.viewport, seg.A, endGlyph, canvas.ColorGray)
		c.PlotPoint(m.viewport, seg.B, endGlyph, canvas.ColorGray)
	}

	// Crossings last so they are never painted over.
	for _, cr := range m.crossings {
		for _, p := range cr.Points {
			c.PlotPoint(m.viewport, p, crossGlyph, canvas.ColorRed)
		}
	}
}

// statusLine renders the one-line summary under the canvas.
func (m ViewerModel) statusLine() string {
	points := 0
	for _, cr := range m.crossings {
		points += len(cr.Points)
	}

	mode := "excluded"
	if m.includeEndpoints {
		mode = "included"
	}
	return statusStyle.Render(fmt.Sprintf(
		"%s — %d crossing point(s) — endpoints %s",
		m.scene.Name, points, mode,
	))
}

// IsQuitting returns true if the user requested to quit entirely.
func (m ViewerModel) IsQuitting() bool {
	return m.quitting
}

// GoingBack returns true if the user pressed back (SSH sessions return to the
// scene list; the local viewer treats it as quit).
func (m ViewerModel) GoingBack() bool {
	return m.goingBack
}

// Crossings returns the currently displayed crossings.
func (m ViewerModel) Crossings() []scene.Crossing {
	return m.crossings
}

// Run starts the viewer for a scene in the local terminal.
func Run(sc *scene.Scene, cfg config.ViewerConfig, width, height int) error {
	model := NewViewerModel(sc, cfg, width, height)

	p := tea.NewProgram(localViewer{ViewerModel: model}, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// localViewer quits on back instead of returning to a scene list.
type localViewer struct {
	ViewerModel
}

func (m localViewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	inner, cmd := m.ViewerModel.Update(msg)
	if vm, ok := inner.(ViewerModel); ok {
		m.ViewerModel = vm
	}
	if m.GoingBack() {
		return m, tea.Quit
	}
	return m, cmd
}
