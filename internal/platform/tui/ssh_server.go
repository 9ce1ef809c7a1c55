package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vkuzn/isect/internal/config"
	"github.com/vkuzn/isect/internal/scene"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.isect/host_key.
	HostKeyPath string

	// ScenesDir is the directory scanned for scene files.
	ScenesDir string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		ScenesDir:   "scenes",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server that serves the scene viewer.
type SSHServer struct {
	config    SSHServerConfig
	viewerCfg config.ViewerConfig
	server    *ssh.Server
	loader    *scene.Loader
	logger    *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, viewerCfg config.ViewerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "isect-ssh",
	})

	srv := &SSHServer{
		config:    cfg,
		viewerCfg: viewerCfg,
		loader:    scene.NewLoader(cfg.ScenesDir),
		logger:    logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".isect", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	scenes, err := s.loader.LoadAll()
	if err != nil {
		s.logger.Error("cannot load scenes", "dir", s.config.ScenesDir, "error", err)
		scenes = nil
	}

	model := NewSessionModel(scenes, s.viewerCfg, pty.Window.Width, pty.Window.Height)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "scenes", s.config.ScenesDir)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// SessionModel manages the SSH session flow: scene list -> viewer -> list.
type SessionModel struct {
	scenes    []scene.Scene
	viewerCfg config.ViewerConfig
	cursor    int
	viewer    *ViewerModel
	inViewer  bool
	width     int
	height    int
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(scenes []scene.Scene, viewerCfg config.ViewerConfig, width, height int) SessionModel {
	return SessionModel{
		scenes:    scenes,
		viewerCfg: viewerCfg,
		width:     width,
		height:    height,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.inViewer && m.viewer != nil {
		return m.updateViewer(msg)
	}
	return m.updateList(msg)
}

// updateList handles updates when showing the scene list.
func (m SessionModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.scenes)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(m.scenes) == 0 {
			return m, nil
		}
		sc := m.scenes[m.cursor]
		viewer := NewViewerModel(&sc, m.viewerCfg, m.width, m.height)
		m.viewer = &viewer
		m.inViewer = true
	}
	return m, nil
}

// updateViewer handles updates when a viewer is open.
func (m SessionModel) updateViewer(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.viewer.Update(msg)
	if vm, ok := newModel.(ViewerModel); ok {
		m.viewer = &vm
	}

	if m.viewer.GoingBack() {
		m.inViewer = false
		m.viewer = nil
		return m, nil
	}

	if m.viewer.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inViewer && m.viewer != nil {
		return m.viewer.View()
	}

	return m.listView()
}

// listView renders the scene picker.
func (m SessionModel) listView() string {
	s := titleStyle.Render("isect — scenes") + "\n\n"

	if len(m.scenes) == 0 {
		s += dimStyle.Render("No scenes found.") + "\n"
		return s
	}

	for i, sc := range m.scenes {
		line := fmt.Sprintf("  %s (%d segments, %d rects)", sc.Name, len(sc.Segments), len(sc.Rects))
		if i == m.cursor {
			line = selectedStyle.Render("> " + line[2:])
		}
		s += line + "\n"
	}

	s += "\n" + dimStyle.Render("enter: view  up/down: move  q: quit")
	return s
}
