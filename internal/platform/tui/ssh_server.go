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
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/sirmarshall/pacade/internal/core"
	"github.com/sirmarshall/pacade/internal/games/pacman"
	"github.com/sirmarshall/pacade/internal/maze"
	"github.com/sirmarshall/pacade/internal/registry"
	"github.com/sirmarshall/pacade/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.pacade/host_key.
	HostKeyPath string

	// DBPath is the path to the level library database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.pacade/levels.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server serving the maze apps.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pacade-ssh",
	})

	// Open the level library
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open level library", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".pacade", "host_key")
	}

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
		if store != nil {
			store.Close()
		}
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

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: 60,
	}

	model := NewSessionModel(s.store, cfg)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
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
	s.logger.Info("starting SSH server", "address", s.config.Address)

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

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionScreen discriminates what a session is currently showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenApp
	screenLevels
)

// SessionModel manages the full session flow: menu -> app -> menu, with
// the level library as a side screen. This is the top-level model used
// for SSH sessions, where everything must live in one Bubble Tea program.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	screen   sessionScreen
	menu     MenuModel
	levels   LevelBrowserModel
	appModel *AppModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		store:  store,
		config: cfg,
		screen: screenMenu,
		menu:   NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenApp:
		return m.updateApp(msg)
	case screenLevels:
		return m.updateLevels(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsLevels() {
		m.levels = NewLevelBrowserModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenLevels
		return m, m.levels.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		m.config = m.menu.Config()
		return m.launch(selected.GameID)
	}

	return m, cmd
}

// updateLevels handles updates when browsing the level library.
func (m SessionModel) updateLevels(msg tea.Msg) (tea.Model, tea.Cmd) {
	newLevels, cmd := m.levels.Update(msg)
	if levelsModel, ok := newLevels.(LevelBrowserModel); ok {
		m.levels = levelsModel
	}

	if m.levels.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if picked := m.levels.Selected(); picked != nil {
		pacman.SetGrid(maze.Parse(picked.Data))
		return m.launch("pacmaze")
	}

	if m.levels.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

// launch starts a registered app inside this session.
func (m SessionModel) launch(gameID string) (tea.Model, tea.Cmd) {
	app, err := registry.Create(gameID)
	if err != nil {
		// Shouldn't happen since the menu only shows registered apps
		return m.backToMenu()
	}

	appModel := NewAppModel(app, m.config)
	m.appModel = &appModel
	m.screen = screenApp
	return m, m.appModel.Init()
}

// updateApp handles updates when an app is running.
func (m SessionModel) updateApp(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.appModel.Update(msg)
	if appModel, ok := newModel.(AppModel); ok {
		m.appModel = &appModel
	}

	if m.appModel.BackToMenu() {
		return m.backToMenu()
	}

	if m.appModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// backToMenu resets the session to a fresh menu.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.appModel = nil
	m.screen = screenMenu
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenApp:
		if m.appModel != nil {
			return m.appModel.View()
		}
		return ""
	case screenLevels:
		return m.levels.View()
	default:
		return m.menu.View()
	}
}
