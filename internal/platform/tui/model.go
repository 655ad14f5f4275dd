package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sirmarshall/pacade/internal/core"
	"github.com/sirmarshall/pacade/internal/registry"
)

// AppModel is the Bubble Tea model hosting a single app (game or editor).
// It owns the fixed-rate tick loop and the input frame the app consumes.
type AppModel struct {
	app        registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	appState   core.GameState
	quitting   bool
	backToMenu bool
}

// NewAppModel creates a Bubble Tea model for the given app.
func NewAppModel(app registry.Game, cfg core.RuntimeConfig) AppModel {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return AppModel{
		app:        app,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m AppModel) Init() tea.Cmd {
	m.app.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+o" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m AppModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Reinitialize so the app can re-center its layout.
	m.app.Reset(m.config)
	return m, nil
}

// handleTick processes simulation ticks.
func (m AppModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.app.Step(m.inputFrame)
	m.appState = result.State

	if m.appState.Done {
		m.backToMenu = true
	}

	// Clear input for next frame; the pointer state carries over.
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *AppModel) saveScreenshot() {
	m.app.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".pacade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.app.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, the app continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	m.app.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the user asked to quit the session.
func (m AppModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the app finished and wants the menu back.
func (m AppModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program hosting one app.
func Run(app registry.Game, cfg core.RuntimeConfig) error {
	model := NewAppModel(app, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Editor painting needs motion events
	)

	_, err := p.Run()
	return err
}
