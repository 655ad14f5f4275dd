package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sirmarshall/pacade/internal/maze"
	"github.com/sirmarshall/pacade/internal/storage"
)

const maxLevels = 100 // Max library entries to load

// LevelsKeyMap defines the key bindings for the level browser.
type LevelsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Play   key.Binding
	Delete key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LevelsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Play, k.Delete, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k LevelsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Play, k.Delete},
		{k.Back, k.Quit},
	}
}

// DefaultLevelsKeyMap returns default key bindings.
func DefaultLevelsKeyMap() LevelsKeyMap {
	return LevelsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Play: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play level"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LevelBrowserModel is the Bubble Tea model for the level library screen.
type LevelBrowserModel struct {
	store     *storage.Store
	levels    []storage.LevelEntry
	table     table.Model
	help      help.Model
	keys      LevelsKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
	selected  *storage.LevelEntry // Set when the user picks a level to play
}

// NewLevelBrowserModel creates a new level browser model.
func NewLevelBrowserModel(store *storage.Store, width, height int) LevelBrowserModel {
	keys := DefaultLevelsKeyMap()
	h := help.New()
	h.ShowAll = false

	m := LevelBrowserModel{
		store:  store,
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadLevels()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *LevelBrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Size", Width: 8},
		{Title: "Pellets", Width: 8},
		{Title: "Updated", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadLevels refreshes the table from the library.
func (m *LevelBrowserModel) loadLevels() {
	if m.store == nil {
		m.levels = nil
		m.updateTableRows()
		return
	}

	levels, err := m.store.ListLevels()
	if err != nil {
		m.levels = nil
	} else {
		if len(levels) > maxLevels {
			levels = levels[:maxLevels]
		}
		m.levels = levels
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current library entries.
func (m *LevelBrowserModel) updateTableRows() {
	rows := make([]table.Row, len(m.levels))
	for i, e := range m.levels {
		grid := maze.Parse(e.Data)
		rows[i] = table.Row{
			e.Name,
			fmt.Sprintf("%dx%d", grid.Width(), grid.Height()),
			fmt.Sprintf("%d", grid.PelletCount()),
			e.UpdatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the level browser model.
func (m LevelBrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the level browser.
func (m LevelBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Play):
			if i := m.table.Cursor(); i >= 0 && i < len(m.levels) {
				entry := m.levels[i]
				m.selected = &entry
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if i := m.table.Cursor(); m.store != nil && i >= 0 && i < len(m.levels) {
				//nolint:errcheck // Best-effort delete, the list refresh shows the result
				m.store.DeleteLevel(m.levels[i].Name)
				m.loadLevels()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the level browser.
func (m LevelBrowserModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("LEVEL LIBRARY", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.levels) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(centerText(tableStyle.Render(
			emptyStyle.Render("The library is empty.\nImport a level or save one from the editor!")), m.width))
	} else {
		b.WriteString(centerText(tableStyle.Render(m.table.View()), m.width))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Selected returns the level the user picked to play, or nil.
func (m LevelBrowserModel) Selected() *storage.LevelEntry {
	return m.selected
}

// IsGoingBack returns true if user wants to go back to menu.
func (m LevelBrowserModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m LevelBrowserModel) IsQuitting() bool {
	return m.quitting
}

// RunLevelBrowser runs the level library screen standalone.
// Returns the picked level (nil when backing out) and whether the user
// wants the menu back rather than quitting.
func RunLevelBrowser(store *storage.Store, width, height int) (picked *storage.LevelEntry, goBack bool, err error) {
	model := NewLevelBrowserModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	m, ok := finalModel.(LevelBrowserModel)
	if !ok {
		return nil, false, nil
	}
	return m.Selected(), m.IsGoingBack(), nil
}
