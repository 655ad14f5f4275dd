// Package editor implements the level editor: a paint-style tool for maze
// boards with a small menu for file operations. It plugs into the same app
// interface as the games, so the platform loop hosts it unchanged.
package editor

import (
	"fmt"
	"math"

	"github.com/sirmarshall/pacade/internal/config"
	"github.com/sirmarshall/pacade/internal/core"
	"github.com/sirmarshall/pacade/internal/maze"
	"github.com/sirmarshall/pacade/internal/registry"
)

// mode is the editor's top-level state: painting on the board, or in the
// overlay menu.
type mode int

const (
	modeEditing mode = iota
	modeMenu
)

// menuAction identifies a menu entry.
type menuAction int

const (
	menuResume menuAction = iota
	menuNew
	menuLoad
	menuSave
	menuExit
)

type menuItem struct {
	action menuAction
	label  string
	bounds core.Rect // Filled in during layout
}

// toolGlyphs shows what each paint tool produces.
var toolGlyphs = map[maze.Tile]rune{
	maze.TileEmpty:       ' ',
	maze.TileWall:        '#',
	maze.TilePelletSmall: '.',
	maze.TilePelletBig:   'o',
}

// Editor is the level editor app.
type Editor struct {
	cfg config.EditorConfig

	grid    *maze.Grid
	display maze.DisplayGrid

	mode mode
	tool maze.Tile

	// Keyboard paint cursor, in tile coordinates.
	cursorCol int
	cursorRow int

	menu      []menuItem
	menuIndex int

	// Pressed state from the previous tick, for press-edge detection on
	// the menu.
	wasPressed bool

	tick       uint64
	hudHeight  int
	mapOffsetX int
	screenW    int
	screenH    int

	dirty       bool // Unsaved changes
	status      string
	statusTicks int

	done     bool
	tooSmall bool
}

// Package-level override applied by the CLI before the editor starts.
var filePath string

// SetFilePath points the next editor session at a level file. The file is
// loaded if it exists and is the save target either way.
func SetFilePath(path string) {
	filePath = path
}

// New creates an editor with the given config.
func New(cfg config.EditorConfig) *Editor {
	return &Editor{cfg: cfg}
}

func init() {
	registry.Register("editor", func() registry.Game {
		return New(config.DefaultEditorConfig())
	})
}

// ID returns the app identifier.
func (e *Editor) ID() string {
	return "editor"
}

// Title returns the display name.
func (e *Editor) Title() string {
	return "Level Editor"
}

// Reset initializes the editor session.
func (e *Editor) Reset(cfg core.RuntimeConfig) {
	e.tick = 0
	e.done = false
	e.mode = modeEditing
	e.tool = maze.TileWall
	e.menuIndex = 0
	e.wasPressed = false
	e.dirty = false
	e.status = ""
	e.statusTicks = 0
	e.screenW = cfg.ScreenW
	e.screenH = cfg.ScreenH
	e.hudHeight = 3

	if filePath != "" {
		e.cfg.File.Path = filePath
		filePath = ""
	}

	e.loadBoard()
	e.cursorCol = e.grid.Width() / 2
	e.cursorRow = e.grid.Height() / 2

	e.menu = []menuItem{
		{action: menuResume, label: "Resume"},
		{action: menuNew, label: "New board"},
		{action: menuLoad, label: "Reload file"},
		{action: menuSave, label: "Save"},
		{action: menuExit, label: "Exit"},
	}

	e.layout()
}

// loadBoard loads the configured file, falling back to the blank template
// when the file is missing or unreadable.
func (e *Editor) loadBoard() {
	if e.cfg.File.Path != "" {
		if grid, ok := maze.LoadFile(e.cfg.File.Path); ok {
			e.grid = grid
			e.display = maze.Encode(e.grid)
			return
		}
	}
	e.blankBoard()
}

// blankBoard resets the grid to the configured template.
func (e *Editor) blankBoard() {
	cols, rows := e.cfg.Grid.Cols, e.cfg.Grid.Rows
	if cols <= 0 || rows <= 0 {
		cols, rows = 28, 31
	}
	if e.cfg.Grid.Bordered {
		e.grid = maze.NewBordered(cols, rows)
	} else {
		e.grid = maze.NewBlank(cols, rows)
	}
	e.display = maze.Encode(e.grid)
}

// layout centers the board and checks the screen fits.
func (e *Editor) layout() {
	requiredW := e.grid.Width()
	requiredH := e.grid.Height() + e.hudHeight
	if e.screenW < requiredW || e.screenH < requiredH {
		e.tooSmall = true
		return
	}
	e.tooSmall = false
	e.mapOffsetX = (e.screenW - e.grid.Width()) / 2
}

// Step advances the editor by one tick.
func (e *Editor) Step(input core.InputFrame) core.StepResult {
	e.tick++

	if e.statusTicks > 0 {
		e.statusTicks--
		if e.statusTicks == 0 {
			e.status = ""
		}
	}

	if input.Has(core.ActionQuit) {
		e.done = true
	}

	if e.done || e.tooSmall {
		e.wasPressed = input.Pointer.Pressed
		return core.StepResult{State: e.State()}
	}

	switch e.mode {
	case modeMenu:
		e.stepMenu(input)
	case modeEditing:
		e.stepEditing(input)
	}

	e.wasPressed = input.Pointer.Pressed
	return core.StepResult{State: e.State()}
}

// stepMenu handles menu navigation and selection.
func (e *Editor) stepMenu(input core.InputFrame) {
	if input.Has(core.ActionBack) {
		e.mode = modeEditing
		return
	}
	if input.Has(core.ActionUp) && e.menuIndex > 0 {
		e.menuIndex--
	}
	if input.Has(core.ActionDown) && e.menuIndex < len(e.menu)-1 {
		e.menuIndex++
	}
	if input.Has(core.ActionConfirm) {
		e.execute(e.menu[e.menuIndex].action)
		return
	}

	// Pointer: hover tracks the item under the cursor, a fresh press
	// activates it.
	cx, cy := pointerCell(input.Pointer)
	for i, item := range e.menu {
		if item.bounds.Contains(cx, cy) {
			e.menuIndex = i
			if input.Pointer.Pressed && !e.wasPressed {
				e.execute(item.action)
			}
			return
		}
	}
}

// execute runs a menu action.
func (e *Editor) execute(a menuAction) {
	switch a {
	case menuResume:
		e.mode = modeEditing
	case menuNew:
		e.blankBoard()
		e.layout()
		e.dirty = true
		e.mode = modeEditing
	case menuLoad:
		e.loadBoard()
		e.layout()
		e.dirty = false
		e.mode = modeEditing
		e.setStatus("Reloaded " + e.cfg.File.Path)
	case menuSave:
		e.save()
		e.mode = modeEditing
	case menuExit:
		e.done = true
	}
}

// stepEditing handles painting and tool selection.
func (e *Editor) stepEditing(input core.InputFrame) {
	if input.Has(core.ActionBack) {
		e.mode = modeMenu
		return
	}

	switch {
	case input.Has(core.ActionToolErase):
		e.tool = maze.TileEmpty
	case input.Has(core.ActionToolWall):
		e.tool = maze.TileWall
	case input.Has(core.ActionToolPellet):
		e.tool = maze.TilePelletSmall
	case input.Has(core.ActionToolPower):
		e.tool = maze.TilePelletBig
	}

	if input.Has(core.ActionSave) {
		e.save()
	}
	if input.Has(core.ActionClear) {
		e.blankBoard()
		e.layout()
		e.dirty = true
	}

	// Keyboard cursor, clamped to the board.
	if input.Has(core.ActionUp) {
		e.cursorRow = core.Max(0, e.cursorRow-1)
	}
	if input.Has(core.ActionDown) {
		e.cursorRow = core.Min(e.grid.Height()-1, e.cursorRow+1)
	}
	if input.Has(core.ActionLeft) {
		e.cursorCol = core.Max(0, e.cursorCol-1)
	}
	if input.Has(core.ActionRight) {
		e.cursorCol = core.Min(e.grid.Width()-1, e.cursorCol+1)
	}
	if input.Has(core.ActionConfirm) {
		e.paint(e.cursorCol, e.cursorRow)
	}

	// Pointer painting: held buttons keep painting, so dragging draws a
	// stroke.
	if input.Pointer.Pressed {
		col, row := e.pointerTile(input.Pointer)
		if e.grid.InBounds(col, row) {
			e.cursorCol, e.cursorRow = col, row
			e.paint(col, row)
		}
	}
}

// paint writes the current tool's tile and re-derives the display grid.
func (e *Editor) paint(col, row int) {
	if e.grid.At(col, row) == e.tool {
		return
	}
	e.grid.Set(col, row, e.tool)
	e.display = maze.Encode(e.grid)
	e.dirty = true
}

// save writes the board to the configured file.
func (e *Editor) save() {
	path := e.cfg.File.Path
	if path == "" {
		e.setStatus("No file configured")
		return
	}
	if err := maze.SaveFile(path, e.grid); err != nil {
		e.setStatus("Save failed: " + err.Error())
		return
	}
	e.dirty = false
	e.setStatus("Saved " + path)
}

func (e *Editor) setStatus(msg string) {
	e.status = msg
	e.statusTicks = 180 // ~3 seconds at 60 FPS
}

// pointerCell converts a pixel-space pointer to screen cell coordinates.
func pointerCell(p core.Pointer) (int, int) {
	return int(math.Floor(p.X / maze.TileSize)), int(math.Floor(p.Y / maze.TileSize))
}

// pointerTile converts a pixel-space pointer to board tile coordinates,
// undoing the board's on-screen offset.
func (e *Editor) pointerTile(p core.Pointer) (int, int) {
	px := p.X - float64(e.mapOffsetX)*maze.TileSize
	py := p.Y - float64(e.hudHeight)*maze.TileSize + maze.MazeOffsetY
	return maze.PixelToTile(px, py)
}

// Grid exposes the current board.
func (e *Editor) Grid() *maze.Grid {
	return e.grid
}

// Render draws the editor to the screen.
func (e *Editor) Render(dst *core.Screen) {
	dst.Clear()

	e.renderHUD(dst)

	if e.tooSmall {
		e.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	e.renderBoard(dst)
	e.renderCursor(dst)

	if e.mode == modeMenu {
		e.renderMenu(dst)
	}
}

// renderHUD draws the top status bar.
func (e *Editor) renderHUD(dst *core.Screen) {
	mark := ""
	if e.dirty {
		mark = " *"
	}
	hud := fmt.Sprintf(" Editor — %s%s  Tool: %s [%c]", e.cfg.File.Path, mark, e.toolName(), toolGlyph(e.tool))
	dst.DrawText(0, 0, hud)

	if e.status != "" {
		dst.DrawTextColor(1, 1, e.status, core.ColorYellow)
	} else {
		dst.DrawTextColor(0, 1, " Paint: click/Enter  Tools: 0-3  Ctrl+S: save  Ctrl+X: clear  Esc: menu", core.ColorGray)
	}
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 2, '─')
	}
}

func toolGlyph(t maze.Tile) rune {
	if g, ok := toolGlyphs[t]; ok {
		return g
	}
	return '?'
}

func (e *Editor) toolName() string {
	switch e.tool {
	case maze.TileEmpty:
		return "Erase"
	case maze.TileWall:
		return "Wall"
	case maze.TilePelletSmall:
		return "Pellet"
	case maze.TilePelletBig:
		return "Power"
	}
	return "?"
}

// renderBoard draws the display grid, one cell per tile.
func (e *Editor) renderBoard(dst *core.Screen) {
	for row := 0; row < e.grid.Height(); row++ {
		for col := 0; col < e.grid.Width(); col++ {
			x := e.mapOffsetX + col
			y := e.hudHeight + row

			code := e.display.At(col, row)
			switch {
			case code.IsWall():
				dst.SetColor(x, y, maze.WallGlyphs[code.SpriteIndex()], core.ColorBlue)
			case maze.Tile(code) == maze.TilePelletSmall:
				dst.SetColor(x, y, '.', core.ColorWhite)
			case maze.Tile(code) == maze.TilePelletBig:
				dst.SetColor(x, y, 'o', core.ColorOrange)
			default:
				dst.SetColor(x, y, '·', core.ColorGray)
			}
		}
	}
}

// renderCursor highlights the paint cursor cell.
func (e *Editor) renderCursor(dst *core.Screen) {
	x := e.mapOffsetX + e.cursorCol
	y := e.hudHeight + e.cursorRow
	cell := dst.GetCell(x, y)
	dst.SetColor(x, y, cell.Rune, core.ColorYellow)
}

// renderMenu draws the overlay menu and records each item's bounds for
// pointer hit-testing.
func (e *Editor) renderMenu(dst *core.Screen) {
	boxW := 20
	boxH := len(e.menu) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, "Menu")

	for i := range e.menu {
		y := box.Y + 3 + i
		e.menu[i].bounds = core.NewRect(box.X+1, y, boxW-2, 1)

		label := "  " + e.menu[i].label
		if i == e.menuIndex {
			label = "> " + e.menu[i].label
			dst.DrawTextColor(box.X+2, y, label, core.ColorYellow)
		} else {
			dst.DrawText(box.X+2, y, label)
		}
	}
}

// renderOverlay draws a centered boxed message.
func (e *Editor) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len(line1), len(line2))
	box := core.NewRect((dst.Width()-maxLen-4)/2, (dst.Height()-5)/2, maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// State returns the current app state.
func (e *Editor) State() core.GameState {
	return core.GameState{Done: e.done}
}
