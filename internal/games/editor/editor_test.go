package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirmarshall/pacade/internal/config"
	"github.com/sirmarshall/pacade/internal/core"
	"github.com/sirmarshall/pacade/internal/maze"
)

func newTestEditor(t *testing.T) *Editor {
	t.Helper()
	e := New(config.EditorConfig{
		Grid: config.GridConfig{Cols: 10, Rows: 8},
		File: config.FileConfig{Path: filepath.Join(t.TempDir(), "level.txt")},
	})
	e.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	return e
}

func stepWith(e *Editor, actions ...core.Action) core.StepResult {
	input := core.NewInputFrame()
	for _, a := range actions {
		input.Set(a)
	}
	return e.Step(input)
}

func stepPointer(e *Editor, x, y float64, pressed bool) core.StepResult {
	input := core.NewInputFrame()
	input.Pointer = core.Pointer{X: x, Y: y, Pressed: pressed}
	return e.Step(input)
}

func TestResetBlankTemplate(t *testing.T) {
	e := newTestEditor(t)

	if e.grid.Width() != 10 || e.grid.Height() != 8 {
		t.Fatalf("board is %dx%d, want 10x8", e.grid.Width(), e.grid.Height())
	}
	for row := 0; row < e.grid.Height(); row++ {
		for col := 0; col < e.grid.Width(); col++ {
			if e.grid.At(col, row) != maze.TileEmpty {
				t.Fatalf("tile (%d,%d) = %v, want empty", col, row, e.grid.At(col, row))
			}
		}
	}
	if e.tool != maze.TileWall {
		t.Errorf("initial tool = %v, want wall", e.tool)
	}
	if e.mode != modeEditing {
		t.Errorf("initial mode = %v, want editing", e.mode)
	}
}

func TestBorderedTemplate(t *testing.T) {
	e := New(config.EditorConfig{
		Grid: config.GridConfig{Cols: 6, Rows: 5, Bordered: true},
	})
	e.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})

	if !e.grid.IsWall(0, 0) || !e.grid.IsWall(5, 4) {
		t.Error("bordered template is missing its wall ring")
	}
	if e.grid.At(2, 2) != maze.TileEmpty {
		t.Error("bordered template interior is not empty")
	}
}

func TestCursorPainting(t *testing.T) {
	e := newTestEditor(t)
	col, row := e.cursorCol, e.cursorRow

	stepWith(e, core.ActionConfirm)
	if e.grid.At(col, row) != maze.TileWall {
		t.Fatalf("tile (%d,%d) = %v after paint, want wall", col, row, e.grid.At(col, row))
	}
	if !e.display.At(col, row).IsWall() {
		t.Error("display grid was not re-derived after painting")
	}
	if !e.dirty {
		t.Error("dirty = false after painting")
	}

	stepWith(e, core.ActionRight, core.ActionConfirm)
	if e.grid.At(col+1, row) != maze.TileWall {
		t.Error("cursor did not move before painting")
	}

	// Adjacent walls must see each other in the display encoding.
	want := maze.DisplayCode(maze.WallCodeOffset + 8) // east neighbor only
	if got := e.display.At(col, row); got != want {
		t.Errorf("display at (%d,%d) = %d, want %d", col, row, got, want)
	}
}

func TestToolSelection(t *testing.T) {
	tests := []struct {
		action core.Action
		want   maze.Tile
	}{
		{core.ActionToolErase, maze.TileEmpty},
		{core.ActionToolWall, maze.TileWall},
		{core.ActionToolPellet, maze.TilePelletSmall},
		{core.ActionToolPower, maze.TilePelletBig},
	}

	e := newTestEditor(t)
	for _, tt := range tests {
		stepWith(e, tt.action)
		if e.tool != tt.want {
			t.Errorf("tool after %v = %v, want %v", tt.action, e.tool, tt.want)
		}
		stepWith(e, core.ActionConfirm)
		if got := e.grid.At(e.cursorCol, e.cursorRow); got != tt.want {
			t.Errorf("painted tile = %v, want %v", got, tt.want)
		}
	}
}

func TestCursorClampedToBoard(t *testing.T) {
	e := newTestEditor(t)

	for range 30 {
		stepWith(e, core.ActionUp, core.ActionLeft)
	}
	if e.cursorCol != 0 || e.cursorRow != 0 {
		t.Errorf("cursor = (%d,%d), want clamped to (0,0)", e.cursorCol, e.cursorRow)
	}

	for range 30 {
		stepWith(e, core.ActionDown, core.ActionRight)
	}
	if e.cursorCol != e.grid.Width()-1 || e.cursorRow != e.grid.Height()-1 {
		t.Errorf("cursor = (%d,%d), want clamped to bottom-right", e.cursorCol, e.cursorRow)
	}
}

func TestPointerPainting(t *testing.T) {
	e := newTestEditor(t)

	col, row := 3, 4
	px := float64(e.mapOffsetX+col) * maze.TileSize
	py := float64(e.hudHeight+row) * maze.TileSize

	stepPointer(e, px, py, true)
	if e.grid.At(col, row) != maze.TileWall {
		t.Fatalf("tile (%d,%d) = %v after pointer paint, want wall", col, row, e.grid.At(col, row))
	}
	if e.cursorCol != col || e.cursorRow != row {
		t.Errorf("cursor = (%d,%d), want it to follow the pointer to (%d,%d)", e.cursorCol, e.cursorRow, col, row)
	}

	// A held press keeps painting as the pointer moves.
	px2 := float64(e.mapOffsetX+col+1) * maze.TileSize
	stepPointer(e, px2, py, true)
	if e.grid.At(col+1, row) != maze.TileWall {
		t.Error("drag did not paint the next tile")
	}

	// Unpressed pointer paints nothing.
	px3 := float64(e.mapOffsetX+col+2) * maze.TileSize
	stepPointer(e, px3, py, false)
	if e.grid.At(col+2, row) != maze.TileEmpty {
		t.Error("released pointer painted a tile")
	}
}

func TestPointerOutsideBoardIgnored(t *testing.T) {
	e := newTestEditor(t)
	before := e.grid.Clone()

	stepPointer(e, 0, 0, true) // HUD area, left of the board
	if !e.grid.Equal(before) {
		t.Error("pointer outside the board modified it")
	}
}

func TestSaveAndReload(t *testing.T) {
	e := newTestEditor(t)

	stepWith(e, core.ActionConfirm) // paint one wall
	stepWith(e, core.ActionSave)

	if e.dirty {
		t.Error("dirty = true after save")
	}
	data, err := os.ReadFile(e.cfg.File.Path)
	if err != nil {
		t.Fatalf("saved file unreadable: %v", err)
	}
	if parsed := maze.Parse(string(data)); !parsed.Equal(e.grid) {
		t.Error("saved file does not round-trip to the board")
	}

	// Paint over it, then reload from the file via the menu.
	saved := e.grid.Clone()
	stepWith(e, core.ActionRight, core.ActionConfirm)
	if e.grid.Equal(saved) {
		t.Fatal("board unchanged before reload")
	}

	stepWith(e, core.ActionBack) // open menu
	e.menuIndex = 2              // Reload file
	stepWith(e, core.ActionConfirm)

	if !e.grid.Equal(saved) {
		t.Error("reload did not restore the saved board")
	}
	if e.mode != modeEditing {
		t.Error("reload did not return to editing")
	}
}

func TestClearResetsBoard(t *testing.T) {
	e := newTestEditor(t)

	stepWith(e, core.ActionConfirm)
	stepWith(e, core.ActionClear)

	if e.grid.At(e.cursorCol, e.cursorRow) != maze.TileEmpty {
		t.Error("clear did not blank the board")
	}
	if e.grid.Width() != 10 || e.grid.Height() != 8 {
		t.Errorf("cleared board is %dx%d, want the 10x8 template", e.grid.Width(), e.grid.Height())
	}
}

func TestMenuKeyboardNavigation(t *testing.T) {
	e := newTestEditor(t)

	stepWith(e, core.ActionBack)
	if e.mode != modeMenu {
		t.Fatal("Back did not open the menu")
	}

	for range len(e.menu) + 2 {
		stepWith(e, core.ActionDown)
	}
	if e.menuIndex != len(e.menu)-1 {
		t.Errorf("menuIndex = %d, want clamped to %d", e.menuIndex, len(e.menu)-1)
	}

	stepWith(e, core.ActionConfirm) // Exit
	if !e.done {
		t.Error("Exit did not finish the session")
	}
	if !e.State().Done {
		t.Error("State().Done = false after exit")
	}
}

func TestMenuPointerActivation(t *testing.T) {
	e := newTestEditor(t)

	stepWith(e, core.ActionBack)
	dst := core.NewScreen(80, 24)
	e.Render(dst) // fills menu item bounds

	bounds := e.menu[0].bounds // Resume
	px := float64(bounds.X) * maze.TileSize
	py := float64(bounds.Y) * maze.TileSize

	stepPointer(e, px, py, true)
	if e.mode != modeEditing {
		t.Error("pointer press on Resume did not close the menu")
	}
}

func TestMenuPressEdgeDetection(t *testing.T) {
	e := newTestEditor(t)

	// Hold the button while the menu opens: the stale press must not
	// activate an item.
	opening := core.NewInputFrame()
	opening.Set(core.ActionBack)
	opening.Pointer = core.Pointer{Pressed: true}
	e.Step(opening)
	dst := core.NewScreen(80, 24)
	e.Render(dst)

	bounds := e.menu[4].bounds // Exit
	px := float64(bounds.X) * maze.TileSize
	py := float64(bounds.Y) * maze.TileSize

	input := core.NewInputFrame()
	input.Pointer = core.Pointer{X: px, Y: py, Pressed: true}
	e.Step(input)

	if e.done {
		t.Error("held press activated a menu item without a fresh click")
	}
}

func TestEditorTooSmall(t *testing.T) {
	e := New(config.EditorConfig{Grid: config.GridConfig{Cols: 28, Rows: 31}})
	e.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60})

	if !e.tooSmall {
		t.Fatal("tooSmall = false on a 20x10 screen")
	}

	dst := core.NewScreen(20, 10)
	e.Render(dst)
}
