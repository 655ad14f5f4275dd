// Package pacman implements the maze game: a player navigating a pellet
// maze with buffered turning. The simulation lives in internal/maze; this
// package adapts it to the app interface and draws it to a character
// screen, one terminal cell per tile.
package pacman

import (
	"fmt"

	"github.com/sirmarshall/pacade/internal/config"
	"github.com/sirmarshall/pacade/internal/core"
	"github.com/sirmarshall/pacade/internal/maze"
	"github.com/sirmarshall/pacade/internal/registry"
)

// playerGlyphs maps the facing direction to the player rune.
var playerGlyphs = map[maze.Direction]rune{
	maze.Stopped: 'O',
	maze.North:   '^',
	maze.East:    '>',
	maze.South:   'v',
	maze.West:    '<',
}

// Game adapts the maze simulation to the app interface.
type Game struct {
	cfg  config.GameConfig
	grid *maze.Grid
	sim  *maze.Simulation

	tick uint64
	dt   float64 // Seconds per simulation tick

	hudHeight  int
	mapOffsetX int
	screenW    int
	screenH    int

	levelName string

	done     bool
	paused   bool
	tooSmall bool
}

// Package-level overrides applied by the CLI before the game starts.
var (
	levelPath  string
	customGrid *maze.Grid
)

// SetLevelPath points the next game at a level file. An empty path selects
// the built-in board.
func SetLevelPath(path string) {
	levelPath = path
}

// SetGrid makes the next game run on an in-memory grid, bypassing the file
// lookup. Used by the level library to play stored boards.
func SetGrid(g *maze.Grid) {
	customGrid = g
}

// New creates a maze game with the given config.
func New(cfg config.GameConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("pacmaze", func() registry.Game {
		return New(config.DefaultGameConfig())
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "pacmaze"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pac Maze"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.done = false
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 3

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.dt = 1.0 / float64(tickRate)

	g.loadBoard()

	g.sim = maze.NewSimulation(g.grid, maze.SimConfig{
		Speed:    g.cfg.Player.Speed,
		SpawnCol: g.cfg.Player.SpawnCol,
		SpawnRow: g.cfg.Player.SpawnRow,
	})

	g.layout()
}

// loadBoard resolves the board for this run: an injected grid wins, then
// the configured level file, then the built-in board.
func (g *Game) loadBoard() {
	if customGrid != nil {
		g.grid = customGrid.Clone()
		g.levelName = "custom"
		customGrid = nil
		return
	}

	path := levelPath
	if path == "" {
		path = g.cfg.Level.Path
	}
	if path == "" {
		g.grid = maze.ClassicBoard()
		g.levelName = "classic"
		return
	}

	grid, ok := maze.LoadFile(path)
	g.grid = grid
	if ok {
		g.levelName = path
	} else {
		g.levelName = "classic"
	}
}

// layout centers the board and checks the screen fits.
func (g *Game) layout() {
	requiredW := g.grid.Width()
	requiredH := g.grid.Height() + g.hudHeight
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.mapOffsetX = (g.screenW - g.grid.Width()) / 2
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionBack) || input.Has(core.ActionQuit) {
		g.done = true
	}
	if input.Has(core.ActionRestart) {
		g.sim.Reset()
	}
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.done || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.sim.Step(g.dt, desiredDirection(input))

	return core.StepResult{State: g.State()}
}

// desiredDirection maps this frame's movement actions to a direction
// request. Stopped means no new request; the simulation keeps the
// previously buffered one.
func desiredDirection(input core.InputFrame) maze.Direction {
	switch {
	case input.Has(core.ActionUp):
		return maze.North
	case input.Has(core.ActionDown):
		return maze.South
	case input.Has(core.ActionLeft):
		return maze.West
	case input.Has(core.ActionRight):
		return maze.East
	}
	return maze.Stopped
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	for _, cmd := range g.sim.DrawCommands() {
		x, y := g.toCell(cmd.X, cmd.Y)
		switch cmd.Kind {
		case maze.DrawWall:
			dst.SetColor(x, y, maze.WallGlyphs[cmd.SpriteIndex], core.ColorBlue)
		case maze.DrawPelletSmall:
			dst.SetColor(x, y, '.', core.ColorWhite)
		case maze.DrawPelletBig:
			dst.SetColor(x, y, 'o', core.ColorOrange)
		case maze.DrawPlayer:
			dst.SetColor(x, y, playerGlyphs[cmd.Facing], core.ColorYellow)
		}
	}

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// toCell converts a draw-command pixel position to a screen cell. Tiles
// are one cell each; the vertical pixel offset above the board maps onto
// the HUD rows.
func (g *Game) toCell(px, py float64) (int, int) {
	col, row := maze.PixelToTile(px, py)
	return g.mapOffsetX + col, g.hudHeight + row
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Pac Maze — Level: %s  Pellets: %d", g.levelName, g.grid.PelletCount())
	dst.DrawText(0, 0, hud)
	dst.DrawTextColor(0, 1, " Move: WASD/arrows  R: respawn  P: pause  Esc: menu", core.ColorGray)
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 2, '─')
	}
}

// renderOverlay draws a centered boxed message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Done:   g.done,
		Paused: g.paused,
	}
}
