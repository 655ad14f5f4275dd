package pacman

import (
	"testing"

	"github.com/sirmarshall/pacade/internal/config"
	"github.com/sirmarshall/pacade/internal/core"
	"github.com/sirmarshall/pacade/internal/maze"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New(config.DefaultGameConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: 60})
	return g
}

func stepWith(g *Game, actions ...core.Action) core.StepResult {
	input := core.NewInputFrame()
	for _, a := range actions {
		input.Set(a)
	}
	return g.Step(input)
}

func TestResetLoadsClassicBoard(t *testing.T) {
	g := newTestGame(t)

	if g.grid.Width() != 28 || g.grid.Height() != 25 {
		t.Errorf("board is %dx%d, want 28x25", g.grid.Width(), g.grid.Height())
	}

	snap := g.Snapshot()
	if snap.Level != "classic" {
		t.Errorf("Level = %q, want %q", snap.Level, "classic")
	}
	wantX := 13.5 * maze.TileSize
	wantY := 23.5*maze.TileSize + maze.MazeOffsetY
	if snap.X != wantX || snap.Y != wantY {
		t.Errorf("spawn = (%v, %v), want (%v, %v)", snap.X, snap.Y, wantX, wantY)
	}
	if snap.Actual != maze.Stopped || snap.Desired != maze.Stopped {
		t.Errorf("spawn directions = %v/%v, want Stopped/Stopped", snap.Actual, snap.Desired)
	}
}

func TestSetGridOverridesLevel(t *testing.T) {
	grid := maze.NewBordered(9, 9)
	SetGrid(grid)

	g := New(config.GameConfig{
		Player: config.PlayerConfig{Speed: 40, SpawnCol: 4.5, SpawnRow: 4.5},
	})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: 60})

	if g.grid.Width() != 9 || g.grid.Height() != 9 {
		t.Errorf("board is %dx%d, want 9x9", g.grid.Width(), g.grid.Height())
	}
	if g.levelName != "custom" {
		t.Errorf("levelName = %q, want %q", g.levelName, "custom")
	}

	// The injected grid is consumed: the next game falls back to the default.
	g2 := newTestGame(t)
	if g2.levelName != "classic" {
		t.Errorf("second game levelName = %q, want %q", g2.levelName, "classic")
	}
}

func TestMovementFollowsInput(t *testing.T) {
	grid := maze.NewBordered(9, 9)
	SetGrid(grid)

	g := New(config.GameConfig{
		Player: config.PlayerConfig{Speed: 40, SpawnCol: 4.5, SpawnRow: 4.5},
	})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: 60})

	start := g.Snapshot()
	stepWith(g, core.ActionLeft)
	for range 5 {
		stepWith(g)
	}

	snap := g.Snapshot()
	if snap.Actual != maze.West {
		t.Errorf("Actual = %v, want West", snap.Actual)
	}
	if snap.X >= start.X {
		t.Errorf("X = %v, want less than start %v after moving west", snap.X, start.X)
	}
	if snap.Y != start.Y {
		t.Errorf("Y drifted during horizontal movement")
	}
}

func TestDesiredDirectionMapping(t *testing.T) {
	tests := []struct {
		action core.Action
		want   maze.Direction
	}{
		{core.ActionUp, maze.North},
		{core.ActionDown, maze.South},
		{core.ActionLeft, maze.West},
		{core.ActionRight, maze.East},
		{core.ActionConfirm, maze.Stopped},
	}

	for _, tt := range tests {
		input := core.NewInputFrame()
		input.Set(tt.action)
		if got := desiredDirection(input); got != tt.want {
			t.Errorf("desiredDirection(%v) = %v, want %v", tt.action, got, tt.want)
		}
	}
}

func TestPauseFreezesPlayer(t *testing.T) {
	grid := maze.NewBordered(9, 9)
	SetGrid(grid)

	g := New(config.GameConfig{
		Player: config.PlayerConfig{Speed: 40, SpawnCol: 4.5, SpawnRow: 4.5},
	})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: 60})

	stepWith(g, core.ActionLeft)
	stepWith(g, core.ActionPause)
	pausedX := g.Snapshot().X

	for range 10 {
		stepWith(g)
	}
	if got := g.Snapshot().X; got != pausedX {
		t.Errorf("X = %v after paused ticks, want %v", got, pausedX)
	}
	if !g.State().Paused {
		t.Error("State().Paused = false, want true")
	}

	stepWith(g, core.ActionPause)
	stepWith(g)
	if got := g.Snapshot().X; got == pausedX {
		t.Error("player did not resume after unpause")
	}
}

func TestRestartRespawns(t *testing.T) {
	grid := maze.NewBordered(9, 9)
	SetGrid(grid)

	g := New(config.GameConfig{
		Player: config.PlayerConfig{Speed: 40, SpawnCol: 4.5, SpawnRow: 4.5},
	})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: 60})
	spawn := g.Snapshot()

	stepWith(g, core.ActionRight)
	for range 20 {
		stepWith(g)
	}
	if g.Snapshot().X == spawn.X {
		t.Fatal("player did not move before restart")
	}

	stepWith(g, core.ActionRestart)
	snap := g.Snapshot()
	if snap.X != spawn.X || snap.Y != spawn.Y {
		t.Errorf("after restart at (%v, %v), want spawn (%v, %v)", snap.X, snap.Y, spawn.X, spawn.Y)
	}
	if snap.Actual != maze.Stopped {
		t.Errorf("Actual = %v after restart, want Stopped", snap.Actual)
	}
}

func TestBackFinishesGame(t *testing.T) {
	g := newTestGame(t)

	result := stepWith(g, core.ActionBack)
	if !result.State.Done {
		t.Error("State.Done = false after Back, want true")
	}
}

func TestDeterministicRuns(t *testing.T) {
	script := [][]core.Action{
		{core.ActionLeft}, {}, {}, {core.ActionUp}, {}, {},
		{core.ActionRight}, {}, {}, {}, {core.ActionDown}, {}, {},
	}

	run := func() []Snapshot {
		g := newTestGame(t)
		var snaps []Snapshot
		for _, actions := range script {
			stepWith(g, actions...)
			snaps = append(snaps, g.Snapshot())
		}
		return snaps
	}

	first := run()
	second := run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("snapshot %d diverged: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New(config.DefaultGameConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: 60})

	if !g.tooSmall {
		t.Fatal("tooSmall = false on a 10x5 screen")
	}

	before := g.Snapshot().X
	stepWith(g, core.ActionLeft)
	if got := g.Snapshot().X; got != before {
		t.Error("player moved while the window is too small")
	}

	// Rendering the overlay must not panic on a tiny screen.
	dst := core.NewScreen(10, 5)
	g.Render(dst)
}

func TestRenderPlayerAndWalls(t *testing.T) {
	g := newTestGame(t)

	dst := core.NewScreen(80, 40)
	g.Render(dst)

	// Player at rest sits at tile (13, 23), offset by the HUD and map
	// centering.
	px := g.mapOffsetX + 13
	py := g.hudHeight + 23
	if got := dst.Get(px, py); got != 'O' {
		t.Errorf("player cell = %q, want 'O'", got)
	}
	if cell := dst.GetCell(px, py); cell.Color != core.ColorYellow {
		t.Errorf("player color = %v, want yellow", cell.Color)
	}

	// The top-left board corner is an outer wall junction.
	if cell := dst.GetCell(g.mapOffsetX, g.hudHeight); cell.Color != core.ColorBlue {
		t.Errorf("wall color = %v, want blue", cell.Color)
	}
}
