package pacman

import "github.com/sirmarshall/pacade/internal/maze"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateDone        GameStateType = "done"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Level   string
	X       float64
	Y       float64
	Actual  maze.Direction
	Desired maze.Direction
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.done:
		state = StateDone
	case g.paused:
		state = StatePaused
	}

	p := g.sim.Player()
	return Snapshot{
		Tick:    g.tick,
		Level:   g.levelName,
		X:       p.Pos.X,
		Y:       p.Pos.Y,
		Actual:  p.Actual,
		Desired: p.Desired,
		State:   state,
	}
}
