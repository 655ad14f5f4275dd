package core

// RuntimeConfig is passed to apps at initialization. Apps use it to adapt
// to the terminal size. The simulation is deterministic; there is no RNG
// seed to thread through.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState communicates an app's status to the platform.
type GameState struct {
	Done   bool // App is finished and wants to exit to the menu
	Paused bool // Simulation is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
