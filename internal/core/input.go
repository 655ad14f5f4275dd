package core

// Action is a semantic input action, abstracted from physical key presses.
// Apps work with high-level intents rather than raw input.
type Action int

const (
	ActionNone Action = iota

	// Movement (game) / navigation (menus)
	ActionUp
	ActionDown
	ActionLeft
	ActionRight

	ActionConfirm // Enter - confirm selection
	ActionBack    // Esc - back to menu
	ActionRestart // R - restart after game over
	ActionQuit    // Q, Ctrl+C - exit session
	ActionPause   // P - pause/unpause

	// Editor tools and commands
	ActionToolErase  // 0 - paint empty space
	ActionToolWall   // 1 - paint walls
	ActionToolPellet // 2 - paint small pellets
	ActionToolPower  // 3 - paint big pellets
	ActionSave       // S - write level to disk
	ActionClear      // C - reset to the blank template
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionToolErase:
		return "ToolErase"
	case ActionToolWall:
		return "ToolWall"
	case ActionToolPellet:
		return "ToolPellet"
	case ActionToolPower:
		return "ToolPower"
	case ActionSave:
		return "Save"
	case ActionClear:
		return "Clear"
	default:
		return "Unknown"
	}
}

// Pointer is the continuous pointing-device state delivered with each input
// frame. Position is in pixel space, the same coordinate system the
// walkability oracle uses; the platform converts terminal cells to pixels.
type Pointer struct {
	X, Y    float64
	Pressed bool
}

// InputFrame is the input state for a single simulation tick: the set of
// actions triggered during the frame plus the pointer state.
type InputFrame struct {
	Actions map[Action]bool
	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether an action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets the triggered actions for the next frame. The pointer
// position and pressed state persist; they are continuous, not edge
// events.
func (f *InputFrame) Clear() {
	for a := range f.Actions {
		delete(f.Actions, a)
	}
}

// Clone creates a deep copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for a, v := range f.Actions {
		clone.Actions[a] = v
	}
	clone.Pointer = f.Pointer
	return clone
}
