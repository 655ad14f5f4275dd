package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sirmarshall/pacade/internal/core"
	"github.com/sirmarshall/pacade/internal/maze"
)

// KeyMapper translates Bubble Tea input messages to app actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "enter", " ":
		return core.ActionConfirm, false
	case "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false

	// Editor bindings. The movement keys double as the paint cursor, so
	// the file commands hide behind modifiers.
	case "0":
		return core.ActionToolErase, false
	case "1":
		return core.ActionToolWall, false
	case "2":
		return core.ActionToolPellet, false
	case "3":
		return core.ActionToolPower, false
	case "ctrl+s":
		return core.ActionSave, false
	case "ctrl+x":
		return core.ActionClear, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame updates an input frame's pointer from a mouse message.
// Terminal cells map onto pixel space one tile per cell, matching the
// convention the apps use to place tiles on screen.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	frame.Pointer.X = float64(msg.X) * maze.TileSize
	frame.Pointer.Y = float64(msg.Y) * maze.TileSize

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			frame.Pointer.Pressed = true
		}
	case tea.MouseActionRelease:
		frame.Pointer.Pressed = false
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionLevels
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab", "l":
		return MenuActionLevels
	}

	return MenuActionNone
}
