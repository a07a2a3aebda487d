package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avolkov/twinlane/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// This centralizes bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "s":
		return core.ActionToggleLeft, false
	case "k":
		return core.ActionToggleRight, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapMouse translates a mouse press to an action: the left half of the
// screen toggles the left vehicle, the right half the right vehicle.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, screenW int) core.Action {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return core.ActionNone
	}
	if msg.X < screenW/2 {
		return core.ActionToggleLeft
	}
	return core.ActionToggleRight
}
