package core

// Action represents a semantic game action, abstracted from physical key
// presses or pointer events. This allows the game to work with high-level
// intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionToggleLeft         // S key, left-half click - toggle left vehicle lane
	ActionToggleRight        // K key, right-half click - toggle right vehicle lane
	ActionPause              // P, Escape - pause/unpause game
	ActionRestart            // R key - restart game after game over
	ActionQuit               // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionToggleLeft:
		return "ToggleLeft"
	case ActionToggleRight:
		return "ToggleRight"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
