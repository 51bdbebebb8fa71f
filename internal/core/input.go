package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - steer up
	ActionDown           // S, Down arrow - steer down
	ActionLeft           // A, Left arrow - steer left
	ActionRight          // D, Right arrow - steer right
	ActionPause          // Enter, P - pause the simulation
	ActionConfirm        // Enter - acknowledge a notice
	ActionYes            // Y - play again after game over
	ActionNo             // N - decline another round
	ActionBack           // Esc - go back to menu
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionPause:   "Pause",
	ActionConfirm: "Confirm",
	ActionYes:     "Yes",
	ActionNo:      "No",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// Direction returns the unit heading (in tiles) selected by a steering action.
// ok is false for actions that do not steer.
func (a Action) Direction() (dir Point, ok bool) {
	switch a {
	case ActionUp:
		return Point{X: 0, Y: -1}, true
	case ActionDown:
		return Point{X: 0, Y: 1}, true
	case ActionLeft:
		return Point{X: -1, Y: 0}, true
	case ActionRight:
		return Point{X: 1, Y: 0}, true
	default:
		return Point{}, false
	}
}
