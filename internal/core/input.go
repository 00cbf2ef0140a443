package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow - shift along the floor
	ActionRight          // Right arrow - shift along the floor
	ActionUp             // Up arrow - climb one floor
	ActionJump           // Space - climbs like ActionUp
	ActionDown           // Down arrow - descend one floor
	ActionConfirm        // Enter - start or restart a session
	ActionRestart        // R key - restart after the session ended
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionJump:
		return "Jump"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action moves the climber.
func (a Action) IsMovement() bool {
	switch a {
	case ActionLeft, ActionRight, ActionUp, ActionJump, ActionDown:
		return true
	}
	return false
}
