package core

// Action is a semantic player intent, abstracted from physical keys.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Left arrow, A
	ActionMoveRight        // Right arrow, D
	ActionMoveUp           // Up arrow, W
	ActionMoveDown         // Down arrow, S
	ActionShoot            // Space
	ActionPause            // P
	ActionMenu             // Esc - abandon the session and return to the menu
	ActionRestart          // R - return to the menu after game over
	ActionQuit             // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionShoot:
		return "Shoot"
	case ActionPause:
		return "Pause"
	case ActionMenu:
		return "Menu"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action is one of the four held directions.
func (a Action) IsMovement() bool {
	switch a {
	case ActionMoveLeft, ActionMoveRight, ActionMoveUp, ActionMoveDown:
		return true
	}
	return false
}

// InputEvent is a discrete input delivered to a session.
// Movement actions carry press and release; other actions are one-shot.
type InputEvent struct {
	Action   Action
	Released bool
}

// Press returns a pressed event for the action.
func Press(a Action) InputEvent {
	return InputEvent{Action: a}
}

// Release returns a released event for the action.
func Release(a Action) InputEvent {
	return InputEvent{Action: a, Released: true}
}
