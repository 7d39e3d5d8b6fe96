package core

// UserAction is a raw player intent delivered to a game backend.
// The order matters: lifecycle actions come first, movement actions after.
type UserAction int

const (
	ActionStart UserAction = iota
	ActionPause
	ActionTerminate
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionAction // rotate

	actionCount
)

// FirstMovement is the first action that is treated as a piece movement.
const FirstMovement = ActionLeft

// Valid reports whether a is one of the known actions.
func (a UserAction) Valid() bool {
	return a >= ActionStart && a < actionCount
}

// IsMovement returns true for actions that move or rotate the active piece.
func (a UserAction) IsMovement() bool {
	return a >= FirstMovement && a < actionCount
}

// String returns a human-readable name for the action.
func (a UserAction) String() string {
	switch a {
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionTerminate:
		return "Terminate"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionAction:
		return "Action"
	default:
		return "Unknown"
	}
}
