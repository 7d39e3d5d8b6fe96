package tetris

import "github.com/Tranquil-fella/brick-game/internal/core"

// Direction is the movement part of a player action.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
	DirRotate

	directionCount
)

// Command is a queued movement request. Hold distinguishes a hard drop
// from a soft drop for DirDown.
type Command struct {
	Dir  Direction
	Hold bool
}

// Move is the board operation a command resolves to.
type Move uint8

const (
	MoveNone Move = iota
	MoveLeft
	MoveRight
	MoveSoftDrop
	MoveHardDrop
	MoveRotate
)

// moveTable resolves commands by [hold][direction].
var moveTable = [2][directionCount]Move{
	{MoveLeft, MoveRight, MoveNone, MoveSoftDrop, MoveRotate},
	{MoveLeft, MoveRight, MoveNone, MoveHardDrop, MoveRotate},
}

// Move returns the operation for this command.
func (c Command) Move() Move {
	if c.Dir >= directionCount {
		return MoveNone
	}
	hold := 0
	if c.Hold {
		hold = 1
	}
	return moveTable[hold][c.Dir]
}

// softDrop is the command the autoshift scheduler injects.
var softDrop = Command{Dir: DirDown}

// commandFor converts a movement action to a queued command.
func commandFor(action core.UserAction, hold bool) (Command, bool) {
	if !action.IsMovement() {
		return Command{}, false
	}
	return Command{Dir: Direction(action - core.FirstMovement), Hold: hold}, true
}

func (m Move) String() string {
	switch m {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveSoftDrop:
		return "soft-drop"
	case MoveHardDrop:
		return "hard-drop"
	case MoveRotate:
		return "rotate"
	default:
		return "none"
	}
}
