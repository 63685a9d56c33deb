package board

import "errors"

// ErrUnableToMove matches every *MoveError with errors.Is.
var ErrUnableToMove = errors.New("unable to move")

// Reasons carried by MoveError. Front ends show them to the player verbatim.
const (
	ReasonMustExitThroughDoor = "You must go out through a door"
	ReasonNotInThatRoom       = "You're not in that room"
	ReasonOutsideBoard        = "You're trying to go outside the board"
	ReasonThroughWall         = "You're trying to move through a wall"
	ReasonWrongDoorApproach   = "You can't enter this door that way"
	ReasonOccupied            = "You can't move onto another player"
	ReasonNotInRoom           = "You're not in a room"
	ReasonNoPassage           = "There's no secret passage from this room"
)

// MoveError reports a move the rules do not allow. It is an expected outcome;
// the caller should ask the player for another move.
type MoveError struct {
	Reason string
}

func (e *MoveError) Error() string {
	return "unable to move: " + e.Reason
}

// Is reports whether target is ErrUnableToMove.
func (e *MoveError) Is(target error) bool {
	return target == ErrUnableToMove
}

func unableToMove(reason string) *MoveError {
	return &MoveError{Reason: reason}
}
