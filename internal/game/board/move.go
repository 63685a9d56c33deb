package board

import (
	"fmt"

	"go.uber.org/zap"
)

// MoveCost returns how many moves of a turn's budget the step list uses.
// Leaving a room through a door costs one move on top of the steps.
func MoveCost(dirs []Direction, exitDoor *Door) int {
	if exitDoor != nil {
		return len(dirs) + 1
	}
	return len(dirs)
}

// MovePlayer walks p along dirs, leaving its room through exitDoor first
// when one is given. The move either succeeds completely or leaves the
// player's position and room untouched.
//
// Precondition: p must have been added to the board.
// Postcondition: Returns nil on success, or a *MoveError naming why the
// move is not allowed.
func (b *Board) MovePlayer(p Player, dirs []Direction, exitDoor *Door) error {
	id := p.ID()
	from, ok := b.positions[id]
	if !ok {
		panic(fmt.Sprintf("board.MovePlayer: player %s is not on the board", id))
	}

	pos := from
	if exitDoor == nil {
		if p.Room() != nil {
			return b.refuse(p, dirs, ReasonMustExitThroughDoor)
		}
	} else {
		if exitDoor.Room() == nil {
			panic(fmt.Sprintf("board.MovePlayer: door at %s has no room", exitDoor.Location))
		}
		if p.Room() != exitDoor.Room() {
			return b.refuse(p, dirs, ReasonNotInThatRoom)
		}
		pos = exitDoor.PointBeside()
		if reason := b.checkCorridor(pos); reason != "" {
			return b.refuse(p, dirs, reason)
		}
	}

	if len(dirs) == 0 {
		if exitDoor == nil {
			return nil
		}
		if b.blockOccupied && b.occupiedByOther(pos, id) {
			return b.refuse(p, dirs, ReasonOccupied)
		}
		b.commit(p, from, pos, nil)
		return nil
	}

	for _, d := range dirs[:len(dirs)-1] {
		pos = pos.Step(d)
		if reason := b.checkCorridor(pos); reason != "" {
			return b.refuse(p, dirs, reason)
		}
	}

	last := dirs[len(dirs)-1]
	dest := pos.Step(last)
	if door, ok := b.doors[dest]; ok {
		if !door.EnterableFrom(last) {
			return b.refuse(p, dirs, ReasonWrongDoorApproach)
		}
		b.commit(p, from, dest, door.Room())
		return nil
	}
	if reason := b.checkCorridor(dest); reason != "" {
		return b.refuse(p, dirs, reason)
	}
	if b.blockOccupied && b.occupiedByOther(dest, id) {
		return b.refuse(p, dirs, ReasonOccupied)
	}
	b.commit(p, from, dest, nil)
	return nil
}

// TakePassage moves p through the secret passage of the room it is in. The
// player arrives in the passage's exit room, recorded at its first door, or
// at its centre if it has none.
//
// Precondition: p must have been added to the board.
func (b *Board) TakePassage(p Player) (*Room, error) {
	id := p.ID()
	from, ok := b.positions[id]
	if !ok {
		panic(fmt.Sprintf("board.TakePassage: player %s is not on the board", id))
	}
	room := p.Room()
	if room == nil {
		return nil, b.refuse(p, nil, ReasonNotInRoom)
	}
	exit := room.PassageExit()
	if exit == nil {
		return nil, b.refuse(p, nil, ReasonNoPassage)
	}
	dest := exit.CenterPoint()
	if d, ok := exit.Door(0); ok {
		dest = d.Location
	}
	b.commit(p, from, dest, exit)
	return exit, nil
}

// checkCorridor returns the refusal reason for walking onto p, or "".
func (b *Board) checkCorridor(p Point) string {
	if !b.InBounds(p) {
		return ReasonOutsideBoard
	}
	if !b.IsCorridor(p) {
		return ReasonThroughWall
	}
	return ""
}

func (b *Board) commit(p Player, from, to Point, room *Room) {
	b.positions[p.ID()] = to
	p.SetRoom(room)
	fields := []zap.Field{
		zap.String("player", p.ID().String()),
		zap.Stringer("from", from),
		zap.Stringer("to", to),
	}
	if room != nil {
		fields = append(fields, zap.String("room", room.Name))
	}
	b.logger.Debug("player moved", fields...)
}

func (b *Board) refuse(p Player, dirs []Direction, reason string) error {
	b.logger.Debug("move refused",
		zap.String("player", p.ID().String()),
		zap.String("steps", FormatDirections(dirs)),
		zap.String("reason", reason),
	)
	return unableToMove(reason)
}
