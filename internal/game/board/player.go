package board

import "github.com/google/uuid"

// Player is what the board needs from a participant. The board stores only
// the player's coordinate; the current room lives on the player and is read
// and written through this interface.
type Player interface {
	// ID is the key the board tracks the player's position under.
	ID() uuid.UUID
	// Token is the suspect the player moves.
	Token() *Suspect
	// Room is the room the player is in, or nil in a corridor.
	Room() *Room
	SetRoom(r *Room)
	// Active reports whether the player still takes part in the game.
	// Inactive players never block a corridor cell.
	Active() bool
}
