package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/cory-johannsen/cluedo/internal/game/board"
)

// Player is a participant in a game. It satisfies board.Player; the board
// records its coordinate while the player itself holds its current room.
type Player struct {
	id    uuid.UUID
	name  string
	token *board.Suspect

	mu     sync.RWMutex
	room   *board.Room
	active bool
}

// NewPlayer creates an active player moving token.
func NewPlayer(name string, token *board.Suspect) *Player {
	return &Player{id: uuid.New(), name: name, token: token, active: true}
}

// ID returns the player's unique identifier.
func (p *Player) ID() uuid.UUID { return p.id }

// Name returns the player's display name.
func (p *Player) Name() string { return p.name }

// Token returns the suspect the player moves.
func (p *Player) Token() *board.Suspect { return p.token }

// Room returns the room the player is in, or nil.
func (p *Player) Room() *board.Room {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.room
}

// SetRoom records the room the player is in. Nil means a corridor.
func (p *Player) SetRoom(r *board.Room) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.room = r
}

// Active reports whether the player is still in the game.
func (p *Player) Active() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.active
}

// SetActive marks the player in or out of the game.
func (p *Player) SetActive(active bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active = active
}

func (p *Player) String() string {
	if p.token == nil {
		return p.name
	}
	return p.name + " (" + p.token.Name + ")"
}
