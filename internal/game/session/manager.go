package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/cory-johannsen/cluedo/internal/game/board"
)

// Manager is the roster of players in a game. Each suspect may be taken by
// at most one player.
// All methods are safe for concurrent use.
type Manager struct {
	mu        sync.RWMutex
	players   map[uuid.UUID]*Player
	bySuspect map[rune]uuid.UUID
	order     []uuid.UUID
}

// NewManager creates an empty roster.
func NewManager() *Manager {
	return &Manager{
		players:   make(map[uuid.UUID]*Player),
		bySuspect: make(map[rune]uuid.UUID),
	}
}

// Add registers a new player named name moving token.
//
// Precondition: name must be non-empty; token must be non-nil.
// Postcondition: Returns the created Player, or an error if the suspect is
// already taken.
func (m *Manager) Add(name string, token *board.Suspect) (*Player, error) {
	if name == "" {
		return nil, fmt.Errorf("player name must not be empty")
	}
	if token == nil {
		return nil, fmt.Errorf("player %q: token must not be nil", name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if id, taken := m.bySuspect[token.ID]; taken {
		return nil, fmt.Errorf("suspect %q already taken by %q", token.Name, m.players[id].name)
	}
	p := NewPlayer(name, token)
	m.players[p.id] = p
	m.bySuspect[token.ID] = p.id
	m.order = append(m.order, p.id)
	return p, nil
}

// Remove drops a player from the roster.
//
// Postcondition: Returns an error if the player is not found.
func (m *Manager) Remove(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.players[id]
	if !ok {
		return fmt.Errorf("player %s not found", id)
	}
	delete(m.players, id)
	delete(m.bySuspect, p.token.ID)
	for i, o := range m.order {
		if o == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns the player with the given ID.
func (m *Manager) Get(id uuid.UUID) (*Player, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.players[id]
	return p, ok
}

// BySuspect returns the player moving the suspect with identifier id.
func (m *Manager) BySuspect(id rune) (*Player, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	pid, ok := m.bySuspect[id]
	if !ok {
		return nil, false
	}
	return m.players[pid], true
}

// List returns the players in the order they joined.
func (m *Manager) List() []*Player {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Player, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.players[id])
	}
	return out
}

// Count returns the number of players.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.players)
}

// InRoom returns the players currently in room, in join order.
func (m *Manager) InRoom(room *board.Room) []*Player {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*Player
	for _, id := range m.order {
		p := m.players[id]
		if p.Room() == room {
			out = append(out, p)
		}
	}
	return out
}

// Deactivate takes a player out of play without removing it. It no longer
// blocks corridor cells.
func (m *Manager) Deactivate(id uuid.UUID) error {
	p, ok := m.Get(id)
	if !ok {
		return fmt.Errorf("player %s not found", id)
	}
	p.SetActive(false)
	return nil
}

// Reset returns every player to play outside any room.
func (m *Manager) Reset() {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.players {
		p.SetRoom(nil)
		p.SetActive(true)
	}
}

// PlaceAll adds every player to b at its suspect's start.
//
// Precondition: every player's suspect must have a start on b.
func (m *Manager) PlaceAll(b *board.Board) {
	for _, p := range m.List() {
		b.AddPlayer(p)
	}
}
