package board

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Board owns the static geometry of a game together with the position of
// every placed player. It is the single authority on movement legality.
//
// A Board is not safe for concurrent mutation; callers serialise turns.
type Board struct {
	def   *Definition
	doors map[Point]*Door

	positions map[uuid.UUID]Point
	players   map[uuid.UUID]Player
	order     []uuid.UUID

	blockOccupied bool
	logger        *zap.Logger
}

// Option configures a Board.
type Option func(*Board)

// WithOccupancyBlocking sets whether a move may end on a corridor cell held
// by another active player. Blocking is on by default.
func WithOccupancyBlocking(block bool) Option {
	return func(b *Board) { b.blockOccupied = block }
}

// WithLogger sets the logger moves are reported to.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Board) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// New creates a board over def with no players.
//
// Precondition: def must be non-nil.
func New(def *Definition, opts ...Option) *Board {
	if def == nil {
		panic("board.New: def must not be nil")
	}
	b := &Board{
		def:           def,
		doors:         make(map[Point]*Door),
		positions:     make(map[uuid.UUID]Point),
		players:       make(map[uuid.UUID]Player),
		blockOccupied: true,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	for _, d := range def.Doors() {
		b.doors[d.Location] = d
	}
	return b
}

// Definition returns the static geometry.
func (b *Board) Definition() *Definition { return b.def }

// Width returns the number of columns.
func (b *Board) Width() int { return b.def.Width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.def.Height }

// Rooms returns the rooms sorted by name.
func (b *Board) Rooms() []*Room { return b.def.RoomList() }

// BlocksOccupied reports whether occupied corridor cells refuse moves.
func (b *Board) BlocksOccupied() bool { return b.blockOccupied }

// InBounds reports whether p lies on the grid.
func (b *Board) InBounds(p Point) bool {
	return p.X >= 0 && p.X < b.def.Width && p.Y >= 0 && p.Y < b.def.Height
}

// IsCorridor reports whether p is a corridor cell. It returns false for any
// point off the grid.
func (b *Board) IsCorridor(p Point) bool {
	return b.def.Corridors.Has(p)
}

// IsDoor reports whether a door sits at p.
func (b *Board) IsDoor(p Point) bool {
	_, ok := b.doors[p]
	return ok
}

// DoorAt returns the door at p.
func (b *Board) DoorAt(p Point) (*Door, bool) {
	d, ok := b.doors[p]
	return d, ok
}

// CanEnterDoor reports whether a player standing at approach may step onto
// the door at door. A vertical door refuses an approach on the same column
// and a horizontal door refuses one on the same row.
func (b *Board) CanEnterDoor(door, approach Point) bool {
	d, ok := b.doors[door]
	if !ok {
		return false
	}
	if d.Vertical {
		return approach.X != door.X
	}
	return approach.Y != door.Y
}

// AddPlayer places p on its token's start cell, outside any room. Adding a
// player again returns it to the start.
//
// Precondition: p must have a token with a start cell.
func (b *Board) AddPlayer(p Player) {
	token := p.Token()
	if token == nil {
		panic(fmt.Sprintf("board.AddPlayer: player %s has no token", p.ID()))
	}
	start, ok := token.Start()
	if !ok {
		panic(fmt.Sprintf("board.AddPlayer: suspect %q has no start point", token.Name))
	}
	id := p.ID()
	if _, seen := b.positions[id]; !seen {
		b.order = append(b.order, id)
	}
	b.positions[id] = start
	b.players[id] = p
	p.SetRoom(nil)
	b.logger.Debug("player placed",
		zap.String("player", id.String()),
		zap.String("suspect", token.Name),
		zap.Stringer("at", start),
	)
}

// ClearPlayers removes every player from the board and clears their rooms.
func (b *Board) ClearPlayers() {
	for _, id := range b.order {
		b.players[id].SetRoom(nil)
	}
	b.positions = make(map[uuid.UUID]Point)
	b.players = make(map[uuid.UUID]Player)
	b.order = nil
}

// PlayerLocation returns where p is, if it has been placed.
func (b *Board) PlayerLocation(p Player) (Point, bool) {
	pt, ok := b.positions[p.ID()]
	return pt, ok
}

// Players returns the placed players in the order they were added.
func (b *Board) Players() []Player {
	out := make([]Player, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.players[id])
	}
	return out
}

// OccupantAt returns the first active player, in placement order, standing
// at p.
func (b *Board) OccupantAt(p Point) (Player, bool) {
	for _, id := range b.order {
		pl := b.players[id]
		if pl.Active() && b.positions[id] == p {
			return pl, true
		}
	}
	return nil, false
}

// occupiedByOther reports whether an active player other than self stands
// at p.
func (b *Board) occupiedByOther(p Point, self uuid.UUID) bool {
	for _, id := range b.order {
		if id == self {
			continue
		}
		if b.players[id].Active() && b.positions[id] == p {
			return true
		}
	}
	return false
}

// Occupied reports whether an active player stands at p.
func (b *Board) Occupied(p Point) bool {
	_, ok := b.OccupantAt(p)
	return ok
}
