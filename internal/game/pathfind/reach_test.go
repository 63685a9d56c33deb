package pathfind

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/cluedo/internal/game/board"
)

func TestReachable_Bounded(t *testing.T) {
	b, p := setup(t, nil)
	from, _ := b.PlayerLocation(p)

	cells := Reachable(b, from, nil, 0)
	assert.Equal(t, 1, cells.Size())
	assert.True(t, cells.Has(from))

	cells = Reachable(b, from, nil, 1)
	assert.Equal(t, 5, cells.Size())
	for _, d := range board.Directions {
		assert.True(t, cells.Has(from.Step(d)), "missing %s", d)
	}

	cells = Reachable(b, from, nil, 3)
	assert.True(t, cells.Has(board.Point{X: 2, Y: 1}), "kitchen door within three steps")
	assert.False(t, cells.Has(board.Point{X: 1, Y: 1}), "room cells are never reachable")
}

func TestReachable_FromRoom(t *testing.T) {
	b, _ := setup(t, nil)
	hall := b.Definition().Rooms["Hall"]
	west, _ := hall.Door(0)

	assert.Equal(t, 0, Reachable(b, west.Location, hall, 0).Size())

	cells := Reachable(b, west.Location, hall, 1)
	assert.Equal(t, 2, cells.Size())
	assert.True(t, cells.Has(board.Point{X: 5, Y: 3}))
	assert.True(t, cells.Has(board.Point{X: 8, Y: 5}))
	assert.False(t, cells.Has(west.Location))
}

func TestReachable_SkipsOccupiedEnds(t *testing.T) {
	b, p := setup(t, nil)
	green := &testPlayer{id: uuid.New(), token: b.Definition().SuspectsByID['g']}
	b.AddPlayer(green)
	from, _ := b.PlayerLocation(p)

	cells := Reachable(b, from, nil, 3)
	assert.False(t, cells.Has(board.Point{X: 1, Y: 5}))
	assert.True(t, cells.Has(board.Point{X: 1, Y: 6}), "occupied cells can be walked through")
	assert.True(t, cells.Has(from))
}

func TestReachableRooms(t *testing.T) {
	b, p := setup(t, nil)
	from, _ := b.PlayerLocation(p)
	rooms := ReachableRooms(b, from)
	require.Len(t, rooms, 3)
	assert.Equal(t, "Ballroom", rooms[0].Name)
	assert.Equal(t, "Hall", rooms[1].Name)
	assert.Equal(t, "Kitchen", rooms[2].Name)
}

func TestReachableRooms_Walled(t *testing.T) {
	b, p := setup(t, &board.Point{X: 6, Y: 0})
	from, _ := b.PlayerLocation(p)
	// (6,0) is boxed in by the void at (5,0) and the Ballroom, but opens
	// down onto the corridor.
	assert.Len(t, ReachableRooms(b, from), 3)

	cells := Reachable(b, from, nil, Unbounded)
	assert.False(t, cells.Has(board.Point{X: 5, Y: 0}))
}
