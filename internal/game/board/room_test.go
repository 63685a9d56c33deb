package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/cluedo/internal/game/board"
)

func TestRoom_CenterAndBox(t *testing.T) {
	r := board.NewRoom('L', "Library")
	for _, p := range []board.Point{{X: 1, Y: 2}, {X: 1, Y: 3}, {X: 4, Y: 2}, {X: 2, Y: 3}} {
		r.AddPoint(p)
	}

	assert.Equal(t, board.BoundingBox{MinX: 1, MinY: 2, MaxX: 4, MaxY: 3}, r.BoundingBox())
	cx, cy := r.Center()
	assert.InDelta(t, 3.0, cx, 1e-9)
	assert.InDelta(t, 3.0, cy, 1e-9)
	assert.Equal(t, board.Point{X: 3, Y: 3}, r.CenterPoint())
	assert.Equal(t, 4, r.Size())
	assert.True(t, r.Contains(board.Point{X: 4, Y: 2}))
	assert.False(t, r.Contains(board.Point{X: 3, Y: 2}))
}

func TestRoom_AddPointIgnoresDuplicates(t *testing.T) {
	r := board.NewRoom('L', "Library")
	r.AddPoint(board.Point{X: 1, Y: 1})
	r.AddPoint(board.Point{X: 1, Y: 1})
	assert.Equal(t, 1, r.Size())
}

func TestRoom_Doors(t *testing.T) {
	r := board.NewRoom('B', "Ballroom")
	for x := 2; x <= 5; x++ {
		for y := 1; y <= 3; y++ {
			r.AddPoint(board.Point{X: x, Y: y})
		}
	}
	left := r.AddDoor(board.Point{X: 2, Y: 2}, true)
	right := r.AddDoor(board.Point{X: 5, Y: 2}, true)
	top := r.AddDoor(board.Point{X: 3, Y: 1}, false)
	bottom := r.AddDoor(board.Point{X: 4, Y: 3}, false)

	assert.Equal(t, board.Point{X: 1, Y: 2}, left.PointBeside())
	assert.Equal(t, board.Point{X: 6, Y: 2}, right.PointBeside())
	assert.Equal(t, board.Point{X: 3, Y: 0}, top.PointBeside())
	assert.Equal(t, board.Point{X: 4, Y: 4}, bottom.PointBeside())
	assert.Same(t, r, top.Room())
	assert.Equal(t, 2, top.Index())
	assert.Equal(t, 12, r.Size())

	d, ok := r.Door(1)
	require.True(t, ok)
	assert.Same(t, right, d)
	_, ok = r.Door(4)
	assert.False(t, ok)
	_, ok = r.Door(-1)
	assert.False(t, ok)

	assert.True(t, left.EnterableFrom(board.Right))
	assert.False(t, left.EnterableFrom(board.Up))
	assert.True(t, top.EnterableFrom(board.Down))
	assert.False(t, top.EnterableFrom(board.Left))
	assert.Contains(t, left.String(), "vertical door (2,2) of Ballroom")
}

func TestDoor_PointBesideRequiresEdge(t *testing.T) {
	r := board.NewRoom('B', "Ballroom")
	r.AddPoint(board.Point{X: 0, Y: 0})
	r.AddPoint(board.Point{X: 2, Y: 0})
	d := r.AddDoor(board.Point{X: 1, Y: 0}, true)
	assert.False(t, d.OnEdge())
	assert.Panics(t, func() { d.PointBeside() })
}

func TestRoom_PassageExit(t *testing.T) {
	a := board.NewRoom('A', "Attic")
	b := board.NewRoom('B', "Basement")
	assert.Nil(t, a.PassageExit())
	a.SetPassageExit(b)
	assert.Same(t, b, a.PassageExit())
	assert.Nil(t, b.PassageExit())
	assert.Panics(t, func() { a.SetPassageExit(b) })
	assert.Panics(t, func() { b.SetPassageExit(b) })
	assert.Panics(t, func() { b.SetPassageExit(nil) })
	assert.Panics(t, func() { board.NewRoom('X', "") })
}

func TestProperty_BoundingBoxIsMinimal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 40).Draw(t, "n")
		r := board.NewRoom('R', "Room")
		minX, minY, maxX, maxY := 1<<30, 1<<30, -1<<30, -1<<30
		for i := 0; i < n; i++ {
			p := board.Point{
				X: rapid.IntRange(-50, 50).Draw(t, "x"),
				Y: rapid.IntRange(-50, 50).Draw(t, "y"),
			}
			r.AddPoint(p)
			minX, minY = min(minX, p.X), min(minY, p.Y)
			maxX, maxY = max(maxX, p.X), max(maxY, p.Y)
		}
		want := board.BoundingBox{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
		if r.BoundingBox() != want {
			t.Fatalf("bounding box = %+v, want %+v", r.BoundingBox(), want)
		}
		for _, p := range r.Points() {
			if !want.Contains(p) {
				t.Fatalf("%s outside its own bounding box", p)
			}
		}
	})
}
