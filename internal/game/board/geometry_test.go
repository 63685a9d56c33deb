package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/cluedo/internal/game/board"
)

func TestPoint_Step(t *testing.T) {
	p := board.Point{X: 3, Y: 3}
	assert.Equal(t, board.Point{X: 3, Y: 2}, p.Step(board.Up))
	assert.Equal(t, board.Point{X: 3, Y: 4}, p.Step(board.Down))
	assert.Equal(t, board.Point{X: 2, Y: 3}, p.Step(board.Left))
	assert.Equal(t, board.Point{X: 4, Y: 3}, p.Step(board.Right))
	assert.Panics(t, func() { p.Step("north") })
}

func TestPoint_DistanceTo(t *testing.T) {
	assert.InDelta(t, 5.0, board.Point{X: 0, Y: 0}.DistanceTo(board.Point{X: 3, Y: 4}), 1e-9)
	assert.Equal(t, "(2,7)", board.Point{X: 2, Y: 7}.String())
}

func TestDirection_Opposite(t *testing.T) {
	for _, d := range board.Directions {
		assert.True(t, d.IsValid())
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.NotEqual(t, d, d.Opposite())
		assert.Equal(t, d.IsVertical(), d.Opposite().IsVertical())
	}
	assert.Equal(t, board.Direction(""), board.Direction("sideways").Opposite())
	assert.False(t, board.Direction("sideways").IsValid())
}

func TestDirectionBetween(t *testing.T) {
	origin := board.Point{X: 5, Y: 5}
	for _, d := range board.Directions {
		got, ok := board.DirectionBetween(origin, origin.Step(d))
		require.True(t, ok)
		assert.Equal(t, d, got)
	}
	_, ok := board.DirectionBetween(origin, origin)
	assert.False(t, ok)
}

func TestParseDirections(t *testing.T) {
	dirs, err := board.ParseDirections("UuRdL")
	require.NoError(t, err)
	assert.Equal(t, []board.Direction{board.Up, board.Up, board.Right, board.Down, board.Left}, dirs)

	dirs, err = board.ParseDirections("")
	require.NoError(t, err)
	assert.NotNil(t, dirs)
	assert.Empty(t, dirs)

	_, err = board.ParseDirections("uux")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "position 3")
}

func TestProperty_ParseDirectionsRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		dirs := rapid.SliceOf(rapid.SampledFrom(board.Directions)).Draw(t, "dirs")
		back, err := board.ParseDirections(board.FormatDirections(dirs))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(back) != len(dirs) {
			t.Fatalf("got %d directions, want %d", len(back), len(dirs))
		}
		for i := range dirs {
			if back[i] != dirs[i] {
				t.Fatalf("direction %d: got %s, want %s", i, back[i], dirs[i])
			}
		}
	})
}

func TestCorridorSet(t *testing.T) {
	c := board.NewCorridorSet(4, 3)
	c.Add(board.Point{X: 3, Y: 2})
	c.Add(board.Point{X: 0, Y: 1})
	c.Add(board.Point{X: 0, Y: 1})

	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Has(board.Point{X: 3, Y: 2}))
	assert.False(t, c.Has(board.Point{X: 2, Y: 2}))
	assert.Equal(t, []board.Point{{X: 0, Y: 1}, {X: 3, Y: 2}}, c.Points())
	assert.Panics(t, func() { c.Add(board.Point{X: 4, Y: 0}) })
	assert.Panics(t, func() { board.NewCorridorSet(-1, 2) })
}

func TestProperty_CorridorSetOutOfRangeNeverMember(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.IntRange(1, 30).Draw(t, "w")
		h := rapid.IntRange(1, 30).Draw(t, "h")
		c := board.NewCorridorSet(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c.Add(board.Point{X: x, Y: y})
			}
		}
		p := board.Point{
			X: rapid.IntRange(-100, 100).Draw(t, "x"),
			Y: rapid.IntRange(-100, 100).Draw(t, "y"),
		}
		inside := p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
		if c.Has(p) != inside {
			t.Fatalf("Has(%s) = %v on a full %dx%d set", p, c.Has(p), w, h)
		}
	})
}
