package pathfind

import (
	"github.com/cory-johannsen/cluedo/internal/game/board"
)

// MovePath is a planned move: the cells visited from the start to the goal
// and, when the move leaves a room, the door it leaves through.
type MovePath struct {
	points []board.Point
	door   *board.Door
}

// Points returns the visited cells, start first and goal last. When the move
// leaves a room the start is the exit door's point beside.
func (m *MovePath) Points() []board.Point {
	out := make([]board.Point, len(m.points))
	copy(out, m.points)
	return out
}

// Start returns the first cell of the path.
func (m *MovePath) Start() board.Point { return m.points[0] }

// End returns the last cell of the path.
func (m *MovePath) End() board.Point { return m.points[len(m.points)-1] }

// Door returns the door the move leaves through, or nil.
func (m *MovePath) Door() *board.Door { return m.door }

// Len returns the number of steps, excluding the exit through a door.
func (m *MovePath) Len() int { return len(m.points) - 1 }

// Cost returns the moves the path uses from a turn's budget.
func (m *MovePath) Cost() int { return board.MoveCost(m.Directions(), m.door) }

// Directions translates the path into the steps Board.MovePlayer expects.
func (m *MovePath) Directions() []board.Direction {
	out := make([]board.Direction, 0, m.Len())
	for i := 1; i < len(m.points); i++ {
		d, ok := board.DirectionBetween(m.points[i-1], m.points[i])
		if !ok {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Apply submits the path to b as p's move.
func (m *MovePath) Apply(b *board.Board, p board.Player) error {
	return b.MovePlayer(p, m.Directions(), m.door)
}
