// Package pathfind plans moves across a board: an A* search from a point or
// a room to a goal within a step budget, and the set of cells a move can
// reach.
package pathfind

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"

	"github.com/cory-johannsen/cluedo/internal/game/board"
)

// Planner finds legal moves on a board. It only reads the board.
type Planner struct {
	board  *board.Board
	logger *zap.Logger
}

// NewPlanner creates a planner over b. A nil logger discards output.
//
// Precondition: b must be non-nil.
func NewPlanner(b *board.Board, logger *zap.Logger) *Planner {
	if b == nil {
		panic("pathfind.NewPlanner: board must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{board: b, logger: logger}
}

// Calculate is shorthand for NewPlanner(b, nil).Calculate.
func Calculate(b *board.Board, from board.Point, fromRoom *board.Room, goal board.Point, maxSteps int) *MovePath {
	return NewPlanner(b, nil).Calculate(from, fromRoom, goal, maxSteps)
}

type node struct {
	at     board.Point
	cost   int
	prio   float64
	seq    int
	parent *node
}

func nodeLess(a, b *node) bool {
	if a.prio != b.prio {
		return a.prio < b.prio
	}
	return a.seq < b.seq
}

// Calculate plans a move from from to goal using at most maxSteps moves.
// When fromRoom is non-nil the move leaves that room first through the door
// whose point beside is nearest the goal, and leaving costs one move.
//
// Postcondition: Returns nil when no legal move reaches goal within the
// budget. A returned path replays successfully through Board.MovePlayer.
func (pl *Planner) Calculate(from board.Point, fromRoom *board.Room, goal board.Point, maxSteps int) *MovePath {
	start := from
	budget := maxSteps
	var exit *board.Door
	if fromRoom != nil {
		exit = pl.exitDoor(fromRoom, goal)
		if exit == nil {
			pl.logger.Debug("no usable exit", zap.String("room", fromRoom.Name))
			return nil
		}
		start = exit.PointBeside()
		budget--
	}
	if budget < 0 {
		return nil
	}
	if pl.board.BlocksOccupied() && goal != from && !pl.board.IsDoor(goal) && pl.board.Occupied(goal) {
		pl.logger.Debug("goal occupied", zap.Stringer("goal", goal))
		return nil
	}

	end := pl.search(start, goal, budget, exit)
	if end == nil {
		pl.logger.Debug("no path",
			zap.Stringer("from", start),
			zap.Stringer("goal", goal),
			zap.Int("budget", budget),
		)
		return nil
	}

	points := make([]board.Point, end.cost+1)
	for n := end; n != nil; n = n.parent {
		points[n.cost] = n.at
	}
	path := &MovePath{points: points, door: exit}
	fields := []zap.Field{
		zap.Stringer("from", start),
		zap.Stringer("goal", goal),
		zap.Int("steps", path.Len()),
		zap.String("directions", board.FormatDirections(path.Directions())),
	}
	if exit != nil {
		fields = append(fields, zap.Int("door", exit.Index()))
	}
	pl.logger.Debug("path planned", fields...)
	return path
}

// CalculateToRoom plans the shortest move into target through any of its
// doors. Ties go to the lower-numbered door.
func (pl *Planner) CalculateToRoom(from board.Point, fromRoom, target *board.Room, maxSteps int) *MovePath {
	if target == nil || target == fromRoom {
		return nil
	}
	var best *MovePath
	for _, d := range target.Doors() {
		p := pl.Calculate(from, fromRoom, d.Location, maxSteps)
		if p != nil && (best == nil || p.Len() < best.Len()) {
			best = p
		}
	}
	return best
}

// exitDoor picks the door of room whose point beside is a corridor and is
// nearest goal. Ties go to the lower-numbered door.
func (pl *Planner) exitDoor(room *board.Room, goal board.Point) *board.Door {
	var best *board.Door
	bestDist := 0.0
	for _, d := range room.Doors() {
		beside := d.PointBeside()
		if !pl.board.IsCorridor(beside) {
			continue
		}
		dist := beside.DistanceTo(goal)
		if best == nil || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}

// search runs A* from start and returns the goal node, or nil. Door cells
// end a branch and the exit door is never re-entered.
func (pl *Planner) search(start, goal board.Point, budget int, exit *board.Door) *node {
	open := heap.New[*node](nodeLess)
	visited := mapset.New[board.Point]()
	seq := 0
	open.Push(&node{at: start, prio: start.DistanceTo(goal)})

	for open.Size() > 0 {
		n, _ := open.Pop()
		if visited.Has(n.at) {
			continue
		}
		visited.Put(n.at)
		if n.at == goal {
			return n
		}
		if pl.board.IsDoor(n.at) {
			continue
		}
		for _, next := range n.at.Neighbours() {
			if exit != nil && next == exit.Location {
				continue
			}
			if visited.Has(next) || n.cost+1 > budget {
				continue
			}
			if !pl.board.IsCorridor(next) && !pl.board.CanEnterDoor(next, n.at) {
				continue
			}
			seq++
			open.Push(&node{
				at:     next,
				cost:   n.cost + 1,
				prio:   float64(n.cost+1) + next.DistanceTo(goal),
				seq:    seq,
				parent: n,
			})
		}
	}
	return nil
}
