package pathfind

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/cory-johannsen/cluedo/internal/game/board"
)

// Unbounded lifts the step limit of Reachable.
const Unbounded = -1

type reachItem struct {
	at   board.Point
	cost int
}

// Reachable returns every cell a single legal move can end on, starting at
// from, or from any door of fromRoom when it is non-nil. The neighbour rules
// match Calculate. A negative maxSteps means no limit.
func Reachable(b *board.Board, from board.Point, fromRoom *board.Room, maxSteps int) mapset.Set[board.Point] {
	out := mapset.New[board.Point]()
	if maxSteps < 0 {
		maxSteps = b.Width() * b.Height()
	}
	if fromRoom == nil {
		flood(b, from, maxSteps, nil, from, &out)
		return out
	}
	if maxSteps < 1 {
		return out
	}
	for _, d := range fromRoom.Doors() {
		beside := d.PointBeside()
		if !b.IsCorridor(beside) {
			continue
		}
		flood(b, beside, maxSteps-1, d, from, &out)
	}
	return out
}

// flood adds to out every cell within budget steps of start. Cells held by
// another player are passed through but not added when the board blocks
// occupied cells.
func flood(b *board.Board, start board.Point, budget int, exit *board.Door, self board.Point, out *mapset.Set[board.Point]) {
	seen := mapset.New[board.Point]()
	seen.Put(start)
	queue := []reachItem{{at: start}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if !b.BlocksOccupied() || cur.at == self || b.IsDoor(cur.at) || !b.Occupied(cur.at) {
			out.Put(cur.at)
		}
		if b.IsDoor(cur.at) || cur.cost == budget {
			continue
		}
		for _, next := range cur.at.Neighbours() {
			if seen.Has(next) || (exit != nil && next == exit.Location) {
				continue
			}
			if !b.IsCorridor(next) && !b.CanEnterDoor(next, cur.at) {
				continue
			}
			seen.Put(next)
			queue = append(queue, reachItem{at: next, cost: cur.cost + 1})
		}
	}
}

// ReachableRooms returns the rooms a player standing at from could ever
// enter, in name order.
func ReachableRooms(b *board.Board, from board.Point) []*board.Room {
	cells := Reachable(b, from, nil, Unbounded)
	var out []*board.Room
	for _, r := range b.Rooms() {
		for _, d := range r.Doors() {
			if cells.Has(d.Location) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}
