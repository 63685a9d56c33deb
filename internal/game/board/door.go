package board

import "fmt"

// Door is an oriented cell on the edge of a room. A vertical door sits on the
// room's left or right edge and is entered by moving horizontally; a
// horizontal door sits on the top or bottom edge and is entered vertically.
type Door struct {
	room     *Room
	Location Point
	Vertical bool
}

// Room returns the room the door belongs to.
func (d *Door) Room() *Room { return d.room }

// Index returns the position of the door in its room's door list, or -1.
func (d *Door) Index() int {
	if d.room == nil {
		return -1
	}
	for i, o := range d.room.doors {
		if o == d {
			return i
		}
	}
	return -1
}

// OnEdge reports whether the door lies on the bounding-box edge that matches
// its orientation.
func (d *Door) OnEdge() bool {
	if d.room == nil {
		return false
	}
	bb := d.room.BoundingBox()
	if d.Vertical {
		return d.Location.X == bb.MinX || d.Location.X == bb.MaxX
	}
	return d.Location.Y == bb.MinY || d.Location.Y == bb.MaxY
}

// PointBeside returns the cell immediately outside the door.
//
// Precondition: the door must belong to a room and lie on its edge.
func (d *Door) PointBeside() Point {
	if d.room == nil {
		panic(fmt.Sprintf("board.Door.PointBeside: door at %s has no room", d.Location))
	}
	bb := d.room.BoundingBox()
	loc := d.Location
	switch {
	case d.Vertical && loc.X == bb.MinX:
		return Point{X: loc.X - 1, Y: loc.Y}
	case d.Vertical && loc.X == bb.MaxX:
		return Point{X: loc.X + 1, Y: loc.Y}
	case !d.Vertical && loc.Y == bb.MinY:
		return Point{X: loc.X, Y: loc.Y - 1}
	case !d.Vertical && loc.Y == bb.MaxY:
		return Point{X: loc.X, Y: loc.Y + 1}
	}
	panic(fmt.Sprintf("board.Door.PointBeside: door at %s is not on the edge of %q", loc, d.room.Name))
}

// EnterableFrom reports whether a step in direction dir may end on the door.
func (d *Door) EnterableFrom(dir Direction) bool {
	return d.Vertical != dir.IsVertical()
}

// String renders the door for diagnostics.
func (d *Door) String() string {
	kind := "horizontal"
	if d.Vertical {
		kind = "vertical"
	}
	name := "?"
	if d.room != nil {
		name = d.room.Name
	}
	return fmt.Sprintf("%s door %s of %s", kind, d.Location, name)
}
