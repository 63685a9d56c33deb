package board

import "fmt"

// BoundingBox is the minimal axis-aligned rectangle around a set of points.
// Both corners are inclusive.
type BoundingBox struct {
	MinX int
	MinY int
	MaxX int
	MaxY int
}

// Width returns the number of columns spanned by the box.
func (bb BoundingBox) Width() int { return bb.MaxX - bb.MinX + 1 }

// Height returns the number of rows spanned by the box.
func (bb BoundingBox) Height() int { return bb.MaxY - bb.MinY + 1 }

// Contains reports whether p lies inside the box.
func (bb BoundingBox) Contains(p Point) bool {
	return p.X >= bb.MinX && p.X <= bb.MaxX && p.Y >= bb.MinY && p.Y <= bb.MaxY
}

func (bb *BoundingBox) extend(p Point) {
	bb.MinX = min(bb.MinX, p.X)
	bb.MinY = min(bb.MinY, p.Y)
	bb.MaxX = max(bb.MaxX, p.X)
	bb.MaxY = max(bb.MaxY, p.Y)
}

// Weapon is a named weapon card. Its location is recorded on the Room that
// holds it.
type Weapon struct {
	Name string
}

// Room is a named region of the board with a footprint of grid cells, an
// ordered list of doors, an optional one-way secret passage and an optional
// weapon.
type Room struct {
	ID   rune
	Name string

	points      []Point
	members     map[Point]struct{}
	box         BoundingBox
	doors       []*Door
	passageExit *Room
	weapon      *Weapon
}

// NewRoom creates an empty room.
//
// Precondition: name must be non-empty.
func NewRoom(id rune, name string) *Room {
	if name == "" {
		panic("board.NewRoom: name must not be empty")
	}
	return &Room{
		ID:      id,
		Name:    name,
		members: make(map[Point]struct{}),
	}
}

// AddPoint adds p to the footprint and grows the bounding box. Adding a point
// that is already a member is a no-op.
func (r *Room) AddPoint(p Point) {
	if _, ok := r.members[p]; ok {
		return
	}
	if len(r.points) == 0 {
		r.box = BoundingBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
	} else {
		r.box.extend(p)
	}
	r.members[p] = struct{}{}
	r.points = append(r.points, p)
}

// AddDoor appends a door at loc to the room. The door cell joins the
// footprint.
//
// Postcondition: the returned door is Doors()[len(Doors())-1].
func (r *Room) AddDoor(loc Point, vertical bool) *Door {
	r.AddPoint(loc)
	d := &Door{room: r, Location: loc, Vertical: vertical}
	r.doors = append(r.doors, d)
	return d
}

// Points returns the footprint in insertion order.
func (r *Room) Points() []Point {
	out := make([]Point, len(r.points))
	copy(out, r.points)
	return out
}

// Size returns the number of footprint cells.
func (r *Room) Size() int { return len(r.points) }

// Contains reports whether p belongs to the footprint.
func (r *Room) Contains(p Point) bool {
	_, ok := r.members[p]
	return ok
}

// BoundingBox returns the minimal rectangle around the footprint. It is the
// zero value for an empty room.
func (r *Room) BoundingBox() BoundingBox { return r.box }

// Center returns the middle of the bounding box, offset by half a cell so
// that it falls on the centre of a cell for odd-sized rooms.
func (r *Room) Center() (float64, float64) {
	return float64(r.box.MinX+r.box.MaxX+1) / 2, float64(r.box.MinY+r.box.MaxY+1) / 2
}

// CenterPoint returns the grid cell containing Center.
func (r *Room) CenterPoint() Point {
	return Point{X: (r.box.MinX + r.box.MaxX + 1) / 2, Y: (r.box.MinY + r.box.MaxY + 1) / 2}
}

// Doors returns the doors in declaration order.
func (r *Room) Doors() []*Door {
	out := make([]*Door, len(r.doors))
	copy(out, r.doors)
	return out
}

// Door returns the n-th door, 0-based.
func (r *Room) Door(n int) (*Door, bool) {
	if n < 0 || n >= len(r.doors) {
		return nil, false
	}
	return r.doors[n], true
}

// PassageExit returns the room reached through this room's secret passage,
// or nil.
func (r *Room) PassageExit() *Room { return r.passageExit }

// SetPassageExit links this room one way to exit.
//
// Precondition: exit must be non-nil, distinct from r, and no passage may
// have been set already.
func (r *Room) SetPassageExit(exit *Room) {
	if exit == nil || exit == r {
		panic(fmt.Sprintf("board.Room.SetPassageExit: invalid exit for %q", r.Name))
	}
	if r.passageExit != nil {
		panic(fmt.Sprintf("board.Room.SetPassageExit: %q already leads to %q", r.Name, r.passageExit.Name))
	}
	r.passageExit = exit
}

// Weapon returns the weapon currently in the room, or nil.
func (r *Room) Weapon() *Weapon { return r.weapon }

// SetWeapon places w in the room. A nil w empties it.
func (r *Room) SetWeapon(w *Weapon) { r.weapon = w }

// String returns the room name.
func (r *Room) String() string { return r.Name }
