package board

import (
	"fmt"
	"sort"
)

// Definition is the static geometry of a board as produced by the board file
// parser. Apart from room weapons it is not modified after loading.
type Definition struct {
	Width        int
	Height       int
	Rooms        map[string]*Room
	Suspects     map[string]*Suspect
	SuspectsByID map[rune]*Suspect
	Weapons      map[string]*Weapon
	Corridors    *CorridorSet
}

// NewDefinition creates an empty definition for a width×height grid.
func NewDefinition(width, height int) *Definition {
	return &Definition{
		Width:        width,
		Height:       height,
		Rooms:        make(map[string]*Room),
		Suspects:     make(map[string]*Suspect),
		SuspectsByID: make(map[rune]*Suspect),
		Weapons:      make(map[string]*Weapon),
		Corridors:    NewCorridorSet(width, height),
	}
}

// AddRoom registers r under its name.
func (d *Definition) AddRoom(r *Room) {
	d.Rooms[r.Name] = r
}

// AddSuspect registers s under its name and identifier.
func (d *Definition) AddSuspect(s *Suspect) {
	d.Suspects[s.Name] = s
	d.SuspectsByID[s.ID] = s
}

// AddWeapon registers w under its name.
func (d *Definition) AddWeapon(w *Weapon) {
	d.Weapons[w.Name] = w
}

// RoomByID returns the room whose grid character is id.
func (d *Definition) RoomByID(id rune) (*Room, bool) {
	for _, r := range d.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}

// RoomList returns the rooms sorted by name.
func (d *Definition) RoomList() []*Room {
	out := make([]*Room, 0, len(d.Rooms))
	for _, r := range d.Rooms {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// SuspectList returns the suspects sorted by identifier.
func (d *Definition) SuspectList() []*Suspect {
	out := make([]*Suspect, 0, len(d.Suspects))
	for _, s := range d.Suspects {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// WeaponList returns the weapons sorted by name.
func (d *Definition) WeaponList() []*Weapon {
	out := make([]*Weapon, 0, len(d.Weapons))
	for _, w := range d.Weapons {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Doors returns every door on the board, grouped by room in RoomList order.
func (d *Definition) Doors() []*Door {
	var out []*Door
	for _, r := range d.RoomList() {
		out = append(out, r.doors...)
	}
	return out
}

// Validate checks the geometric invariants of the definition.
//
// Postcondition: Returns nil if the corridor set and room footprints are
// disjoint and in bounds, every door sits on its room's edge, and every
// suspect start is a corridor cell.
func (d *Definition) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("board size must be positive, got %dx%d", d.Width, d.Height)
	}
	if d.Corridors == nil || d.Corridors.Width() != d.Width || d.Corridors.Height() != d.Height {
		return fmt.Errorf("corridor set does not cover the %dx%d board", d.Width, d.Height)
	}
	owner := make(map[Point]string)
	for _, r := range d.RoomList() {
		if r.Size() == 0 {
			return fmt.Errorf("room %q: has no cells on the board", r.Name)
		}
		for _, p := range r.points {
			if !d.Corridors.InBounds(p) {
				return fmt.Errorf("room %q: cell %s is outside the board", r.Name, p)
			}
			if d.Corridors.Has(p) {
				return fmt.Errorf("room %q: cell %s is also a corridor", r.Name, p)
			}
			if other, ok := owner[p]; ok {
				return fmt.Errorf("room %q: cell %s already belongs to %q", r.Name, p, other)
			}
			owner[p] = r.Name
		}
		for i, door := range r.doors {
			if door.room != r {
				return fmt.Errorf("room %q: door #%d belongs to another room", r.Name, i+1)
			}
			if !door.OnEdge() {
				return fmt.Errorf("room %q: door #%d at %s is not on the edge of the room", r.Name, i+1, door.Location)
			}
		}
		if r.passageExit != nil {
			if _, ok := d.Rooms[r.passageExit.Name]; !ok {
				return fmt.Errorf("room %q: passage leads to unknown room %q", r.Name, r.passageExit.Name)
			}
		}
	}
	for _, s := range d.SuspectList() {
		if p, ok := s.Start(); ok && !d.Corridors.Has(p) {
			return fmt.Errorf("suspect %q: start %s is not a corridor", s.Name, p)
		}
	}
	return nil
}

// RandSource is the randomness PlaceWeapons draws from.
type RandSource interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// PlaceWeapons puts every weapon in a distinct, randomly chosen room,
// emptying the rest.
//
// Precondition: src must be non-nil.
// Postcondition: Returns an error, leaving rooms untouched, when there are
// more weapons than rooms.
func (d *Definition) PlaceWeapons(src RandSource) error {
	if src == nil {
		panic("board.Definition.PlaceWeapons: src must not be nil")
	}
	rooms := d.RoomList()
	weapons := d.WeaponList()
	if len(weapons) > len(rooms) {
		return fmt.Errorf("cannot place %d weapons in %d rooms", len(weapons), len(rooms))
	}
	for i := len(rooms) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		rooms[i], rooms[j] = rooms[j], rooms[i]
	}
	for i, r := range rooms {
		if i < len(weapons) {
			r.SetWeapon(weapons[i])
		} else {
			r.SetWeapon(nil)
		}
	}
	return nil
}

// ClearWeapons empties every room.
func (d *Definition) ClearWeapons() {
	for _, r := range d.Rooms {
		r.SetWeapon(nil)
	}
}
