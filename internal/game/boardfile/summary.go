package boardfile

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/cluedo/internal/game/board"
)

// Summary is a YAML-friendly description of a loaded board for renderers
// and tooling.
type Summary struct {
	Width     int              `yaml:"width"`
	Height    int              `yaml:"height"`
	Corridors int              `yaml:"corridors"`
	Rooms     []RoomSummary    `yaml:"rooms"`
	Suspects  []SuspectSummary `yaml:"suspects"`
	Weapons   []string         `yaml:"weapons"`
}

// RoomSummary describes one room.
type RoomSummary struct {
	ID      string        `yaml:"id"`
	Name    string        `yaml:"name"`
	Cells   int           `yaml:"cells"`
	Box     BoxSummary    `yaml:"bounding_box"`
	Center  []float64     `yaml:"center,flow"`
	Doors   []DoorSummary `yaml:"doors"`
	Passage string        `yaml:"passage,omitempty"`
	Weapon  string        `yaml:"weapon,omitempty"`
}

// BoxSummary is a bounding box with inclusive corners.
type BoxSummary struct {
	Min []int `yaml:"min,flow"`
	Max []int `yaml:"max,flow"`
}

// DoorSummary describes one door.
type DoorSummary struct {
	At          []int  `yaml:"at,flow"`
	Orientation string `yaml:"orientation"`
	Beside      []int  `yaml:"beside,flow"`
}

// SuspectSummary describes one suspect token.
type SuspectSummary struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
	Start []int  `yaml:"start,flow,omitempty"`
}

// Summarize builds a Summary of def. Rooms are sorted by name, suspects by
// identifier, weapons by name.
func Summarize(def *board.Definition) Summary {
	s := Summary{
		Width:     def.Width,
		Height:    def.Height,
		Corridors: def.Corridors.Len(),
		Rooms:     []RoomSummary{},
		Suspects:  []SuspectSummary{},
		Weapons:   []string{},
	}
	for _, r := range def.RoomList() {
		bb := r.BoundingBox()
		cx, cy := r.Center()
		rs := RoomSummary{
			ID:     string(r.ID),
			Name:   r.Name,
			Cells:  r.Size(),
			Box:    BoxSummary{Min: []int{bb.MinX, bb.MinY}, Max: []int{bb.MaxX, bb.MaxY}},
			Center: []float64{cx, cy},
			Doors:  []DoorSummary{},
		}
		for _, d := range r.Doors() {
			orientation := "horizontal"
			if d.Vertical {
				orientation = "vertical"
			}
			beside := d.PointBeside()
			rs.Doors = append(rs.Doors, DoorSummary{
				At:          []int{d.Location.X, d.Location.Y},
				Orientation: orientation,
				Beside:      []int{beside.X, beside.Y},
			})
		}
		if exit := r.PassageExit(); exit != nil {
			rs.Passage = exit.Name
		}
		if w := r.Weapon(); w != nil {
			rs.Weapon = w.Name
		}
		s.Rooms = append(s.Rooms, rs)
	}
	for _, sp := range def.SuspectList() {
		ss := SuspectSummary{ID: string(sp.ID), Name: sp.Name, Color: sp.Hex()}
		if p, ok := sp.Start(); ok {
			ss.Start = []int{p.X, p.Y}
		}
		s.Suspects = append(s.Suspects, ss)
	}
	for _, w := range def.WeaponList() {
		s.Weapons = append(s.Weapons, w.Name)
	}
	return s
}

// WriteSummary writes the YAML summary of def to w.
func WriteSummary(w io.Writer, def *board.Definition) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Summarize(def)); err != nil {
		return fmt.Errorf("encoding board summary: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding board summary: %w", err)
	}
	return nil
}
