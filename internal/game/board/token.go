package board

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Suspect is the token a player moves around the board.
type Suspect struct {
	ID    rune
	Name  string
	Color colorful.Color

	start    Point
	hasStart bool
}

// NewSuspect creates a suspect with no start point.
func NewSuspect(id rune, name string, c colorful.Color) *Suspect {
	return &Suspect{ID: id, Name: name, Color: c}
}

// Start returns the suspect's start cell, if the board places one.
func (s *Suspect) Start() (Point, bool) {
	return s.start, s.hasStart
}

// SetStart fixes the start cell. It may be called once.
func (s *Suspect) SetStart(p Point) {
	if s.hasStart {
		panic(fmt.Sprintf("board.Suspect.SetStart: %q already starts at %s", s.Name, s.start))
	}
	s.start = p
	s.hasStart = true
}

// Hex returns the display colour as #rrggbb.
func (s *Suspect) Hex() string { return s.Color.Hex() }

func (s *Suspect) String() string { return s.Name }
