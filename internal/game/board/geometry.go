// Package board provides the board model of the deduction game: grid points,
// rooms, doors, suspect tokens, the corridor bitmap, and the movement rules
// that decide whether a player's requested steps are legal.
package board

import (
	"fmt"
	"math"
	"strings"
)

// Point is a grid coordinate. X grows to the right and Y grows downward.
type Point struct {
	X int
	Y int
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Step returns the point one cell away from p in direction d.
//
// Precondition: d must be one of the four standard directions.
func (p Point) Step(d Direction) Point {
	switch d {
	case Up:
		return Point{X: p.X, Y: p.Y - 1}
	case Down:
		return Point{X: p.X, Y: p.Y + 1}
	case Left:
		return Point{X: p.X - 1, Y: p.Y}
	case Right:
		return Point{X: p.X + 1, Y: p.Y}
	default:
		panic(fmt.Sprintf("board.Point.Step: unknown direction %q", string(d)))
	}
}

// DistanceTo returns the straight-line distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(float64(p.X-q.X), float64(p.Y-q.Y))
}

// Neighbours returns the four orthogonal neighbours of p in the order
// left, right, up, down. Points outside the board are included.
func (p Point) Neighbours() [4]Point {
	return [4]Point{
		{X: p.X - 1, Y: p.Y},
		{X: p.X + 1, Y: p.Y},
		{X: p.X, Y: p.Y - 1},
		{X: p.X, Y: p.Y + 1},
	}
}

// Direction is one of the four orthogonal movement directions.
type Direction string

// The four movement directions. Diagonal movement does not exist.
const (
	Up    Direction = "up"
	Right Direction = "right"
	Down  Direction = "down"
	Left  Direction = "left"
)

// Directions lists the four movement directions.
var Directions = []Direction{Up, Right, Down, Left}

// IsValid reports whether d is one of the four movement directions.
func (d Direction) IsValid() bool {
	switch d {
	case Up, Right, Down, Left:
		return true
	}
	return false
}

// IsVertical reports whether moving in d changes the Y coordinate.
func (d Direction) IsVertical() bool {
	return d == Up || d == Down
}

// Opposite returns the reverse of d, or "" for an invalid direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return ""
	}
}

// Initial returns the single-letter form of d used by ParseDirections.
func (d Direction) Initial() byte {
	if !d.IsValid() {
		return '?'
	}
	return d[0]
}

// DirectionBetween returns the direction of a single step from a to b.
// Horizontal differences win over vertical ones; a and b are expected to be
// orthogonal neighbours.
//
// Postcondition: Returns ("", false) when a == b.
func DirectionBetween(a, b Point) (Direction, bool) {
	switch {
	case b.X < a.X:
		return Left, true
	case b.X > a.X:
		return Right, true
	case b.Y < a.Y:
		return Up, true
	case b.Y > a.Y:
		return Down, true
	default:
		return "", false
	}
}

// ParseDirections converts a typed step string such as "uurrd" into
// directions. Letters are case-insensitive: u(p), d(own), l(eft), r(ight).
//
// Postcondition: Returns a non-nil slice (empty for ""), or an error naming
// the first unrecognised character.
func ParseDirections(s string) ([]Direction, error) {
	out := make([]Direction, 0, len(s))
	for i, c := range strings.ToLower(s) {
		switch c {
		case 'u':
			out = append(out, Up)
		case 'd':
			out = append(out, Down)
		case 'l':
			out = append(out, Left)
		case 'r':
			out = append(out, Right)
		default:
			return nil, fmt.Errorf("invalid direction %q at position %d: use u, d, l or r", c, i+1)
		}
	}
	return out, nil
}

// FormatDirections is the inverse of ParseDirections.
func FormatDirections(dirs []Direction) string {
	var sb strings.Builder
	for _, d := range dirs {
		sb.WriteByte(d.Initial())
	}
	return sb.String()
}
