// Package dice rolls the movement dice that set how far a player may move on
// a turn, and supplies the random sources used for dealing weapons into rooms.
package dice

import (
	"fmt"
	"strings"
)

// Result is the outcome of one roll.
type Result struct {
	Expression string
	Dice       []int
	Modifier   int
}

// Total returns the sum of the dice plus the modifier.
func (r Result) Total() int {
	total := r.Modifier
	for _, d := range r.Dice {
		total += d
	}
	return total
}

// Moves returns the number of moves the roll grants. It is never negative.
func (r Result) Moves() int {
	return max(r.Total(), 0)
}

// String formats the roll as "2d6+1: 3 5 +1 = 9".
//
// Precondition: Expression must be non-empty.
func (r Result) String() string {
	if r.Expression == "" {
		panic("dice.Result.String: empty expression")
	}
	faces := make([]string, len(r.Dice))
	for i, d := range r.Dice {
		faces[i] = fmt.Sprint(d)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", r.Expression, strings.Join(faces, " "))
	if r.Modifier != 0 {
		fmt.Fprintf(&b, " %+d", r.Modifier)
	}
	fmt.Fprintf(&b, " = %d", r.Total())
	return b.String()
}

// Source produces uniformly distributed integers. board.RandSource is
// satisfied by every Source.
type Source interface {
	// Intn returns a value in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}
