package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Limits on a parsed expression.
const (
	MaxCount = 100
	MaxSides = 1000
)

// Expression is a parsed "NdS+M" dice expression.
type Expression struct {
	Raw      string
	Count    int
	Sides    int
	Modifier int
}

// DefaultMovement is the roll used for a turn's movement when none is
// configured.
const DefaultMovement = "2d6"

var exprRe = regexp.MustCompile(`^(\d*)d(\d+)(?:([+-])(\d+))?$`)

// Parse reads an expression such as "d6", "2d6" or "1d6+2". The count
// defaults to one.
//
// Postcondition: on success 1 <= Count <= MaxCount and 2 <= Sides <= MaxSides.
func Parse(expr string) (Expression, error) {
	raw := strings.ToLower(strings.TrimSpace(expr))
	if raw == "" {
		return Expression{}, fmt.Errorf("dice: empty expression")
	}
	m := exprRe.FindStringSubmatch(raw)
	if m == nil {
		return Expression{}, fmt.Errorf("dice: malformed expression %q: want NdS or NdS+M", expr)
	}

	count := 1
	if m[1] != "" {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid die count in %q: %w", expr, err)
		}
		count = n
	}
	if count < 1 || count > MaxCount {
		return Expression{}, fmt.Errorf("dice: die count in %q must be between 1 and %d", expr, MaxCount)
	}

	sides, err := strconv.Atoi(m[2])
	if err != nil {
		return Expression{}, fmt.Errorf("dice: invalid die sides in %q: %w", expr, err)
	}
	if sides < 2 || sides > MaxSides {
		return Expression{}, fmt.Errorf("dice: die sides in %q must be between 2 and %d", expr, MaxSides)
	}

	mod := 0
	if m[3] != "" {
		mod, err = strconv.Atoi(m[4])
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid modifier in %q: %w", expr, err)
		}
		if m[3] == "-" {
			mod = -mod
		}
	}
	return Expression{Raw: raw, Count: count, Sides: sides, Modifier: mod}, nil
}

// MustParse is Parse that panics on error.
func MustParse(expr string) Expression {
	e, err := Parse(expr)
	if err != nil {
		panic("dice: MustParse failed for expression " + expr + ": " + err.Error())
	}
	return e
}

// Range returns the lowest and highest totals the expression can produce.
func (e Expression) Range() (lo, hi int) {
	return e.Count + e.Modifier, e.Count*e.Sides + e.Modifier
}
