package dice

import (
	"fmt"

	"go.uber.org/zap"
)

// Roll evaluates expr with src.
//
// Precondition: expr must come from Parse; src must be non-nil.
// Postcondition: len(result.Dice) == expr.Count and every die is in [1, Sides].
func Roll(expr Expression, src Source) Result {
	if src == nil {
		panic("dice.Roll: source must not be nil")
	}
	rolled := make([]int, expr.Count)
	for i := range rolled {
		rolled[i] = src.Intn(expr.Sides) + 1
	}
	return Result{Expression: expr.Raw, Dice: rolled, Modifier: expr.Modifier}
}

// RollExpr parses expr and rolls it with src.
func RollExpr(expr string, src Source) (Result, error) {
	e, err := Parse(expr)
	if err != nil {
		return Result{}, err
	}
	return Roll(e, src), nil
}

// Roller rolls against a fixed source and logs every roll.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewRoller creates a Roller. A nil logger discards output.
//
// Precondition: src must be non-nil.
func NewRoller(src Source, logger *zap.Logger) *Roller {
	if src == nil {
		panic("dice.NewRoller: source must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Roller{src: src, logger: logger}
}

// Source returns the roller's random source.
func (r *Roller) Source() Source {
	return r.src
}

// Roll rolls expr and logs the result.
func (r *Roller) Roll(expr Expression) Result {
	res := Roll(expr, r.src)
	r.logger.Debug("dice roll",
		zap.String("expression", res.Expression),
		zap.Ints("dice", res.Dice),
		zap.Int("modifier", res.Modifier),
		zap.Int("total", res.Total()),
	)
	return res
}

// RollExpr parses and rolls expr.
func (r *Roller) RollExpr(expr string) (Result, error) {
	e, err := Parse(expr)
	if err != nil {
		return Result{}, err
	}
	return r.Roll(e), nil
}

// Movement rolls expr and returns the number of moves it grants for a turn.
func (r *Roller) Movement(expr string) (int, Result, error) {
	res, err := r.RollExpr(expr)
	if err != nil {
		return 0, Result{}, fmt.Errorf("rolling movement: %w", err)
	}
	return res.Moves(), res, nil
}
