package mines

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalTarget = errors.New("illegal target")
	ErrGameOver      = errors.New("game is over")
)

// TargetError is returned for a well-formed move whose square cannot take the
// requested action. The game is left untouched.
type TargetError struct {
	Point          // the square the move named
	message string // why the square rejected the move
}

// Error reports the rejection reason; the square is available as e.Point.
func (e *TargetError) Error() string {
	return e.message
}

func (e *TargetError) Unwrap() error {
	return ErrIllegalTarget
}

func cannotCheck(row, col int) error {
	return &TargetError{Point{row, col}, "cannot check this square"}
}

func cannotFlag(row, col int) error {
	return &TargetError{Point{row, col}, "cannot flag this square"}
}

func outOfBounds(row, col int) error {
	return &TargetError{Point{row, col}, "square is out of bounds"}
}

func gameOver(status Status) error {
	return fmt.Errorf("%w: already %s", ErrGameOver, status)
}
