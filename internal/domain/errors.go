package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/antinode/internal/model"
)

var (
	// ErrOutOfBounds is returned when a position falls outside a grid's declared size.
	ErrOutOfBounds = errors.New("position is out of bounds")

	// ErrEmptyInput is returned when the input holds no grid characters.
	ErrEmptyInput = errors.New("input contains no grid characters")

	// ErrUnknownPolicy is returned for a policy name that is not built in.
	ErrUnknownPolicy = errors.New("unknown policy")
)

// ErrInvalidSize indicates a grid constructed with a negative size.
type ErrInvalidSize struct {
	Size m.Vec2
}

func (e *ErrInvalidSize) Error() string {
	return fmt.Sprintf("invalid grid size %s: components must be non-negative", e.Size)
}

// ErrGridTooLarge indicates input whose extent does not fit the coordinate range.
type ErrGridTooLarge struct {
	Width  int
	Height int
}

func (e *ErrGridTooLarge) Error() string {
	return fmt.Sprintf("grid %dx%d exceeds the maximum extent of %d", e.Width, e.Height, m.MaxCoord)
}

func outOfBounds(pos, size m.Vec2) error {
	return fmt.Errorf("%w: %s not within %dx%d", ErrOutOfBounds, pos, size.X, size.Y)
}

func validateSize(size m.Vec2) error {
	if size.X < 0 || size.Y < 0 {
		return &ErrInvalidSize{Size: size}
	}

	return nil
}
