package scoring

import "errors"

var (
	ErrInvalidModel     = errors.New("invalid scoring model")
	ErrInvalidQuestion  = errors.New("invalid question")
	ErrInvalidArchetype = errors.New("invalid archetype")
	ErrUnknownQuestion  = errors.New("unknown question")
	ErrValueOutOfRange  = errors.New("answer value out of range")
)
