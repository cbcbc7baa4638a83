package lightsout

import "errors"

// Errors returned by Engine. They are wrapped with call context, so match
// them with errors.Is.
var (
	ErrInvalidDimension   = errors.New("invalid dimension")
	ErrInvalidProbability = errors.New("invalid start probability")
	ErrOutOfBounds        = errors.New("position out of bounds")
	ErrGameAlreadyWon     = errors.New("game already won")
	ErrNoGame             = errors.New("no game in progress")
)
