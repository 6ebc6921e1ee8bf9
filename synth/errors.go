package synth

import "errors"

// Sentinel errors returned by Constructor implementations.
var (
	// ErrTooFewVertices is returned when n is below a constructor's minimum.
	ErrTooFewVertices = errors.New("synth: too few vertices")

	// ErrInvalidProbability is returned when RandomSparse's p is outside [0,1].
	ErrInvalidProbability = errors.New("synth: probability must be in [0,1]")
)
