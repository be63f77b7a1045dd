package life

import "github.com/pkg/errors"

// ErrOutOfBounds is returned when a coordinate falls outside the grid.
// Out-of-range access is a caller contract violation; the grid never clamps
// or wraps a bad coordinate.
var ErrOutOfBounds = errors.New("life: coordinate out of bounds")

// ErrInvalidDimensions is returned by New for non-positive dimensions.
var ErrInvalidDimensions = errors.New("life: grid dimensions must be positive")
