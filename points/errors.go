package points

import "errors"

// Sentinel errors for the points package.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("points: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("points: index out of bounds")

	// ErrLengthMismatch indicates that a backing slice's length does not match points*dim.
	ErrLengthMismatch = errors.New("points: backing slice length does not match points*dim")

	// ErrNonFinite indicates a NaN or ±Inf entry was found where finite values are required.
	ErrNonFinite = errors.New("points: non-finite value encountered")
)
