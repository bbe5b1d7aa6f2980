package features

import "errors"

var (
	// ErrInvalidArgument reports a malformed or dimensionally inconsistent input.
	ErrInvalidArgument = errors.New("features: invalid argument")
	// ErrCancelled reports the cooperative cancellation token firing before
	// completion.
	ErrCancelled = errors.New("features: cancelled")
)

// Candidate is one significant persistence pair together with the indices
// of the points that participate in it.
type Candidate struct {
	Birth    float64
	Death    float64
	Lifetime float64
	Dim      int
	Members  []int32
}

// DefaultSigma is the significance-threshold multiplier used when the
// caller does not override it.
const DefaultSigma = 3.0
