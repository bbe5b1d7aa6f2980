package persistence

import (
	"context"
	"errors"
)

// Sentinel errors for the persistence package.
var (
	// ErrInvalidArgument indicates mismatched vertex/edge/triangle inputs.
	ErrInvalidArgument = errors.New("persistence: invalid argument")

	// ErrCancelled indicates the caller's context was cancelled before
	// reduction completed.
	ErrCancelled = errors.New("persistence: cancelled")
)

// Pair is a (birth, death) persistence pair in a given homology dimension.
// Only finite pairs with death > birth are ever constructed by this
// package.
type Pair struct {
	Birth, Death float64
	Dim          int
}

// checkCancelled is the coarse cancellation boundary checked between
// edge-sort and the reduction loop.
func checkCancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ErrCancelled
	default:
		return nil
	}
}
