package homolith

import (
	"context"
	"errors"

	"github.com/arkturus-sci/homolith/features"
	"github.com/arkturus-sci/homolith/filtration"
	"github.com/arkturus-sci/homolith/knn"
	"github.com/arkturus-sci/homolith/persistence"
	"github.com/arkturus-sci/homolith/points"
	"github.com/arkturus-sci/homolith/simplicial"
)

// ErrorCode is the boundary-level error taxonomy surfaced by Run.
type ErrorCode int

const (
	Success ErrorCode = iota
	InvalidArgument
	OutOfMemory
	AcceleratorUnavailable
	AcceleratorAllocFailed
	AcceleratorCopyFailed
	AcceleratorKernelFailed
	Internal
	Cancelled
)

// String names the code for logging and test-failure messages.
func (c ErrorCode) String() string {
	switch c {
	case Success:
		return "Success"
	case InvalidArgument:
		return "InvalidArgument"
	case OutOfMemory:
		return "OutOfMemory"
	case AcceleratorUnavailable:
		return "AcceleratorUnavailable"
	case AcceleratorAllocFailed:
		return "AcceleratorAllocFailed"
	case AcceleratorCopyFailed:
		return "AcceleratorCopyFailed"
	case AcceleratorKernelFailed:
		return "AcceleratorKernelFailed"
	case Internal:
		return "Internal"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// ErrAcceleratorUnavailable is returned by Run when a caller requested
// WithAccelerator(AcceleratorRequired) and no GPU backend is present.
var ErrAcceleratorUnavailable = errors.New("homolith: accelerator unavailable")

// CodeOf classifies an error returned by Run into the boundary error
// taxonomy. Subpackage sentinel errors are mapped by errors.Is; everything
// else that escaped a subpackage uncategorized is Internal, since each
// subpackage's own contract is exhaustive about what it returns.
func CodeOf(err error) ErrorCode {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrCancelled),
		errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, knn.ErrCancelled), errors.Is(err, persistence.ErrCancelled),
		errors.Is(err, features.ErrCancelled):
		return Cancelled
	case errors.Is(err, ErrAcceleratorUnavailable):
		return AcceleratorUnavailable
	case errors.Is(err, points.ErrInvalidDimensions), errors.Is(err, points.ErrIndexOutOfBounds),
		errors.Is(err, points.ErrLengthMismatch), errors.Is(err, points.ErrNonFinite),
		errors.Is(err, knn.ErrInvalidArgument), errors.Is(err, filtration.ErrInvalidArgument),
		errors.Is(err, simplicial.ErrInvalidArgument), errors.Is(err, persistence.ErrInvalidArgument),
		errors.Is(err, features.ErrInvalidArgument):
		return InvalidArgument
	default:
		return Internal
	}
}
