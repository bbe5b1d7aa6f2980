package knn

import "errors"

// Sentinel errors for the knn package.
var (
	// ErrInvalidArgument indicates a precondition violation: n, d, or k not
	// positive, or k >= n.
	ErrInvalidArgument = errors.New("knn: invalid argument")

	// ErrCancelled indicates the caller's context was cancelled before the
	// scan completed.
	ErrCancelled = errors.New("knn: cancelled")
)

// Result holds the output of Index: the per-query distance and
// neighbor-index rows, excluding self.
type Result struct {
	// D[i] holds the k ascending distances from point i to its neighbors.
	D [][]float64
	// I[i] holds the neighbor indices paired positionally with D[i].
	I [][]int32
}

// neighbor is a candidate (distance, index) pair retained while scanning a
// single query row.
type neighbor struct {
	dist float64
	idx  int32
}
