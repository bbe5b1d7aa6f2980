package knn

import (
	"context"
	"math"
	"sort"

	"github.com/arkturus-sci/homolith/internal/workerpool"
	"github.com/arkturus-sci/homolith/points"
)

// Index computes the k-nearest-neighbor distance and index matrices for
// every point in P.
//
// Stage 1 (Validate): n, d, k must be positive and k < n.
// Stage 2 (Execute): for each query row, scan all n-1 other points,
// maintaining the k smallest (distance, index) pairs with ties broken by
// ascending index; rows are independent and are dispatched across a
// bounded worker pool.
// Stage 3 (Finalize): return the assembled Result, or Cancelled if ctx was
// cancelled mid-scan.
//
// Complexity: O(n² · d) time, O(n · k) output memory.
func Index(ctx context.Context, P *points.Dense, k int, limit int) (*Result, error) {
	if P == nil {
		return nil, ErrInvalidArgument
	}
	n, d := P.Rows(), P.Cols()
	if n <= 0 || d <= 0 || k <= 0 || k >= n {
		return nil, ErrInvalidArgument
	}

	D := make([][]float64, n)
	I := make([][]int32, n)

	err := workerpool.Range(ctx, n, limit, func(ctx context.Context, i int) error {
		if err := ctx.Err(); err != nil {
			return ErrCancelled
		}

		row, err := P.Row(i)
		if err != nil {
			return err
		}

		best := make([]neighbor, 0, k+1)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			other, err := P.Row(j)
			if err != nil {
				return err
			}
			dist2 := squaredDistance(row, other)
			best = insertTopK(best, neighbor{dist: dist2, idx: int32(j)}, k)
		}

		dd := make([]float64, len(best))
		ii := make([]int32, len(best))
		for r, nb := range best {
			dd[r] = sqrtZero(nb.dist)
			ii[r] = nb.idx
		}
		D[i] = dd
		I[i] = ii
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Result{D: D, I: I}, nil
}

// squaredDistance computes the squared Euclidean distance between two rows
// of equal length. The square root is deferred to sqrtZero and taken once
// per retained neighbor rather than once per comparison.
func squaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return sum
}

// sqrtZero takes the square root of a squared distance, defining sqrt(0) as
// exactly 0 so coincident points report zero distance rather than a
// near-zero floating-point residue.
func sqrtZero(sq float64) float64 {
	if sq <= 0 {
		return 0
	}
	return math.Sqrt(sq)
}

// insertTopK inserts candidate into best, which is kept sorted ascending by
// (dist, idx), and truncates to at most k entries. best is small (≤ k+1),
// so a linear insertion beats heap bookkeeping in practice.
func insertTopK(best []neighbor, candidate neighbor, k int) []neighbor {
	pos := sort.Search(len(best), func(i int) bool {
		if best[i].dist != candidate.dist {
			return best[i].dist > candidate.dist
		}
		return best[i].idx > candidate.idx
	})
	if pos == len(best) {
		if len(best) < k {
			return append(best, candidate)
		}
		return best
	}
	if len(best) < k {
		best = append(best, neighbor{})
	}
	copy(best[pos+1:], best[pos:len(best)-1])
	best[pos] = candidate
	return best
}
