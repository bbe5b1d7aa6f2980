package features

import (
	"context"

	"github.com/arkturus-sci/homolith/internal/workerpool"
	"github.com/arkturus-sci/homolith/points"
	"gonum.org/v1/gonum/floats"
)

// RadiusQuery returns the indices of rows of P within radius (inclusive) of
// center. Ordering is unspecified by the contract; this implementation
// returns ascending index order, which is stable within a single
// invocation and across repeated invocations on the same input.
//
// Unlike knn.Index, this scan has no "compare on squared distance, sqrt
// once" numeric recipe to honor, so the membership test reads directly off
// floats.Distance's L2 norm rather than a hand-rolled squared-distance
// accumulator.
func RadiusQuery(ctx context.Context, P *points.Dense, center []float64, radius float64, limit int) ([]int32, error) {
	if P == nil || len(center) != P.Cols() || radius < 0 {
		return nil, ErrInvalidArgument
	}

	n := P.Rows()
	matched := make([]bool, n)

	err := workerpool.Range(ctx, n, limit, func(ctx context.Context, i int) error {
		if err := ctx.Err(); err != nil {
			return ErrCancelled
		}
		row, err := P.Row(i)
		if err != nil {
			return err
		}
		matched[i] = floats.Distance(row, center, 2) <= radius
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]int32, 0, n)
	for i, ok := range matched {
		if ok {
			out = append(out, int32(i))
		}
	}
	return out, nil
}
