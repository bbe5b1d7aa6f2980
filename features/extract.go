package features

import (
	"context"
	"sort"

	"github.com/arkturus-sci/homolith/persistence"
	"github.com/arkturus-sci/homolith/points"
	"gonum.org/v1/gonum/stat"
)

// Extract selects significant pairs from pairs (which may mix dimensions)
// and, for each, enumerates member indices via a radius query on P.
//
// Stage 1 (Validate): P and vertexFilt must be non-nil; sigma must be
// positive. A significant pair whose birth matches no vertexFilt entry is
// skipped, not reported as an error.
// Stage 2 (Execute): group pairs by dimension, compute mean/stddev of
// lifetimes per group via gonum/stat, keep pairs whose lifetime exceeds
// mean + sigma*stddev, then run a radius query per surviving pair.
// Stage 3 (Finalize): return the candidates of all dimensions in one list,
// sorted by lifetime descending; the sort is stable and dimensions are
// visited in ascending order, so equal lifetimes keep ascending dimension.
// The list is not grouped by dimension.
//
// With fewer than two pairs in a dimension, no pair in that dimension is
// ever significant: a single sample has no meaningful stddev to compare
// against.
func Extract(ctx context.Context, pairs []persistence.Pair, vertexFilt []float64, P *points.Dense, sigma float64, limit int) ([]Candidate, error) {
	if P == nil || vertexFilt == nil || sigma <= 0 {
		return nil, ErrInvalidArgument
	}

	byDim := make(map[int][]persistence.Pair)
	var dims []int
	for _, p := range pairs {
		if _, ok := byDim[p.Dim]; !ok {
			dims = append(dims, p.Dim)
		}
		byDim[p.Dim] = append(byDim[p.Dim], p)
	}
	sort.Ints(dims)

	var out []Candidate
	for _, dim := range dims {
		group := byDim[dim]
		if len(group) < 2 {
			continue
		}

		lifetimes := make([]float64, len(group))
		for i, p := range group {
			lifetimes[i] = p.Death - p.Birth
		}
		mean, stddev := stat.MeanStdDev(lifetimes, nil)
		threshold := mean + sigma*stddev

		for i, p := range group {
			if err := ctx.Err(); err != nil {
				return nil, ErrCancelled
			}
			lifetime := lifetimes[i]
			if lifetime <= threshold {
				continue
			}

			center, ok := representative(vertexFilt, p.Birth)
			if !ok {
				continue
			}
			row, err := P.Row(center)
			if err != nil {
				return nil, err
			}
			radius := -1 / p.Death
			members, err := RadiusQuery(ctx, P, row, radius, limit)
			if err != nil {
				return nil, err
			}

			out = append(out, Candidate{
				Birth:    p.Birth,
				Death:    p.Death,
				Lifetime: lifetime,
				Dim:      dim,
				Members:  members,
			})
		}
	}

	sort.SliceStable(out, func(a, b int) bool { return out[a].Lifetime > out[b].Lifetime })
	return out, nil
}

// representative returns the lowest index whose filtration value equals
// birth exactly: birth always originates from some vertex's own value
// (directly in H0, or as the larger of two endpoints' values via an edge's
// max-filt construction in H1), so an exact match always exists for valid
// pipeline output.
func representative(vertexFilt []float64, birth float64) (int, bool) {
	for i, f := range vertexFilt {
		if f == birth {
			return i, true
		}
	}
	return 0, false
}
