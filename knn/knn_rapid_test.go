package knn_test

import (
	"context"
	"math"
	"testing"

	"github.com/arkturus-sci/homolith/knn"
	"github.com/arkturus-sci/homolith/points"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestIndex_RowOrderingProperty checks that for all i, D[i] is
// non-decreasing and I[i][r] != i for all r.
func TestIndex_RowOrderingProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(3, 12).Draw(rt, "n")
		d := rapid.IntRange(1, 3).Draw(rt, "d")
		k := rapid.IntRange(1, n-1).Draw(rt, "k")

		flat := make([]float64, n*d)
		for i := range flat {
			flat[i] = rapid.Float64Range(-50, 50).Draw(rt, "coord")
		}
		P, err := points.WrapDense(n, d, flat)
		require.NoError(rt, err)

		res, err := knn.Index(context.Background(), P, k, 0)
		require.NoError(rt, err)

		for i, row := range res.D {
			for j := 1; j < len(row); j++ {
				require.LessOrEqual(rt, row[j-1], row[j])
			}
			for _, idx := range res.I[i] {
				require.NotEqual(rt, int32(i), idx)
			}
		}
	})
}

// TestIndex_SymmetryProperty checks that if j appears in D[i] at distance
// δ, and j's row was also computed with a k large enough to reach i, the
// recorded distance from j to i is bit-exact δ. We test this by
// recomputing full all-pairs distances with k = n-1 so every pair is
// mutually visible.
func TestIndex_SymmetryProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(2, 10).Draw(rt, "n")
		d := rapid.IntRange(1, 3).Draw(rt, "d")

		flat := make([]float64, n*d)
		for i := range flat {
			flat[i] = rapid.Float64Range(-50, 50).Draw(rt, "coord")
		}
		P, err := points.WrapDense(n, d, flat)
		require.NoError(rt, err)

		res, err := knn.Index(context.Background(), P, n-1, 0)
		require.NoError(rt, err)

		for i := 0; i < n; i++ {
			for pos, j := range res.I[i] {
				distIJ := res.D[i][pos]
				// Find i within j's row and compare distances bit-exactly.
				found := false
				for pos2, idx2 := range res.I[j] {
					if idx2 == int32(i) {
						require.True(rt, distIJ == res.D[j][pos2] || math.Abs(distIJ-res.D[j][pos2]) == 0)
						found = true
						break
					}
				}
				require.True(rt, found, "expected %d to appear in neighbor list of %d", i, j)
			}
		}
	})
}
