package persistence_test

import (
	"context"
	"testing"

	"github.com/arkturus-sci/homolith/persistence"
	"github.com/arkturus-sci/homolith/simplicial"
	"github.com/stretchr/testify/require"
)

func TestComputeH0_EmptyEdges(t *testing.T) {
	t.Parallel()

	pairs, err := persistence.ComputeH0(context.Background(), []float64{-1, -2, -3}, nil)
	require.NoError(t, err)
	require.Empty(t, pairs)
}

func TestComputeH0_BridgeProducesOneFinitePair(t *testing.T) {
	t.Parallel()

	// Edges run in (filt, src, dst) order. (0,1) merges {0} and {1} first;
	// the bridge (1,2) then joins {0,1} (birth -10, from vertex 0) with {2}
	// (birth -8) at filt -2. The dying component's birth (-8) is strictly
	// less than the bridge edge's own filt (-2), so this merge is the one
	// non-suppressed pair; (2,3) comes last.
	vertexFilt := []float64{-10, -2, -8, -1}
	edges := []simplicial.Edge{
		{Src: 0, Dst: 1, Filt: -2}, // max(-10,-2): suppressed, dyingBirth==filt
		{Src: 1, Dst: 2, Filt: -2}, // bridge: dyingBirth=-8 < filt=-2
		{Src: 2, Dst: 3, Filt: -1}, // suppressed, dyingBirth==filt
	}

	pairs, err := persistence.ComputeH0(context.Background(), vertexFilt, edges)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	require.Equal(t, persistence.Pair{Birth: -8, Death: -2, Dim: 0}, pairs[0])
}

func TestComputeH0_EqualFiltrationMergeIsSuppressed(t *testing.T) {
	t.Parallel()

	// A merge whose dying birth equals the merging edge's filt is treated
	// as a zero-lifetime event and produces no pair.
	pairs, err := persistence.ComputeH0(context.Background(), []float64{-5, -1}, []simplicial.Edge{
		{Src: 0, Dst: 1, Filt: -1},
	})
	require.NoError(t, err)
	require.Empty(t, pairs)
}

func TestComputeH0_Determinism(t *testing.T) {
	t.Parallel()

	vertexFilt := []float64{-10, -2, -8, -1}
	edges := []simplicial.Edge{
		{Src: 0, Dst: 1, Filt: -2},
		{Src: 1, Dst: 2, Filt: -2},
		{Src: 2, Dst: 3, Filt: -1},
	}

	first, err := persistence.ComputeH0(context.Background(), vertexFilt, edges)
	require.NoError(t, err)
	second, err := persistence.ComputeH0(context.Background(), vertexFilt, edges)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestComputeH0_CancelledBeforeReduction(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := persistence.ComputeH0(ctx, []float64{-1, -2}, []simplicial.Edge{{Src: 0, Dst: 1, Filt: -1}})
	require.ErrorIs(t, err, persistence.ErrCancelled)
}
