package persistence_test

import (
	"context"
	"testing"

	"github.com/arkturus-sci/homolith/persistence"
	"github.com/arkturus-sci/homolith/simplicial"
	"github.com/stretchr/testify/require"
)

func edges45() []simplicial.Edge {
	return []simplicial.Edge{
		{Src: 1, Dst: 3, Filt: 0.5},
		{Src: 2, Dst: 3, Filt: 0.8},
		{Src: 0, Dst: 1, Filt: 1},
		{Src: 0, Dst: 2, Filt: 2},
		{Src: 1, Dst: 2, Filt: 3},
	}
}

func triangles45() []simplicial.Triangle {
	return []simplicial.Triangle{
		{V0: 0, V1: 1, V2: 2, Filt: 5},
		{V0: 1, V1: 2, V2: 3, Filt: 6},
	}
}

func TestComputeH1_EmptyInput(t *testing.T) {
	t.Parallel()

	pairs, err := persistence.ComputeH1(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Empty(t, pairs)
}

// TestComputeH1_PivotClashMergesColumns hand-verifies a column-reduction
// worked example: the second triangle's boundary column shares its initial
// pivot (edge (1,2), the highest-filt edge both triangles bound) with the
// first triangle's already-registered column, forcing an XOR merge before a
// new pivot is found.
func TestComputeH1_PivotClashMergesColumns(t *testing.T) {
	t.Parallel()

	pairs, err := persistence.ComputeH1(context.Background(), edges45(), triangles45())
	require.NoError(t, err)
	require.Equal(t, []persistence.Pair{
		{Birth: 3, Death: 5, Dim: 1},
		{Birth: 2, Death: 6, Dim: 1},
	}, pairs)
}

func TestComputeH1_FilledTriangleProducesNoPair(t *testing.T) {
	t.Parallel()

	// A single triangle whose last bounding edge (1,2) enters at the
	// triangle's own filt 3: the cycle is filled the moment it closes, so
	// birth == death and the pair is suppressed.
	edges := []simplicial.Edge{
		{Src: 0, Dst: 1, Filt: 1},
		{Src: 0, Dst: 2, Filt: 2},
		{Src: 1, Dst: 2, Filt: 3},
	}
	triangles := []simplicial.Triangle{{V0: 0, V1: 1, V2: 2, Filt: 3}}

	pairs, err := persistence.ComputeH1(context.Background(), edges, triangles)
	require.NoError(t, err)
	require.Empty(t, pairs)
}

// TestComputeH1_Idempotent checks that reducing the same complex twice
// yields identical output, i.e. reduction has no observable side effect on
// its (conceptually immutable) input.
func TestComputeH1_Idempotent(t *testing.T) {
	t.Parallel()

	first, err := persistence.ComputeH1(context.Background(), edges45(), triangles45())
	require.NoError(t, err)
	second, err := persistence.ComputeH1(context.Background(), edges45(), triangles45())
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestComputeH1_CancelledBeforeReduction(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := persistence.ComputeH1(ctx, edges45(), triangles45())
	require.ErrorIs(t, err, persistence.ErrCancelled)
}
