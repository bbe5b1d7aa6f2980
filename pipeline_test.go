package homolith_test

import (
	"context"
	"math"
	"testing"

	homolith "github.com/arkturus-sci/homolith"
	"github.com/arkturus-sci/homolith/points"
	"github.com/stretchr/testify/require"
)

func gridCloud(t *testing.T, coords [][]float64) *points.Dense {
	t.Helper()
	P, err := points.NewDense(len(coords), len(coords[0]))
	require.NoError(t, err)
	for i, row := range coords {
		for j, v := range row {
			require.NoError(t, P.Set(i, j, v))
		}
	}
	return P
}

// twoClusters builds two tight clusters of 4 points each, far apart, so a
// small k only ever connects points within a cluster.
func twoClusters() [][]float64 {
	return [][]float64{
		{0, 0}, {0, 1}, {1, 0}, {1, 1},
		{100, 100}, {100, 101}, {101, 100}, {101, 101},
	}
}

func TestRun_NilPoints(t *testing.T) {
	t.Parallel()

	_, err := homolith.Run(context.Background(), nil)
	require.Error(t, err)
}

func TestRun_NonFiniteRejected(t *testing.T) {
	t.Parallel()

	P := gridCloud(t, [][]float64{{0, 0}, {1, 1}, {2, 2}})
	require.NoError(t, P.Set(0, 0, math.NaN()))

	_, err := homolith.Run(context.Background(), P, homolith.WithK(1))
	require.Error(t, err)
}

func TestRun_TwoDisconnectedClustersProduceNoFiniteH0Pair(t *testing.T) {
	t.Parallel()

	P := gridCloud(t, twoClusters())
	result, err := homolith.Run(context.Background(), P, homolith.WithK(3))
	require.NoError(t, err)
	require.Equal(t, 8, result.Metadata.N)
	require.Equal(t, 2, result.Metadata.D)
	// k=3 keeps every point's 3 nearest neighbors within its own unit
	// square, so the two clusters never connect via a kNN edge. Within a
	// cluster, every point's 3rd (largest) neighbor distance is the same
	// diagonal length, so all four vertices share one filtration value;
	// every intra-cluster merge then has dying_birth == edge.filt exactly
	// and is suppressed. Net result: zero finite H0 pairs.
	require.Equal(t, 0, result.Metadata.Counts[0])
}

func TestRun_AcceleratorRequiredWithoutBackendFails(t *testing.T) {
	t.Parallel()

	P := gridCloud(t, twoClusters())
	_, err := homolith.Run(context.Background(), P, homolith.WithAccelerator(homolith.AcceleratorRequired))
	require.ErrorIs(t, err, homolith.ErrAcceleratorUnavailable)
}

func TestRun_AcceleratorAutoFallsBackToHost(t *testing.T) {
	t.Parallel()

	P := gridCloud(t, twoClusters())
	result, err := homolith.Run(context.Background(), P, homolith.WithK(3), homolith.WithAccelerator(homolith.AcceleratorAuto))
	require.NoError(t, err)
	require.Equal(t, "host", result.Metadata.Backend)
}

func TestRun_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	P := gridCloud(t, twoClusters())
	_, err := homolith.Run(ctx, P, homolith.WithK(3))
	require.ErrorIs(t, err, homolith.ErrCancelled)
}

func TestRun_Determinism(t *testing.T) {
	t.Parallel()

	P := gridCloud(t, twoClusters())
	first, err := homolith.Run(context.Background(), P, homolith.WithK(3))
	require.NoError(t, err)
	second, err := homolith.Run(context.Background(), P, homolith.WithK(3))
	require.NoError(t, err)
	require.Equal(t, first.Diagrams, second.Diagrams)
	require.Equal(t, first.Candidates, second.Candidates)
}

func TestRun_MetadataCarriesConfiguration(t *testing.T) {
	t.Parallel()

	P := gridCloud(t, twoClusters())
	result, err := homolith.Run(context.Background(), P, homolith.WithK(3), homolith.WithSigma(2.5), homolith.WithEpsilonDensity(1e-6))
	require.NoError(t, err)
	require.Equal(t, 3, result.Metadata.K)
	require.Equal(t, 2.5, result.Metadata.Sigma)
	require.Equal(t, 1e-6, result.Metadata.Epsilon)
}
