package homolith

import (
	"context"
	"errors"
	"fmt"

	"github.com/arkturus-sci/homolith/features"
	"github.com/arkturus-sci/homolith/filtration"
	"github.com/arkturus-sci/homolith/knn"
	"github.com/arkturus-sci/homolith/persistence"
	"github.com/arkturus-sci/homolith/points"
	"github.com/arkturus-sci/homolith/simplicial"
)

// ErrCancelled is returned by Run when ctx is observed cancelled at a
// stage boundary.
var ErrCancelled = errors.New("homolith: cancelled")

// Metadata describes a completed run: {n, d, k, sigma, epsilon, counts per
// dimension}.
type Metadata struct {
	N       int
	D       int
	K       int
	Sigma   float64
	Epsilon float64
	Counts  map[int]int
	Backend string
}

// Result bundles the two products Run emits: persistence diagrams (by
// dimension) and the significant-feature candidate list, plus run
// metadata.
type Result struct {
	Diagrams   map[int][]persistence.Pair
	Candidates []features.Candidate
	Metadata   Metadata
}

// Run executes the full pipeline: KnnIndex, DensityFiltration,
// ComplexBuilder, PersistenceH0, PersistenceH1, FeatureExtractor.
//
// Stage 1 (Validate): P must be non-nil with finite entries; options are
// resolved against defaults and the accelerator policy is evaluated once.
// Stage 2 (Execute): the six stages run in sequence, each gated by a
// cancellation check at the coarse boundary preceding it.
// Stage 3 (Finalize): diagrams, candidates and metadata are assembled;
// the kNN arrays are dropped before PersistenceH1 runs, since
// FeatureExtractor's radius queries are served from P alone.
func Run(ctx context.Context, P *points.Dense, opts ...Option) (*Result, error) {
	if P == nil {
		return nil, knn.ErrInvalidArgument
	}
	if err := P.Finite(); err != nil {
		return nil, err
	}

	o := gatherOptions(opts...)
	capability, err := resolveCapability(o.accelerator)
	if err != nil {
		return nil, err
	}

	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	result, err := knn.Index(ctx, P, o.k, o.limit)
	if err != nil {
		return nil, fmt.Errorf("homolith.Run: knn: %w", err)
	}

	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	kth := filtration.KthDistances(result.D)
	vertexFilt, err := filtration.Compute(kth, o.epsilon)
	if err != nil {
		return nil, fmt.Errorf("homolith.Run: filtration: %w", err)
	}

	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	sc, err := simplicial.Build(result.I, vertexFilt, true)
	if err != nil {
		return nil, fmt.Errorf("homolith.Run: simplicial: %w", err)
	}
	// The kNN distance/index arrays are not touched again; FeatureExtractor
	// serves its radius queries from P directly.
	result = nil

	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	pairs0, err := persistence.ComputeH0(ctx, sc.VertexFilt, sc.Edges)
	if err != nil {
		return nil, fmt.Errorf("homolith.Run: h0: %w", err)
	}

	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	pairs1, err := persistence.ComputeH1(ctx, sc.Edges, sc.Triangles)
	if err != nil {
		return nil, fmt.Errorf("homolith.Run: h1: %w", err)
	}

	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	allPairs := make([]persistence.Pair, 0, len(pairs0)+len(pairs1))
	allPairs = append(allPairs, pairs0...)
	allPairs = append(allPairs, pairs1...)
	candidates, err := features.Extract(ctx, allPairs, sc.VertexFilt, P, o.sigma, o.limit)
	if err != nil {
		return nil, fmt.Errorf("homolith.Run: features: %w", err)
	}

	counts := map[int]int{0: len(pairs0), 1: len(pairs1)}

	return &Result{
		Diagrams:   map[int][]persistence.Pair{0: pairs0, 1: pairs1},
		Candidates: candidates,
		Metadata: Metadata{
			N:       P.Rows(),
			D:       P.Cols(),
			K:       o.k,
			Sigma:   o.sigma,
			Epsilon: o.epsilon,
			Counts:  counts,
			Backend: capability.Name(),
		},
	}, nil
}

func checkCtx(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ErrCancelled
	default:
		return nil
	}
}
