package persistence

import (
	"context"
	"sort"

	"github.com/arkturus-sci/homolith/simplicial"
)

// unionFind is an arena of (parent, rank, birth) slices indexed directly by
// vertex id, avoiding the indirection and hashing a map-keyed disjoint-set
// would need for what are already dense 0..n-1 vertex indices.
type unionFind struct {
	parent []int32
	rank   []int8
	birth  []float64
}

func newUnionFind(vertexFilt []float64) *unionFind {
	uf := &unionFind{
		parent: make([]int32, len(vertexFilt)),
		rank:   make([]int8, len(vertexFilt)),
		birth:  append([]float64(nil), vertexFilt...),
	}
	for i := range uf.parent {
		uf.parent[i] = int32(i)
	}
	return uf
}

// find resolves the root of v with path compression by halving.
func (uf *unionFind) find(v int32) int32 {
	for uf.parent[v] != v {
		uf.parent[v] = uf.parent[uf.parent[v]]
		v = uf.parent[v]
	}
	return v
}

// ComputeH0 reduces the 1-skeleton to H0 birth/death pairs by sorted-edge
// union-find.
//
// Stage 1 (Validate): len(edges) may be zero (an empty complex is valid
// input, not an error).
// Stage 2 (Execute): sort edges by (filt, src, dst); for each edge, merge
// the two endpoint components, the later-born component dies at this
// edge's filt.
// Stage 3 (Finalize): return only finite pairs with dying_birth < f.
//
// Determinism: with the tie-break fixed, the pair sequence is a function
// of the input alone.
// Complexity: O(E log E + alpha(V)*E).
func ComputeH0(ctx context.Context, vertexFilt []float64, edges []simplicial.Edge) ([]Pair, error) {
	if vertexFilt == nil {
		return nil, ErrInvalidArgument
	}

	sorted := append([]simplicial.Edge(nil), edges...)
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].Filt != sorted[b].Filt {
			return sorted[a].Filt < sorted[b].Filt
		}
		if sorted[a].Src != sorted[b].Src {
			return sorted[a].Src < sorted[b].Src
		}
		return sorted[a].Dst < sorted[b].Dst
	})

	if err := checkCancelled(ctx); err != nil {
		return nil, err
	}

	uf := newUnionFind(vertexFilt)
	pairs := make([]Pair, 0, len(sorted))

	for _, e := range sorted {
		ru, rv := uf.find(e.Src), uf.find(e.Dst)
		if ru == rv {
			continue
		}

		// The component with the later (larger) birth dies; the survivor
		// keeps the earlier birth. This is a logical fact about the two
		// components and is independent of which root the rank-based
		// union below happens to keep as the tree root.
		survivorBirth, dyingBirth := uf.birth[ru], uf.birth[rv]
		if survivorBirth > dyingBirth {
			survivorBirth, dyingBirth = dyingBirth, survivorBirth
		}
		if dyingBirth < e.Filt {
			pairs = append(pairs, Pair{Birth: dyingBirth, Death: e.Filt, Dim: 0})
		}

		// Union by rank; ties on rank increment the new root's rank.
		var newRoot int32
		switch {
		case uf.rank[ru] < uf.rank[rv]:
			uf.parent[ru] = rv
			newRoot = rv
		case uf.rank[ru] > uf.rank[rv]:
			uf.parent[rv] = ru
			newRoot = ru
		default:
			uf.parent[rv] = ru
			uf.rank[ru]++
			newRoot = ru
		}
		uf.birth[newRoot] = survivorBirth
	}

	return pairs, nil
}
