package simplicial

import "sort"

// Build constructs the 2-skeleton from a neighbor-index matrix I and vertex
// filtration values F.
//
// Stage 1 (Validate): F non-empty; I has one row per vertex.
// Stage 2 (Execute): dedup directed neighbor pairs into undirected edges
// keyed by canonical (min, max); if withTriangles, enumerate closed
// triangles by testing neighbor pairs against the edge set.
// Stage 3 (Finalize): return the assembled Complex.
//
// Complexity: O(n·k) to build the edge set; triangle enumeration is
// bounded by the sum of squared vertex degrees in the neighbor graph, not
// O(n³).
func Build(I [][]int32, F []float64, withTriangles bool) (*Complex, error) {
	if len(F) == 0 || len(I) != len(F) {
		return nil, ErrInvalidArgument
	}

	edgeFilt := make(map[edgeKey]float64)
	for i, neighbors := range I {
		for _, j := range neighbors {
			if int(j) < 0 || int(j) >= len(F) {
				return nil, ErrInvalidArgument
			}
			key := canonical(int32(i), j)
			filt := maxFloat(F[i], F[j])
			if existing, ok := edgeFilt[key]; !ok || filt < existing {
				// Both directed occurrences of an undirected edge produce
				// the same filt by construction (max(F[i],F[j]) is
				// symmetric); the ok-guard just avoids a redundant write.
				edgeFilt[key] = filt
			}
		}
	}

	edges := make([]Edge, 0, len(edgeFilt))
	for k, filt := range edgeFilt {
		edges = append(edges, Edge{Src: k.u, Dst: k.v, Filt: filt})
	}
	sort.Slice(edges, func(a, b int) bool {
		if edges[a].Src != edges[b].Src {
			return edges[a].Src < edges[b].Src
		}
		return edges[a].Dst < edges[b].Dst
	})

	c := &Complex{VertexFilt: F, Edges: edges}
	if !withTriangles {
		return c, nil
	}

	adjacency := buildAdjacency(edges, len(F))
	triFilt := make(map[[3]int32]float64)
	for v, neighbors := range adjacency {
		for ai := 0; ai < len(neighbors); ai++ {
			for bi := ai + 1; bi < len(neighbors); bi++ {
				a, b := neighbors[ai], neighbors[bi]
				closingKey := canonical(a, b)
				closingFilt, ok := edgeFilt[closingKey]
				if !ok {
					continue
				}
				tri := sortedTriple(int32(v), a, b)
				vaFilt := edgeFilt[canonical(int32(v), a)]
				vbFilt := edgeFilt[canonical(int32(v), b)]
				filt := maxFloat(maxFloat(vaFilt, vbFilt), closingFilt)
				if existing, ok := triFilt[tri]; !ok || filt < existing {
					triFilt[tri] = filt
				}
			}
		}
	}

	triangles := make([]Triangle, 0, len(triFilt))
	for t, filt := range triFilt {
		triangles = append(triangles, Triangle{V0: t[0], V1: t[1], V2: t[2], Filt: filt})
	}
	sort.Slice(triangles, func(a, b int) bool {
		ta, tb := triangles[a], triangles[b]
		if ta.V0 != tb.V0 {
			return ta.V0 < tb.V0
		}
		if ta.V1 != tb.V1 {
			return ta.V1 < tb.V1
		}
		return ta.V2 < tb.V2
	})
	c.Triangles = triangles
	return c, nil
}

// buildAdjacency returns, per vertex, its sorted list of undirected
// neighbors derived from the deduplicated edge set.
func buildAdjacency(edges []Edge, n int) [][]int32 {
	adjacency := make([][]int32, n)
	for _, e := range edges {
		adjacency[e.Src] = append(adjacency[e.Src], e.Dst)
		adjacency[e.Dst] = append(adjacency[e.Dst], e.Src)
	}
	for i := range adjacency {
		sort.Slice(adjacency[i], func(a, b int) bool { return adjacency[i][a] < adjacency[i][b] })
	}
	return adjacency
}

func sortedTriple(a, b, c int32) [3]int32 {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return [3]int32{a, b, c}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
