package persistence

import (
	"context"
	"sort"

	"github.com/arkturus-sci/homolith/simplicial"
)

// column is a boundary column: the set of row (edge) indices it touches,
// kept in descending sorted order so the pivot (largest index) is always
// column[0]. Each column is an owned slice; a column replacement during
// reduction is always a move of a freshly merged slice, never a shared
// mutation.
type column []int32

func (c column) pivot() (int32, bool) {
	if len(c) == 0 {
		return 0, false
	}
	return c[0], true
}

// xor merges two descending-sorted columns, dropping entries that appear
// in both (symmetric difference over Z/2).
func xor(a, b column) column {
	out := make(column, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] > b[j]:
			out = append(out, a[i])
			i++
		case a[i] < b[j]:
			out = append(out, b[j])
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// ComputeH1 reduces the 2-skeleton to H1 birth/death pairs by left-to-right
// column reduction over Z/2.
//
// Stage 1 (Validate): edges/triangles may be empty (an empty complex is
// valid input, not an error).
// Stage 2 (Execute): sort edges to fix row order, sort triangles to fix
// column order, build each triangle's boundary column, then reduce
// left-to-right, merging a column into its pivot's current owner on clash.
// Stage 3 (Finalize): return only pairs with birth < death.
//
// Complexity: O(T·E) worst case; sparse inputs behave near-linearly after
// sorting. No apparent-pairs or clearing optimization is applied.
func ComputeH1(ctx context.Context, edges []simplicial.Edge, triangles []simplicial.Triangle) ([]Pair, error) {
	sortedEdges := append([]simplicial.Edge(nil), edges...)
	sort.Slice(sortedEdges, func(a, b int) bool {
		if sortedEdges[a].Filt != sortedEdges[b].Filt {
			return sortedEdges[a].Filt < sortedEdges[b].Filt
		}
		if sortedEdges[a].Src != sortedEdges[b].Src {
			return sortedEdges[a].Src < sortedEdges[b].Src
		}
		return sortedEdges[a].Dst < sortedEdges[b].Dst
	})
	edgeRow := make(map[[2]int32]int32, len(sortedEdges))
	for i, e := range sortedEdges {
		edgeRow[[2]int32{e.Src, e.Dst}] = int32(i)
	}

	sortedTriangles := append([]simplicial.Triangle(nil), triangles...)
	sort.Slice(sortedTriangles, func(a, b int) bool {
		ta, tb := sortedTriangles[a], sortedTriangles[b]
		if ta.Filt != tb.Filt {
			return ta.Filt < tb.Filt
		}
		if ta.V0 != tb.V0 {
			return ta.V0 < tb.V0
		}
		if ta.V1 != tb.V1 {
			return ta.V1 < tb.V1
		}
		return ta.V2 < tb.V2
	})

	if err := checkCancelled(ctx); err != nil {
		return nil, err
	}

	columns := make([]column, len(sortedTriangles))
	for i, tri := range sortedTriangles {
		rows := []int32{
			edgeRow[[2]int32{tri.V0, tri.V1}],
			edgeRow[[2]int32{tri.V0, tri.V2}],
			edgeRow[[2]int32{tri.V1, tri.V2}],
		}
		sort.Slice(rows, func(a, b int) bool { return rows[a] > rows[b] })
		columns[i] = rows
	}

	pivotOwner := make(map[int32]int)
	pairs := make([]Pair, 0, len(sortedTriangles))

	for col := 0; col < len(columns); col++ {
		if col%256 == 0 {
			if err := checkCancelled(ctx); err != nil {
				return nil, err
			}
		}

		for {
			p, ok := columns[col].pivot()
			if !ok {
				break
			}
			owner, taken := pivotOwner[p]
			if !taken {
				pivotOwner[p] = col
				birth := sortedEdges[p].Filt
				death := sortedTriangles[col].Filt
				if birth < death {
					pairs = append(pairs, Pair{Birth: birth, Death: death, Dim: 1})
				}
				break
			}
			columns[col] = xor(columns[col], columns[owner])
		}
	}

	return pairs, nil
}
