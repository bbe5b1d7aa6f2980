// Package persistence reduces a simplicial complex to H0 and H1 persistence
// pairs.
//
// ComputeH0 runs sorted-edge union-find over an arena of (parent, rank,
// birth) slices indexed by vertex id rather than a map-keyed disjoint-set:
// vertices are already dense 0..n-1 indices, so a flat array lookup replaces
// the hashing a string- or interface-keyed union-find would otherwise pay
// for.
//
// ComputeH1 runs left-to-right column reduction over Z/2: each triangle's
// boundary column is a descending-sorted slice of edge row indices, and a
// pivot clash is resolved by merging (symmetric-differencing) two such
// slices. Columns are owned vectors of owned vectors, and a column
// replacement is always a move of a freshly merged slice rather than a
// shared, mutated buffer.
package persistence
