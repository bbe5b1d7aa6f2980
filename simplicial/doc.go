// Package simplicial builds the 2-skeleton (vertices, edges, triangles)
// that persistence reduction consumes, from a neighbor graph and its
// vertex filtration values.
//
// Edge lookup uses a hash map keyed on the canonical (min, max) vertex
// pair, giving O(1) closure tests instead of a linear scan over the edge
// list. Triangle enumeration walks each vertex's neighbor list and tests
// pair closure against that map, which keeps it near-linear in practice
// instead of the O(n³) all-triples scan it would otherwise be.
package simplicial
