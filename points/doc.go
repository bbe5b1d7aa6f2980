// Package points provides the dense numeric matrix of the homolith
// pipeline: the (n×d) point cloud P, and any other row-major f64 array a
// component needs to own and hand off by move. The kNN distance matrix D
// is not a Dense; knn.Result holds it as per-row slices.
//
// Dense is deliberately minimal: flat backing storage, bounds-checked
// accessors, and a Finite check at ingestion. It does not know about graphs,
// simplices, or persistence; those live in the sibling packages that consume
// it.
package points
