// Package knn computes brute-force k-nearest-neighbor search over a dense
// point cloud.
//
// Index(P, k) returns, for every query point i, the k closest other points
// by Euclidean distance: an (n×k) distance matrix D (each row ascending)
// and an (n×k) neighbor-index matrix I (I[i][j] != i for all j). Ties in
// distance are broken by ascending neighbor index so the result does not
// depend on input order or scheduling.
//
// The scan is embarrassingly parallel over queries: Index distributes rows
// across a bounded worker pool via internal/workerpool, but the observable
// result — the sorted, tie-broken (distance, index) sequence per row — does
// not depend on how work was scheduled.
//
// This is the leaf dependency of the pipeline: it consumes only the raw
// point cloud and has no knowledge of filtration, simplices, or
// persistence.
package knn
