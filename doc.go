// Package homolith computes persistent homology (H0 and H1) of a dense
// point cloud in low-dimensional feature space and extracts, for each
// significant feature, the set of input points that participate in it.
//
// 🚀 What is homolith?
//
//	A single-shot, thread-safe pipeline that turns an (n×d) point matrix
//	into persistence diagrams plus member-index feature lists:
//
//	  • knn         — brute-force k-nearest-neighbor search
//	  • filtration  — kth-distance density → sublevel-set filtration
//	  • simplicial  — neighbor graph → vertex/edge/triangle complex
//	  • persistence — H0 via sorted-edge union-find, H1 via Z/2 column reduction
//	  • features    — significance threshold + radius-query member enumeration
//
// ✨ Why choose homolith?
//
//   - Deterministic  — every tie-break is lexicographic; identical inputs
//     produce bit-identical (birth, death) sequences
//   - Cancellable    — every stage boundary checks a context.Context
//   - Accelerator-ready — a Capability seam lets a GPU backend slot in
//     without touching call sites
//   - Pure Go        — no cgo required for the host path
//
// Under the hood, everything is organized under five subpackages mirroring
// the five pipeline stages (knn/, filtration/, simplicial/, persistence/,
// features/); this root package wires them into Run and owns the
// configuration, error taxonomy, and accelerator-capability seam.
//
//	go get github.com/arkturus-sci/homolith
package homolith
