// Package filtration converts per-point kth-neighbor distances into a
// scalar sublevel-set filtration.
//
// Compute applies F[i] = -1 / max(kth[i], epsilon). The negation turns
// "higher density (smaller kth-distance) implies earlier birth" into a
// standard sublevel-set filtration consumable by union-find (H0) and
// column reduction (H1) machinery, both of which expect "smaller
// filtration value = added earlier". The epsilon clamp guards the division
// when two input points coincide (kth-distance 0).
package filtration
