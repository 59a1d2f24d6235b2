// Package planartsp constructs short closed tours through points on the
// Euclidean plane with three heuristics.
//
// Packages:
//
//   - geometry - City, Euclidean distance, tour length, rotation, dense matrices.
//   - nearest  - greedy nearest-neighbour construction.
//   - hilbert  - Hilbert space-filling-curve ordering plus its debug transform.
//   - aco      - ant colony optimization with injectable randomness.
//   - tsp      - validation, algorithm selection, best-of-N runs, comparison.
//   - config, logging, server, cmd/tspserver - the HTTP service around tsp.
//
// All heuristics are approximate: none of them promises an optimal tour.
// Every solver call is self-contained and safe to run concurrently with
// other calls.
package planartsp
