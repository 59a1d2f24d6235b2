// Package geometry provides the planar primitives shared by every tour
// construction heuristic in planartsp.
//
// What it offers:
//
//   - City       - an id-keyed point {ID, X, Y} on the Euclidean plane.
//   - Distance   - straight-line distance between two cities.
//   - TotalLength - length of a visiting order, closed or open.
//   - Normalize  - cyclic rotation of a tour so it starts at a given id.
//   - Matrix     - dense n×n float64 storage used for distance and
//     pheromone tables.
//
// Closed vs open tours:
//
//	A path is treated as a closed tour exactly when it visits as many ids as
//	there are distinct ids in the city set; only then is the edge from the
//	last id back to the first added. Any shorter path is an open path.
//
// Lenient lookups:
//
//	TotalLength never fails. A segment that references an id missing from the
//	city set contributes 0 to the sum instead of raising an error, so partially
//	inconsistent input still yields a number. Callers that need strictness
//	should validate ids before measuring.
//
// Complexity:
//   - Distance: O(1).
//   - TotalLength: O(n + m) for n cities and a path of length m.
//   - Normalize: O(m).
//   - NewDistanceMatrix: O(n²) time and memory.
package geometry
