// Package nearest implements the greedy nearest-neighbor tour construction.
//
// Strategy:
//
//	Start at the first city in input order. Repeatedly move to the closest
//	city not yet visited (strict minimum of Euclidean distance) until every
//	city has been visited.
//
// Determinism:
//
//	Candidates are scanned in ascending id order and only a strictly shorter
//	distance replaces the current choice, so ties always resolve to the lowest
//	id. The output never depends on map or set iteration order.
//
// Output:
//
//	The full visiting order as an open path; callers that treat it as a closed
//	tour add the closing edge themselves (geometry.TotalLength does so when
//	every id is present).
//
// Complexity: O(n²) time, O(n) extra space.
package nearest
