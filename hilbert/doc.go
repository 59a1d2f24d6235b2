// Package hilbert orders cities along a 2D Hilbert space-filling curve.
//
// Pipeline:
//
//  1. Scale every coordinate by one factor,
//     scale = (GridSize−1) / max(maxCoordinate, 1),
//     so the larger axis spans the 4096×4096 grid, aspect ratio is kept and
//     all-zero input does not divide by zero.
//  2. Map each grid cell to its position d on the curve (XY2D): bit-planes
//     are walked from most to least significant; each step derives quadrant
//     bits (rx, ry), accumulates step²·((3·rx) xor ry) and rotates/reflects
//     the remaining coordinate bits.
//  3. Stable-sort cities by d and rotate the result to start at the first
//     input city.
//
// Visualisation:
//
//	Debug returns per-city grid coordinates, curve indices and visiting order
//	together with a coarse 16×16 curve polyline (via the inverse transform
//	D2XY) in caller canvas coordinates. It is read-only and never affects
//	Solve.
//
// Complexity:
//   - XY2D / D2XY: O(log GridSize) per point.
//   - Solve: O(n log n), dominated by the sort.
//   - Debug: O(n log n + 4^DisplayOrder).
package hilbert
