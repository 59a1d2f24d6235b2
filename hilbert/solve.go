// Package hilbert - city ordering along the curve.
package hilbert

import (
	"math"
	"sort"

	"github.com/katalvlaran/planartsp/geometry"
)

const (
	// GridSize is the side of the integer grid used for solving (2^12).
	GridSize = 4096

	// DisplayOrder is the curve order of the illustrative polyline (2^4 = 16).
	DisplayOrder = 4

	// DisplayGridSize is the side of the illustrative grid.
	DisplayGridSize = 1 << DisplayOrder
)

// Bound returns the scaling bound max(maxCoordinate, 1) for cities.
//
// Complexity: O(n).
func Bound(cities []geometry.City) float64 {
	return math.Max(geometry.MaxCoordinate(cities), 1)
}

// Scale returns the uniform factor mapping coordinates in [0, bound] onto
// [0, GridSize−1].
func Scale(bound float64) float64 {
	return float64(GridSize-1) / math.Max(bound, 1)
}

// ToGrid maps a city onto the solving grid. Results are clamped into
// [0, GridSize−1], so negative coordinates land on the first row/column.
//
// Complexity: O(1).
func ToGrid(c geometry.City, scale float64) (int, int) {
	return clampCell(c.X * scale), clampCell(c.Y * scale)
}

func clampCell(v float64) int {
	var f = math.Floor(v)
	if !(f > 0) {
		// Covers negatives and NaN.
		return 0
	}
	if f > GridSize-1 {
		return GridSize - 1
	}
	return int(f)
}

// keyed is a city position annotated with its curve index.
type keyed struct {
	pos    int // input position
	gx, gy int
	d      uint64
}

// order computes curve indices for every city and returns them sorted by
// index, ties kept in input order.
//
// Complexity: O(n log n).
func order(cities []geometry.City, scale float64) []keyed {
	var (
		out = make([]keyed, len(cities))
		i   int
		gx  int
		gy  int
	)
	for i = range cities {
		gx, gy = ToGrid(cities[i], scale)
		out[i] = keyed{pos: i, gx: gx, gy: gy, d: XY2D(GridSize, gx, gy)}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].d < out[b].d })
	return out
}

// Solve returns the cities' ids ordered along the Hilbert curve, rotated to
// start at the first input city. The result is deterministic.
//
// Complexity: O(n log n) time, O(n) space.
func Solve(cities []geometry.City) []int {
	if len(cities) == 0 {
		return []int{}
	}

	var (
		sorted = order(cities, Scale(Bound(cities)))
		path   = make([]int, len(sorted))
		i      int
	)
	for i = range sorted {
		path[i] = cities[sorted[i].pos].ID
	}
	return geometry.Normalize(path, cities[0].ID)
}
