// Package hilbert - read-only debug/visualisation transform.
//
// Nothing here feeds back into Solve; the output is derived data meant for
// drawing the grid, the curve and the per-city keys on a canvas.
package hilbert

import (
	"github.com/paulmach/orb"

	"github.com/katalvlaran/planartsp/geometry"
)

// CityDebug describes one city as seen by the solver.
type CityDebug struct {
	ID    int
	X, Y  float64
	GridX int
	GridY int
	Index uint64 // position on the GridSize curve
	Order int    // 1-based visiting order, rotated to start at the first input city
}

// DebugInfo bundles per-city keys with the illustrative curve.
type DebugInfo struct {
	Cities          []CityDebug // input order
	MaxCoord        float64     // scaling bound max(maxCoordinate, 1)
	GridSize        int
	DisplayGridSize int
	Curve           orb.LineString // canvas coordinates
}

// Debug computes the visualisation data for cities on a canvas of the given
// size. Empty input yields no city entries but still carries the curve.
//
// Complexity: O(n log n + 4^DisplayOrder).
func Debug(cities []geometry.City, canvasWidth, canvasHeight float64) DebugInfo {
	var (
		bound = Bound(cities)
		info  = DebugInfo{
			Cities:          make([]CityDebug, len(cities)),
			MaxCoord:        bound,
			GridSize:        GridSize,
			DisplayGridSize: DisplayGridSize,
			Curve:           CurvePoints(DisplayOrder, canvasWidth, canvasHeight),
		}
	)
	if len(cities) == 0 {
		return info
	}

	var (
		sorted = order(cities, Scale(bound))
		n      = len(sorted)
		pivot  int
		i      int
		k      keyed
	)
	// Rotation mirrors Solve: the first input city gets order 1.
	for i = range sorted {
		if sorted[i].pos == 0 {
			pivot = i
			break
		}
	}
	for i = 0; i < n; i++ {
		k = sorted[(pivot+i)%n]
		info.Cities[k.pos] = CityDebug{
			ID:    cities[k.pos].ID,
			X:     cities[k.pos].X,
			Y:     cities[k.pos].Y,
			GridX: k.gx,
			GridY: k.gy,
			Index: k.d,
			Order: i + 1,
		}
	}
	return info
}

// CurvePoints walks a Hilbert curve of the given order (2^order cells per
// side) and returns the cell centres scaled to a width×height canvas.
//
// Complexity: O(4^order · order).
func CurvePoints(order int, width, height float64) orb.LineString {
	if order < 0 {
		order = 0
	}

	var (
		size   = 1 << order
		total  = uint64(size) * uint64(size)
		scaleX = width / float64(size)
		scaleY = height / float64(size)
		line   = make(orb.LineString, 0, total)
		d      uint64
		gx, gy int
	)
	for d = 0; d < total; d++ {
		gx, gy = D2XY(size, d)
		line = append(line, orb.Point{
			(float64(gx) + 0.5) * scaleX,
			(float64(gy) + 0.5) * scaleY,
		})
	}
	return line
}
