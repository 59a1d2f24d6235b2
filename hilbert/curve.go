// Package hilbert - forward and inverse Hilbert transforms.
//
// Both transforms operate on an n×n grid where n is a power of two.
// Coordinates are expected in [0, n); callers clamp before calling.
package hilbert

// rotate reflects and/or transposes (x, y) inside a quadrant of side s
// according to the quadrant bits.
//
// Complexity: O(1).
func rotate(s, x, y, rx, ry int) (int, int) {
	if ry == 0 {
		if rx == 1 {
			x = s - 1 - x
			y = s - 1 - y
		}
		x, y = y, x
	}
	return x, y
}

// XY2D returns the position of grid cell (x, y) along the Hilbert curve that
// fills an n×n grid.
//
// Complexity: O(log n).
func XY2D(n, x, y int) uint64 {
	var (
		d      uint64
		rx, ry int
		s      int
	)
	for s = n / 2; s > 0; s /= 2 {
		rx, ry = 0, 0
		if x&s > 0 {
			rx = 1
		}
		if y&s > 0 {
			ry = 1
		}
		d += uint64(s) * uint64(s) * uint64((3*rx)^ry)
		x, y = rotate(n, x, y, rx, ry)
	}
	return d
}

// D2XY is the inverse of XY2D: it returns the grid cell at position d along
// the Hilbert curve filling an n×n grid.
//
// Complexity: O(log n).
func D2XY(n int, d uint64) (int, int) {
	var (
		x, y   int
		rx, ry int
		s      int
		t      = d
	)
	for s = 1; s < n; s *= 2 {
		rx = int(1 & (t / 2))
		ry = int(1 & (t ^ uint64(rx)))
		x, y = rotate(s, x, y, rx, ry)
		x += s * rx
		y += s * ry
		t /= 4
	}
	return x, y
}
