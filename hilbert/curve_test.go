package hilbert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planartsp/hilbert"
)

// TestXY2D_D2XY_RoundTrip checks the inverse transform on every cell of small grids.
func TestXY2D_D2XY_RoundTrip(t *testing.T) {
	for _, n := range []int{2, 4, 16, 64} {
		var x, y int
		for x = 0; x < n; x++ {
			for y = 0; y < n; y++ {
				d := hilbert.XY2D(n, x, y)
				require.Less(t, d, uint64(n*n))
				gx, gy := hilbert.D2XY(n, d)
				assert.Equal(t, [2]int{x, y}, [2]int{gx, gy}, "n=%d d=%d", n, d)
			}
		}
	}
}

// TestXY2D_Bijective ensures every index in [0, n²) is hit exactly once.
func TestXY2D_Bijective(t *testing.T) {
	const n = 32
	seen := make([]bool, n*n)
	var x, y int
	for x = 0; x < n; x++ {
		for y = 0; y < n; y++ {
			d := hilbert.XY2D(n, x, y)
			require.False(t, seen[d], "duplicate index %d", d)
			seen[d] = true
		}
	}
}

// TestD2XY_Continuity: consecutive curve positions are 4-neighbors on the grid.
func TestD2XY_Continuity(t *testing.T) {
	const n = 64
	px, py := hilbert.D2XY(n, 0)
	var d uint64
	for d = 1; d < n*n; d++ {
		x, y := hilbert.D2XY(n, d)
		dx, dy := x-px, y-py
		assert.Equal(t, 1, dx*dx+dy*dy, "jump at d=%d", d)
		px, py = x, y
	}
}

// TestXY2D_QuadrantOrder pins the orientation: (0,0) → (0,hi) → (hi,hi) → (hi,0).
func TestXY2D_QuadrantOrder(t *testing.T) {
	const n = hilbert.GridSize
	a := hilbert.XY2D(n, 0, 0)
	b := hilbert.XY2D(n, 0, n-1)
	c := hilbert.XY2D(n, n-1, n-1)
	d := hilbert.XY2D(n, n-1, 0)
	assert.Zero(t, a)
	assert.Less(t, a, b)
	assert.Less(t, b, c)
	assert.Less(t, c, d)
	assert.Equal(t, uint64(n*n-1), d)
}
