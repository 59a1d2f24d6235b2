// Package geometry_test holds shared fixtures for the geometry tests.
package geometry_test

import (
	"math"

	"github.com/katalvlaran/planartsp/geometry"
)

const (
	// epsTiny is the absolute tolerance for exact-geometry comparisons.
	epsTiny = 1e-9
)

// square10 returns the 10×10 square used across tests, in counter-clockwise order.
func square10() []geometry.City {
	return []geometry.City{
		{ID: 0, X: 0, Y: 0},
		{ID: 1, X: 10, Y: 0},
		{ID: 2, X: 10, Y: 10},
		{ID: 3, X: 0, Y: 10},
	}
}

// rippledCircle places n cities on a slightly perturbed circle; ids are 100+i
// so that they are neither contiguous with 0 nor equal to input positions.
func rippledCircle(n int) []geometry.City {
	var (
		out = make([]geometry.City, n)
		i   int
		th  float64
		r   float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 50 + 0.5*float64(i%3)
		out[i] = geometry.City{ID: 100 + i, X: 60 + r*math.Cos(th), Y: 60 + r*math.Sin(th)}
	}
	return out
}
