package aco_test

import (
	"fmt"

	"github.com/katalvlaran/planartsp/aco"
	"github.com/katalvlaran/planartsp/geometry"
)

// ExampleSolve runs one reproducible colony on a square and reports the
// position that was dropped by the coincidence pre-pass.
func ExampleSolve() {
	cities := []geometry.City{
		{ID: 0, X: 0, Y: 0},
		{ID: 1, X: 10, Y: 0},
		{ID: 2, X: 10, Y: 10},
		{ID: 3, X: 0, Y: 10},
		{ID: 4, X: 10, Y: 10}, // coincides with 2
	}
	res := aco.Solve(cities, aco.WithSeed(7))
	fmt.Printf("length=%.0f cities=%d absorbed=%v\n", res.Length, len(res.Tour), res.Absorbed)
	// Output:
	// length=40 cities=4 absorbed=map[2:[4]]
}
