// Package tsp_test holds shared fixtures for the orchestrator tests.
package tsp_test

import (
	"github.com/katalvlaran/planartsp/geometry"
	"github.com/katalvlaran/planartsp/tsp"
)

const (
	epsTiny = 1e-9

	seedDet = int64(42)
)

func square10() []geometry.City {
	return []geometry.City{
		{ID: 0, X: 0, Y: 0},
		{ID: 1, X: 10, Y: 0},
		{ID: 2, X: 10, Y: 10},
		{ID: 3, X: 0, Y: 10},
	}
}

// fastOptions keeps the colony short while staying reproducible.
func fastOptions() tsp.Options {
	var o = tsp.DefaultOptions()
	o.Seed = seedDet
	o.ACOIterations = 40
	return o
}
