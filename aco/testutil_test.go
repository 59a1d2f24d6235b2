// Package aco_test holds shared fixtures for the colony tests.
package aco_test

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/planartsp/geometry"
)

const (
	// epsTiny is the absolute tolerance for exact-geometry comparisons.
	epsTiny = 1e-9

	// seedDet is the fixed seed used by reproducibility tests.
	seedDet = int64(42)

	// fastIterations keeps stochastic property tests quick on CI.
	fastIterations = 30
)

func square10() []geometry.City {
	return []geometry.City{
		{ID: 0, X: 0, Y: 0},
		{ID: 1, X: 10, Y: 0},
		{ID: 2, X: 10, Y: 10},
		{ID: 3, X: 0, Y: 10},
	}
}

// randomCities draws n distinct-position cities in [0,w)×[0,h) with ids 1000+i.
func randomCities(r *rand.Rand, n int, w, h float64) []geometry.City {
	var (
		out = make([]geometry.City, n)
		i   int
	)
	for i = 0; i < n; i++ {
		out[i] = geometry.City{ID: 1000 + i, X: r.Float64() * w, Y: r.Float64() * h}
	}
	return out
}

// circle places n cities evenly on a circle of radius r.
func circle(n int, r float64) []geometry.City {
	var (
		out = make([]geometry.City, n)
		i   int
		th  float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		out[i] = geometry.City{ID: i, X: 100 + r*math.Cos(th), Y: 100 + r*math.Sin(th)}
	}
	return out
}

// countingRand wraps a source and counts draws; cancel fires once after the
// given number of draws when set.
type countingRand struct {
	r      *rand.Rand
	draws  int
	after  int
	cancel func()
}

func (c *countingRand) tick() {
	c.draws++
	if c.cancel != nil && c.draws == c.after {
		c.cancel()
	}
}

func (c *countingRand) Float64() float64 { c.tick(); return c.r.Float64() }
func (c *countingRand) Intn(n int) int   { c.tick(); return c.r.Intn(n) }
