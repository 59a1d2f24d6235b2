// Package aco - colony state and the per-iteration loop.
//
// Design:
//   - All state lives in one colony value created per solve call; nothing is
//     package-level.
//   - The heuristic term (1/max(d, ε))^β depends only on the immutable
//     distance matrix and is precomputed once.
//   - Scratch buffers (tours, weights, candidates) are allocated once and
//     reused by every ant in every iteration.
package aco

import (
	"math"

	"github.com/katalvlaran/planartsp/geometry"
)

// colony is the mutable state of one optimizer run over n distinct cities.
type colony struct {
	cfg  Config
	rng  Rand
	n    int
	ants int

	dist *geometry.Matrix // immutable, symmetric
	eta  *geometry.Matrix // immutable heuristic weights
	pher *geometry.Matrix // mutated in place, symmetric by construction

	tours   [][]int
	lengths []float64
	visited []bool
	cands   []int
	weights []float64

	best    []int
	bestLen float64
}

// newColony sizes all matrices and buffers for cities (already deduplicated,
// len ≥ 2).
//
// Complexity: O(n² + ants·n).
func newColony(cities []geometry.City, cfg Config, rng Rand) *colony {
	var (
		n    = len(cities)
		ants = cfg.Ants(n)
		c    = &colony{
			cfg:     cfg,
			rng:     rng,
			n:       n,
			ants:    ants,
			dist:    geometry.NewDistanceMatrix(cities),
			eta:     geometry.NewMatrix(n, 0),
			pher:    geometry.NewMatrix(n, initialPheromone),
			tours:   make([][]int, ants),
			lengths: make([]float64, ants),
			visited: make([]bool, n),
			cands:   make([]int, 0, n),
			weights: make([]float64, 0, n),
			best:    make([]int, n),
			bestLen: math.Inf(1),
		}
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			c.eta.Set(i, j, heuristic(c.dist.At(i, j), cfg.MinDistance, cfg.Beta))
		}
	}
	for i = 0; i < ants; i++ {
		c.tours[i] = make([]int, n)
	}
	return c
}

// heuristic returns (1/max(d, eps))^beta; the floor keeps it finite on
// coincident points.
func heuristic(d, eps, beta float64) float64 {
	return power(1/math.Max(d, eps), beta)
}

// power is math.Pow with the common exponents short-circuited.
func power(x, e float64) float64 {
	switch e {
	case 0:
		return 1
	case 1:
		return x
	case 2:
		return x * x
	case 3:
		return x * x * x
	}
	return math.Pow(x, e)
}

// iterate runs one round: every ant builds a tour, the running best is
// updated, then pheromone evaporates and every tour deposits.
//
// Complexity: O(ants·n² + n²).
func (c *colony) iterate() {
	var a int
	for a = 0; a < c.ants; a++ {
		c.construct(c.tours[a])
		c.lengths[a] = geometry.ClosedLength(c.dist, c.tours[a])
		if c.lengths[a] < c.bestLen {
			c.bestLen = c.lengths[a]
			copy(c.best, c.tours[a])
		}
	}

	c.pher.Scale(1 - c.cfg.Evaporation)
	for a = 0; a < c.ants; a++ {
		c.deposit(c.tours[a], c.lengths[a])
	}
}

// construct fills tour with a full permutation of [0, n): a uniformly random
// start followed by n−1 weighted draws among unvisited cities.
//
// Complexity: O(n²).
func (c *colony) construct(tour []int) {
	var i int
	for i = range c.visited {
		c.visited[i] = false
	}

	var cur = c.rng.Intn(c.n)
	tour[0] = cur
	c.visited[cur] = true
	for i = 1; i < c.n; i++ {
		cur = c.next(cur)
		tour[i] = cur
		c.visited[cur] = true
	}
}

// next samples the successor of cur by roulette selection over unvisited
// candidates in ascending index order. A zero (or non-finite) total weight
// falls back to a uniform draw among the candidates.
//
// Contract: at least one city is unvisited.
//
// Complexity: O(n).
func (c *colony) next(cur int) int {
	var (
		tau   = c.pher.Row(cur)
		eta   = c.eta.Row(cur)
		total float64
		w     float64
		j     int
	)
	c.cands = c.cands[:0]
	c.weights = c.weights[:0]
	for j = 0; j < c.n; j++ {
		if c.visited[j] {
			continue
		}
		w = power(tau[j], c.cfg.Alpha) * eta[j]
		c.cands = append(c.cands, j)
		c.weights = append(c.weights, w)
		total += w
	}

	if !(total > 0) || math.IsInf(total, 1) {
		return c.cands[c.rng.Intn(len(c.cands))]
	}

	var threshold = c.rng.Float64() * total
	for j = range c.cands {
		threshold -= c.weights[j]
		if threshold <= 0 {
			return c.cands[j]
		}
	}
	// Rounding can leave a tiny positive remainder.
	return c.cands[len(c.cands)-1]
}

// deposit adds Q/length to both directions of every edge of tour, closing
// edge included. A zero-length tour deposits nothing.
//
// Complexity: O(n).
func (c *colony) deposit(tour []int, length float64) {
	if !(length > 0) {
		return
	}

	var (
		amount = c.cfg.Deposit / length
		n      = len(tour)
		i      int
	)
	for i = 0; i+1 < n; i++ {
		c.pher.AddSymmetric(tour[i], tour[i+1], amount)
	}
	c.pher.AddSymmetric(tour[n-1], tour[0], amount)
}
