// Package aco - public entry points.
package aco

import (
	"context"

	"github.com/katalvlaran/planartsp/geometry"
)

// Solve runs the colony to completion and returns the best tour found.
// It never fails; see SolveContext for cooperative cancellation.
//
// Complexity: O(iterations · ants · n²).
func Solve(cities []geometry.City, opts ...Option) Result {
	res, _ := SolveContext(context.Background(), cities, opts...)
	return res
}

// SolveContext is Solve with cancellation checked at iteration boundaries.
// On cancellation it returns the best tour found so far (nil Tour when no
// iteration completed) together with ctx.Err().
//
// Degenerate inputs (0 or 1 distinct position) return immediately with a
// zero length.
func SolveContext(ctx context.Context, cities []geometry.City, opts ...Option) (Result, error) {
	var (
		s   = newSettings(opts)
		d   = DedupCities(cities)
		res = Result{Absorbed: d.Absorbed}
	)
	if len(d.Unique) < 2 {
		res.Tour = geometry.IDs(d.Unique)
		return res, nil
	}

	var (
		c  = newColony(d.Unique, s.cfg, s.rng)
		it int
	)
	for it = 0; it < s.cfg.Iterations; it++ {
		if err := ctx.Err(); err != nil {
			c.fill(&res, d.Unique, cities[0].ID)
			return res, err
		}
		c.iterate()
		res.Iterations++
	}

	c.fill(&res, d.Unique, cities[0].ID)
	return res, nil
}

// fill copies the best index tour into res as ids rotated to startID.
func (c *colony) fill(res *Result, unique []geometry.City, startID int) {
	if res.Iterations == 0 {
		return
	}

	var (
		ids = make([]int, c.n)
		i   int
	)
	for i = range c.best {
		ids[i] = unique[c.best[i]].ID
	}
	res.Tour = geometry.Normalize(ids, startID)
	res.Length = c.bestLen
}
