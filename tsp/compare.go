// Package tsp - side-by-side comparison of every algorithm.
//
// Each algorithm runs as one task on a bounded ants pool. The solvers stay
// single-threaded; only the independent algorithm runs overlap. Results are
// written by index, so the output order is Algorithms() regardless of
// completion order.
package tsp

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/katalvlaran/planartsp/geometry"
)

// Compare runs every algorithm on cities and returns the results in
// Algorithms() order.
//
// Errors:
//   - ErrTooFewCities for fewer than MinCompareCities cities.
//   - ErrInvalidOptions and any ValidateCities sentinel.
//   - The first failing algorithm's error, in Algorithms() order.
func Compare(ctx context.Context, cities []geometry.City, opts Options) ([]Result, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if len(cities) < MinCompareCities {
		return nil, fmt.Errorf("got %d: %w", len(cities), ErrTooFewCities)
	}
	if err := ValidateCities(cities); err != nil {
		return nil, err
	}

	var (
		algos   = Algorithms()
		workers = opts.Workers
	)
	if workers == 0 {
		workers = len(algos)
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("tsp: worker pool: %w", err)
	}
	defer pool.Release()

	var (
		results = make([]Result, len(algos))
		errs    = make([]error, len(algos))
		wg      sync.WaitGroup
		i       int
	)
	for i = range algos {
		idx := i
		wg.Add(1)
		if serr := pool.Submit(func() {
			defer wg.Done()
			results[idx], errs[idx] = solve(ctx, algos[idx], cities, opts)
		}); serr != nil {
			wg.Done()
			errs[idx] = fmt.Errorf("tsp: submit %s: %w", algos[idx], serr)
		}
	}
	wg.Wait()

	for i = range errs {
		if errs[i] != nil {
			return nil, errs[i]
		}
	}
	return results, nil
}
