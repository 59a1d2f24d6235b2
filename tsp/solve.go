// Package tsp - unified dispatcher for the tour heuristics.
//
// Design principles:
//   - Validate once, up front; the solvers below never fail on valid input.
//   - Deterministic algorithms run once. ACO runs Options.ACORuns times,
//     strictly sequentially, and keeps the first shortest tour.
//   - Timing covers the solver call only, not validation or measurement.
package tsp

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/planartsp/aco"
	"github.com/katalvlaran/planartsp/geometry"
	"github.com/katalvlaran/planartsp/hilbert"
	"github.com/katalvlaran/planartsp/nearest"
)

// Solve validates cities and runs algo on them.
//
// Errors:
//   - ErrUnsupportedAlgorithm, ErrInvalidOptions.
//   - Any ValidateCities sentinel (wrapped).
//   - ctx.Err() (wrapped) when cancelled before or during a run.
//
// Complexity: that of the selected algorithm, times ACORuns for ACO.
func Solve(ctx context.Context, algo Algorithm, cities []geometry.City, opts Options) (Result, error) {
	if !algo.Valid() {
		return Result{}, fmt.Errorf("%q: %w", string(algo), ErrUnsupportedAlgorithm)
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if err := ValidateCities(cities); err != nil {
		return Result{}, err
	}
	return solve(ctx, algo, cities, opts)
}

// solve dispatches on already validated input.
func solve(ctx context.Context, algo Algorithm, cities []geometry.City, opts Options) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("%s: %w", algo, err)
	}

	switch algo {
	case NearestNeighbor:
		return runOnce(algo, cities, nearest.Solve), nil
	case SpaceFillingCurve:
		return runOnce(algo, cities, hilbert.Solve), nil
	case AntColony:
		return solveColony(ctx, cities, opts)
	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
}

// runOnce times a single deterministic solver call.
func runOnce(algo Algorithm, cities []geometry.City, fn func([]geometry.City) []int) Result {
	var (
		start = time.Now()
		path  = fn(cities)
	)
	return Result{
		Algorithm: algo,
		Path:      path,
		Length:    geometry.TotalLength(cities, path),
		Elapsed:   time.Since(start),
		Runs:      1,
	}
}

// solveColony runs the colony opts.ACORuns times and keeps the shortest tour
// as measured over the full city list. Ties keep the earlier run.
func solveColony(ctx context.Context, cities []geometry.City, opts Options) (Result, error) {
	var (
		best = Result{Algorithm: AntColony, Length: math.Inf(1)}
		run  int
	)
	for run = 0; run < opts.ACORuns; run++ {
		var (
			start    = time.Now()
			res, err = aco.SolveContext(ctx, cities, colonyOptions(opts, run)...)
		)
		best.Elapsed += time.Since(start)
		if err != nil {
			return Result{}, fmt.Errorf("%s run %d: %w", AntColony, run+1, err)
		}
		best.Runs++

		var length = geometry.TotalLength(cities, res.Tour)
		if length < best.Length {
			best.Path = res.Tour
			best.Length = length
			best.Absorbed = res.Absorbed
		}
	}
	return best, nil
}

// colonyOptions maps Options onto aco options for one run.
func colonyOptions(opts Options, run int) []aco.Option {
	var out = make([]aco.Option, 0, 3)
	if opts.ACOIterations > 0 {
		out = append(out, aco.WithIterations(opts.ACOIterations))
	}
	if opts.ACOMaxAnts > 0 {
		out = append(out, aco.WithMaxAnts(opts.ACOMaxAnts))
	}
	if opts.Seed != 0 {
		out = append(out, aco.WithRand(aco.DeriveRand(opts.Seed, uint64(run))))
	}
	return out
}
