// Package tsp - orchestration options.
package tsp

// DefaultACORuns is how many independent colonies Solve runs for ACO.
const DefaultACORuns = 3

// Options tune a Solve or Compare call. The zero value of each numeric field
// except ACORuns means "use the library default".
type Options struct {
	// ACORuns is the number of independent colonies; the best is kept. ≥ 1.
	ACORuns int

	// Seed makes stochastic runs reproducible when non-zero.
	Seed int64

	// ACOIterations overrides aco.DefaultIterations when > 0.
	ACOIterations int

	// ACOMaxAnts overrides aco.DefaultMaxAnts when > 0.
	ACOMaxAnts int

	// Workers bounds Compare's pool; 0 means one worker per algorithm.
	Workers int
}

// DefaultOptions returns the production defaults: three ACO runs,
// non-deterministic seeding.
func DefaultOptions() Options {
	return Options{ACORuns: DefaultACORuns}
}

// validateOptions rejects negative counts and a non-positive run count.
func validateOptions(o Options) error {
	if o.ACORuns < 1 || o.ACOIterations < 0 || o.ACOMaxAnts < 0 || o.Workers < 0 {
		return ErrInvalidOptions
	}
	return nil
}
