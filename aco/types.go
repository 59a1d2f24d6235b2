package aco

import "github.com/katalvlaran/planartsp/geometry"

// Named tunables. Callers override them per call through options.
const (
	// DefaultMaxAnts caps the number of ants; the colony uses min(cap, n).
	DefaultMaxAnts = 30

	// DefaultIterations is the number of construct/evaporate/deposit rounds.
	DefaultIterations = 150

	// DefaultAlpha is the pheromone-influence exponent α.
	DefaultAlpha = 1.0

	// DefaultBeta is the heuristic-influence exponent β (favors short edges).
	DefaultBeta = 3.0

	// DefaultEvaporation is the evaporation rate ρ ∈ (0,1).
	DefaultEvaporation = 0.1

	// DefaultDeposit is the deposit scale Q.
	DefaultDeposit = 100.0

	// DefaultMinDistance is the floor ε applied to distances before inversion.
	DefaultMinDistance = 0.001

	// initialPheromone is the uniform starting value of every matrix entry.
	initialPheromone = 1.0
)

// Config holds the colony tunables for one solve call.
type Config struct {
	MaxAnts     int
	Iterations  int
	Alpha       float64
	Beta        float64
	Evaporation float64
	Deposit     float64
	MinDistance float64
}

// DefaultConfig returns the named defaults.
func DefaultConfig() Config {
	return Config{
		MaxAnts:     DefaultMaxAnts,
		Iterations:  DefaultIterations,
		Alpha:       DefaultAlpha,
		Beta:        DefaultBeta,
		Evaporation: DefaultEvaporation,
		Deposit:     DefaultDeposit,
		MinDistance: DefaultMinDistance,
	}
}

// Ants returns the colony size for n distinct cities.
func (c Config) Ants(n int) int {
	if c.MaxAnts < n {
		return c.MaxAnts
	}
	return n
}

// Rand is the randomness the colony consumes. *math/rand.Rand satisfies it.
// Implementations need not be goroutine-safe; a Rand must not be shared by
// concurrent solves.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n) for n > 0.
	Intn(n int) int
}

// Result is the outcome of one colony run.
type Result struct {
	// Tour lists representative ids, starting at the first input city.
	Tour []int

	// Length is the closed-cycle length of Tour.
	Length float64

	// Absorbed maps a representative id to the ids dropped because they
	// share its exact position. Nil when nothing was dropped.
	Absorbed map[int][]int

	// Iterations is the number of completed iterations.
	Iterations int
}

// Dedup is the outcome of the coincident-position pre-pass.
type Dedup struct {
	// Unique holds one representative per distinct position, in input order.
	Unique []geometry.City

	// Absorbed maps a representative id to the ids it replaced.
	Absorbed map[int][]int
}
