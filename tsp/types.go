package tsp

import (
	"errors"
	"time"
)

// Sentinel errors.
var (
	// ErrNoCities is returned for an empty city list.
	ErrNoCities = errors.New("tsp: no cities provided")

	// ErrNegativeID is returned when a city id is below zero.
	ErrNegativeID = errors.New("tsp: negative city id")

	// ErrNonFiniteCoordinate is returned for NaN or ±Inf coordinates.
	ErrNonFiniteCoordinate = errors.New("tsp: non-finite coordinate")

	// ErrDuplicateID is returned when two cities share an id.
	ErrDuplicateID = errors.New("tsp: duplicate city id")

	// ErrUnsupportedAlgorithm is returned for an unknown algorithm selector.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrTooFewCities is returned by Compare for fewer than MinCompareCities.
	ErrTooFewCities = errors.New("tsp: need at least 3 cities for analysis")

	// ErrInvalidOptions is returned when Options carry out-of-range values.
	ErrInvalidOptions = errors.New("tsp: invalid options")
)

// Algorithm selects a tour construction heuristic. The string values are
// the wire names.
type Algorithm string

const (
	NearestNeighbor   Algorithm = "NEAREST_NEIGHBOR"
	AntColony         Algorithm = "ACO"
	SpaceFillingCurve Algorithm = "SPACE_FILLING_CURVE"
)

// MinCompareCities is the smallest input Compare accepts.
const MinCompareCities = 3

// Algorithms lists every supported algorithm in canonical order.
func Algorithms() []Algorithm {
	return []Algorithm{NearestNeighbor, AntColony, SpaceFillingCurve}
}

// ParseAlgorithm maps a wire name to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	var a = Algorithm(s)
	if !a.Valid() {
		return "", ErrUnsupportedAlgorithm
	}
	return a, nil
}

// Valid reports whether a is one of Algorithms().
func (a Algorithm) Valid() bool {
	switch a {
	case NearestNeighbor, AntColony, SpaceFillingCurve:
		return true
	}
	return false
}

// Stochastic reports whether repeated runs may produce different tours.
func (a Algorithm) Stochastic() bool {
	return a == AntColony
}

func (a Algorithm) String() string { return string(a) }

// Result is the outcome of one Solve call.
type Result struct {
	// Algorithm that produced Path.
	Algorithm Algorithm

	// Path is the visiting order as city ids, starting at the first input
	// city. The closing edge is implicit.
	Path []int

	// Length is geometry.TotalLength(cities, Path).
	Length float64

	// Elapsed is the solver wall time; summed over runs for ACO.
	Elapsed time.Duration

	// Runs is the number of solver invocations that produced this result.
	Runs int

	// Absorbed maps a kept id to the ids merged into it by the colony's
	// coincident-position pre-pass. Nil for the deterministic algorithms.
	Absorbed map[int][]int
}
