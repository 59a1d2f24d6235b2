// Package tsp - input validation.
//
// The heuristics themselves never fail; they are lenient about duplicate ids
// and odd coordinates. This file is the strict gate in front of them:
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) time, O(n) extra space for the id set.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/planartsp/geometry"
)

// ValidateCities checks that cities is non-empty, every id is non-negative
// and unique, and every coordinate is finite. The first offending city is
// named in the wrapped error.
func ValidateCities(cities []geometry.City) error {
	if len(cities) == 0 {
		return ErrNoCities
	}

	var (
		seen = make(map[int]struct{}, len(cities))
		c    geometry.City
		ok   bool
		i    int
	)
	for i = range cities {
		c = cities[i]
		if c.ID < 0 {
			return fmt.Errorf("city %d (index %d): %w", c.ID, i, ErrNegativeID)
		}
		if !finite(c.X) || !finite(c.Y) {
			return fmt.Errorf("city %d (index %d): %w", c.ID, i, ErrNonFiniteCoordinate)
		}
		if _, ok = seen[c.ID]; ok {
			return fmt.Errorf("city %d (index %d): %w", c.ID, i, ErrDuplicateID)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
