// Package tsp - random city generation.
package tsp

import "github.com/katalvlaran/planartsp/geometry"

// Padding keeps generated cities away from the canvas border.
const Padding = 30.0

// Float64Source is the randomness RandomCities needs; *rand.Rand satisfies it.
type Float64Source interface {
	Float64() float64
}

// RandomCities draws count cities uniformly inside the padded canvas
// [Padding, width−Padding) × [Padding, height−Padding). Ids are 0..count−1.
// When the canvas is narrower than twice the padding, the usable span
// collapses to 1. A non-positive count yields an empty slice.
//
// Complexity: O(count).
func RandomCities(rng Float64Source, count int, width, height float64) []geometry.City {
	if count <= 0 {
		return []geometry.City{}
	}

	var (
		spanX = usable(width)
		spanY = usable(height)
		out   = make([]geometry.City, count)
		i     int
	)
	for i = 0; i < count; i++ {
		out[i] = geometry.City{
			ID: i,
			X:  rng.Float64()*spanX + Padding,
			Y:  rng.Float64()*spanY + Padding,
		}
	}
	return out
}

func usable(extent float64) float64 {
	if s := extent - 2*Padding; s > 1 {
		return s
	}
	return 1
}
