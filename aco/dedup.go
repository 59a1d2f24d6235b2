// Package aco - coincident-position pre-pass.
//
// Cities whose coordinates are exactly equal would give a zero distance and
// make the heuristic term explode, so the colony works on one representative
// per position. This is lossy: absorbed ids are missing from the returned
// tour. The mapping is surfaced so callers can detect the drop.
package aco

import "github.com/katalvlaran/planartsp/geometry"

// DedupCities keeps the first city seen at each exact (x, y) position.
//
// Complexity: O(n) time and space.
func DedupCities(cities []geometry.City) Dedup {
	var (
		out  = Dedup{Unique: make([]geometry.City, 0, len(cities))}
		seen = make(map[[2]float64]int, len(cities)) // position → representative id
		key  [2]float64
		rep  int
		ok   bool
		i    int
	)
	for i = range cities {
		key = [2]float64{cities[i].X, cities[i].Y}
		if rep, ok = seen[key]; ok {
			if out.Absorbed == nil {
				out.Absorbed = make(map[int][]int)
			}
			out.Absorbed[rep] = append(out.Absorbed[rep], cities[i].ID)
			continue
		}
		seen[key] = cities[i].ID
		out.Unique = append(out.Unique, cities[i])
	}
	return out
}
