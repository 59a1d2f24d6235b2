package geometry

import "github.com/paulmach/orb"

// City is a point on the plane identified by a non-negative integer id.
// Ids are unique keys but need not be contiguous or sorted; two cities may
// share identical coordinates.
type City struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Point returns the city position as an orb.Point.
func (c City) Point() orb.Point {
	return orb.Point{c.X, c.Y}
}

// IDs returns the city ids in input order.
//
// Complexity: O(n).
func IDs(cities []City) []int {
	out := make([]int, len(cities))

	var i int
	for i = range cities {
		out[i] = cities[i].ID
	}
	return out
}

// Index builds an id → city lookup. When ids repeat, the first occurrence wins.
//
// Complexity: O(n) time and space.
func Index(cities []City) map[int]City {
	lookup := make(map[int]City, len(cities))

	var (
		i  int
		ok bool
	)
	for i = range cities {
		if _, ok = lookup[cities[i].ID]; ok {
			continue
		}
		lookup[cities[i].ID] = cities[i]
	}
	return lookup
}
