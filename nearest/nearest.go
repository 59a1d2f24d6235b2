package nearest

import (
	"sort"

	"github.com/katalvlaran/planartsp/geometry"
)

// Solve returns the nearest-neighbor visiting order of cities as ids.
//
// Degenerate inputs: no cities ⇒ empty slice; one city ⇒ that id.
//
// Complexity: O(n²) time, O(n) space.
func Solve(cities []geometry.City) []int {
	var n = len(cities)
	if n == 0 {
		return []int{}
	}

	// Scan order: input positions sorted by (id, position). Position 0 is the
	// fixed start and is marked visited up front.
	var order = make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return cities[order[a]].ID < cities[order[b]].ID
	})

	var (
		visited = make([]bool, n)
		path    = make([]int, 0, n)
		current = 0
	)
	visited[current] = true
	path = append(path, cities[current].ID)

	var (
		best  int
		bestD float64
		cand  int
		d     float64
	)
	for len(path) < n {
		best = -1
		for i = 0; i < n; i++ {
			cand = order[i]
			if visited[cand] {
				continue
			}
			d = geometry.Distance(cities[current], cities[cand])
			if best == -1 || d < bestD {
				best, bestD = cand, d
			}
		}

		visited[best] = true
		path = append(path, cities[best].ID)
		current = best
	}
	return path
}
