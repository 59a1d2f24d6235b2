// Package geometry - tour utilities shared by all solvers.
//
// Provided helpers:
//   - IndexOf: locate an id inside a tour.
//   - CopyTour: independent copy of a tour slice.
//   - IsPermutation: does a tour visit each given id exactly once.
//   - ClosedLength: closed-cycle length over a distance matrix (index tours).
//
// Design:
//   - No logging, no panics on user input.
//   - O(n) time for every helper.
package geometry

// IndexOf returns the position of the first occurrence of id in tour, or -1.
//
// Complexity: O(n).
func IndexOf(tour []int, id int) int {
	var i int
	for i = 0; i < len(tour); i++ {
		if tour[i] == id {
			return i
		}
	}
	return -1
}

// CopyTour returns an independent copy of tour (nil stays nil).
//
// Complexity: O(n) time and space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)
	return out
}

// IsPermutation reports whether tour contains every id in ids exactly once
// and nothing else.
//
// Complexity: O(n) time and space.
func IsPermutation(tour []int, ids []int) bool {
	if len(tour) != len(ids) {
		return false
	}

	var (
		want = make(map[int]int, len(ids))
		i    int
	)
	for i = 0; i < len(ids); i++ {
		want[ids[i]]++
	}
	for i = 0; i < len(tour); i++ {
		if want[tour[i]] == 0 {
			return false
		}
		want[tour[i]]--
	}
	return true
}

// ClosedLength sums dist along an index tour and adds the closing edge
// tour[n-1] → tour[0]. Tours shorter than 2 have length 0.
//
// Contract: every index lies in [0, dist.N()).
//
// Complexity: O(n).
func ClosedLength(dist *Matrix, tour []int) float64 {
	var n = len(tour)
	if n < 2 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i+1 < n; i++ {
		sum += dist.At(tour[i], tour[i+1])
	}
	return sum + dist.At(tour[n-1], tour[0])
}
