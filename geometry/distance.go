// Package geometry - distance, tour length and tour rotation.
//
// Design:
//   - Pure functions; no logging, no panics, no errors for any input.
//   - Unknown ids inside TotalLength are tolerated and measured as 0.
//   - Normalize always returns a fresh slice; the input is never mutated.
package geometry

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Distance returns the Euclidean distance sqrt((ax-bx)² + (ay-by)²).
// It is symmetric and Distance(a, a) == 0.
//
// Complexity: O(1).
func Distance(a, b City) float64 {
	return planar.Distance(a.Point(), b.Point())
}

// TotalLength sums the segment distances along path.
//
// Rules:
//   - len(path) < 2 ⇒ 0.
//   - len(path) == number of distinct ids in cities ⇒ closed tour; the edge
//     from the last id back to the first is added.
//   - otherwise the path is open and no closing edge is implied.
//   - a segment touching an id absent from cities contributes 0.
//
// Complexity: O(n + m) time, O(n) extra space for the id lookup.
func TotalLength(cities []City, path []int) float64 {
	if len(path) < 2 {
		return 0
	}

	var (
		lookup = Index(cities)
		total  float64
		i      int
	)
	for i = 0; i+1 < len(path); i++ {
		total += segment(lookup, path[i], path[i+1])
	}

	// Closed-tour interpretation is decided by count alone.
	if len(path) == len(lookup) {
		total += segment(lookup, path[len(path)-1], path[0])
	}
	return total
}

// segment measures a→b, returning 0 when either id is unknown.
func segment(lookup map[int]City, a, b int) float64 {
	var (
		ca, cb   City
		okA, okB bool
	)
	ca, okA = lookup[a]
	cb, okB = lookup[b]
	if !okA || !okB {
		return 0
	}
	return Distance(ca, cb)
}

// Normalize rotates path so that the occurrence of startID becomes the first
// element, preserving cyclic adjacency. When startID is absent or already
// first, the order is left unchanged. A fresh copy is always returned.
//
// Complexity: O(m) time and space.
func Normalize(path []int, startID int) []int {
	var pivot = IndexOf(path, startID)
	if pivot <= 0 {
		return CopyTour(path)
	}

	var (
		n   = len(path)
		out = make([]int, n)
		i   int
	)
	for i = 0; i < n; i++ {
		out[i] = path[(pivot+i)%n]
	}
	return out
}

// MaxCoordinate returns the largest value among all x and y coordinates.
// It returns 0 for an empty city set.
//
// Complexity: O(n).
func MaxCoordinate(cities []City) float64 {
	if len(cities) == 0 {
		return 0
	}

	var (
		mp = make(orb.MultiPoint, len(cities))
		i  int
	)
	for i = range cities {
		mp[i] = cities[i].Point()
	}
	var b = mp.Bound()
	if b.Max[0] > b.Max[1] {
		return b.Max[0]
	}
	return b.Max[1]
}
