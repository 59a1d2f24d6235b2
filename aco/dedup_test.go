package aco_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/planartsp/aco"
	"github.com/katalvlaran/planartsp/geometry"
)

func TestDedupCities(t *testing.T) {
	cs := []geometry.City{
		{ID: 10, X: 1, Y: 1},
		{ID: 11, X: 2, Y: 2},
		{ID: 12, X: 1, Y: 1},
		{ID: 13, X: 3, Y: 3},
		{ID: 14, X: 1, Y: 1},
		{ID: 15, X: 2, Y: 2},
	}
	d := aco.DedupCities(cs)
	assert.Equal(t, []int{10, 11, 13}, geometry.IDs(d.Unique))
	assert.Equal(t, map[int][]int{10: {12, 14}, 11: {15}}, d.Absorbed)
}

func TestDedupCities_NoDuplicates(t *testing.T) {
	d := aco.DedupCities(square10())
	assert.Len(t, d.Unique, 4)
	assert.Nil(t, d.Absorbed)

	d = aco.DedupCities(nil)
	assert.Empty(t, d.Unique)
	assert.Nil(t, d.Absorbed)
}

// TestDedupCities_NearlyCoincidentKept: only exact equality collapses.
func TestDedupCities_NearlyCoincidentKept(t *testing.T) {
	d := aco.DedupCities([]geometry.City{{ID: 1, X: 1, Y: 1}, {ID: 2, X: 1 + 1e-12, Y: 1}})
	assert.Len(t, d.Unique, 2)
}
