package tsp_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planartsp/geometry"
	"github.com/katalvlaran/planartsp/tsp"
)

func TestSolve_Square(t *testing.T) {
	ctx := context.Background()
	cs := square10()

	nn, err := tsp.Solve(ctx, tsp.NearestNeighbor, cs, fastOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, nn.Path)
	assert.InDelta(t, 40, nn.Length, epsTiny)
	assert.Equal(t, 1, nn.Runs)
	assert.Nil(t, nn.Absorbed)

	sfc, err := tsp.Solve(ctx, tsp.SpaceFillingCurve, cs, fastOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 2, 1}, sfc.Path)
	assert.InDelta(t, 40, sfc.Length, epsTiny)

	col, err := tsp.Solve(ctx, tsp.AntColony, cs, fastOptions())
	require.NoError(t, err)
	assert.Equal(t, tsp.AntColony, col.Algorithm)
	assert.Equal(t, 0, col.Path[0])
	assert.True(t, geometry.IsPermutation(col.Path, geometry.IDs(cs)))
	assert.InDelta(t, 40, col.Length, epsTiny)
	assert.Equal(t, tsp.DefaultACORuns, col.Runs)
}

func TestSolve_LengthMatchesTotalLength(t *testing.T) {
	cs := tsp.RandomCities(rand42(), 25, 800, 600)
	for _, a := range tsp.Algorithms() {
		res, err := tsp.Solve(context.Background(), a, cs, fastOptions())
		require.NoError(t, err, a)
		assert.Equal(t, geometry.TotalLength(cs, res.Path), res.Length, a)
		assert.True(t, geometry.IsPermutation(res.Path, geometry.IDs(cs)), a)
		assert.Equal(t, cs[0].ID, res.Path[0], a)
		assert.GreaterOrEqual(t, int64(res.Elapsed), int64(0), a)
	}
}

func TestSolve_SingleCity(t *testing.T) {
	cs := []geometry.City{{ID: 9, X: 3, Y: 4}}
	for _, a := range tsp.Algorithms() {
		res, err := tsp.Solve(context.Background(), a, cs, fastOptions())
		require.NoError(t, err, a)
		assert.Equal(t, []int{9}, res.Path, a)
		assert.Zero(t, res.Length, a)
	}
}

// TestSolve_ColonyCoincidentCities: the merged id is missing from the path,
// so the path is measured open.
func TestSolve_ColonyCoincidentCities(t *testing.T) {
	cs := append(square10(), geometry.City{ID: 4, X: 10, Y: 10})

	res, err := tsp.Solve(context.Background(), tsp.AntColony, cs, fastOptions())
	require.NoError(t, err)
	assert.Len(t, res.Path, 4)
	assert.NotContains(t, res.Path, 4)
	assert.Equal(t, map[int][]int{2: {4}}, res.Absorbed)
	assert.InDelta(t, 30, res.Length, epsTiny)

	nn, err := tsp.Solve(context.Background(), tsp.NearestNeighbor, cs, fastOptions())
	require.NoError(t, err)
	assert.Len(t, nn.Path, 5)
	assert.InDelta(t, 40, nn.Length, epsTiny)
}

func TestSolve_SeedIsReproducible(t *testing.T) {
	cs := tsp.RandomCities(rand42(), 30, 800, 600)
	a, err := tsp.Solve(context.Background(), tsp.AntColony, cs, fastOptions())
	require.NoError(t, err)
	b, err := tsp.Solve(context.Background(), tsp.AntColony, cs, fastOptions())
	require.NoError(t, err)
	assert.Equal(t, a.Path, b.Path)
	assert.Equal(t, a.Length, b.Length)
}

func TestSolve_BestOfRunsNeverWorseThanOneRun(t *testing.T) {
	cs := tsp.RandomCities(rand42(), 30, 800, 600)
	one := fastOptions()
	one.ACORuns = 1
	three := fastOptions()

	r1, err := tsp.Solve(context.Background(), tsp.AntColony, cs, one)
	require.NoError(t, err)
	r3, err := tsp.Solve(context.Background(), tsp.AntColony, cs, three)
	require.NoError(t, err)
	// Run 0 draws the same derived stream in both calls.
	assert.LessOrEqual(t, r3.Length, r1.Length)
	assert.Equal(t, 3, r3.Runs)
}

func TestSolve_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := tsp.Solve(ctx, "GENETIC", square10(), fastOptions())
	assert.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)

	_, err = tsp.Solve(ctx, tsp.NearestNeighbor, nil, fastOptions())
	assert.ErrorIs(t, err, tsp.ErrNoCities)

	_, err = tsp.Solve(ctx, tsp.NearestNeighbor, []geometry.City{{ID: 1, X: math.NaN()}}, fastOptions())
	assert.ErrorIs(t, err, tsp.ErrNonFiniteCoordinate)

	bad := fastOptions()
	bad.ACORuns = 0
	_, err = tsp.Solve(ctx, tsp.AntColony, square10(), bad)
	assert.ErrorIs(t, err, tsp.ErrInvalidOptions)
}

func TestSolve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, a := range tsp.Algorithms() {
		_, err := tsp.Solve(ctx, a, square10(), fastOptions())
		assert.ErrorIs(t, err, context.Canceled, a)
	}
}
