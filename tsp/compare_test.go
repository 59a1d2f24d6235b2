package tsp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planartsp/geometry"
	"github.com/katalvlaran/planartsp/tsp"
)

func TestCompare_OrderAndConsistency(t *testing.T) {
	cs := tsp.RandomCities(rand42(), 40, 1000, 800)
	results, err := tsp.Compare(context.Background(), cs, fastOptions())
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, a := range tsp.Algorithms() {
		assert.Equal(t, a, results[i].Algorithm)
		assert.True(t, geometry.IsPermutation(results[i].Path, geometry.IDs(cs)), a)
		assert.Equal(t, geometry.TotalLength(cs, results[i].Path), results[i].Length, a)
	}
}

// TestCompare_MatchesSolve: the deterministic entries equal their Solve output.
func TestCompare_MatchesSolve(t *testing.T) {
	cs := tsp.RandomCities(rand42(), 20, 800, 600)
	results, err := tsp.Compare(context.Background(), cs, fastOptions())
	require.NoError(t, err)

	for _, r := range results {
		single, err := tsp.Solve(context.Background(), r.Algorithm, cs, fastOptions())
		require.NoError(t, err)
		assert.Equal(t, single.Path, r.Path, r.Algorithm)
	}
}

func TestCompare_SingleWorker(t *testing.T) {
	opts := fastOptions()
	opts.Workers = 1
	results, err := tsp.Compare(context.Background(), square10(), opts)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestCompare_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := tsp.Compare(ctx, square10()[:2], fastOptions())
	assert.ErrorIs(t, err, tsp.ErrTooFewCities)

	_, err = tsp.Compare(ctx, nil, fastOptions())
	assert.ErrorIs(t, err, tsp.ErrTooFewCities)

	dup := append(square10(), geometry.City{ID: 1, X: 5, Y: 5})
	_, err = tsp.Compare(ctx, dup, fastOptions())
	assert.ErrorIs(t, err, tsp.ErrDuplicateID)

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = tsp.Compare(cctx, square10(), fastOptions())
	assert.ErrorIs(t, err, context.Canceled)
}
