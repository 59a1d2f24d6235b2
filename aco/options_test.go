package aco_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/planartsp/aco"
)

func TestDefaultConfig(t *testing.T) {
	c := aco.DefaultConfig()
	assert.Equal(t, aco.DefaultMaxAnts, c.MaxAnts)
	assert.Equal(t, aco.DefaultIterations, c.Iterations)
	assert.Equal(t, aco.DefaultAlpha, c.Alpha)
	assert.Equal(t, aco.DefaultBeta, c.Beta)
	assert.Equal(t, aco.DefaultEvaporation, c.Evaporation)
	assert.Equal(t, aco.DefaultDeposit, c.Deposit)
	assert.Equal(t, aco.DefaultMinDistance, c.MinDistance)

	assert.Equal(t, 5, c.Ants(5))
	assert.Equal(t, aco.DefaultMaxAnts, c.Ants(500))
}

// TestOptions_PanicOnMeaninglessInput: constructors validate, the solver never panics.
func TestOptions_PanicOnMeaninglessInput(t *testing.T) {
	assert.Panics(t, func() { aco.WithMaxAnts(0) })
	assert.Panics(t, func() { aco.WithIterations(0) })
	assert.Panics(t, func() { aco.WithAlpha(-1) })
	assert.Panics(t, func() { aco.WithAlpha(math.NaN()) })
	assert.Panics(t, func() { aco.WithBeta(math.Inf(1)) })
	assert.Panics(t, func() { aco.WithEvaporation(0) })
	assert.Panics(t, func() { aco.WithEvaporation(1) })
	assert.Panics(t, func() { aco.WithDeposit(0) })
	assert.Panics(t, func() { aco.WithMinDistance(-0.1) })
	assert.Panics(t, func() { aco.WithRand(nil) })

	assert.NotPanics(t, func() {
		aco.WithMaxAnts(1)
		aco.WithIterations(1)
		aco.WithAlpha(0)
		aco.WithBeta(0)
		aco.WithEvaporation(0.5)
		aco.WithDeposit(1)
		aco.WithMinDistance(1e-6)
		aco.WithRand(rand.New(rand.NewSource(1)))
	})
}

// TestOptions_ZeroExponentsStillValid: α=β=0 degenerates to uniform sampling
// but must still produce valid tours.
func TestOptions_ZeroExponentsStillValid(t *testing.T) {
	cs := square10()
	res := aco.Solve(cs, aco.WithSeed(seedDet), aco.WithAlpha(0), aco.WithBeta(0), aco.WithIterations(5))
	assert.Len(t, res.Tour, 4)
	assert.GreaterOrEqual(t, res.Length, 40-epsTiny)
}

// TestOptions_NilOptionIgnored keeps nil entries harmless.
func TestOptions_NilOptionIgnored(t *testing.T) {
	res := aco.Solve(square10(), nil, aco.WithSeed(seedDet), aco.WithIterations(3))
	assert.Len(t, res.Tour, 4)
}
