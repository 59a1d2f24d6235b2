// Package aco - functional options.
//
// Contract:
//   - Options are functional (type Option func(*settings)).
//   - Option constructors validate and PANIC on meaningless inputs; the
//     optimizer itself never panics.
//   - Determinism is explicit: WithSeed or WithRand.
package aco

import "math"

// Option customizes one solve call.
type Option func(*settings)

// settings is the resolved per-call configuration.
type settings struct {
	cfg Config
	rng Rand
}

// newSettings applies opts in order over the defaults.
func newSettings(opts []Option) settings {
	s := settings{cfg: DefaultConfig()}
	var i int
	for i = range opts {
		if opts[i] != nil {
			opts[i](&s)
		}
	}
	if s.rng == nil {
		s.rng = timeSeeded()
	}
	return s
}

// WithMaxAnts caps the colony size. Panics when k < 1.
func WithMaxAnts(k int) Option {
	if k < 1 {
		panic("aco: WithMaxAnts(k<1)")
	}
	return func(s *settings) { s.cfg.MaxAnts = k }
}

// WithIterations sets the number of rounds. Panics when k < 1.
func WithIterations(k int) Option {
	if k < 1 {
		panic("aco: WithIterations(k<1)")
	}
	return func(s *settings) { s.cfg.Iterations = k }
}

// WithAlpha sets the pheromone exponent. Panics on negative or non-finite values.
func WithAlpha(a float64) Option {
	if !finiteNonNegative(a) {
		panic("aco: WithAlpha(invalid)")
	}
	return func(s *settings) { s.cfg.Alpha = a }
}

// WithBeta sets the heuristic exponent. Panics on negative or non-finite values.
func WithBeta(b float64) Option {
	if !finiteNonNegative(b) {
		panic("aco: WithBeta(invalid)")
	}
	return func(s *settings) { s.cfg.Beta = b }
}

// WithEvaporation sets ρ. Panics unless 0 < ρ < 1.
func WithEvaporation(rho float64) Option {
	if !(rho > 0 && rho < 1) {
		panic("aco: WithEvaporation(rho outside (0,1))")
	}
	return func(s *settings) { s.cfg.Evaporation = rho }
}

// WithDeposit sets Q. Panics unless Q is positive and finite.
func WithDeposit(q float64) Option {
	if !(q > 0) || math.IsInf(q, 0) {
		panic("aco: WithDeposit(invalid)")
	}
	return func(s *settings) { s.cfg.Deposit = q }
}

// WithMinDistance sets the distance floor ε. Panics unless ε is positive and finite.
func WithMinDistance(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic("aco: WithMinDistance(invalid)")
	}
	return func(s *settings) { s.cfg.MinDistance = eps }
}

// WithRand injects the random source. Panics on nil.
func WithRand(r Rand) Option {
	if r == nil {
		panic("aco: WithRand(nil)")
	}
	return func(s *settings) { s.rng = r }
}

// WithSeed uses a deterministic source built by NewRand(seed).
func WithSeed(seed int64) Option {
	return func(s *settings) { s.rng = NewRand(seed) }
}

func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
