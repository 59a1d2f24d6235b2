// Package aco implements Ant Colony Optimization for planar tours.
//
// Algorithm (one solve call):
//
//  1. Dedup: cities at exactly the same position collapse onto the first one
//     seen. The absorbed ids are reported in Result.Absorbed and do NOT appear
//     in the returned tour.
//  2. Build the n×n distance matrix and a pheromone matrix filled with 1.0.
//  3. For every iteration, each of min(MaxAnts, n) ants starts at a uniformly
//     random city and repeatedly samples the next unvisited city with weight
//     τ^α · (1/max(d, ε))^β. Tour lengths are measured as closed cycles and a
//     single running best is kept across all ants and iterations.
//  4. Evaporate every pheromone entry by (1−ρ), then deposit Q/L on both
//     directed entries of every edge of every tour built this iteration,
//     closing edge included.
//  5. Return the best tour as ids, rotated to start at the first input city.
//
// Randomness:
//
//	The optimizer is stochastic on purpose. Inject a source with WithRand or
//	WithSeed to make a single run reproducible; without one, a fresh
//	time-seeded source is used. Repeating runs and keeping the best is the
//	caller's policy.
//
// Concurrency:
//
//	Every call owns its matrices and scratch buffers. Calls may run
//	concurrently as long as they do not share one Rand.
//
// Complexity: O(iterations · ants · n²) time, O(n² + ants·n) memory.
package aco
