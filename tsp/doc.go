// Package tsp runs the planar tour heuristics behind one entry point.
//
// What it offers:
//
//   - Solve    - validate a city set, run the selected Algorithm and measure
//     the resulting tour.
//   - Compare  - run every Algorithm on the same input and return the
//     results side by side.
//   - RandomCities - a padded uniform city generator for demos and tests.
//
// Algorithms:
//
//	NEAREST_NEIGHBOR     greedy construction, deterministic, O(n²).
//	SPACE_FILLING_CURVE  Hilbert-curve ordering, deterministic, O(n log n).
//	ACO                  ant colony optimization, stochastic, O(I·m·n²).
//
// Stochastic runs:
//
//	ACO is repeated Options.ACORuns times and the shortest tour is kept. The
//	reported elapsed time is the sum over all runs. With Options.Seed != 0
//	every run draws from its own derived stream, so the whole call is
//	reproducible; Seed == 0 uses time-seeded sources.
//
// Lengths:
//
//	Every length is measured with geometry.TotalLength against the caller's
//	full city list. When the colony merged cities sharing a position, its
//	tour is shorter than the city list and is therefore measured as an open
//	path; Result.Absorbed lists the ids that were merged.
//
// Errors:
//
//	Only the sentinels declared in types.go, optionally wrapped with
//	context via %w. Match them with errors.Is.
package tsp
