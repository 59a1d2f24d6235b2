// Package geometry - dense square matrix for per-solve tables.
//
// Matrix backs both the immutable distance table and the mutable ACO
// pheromone table. Storage is a single row-major slice so that whole-matrix
// passes (evaporation) are a tight loop.
//
// Concurrency: a Matrix is not synchronized; it is meant to be owned by one
// solve call and discarded afterwards.
package geometry

// Matrix is a dense n×n float64 matrix.
type Matrix struct {
	n    int
	data []float64
}

// NewMatrix returns an n×n matrix with every entry set to fill.
// Negative n is treated as 0.
//
// Complexity: O(n²).
func NewMatrix(n int, fill float64) *Matrix {
	if n < 0 {
		n = 0
	}
	m := &Matrix{n: n, data: make([]float64, n*n)}
	if fill != 0 {
		var i int
		for i = range m.data {
			m.data[i] = fill
		}
	}
	return m
}

// NewDistanceMatrix builds the symmetric, zero-diagonal Euclidean distance
// table for cities, indexed by input position.
//
// Complexity: O(n²) time and memory.
func NewDistanceMatrix(cities []City) *Matrix {
	var (
		n = len(cities)
		m = NewMatrix(n, 0)
		i int
		j int
		d float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = Distance(cities[i], cities[j])
			m.data[i*n+j] = d
			m.data[j*n+i] = d
		}
	}
	return m
}

// N returns the matrix order.
func (m *Matrix) N() int { return m.n }

// At returns entry (i, j). Indices are not range-checked.
func (m *Matrix) At(i, j int) float64 { return m.data[i*m.n+j] }

// Set writes entry (i, j).
func (m *Matrix) Set(i, j int, v float64) { m.data[i*m.n+j] = v }

// AddSymmetric adds v to both (i, j) and (j, i).
func (m *Matrix) AddSymmetric(i, j int, v float64) {
	m.data[i*m.n+j] += v
	m.data[j*m.n+i] += v
}

// Scale multiplies every entry by f in place.
//
// Complexity: O(n²).
func (m *Matrix) Scale(f float64) {
	var i int
	for i = range m.data {
		m.data[i] *= f
	}
}

// Row returns a view of row i. Mutating the view mutates the matrix.
func (m *Matrix) Row(i int) []float64 {
	return m.data[i*m.n : (i+1)*m.n]
}
