// SPDX-License-Identifier: MIT
// Package matrix — row/column helpers for stochastic weight matrices.
//
// stochastic.go — the helpers the topology layer is built on: row and
// column sums, non-zero scans, circulant construction and in-place row
// normalization.
//
// Contract:
//   - All methods validate indices/shapes first and return only sentinel
//     errors wrapped with method context; never panic at runtime.
//   - Fixed iteration orders (ascending row, then ascending column) keep
//     every result deterministic and reproducible across processes.
//
// Complexity: each helper is O(c), O(r) or O(r*c) as documented; no
// hidden allocations beyond the returned slices.
package matrix

import "fmt"

// RowSum returns the sum of all entries in row i.
// Complexity: O(c).
func (m *Dense) RowSum(i int) (float64, error) {
	// Borrow the contiguous row; validates the index.
	row, err := m.Row(i)
	if err != nil {
		return 0, err
	}

	// Accumulate in ascending column order (deterministic rounding).
	var sum float64
	for _, v := range row {
		sum += v
	}

	return sum, nil
}

// ColSum returns the sum of all entries in column j.
// Complexity: O(r) with stride-c access.
func (m *Dense) ColSum(j int) (float64, error) {
	// Validate the column index once up front.
	if j < 0 || j >= m.c {
		return 0, denseErrorf("ColSum", 0, j, ErrIndexOutOfBounds)
	}

	// Walk the column through the flat store in ascending row order.
	var sum float64
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+j]
	}

	return sum, nil
}

// NonZeroInRow returns the ascending column indices of non-zero entries
// in row i. Exact zero is the "no edge" marker throughout this module.
// Complexity: O(c) time, O(k) space for k non-zeros.
func (m *Dense) NonZeroInRow(i int) ([]int, error) {
	// Borrow the row; validates the index.
	row, err := m.Row(i)
	if err != nil {
		return nil, err
	}

	// Collect indices in ascending order.
	cols := make([]int, 0, m.c)
	for j, v := range row {
		if v != 0 {
			cols = append(cols, j)
		}
	}

	return cols, nil
}

// NonZeroInCol returns the ascending row indices of non-zero entries in
// column j.
// Complexity: O(r) time, O(k) space for k non-zeros.
func (m *Dense) NonZeroInCol(j int) ([]int, error) {
	// Validate the column index once up front.
	if j < 0 || j >= m.c {
		return nil, denseErrorf("NonZeroInCol", 0, j, ErrIndexOutOfBounds)
	}

	// Collect indices in ascending row order.
	rows := make([]int, 0, m.r)
	for i := 0; i < m.r; i++ {
		if m.data[i*m.c+j] != 0 {
			rows = append(rows, i)
		}
	}

	return rows, nil
}

// NonZeroCount returns the number of non-zero entries in the matrix —
// the directed edge count when the matrix is read as a weighted graph.
// Complexity: O(r*c).
func (m *Dense) NonZeroCount() int {
	// Single pass over the flat store.
	count := 0
	for _, v := range m.data {
		if v != 0 {
			count++
		}
	}

	return count
}

// FillCirculant fills the square matrix so that row i equals the given
// first row rotated right by i positions: m[i][j] = first[(j−i) mod n].
// The resulting matrix is circulant by construction, which several
// topology families rely on as a structural invariant.
// Complexity: O(n²).
func (m *Dense) FillCirculant(first []float64) error {
	// Require a square matrix; circulant structure is undefined otherwise.
	if m.r != m.c {
		return fmt.Errorf("Dense.FillCirculant: %dx%d not square: %w", m.r, m.c, ErrDimensionMismatch)
	}
	// The generating row must span the full width.
	if len(first) != m.c {
		return fmt.Errorf("Dense.FillCirculant: row length %d != %d: %w", len(first), m.c, ErrDimensionMismatch)
	}

	// Write row i as the right-rotation of the generating row by i.
	n := m.c
	var i, k int
	for i = 0; i < n; i++ {
		for k = 0; k < n; k++ {
			// Offset k of the generating row lands at column (i+k) mod n.
			m.data[i*n+(i+k)%n] = first[k]
		}
	}

	return nil
}

// NormalizeRows divides every row by its sum, in place, producing a
// row-stochastic matrix. A zero-sum row has no normalization and yields
// ErrZeroRowSum with no partial mutation of that or later rows.
// Complexity: O(r*c); two passes per row (sum, then scale).
func (m *Dense) NormalizeRows() error {
	// Validate all row sums before touching any entry (no partial state).
	sums := make([]float64, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		var sum float64
		for j = 0; j < m.c; j++ {
			sum += m.data[i*m.c+j]
		}
		if sum == 0 {
			return fmt.Errorf("Dense.NormalizeRows: row %d: %w", i, ErrZeroRowSum)
		}
		sums[i] = sum
	}

	// Scale every row by its reciprocal sum.
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			m.data[i*m.c+j] /= sums[i]
		}
	}

	return nil
}

// Equal reports whether a and b have identical shape and exactly equal
// entries (element-wise ==, no tolerance). Nil matrices are never equal.
// Complexity: O(r*c).
func Equal(a, b *Dense) bool {
	// Nil never compares equal, mirroring "absent topology" semantics.
	if a == nil || b == nil {
		return false
	}
	// Shape must agree before any element comparison.
	if a.r != b.r || a.c != b.c {
		return false
	}

	// Flat element-wise comparison in storage order.
	for i, v := range a.data {
		if v != b.data[i] {
			return false
		}
	}

	return true
}
