// SPDX-License-Identifier: MIT
// Package: bluefog/topology
//
// types.go — the Topology value type.
//
// Contract:
//   - A Topology is immutable after construction: builders hand over a
//     freshly allocated matrix, FromMatrix deep-copies its input, and
//     Matrix() returns a deep copy. Rebuilding on reconfiguration means
//     creating a new value, never mutating in place.
//   - Convention (fixed across the module): row i of the weight matrix
//     holds the weights rank i distributes — W[i][j] ≠ 0 is a directed
//     edge i→j. Successors read rows; predecessors read columns. Every
//     builder keeps rows summing to 1 (row-stochastic).
//   - Accessors validate ranks and return only sentinel errors.

package topology

import (
	"fmt"

	"github.com/Amuwa/bluefog/matrix"
)

// Topology is an immutable weighted directed graph over ranks 0..size-1,
// represented as a size×size non-negative weight matrix.
type Topology struct {
	size int          // number of participating ranks
	w    *matrix.Dense // size×size weight matrix, row-stochastic for builders
}

// newTopology wraps a freshly built matrix without copying. Internal:
// builders guarantee the matrix is square and never aliased afterwards.
func newTopology(w *matrix.Dense) *Topology {
	return &Topology{size: w.Rows(), w: w}
}

// FromMatrix constructs a Topology from a caller-provided weight matrix.
// The matrix must be square with non-negative entries; it is deep-copied,
// so later caller mutations cannot leak into the Topology. Stochasticity
// is NOT enforced here — caller-overridden weights are an explicit escape
// hatch for consumers that manage bias themselves.
// Complexity: O(size²).
func FromMatrix(w *matrix.Dense) (*Topology, error) {
	// Reject absent input early.
	if w == nil {
		return nil, fmt.Errorf("FromMatrix: nil matrix: %w", ErrNonPositiveSize)
	}
	// A rank graph needs a square matrix.
	if w.Rows() != w.Cols() {
		return nil, fmt.Errorf("FromMatrix: %dx%d not square: %w", w.Rows(), w.Cols(), ErrBadShape)
	}

	// Averaging weights are non-negative by definition.
	var i, j int
	for i = 0; i < w.Rows(); i++ {
		row, err := w.Row(i)
		if err != nil {
			return nil, fmt.Errorf("FromMatrix: %w", err)
		}
		for j = 0; j < len(row); j++ {
			if row[j] < 0 {
				return nil, fmt.Errorf("FromMatrix: W[%d][%d]=%g: %w", i, j, row[j], ErrNegativeWeight)
			}
		}
	}

	// Deep-copy to guarantee immutability of the new value.
	return newTopology(w.Clone()), nil
}

// Size returns the number of ranks in the topology.
// Complexity: O(1).
func (t *Topology) Size() int {
	return t.size
}

// Weight returns W[i][j], the weight rank i distributes toward rank j
// (0 means no edge). Complexity: O(1).
func (t *Topology) Weight(i, j int) (float64, error) {
	// Delegate bounds checking to the matrix.
	v, err := t.w.At(i, j)
	if err != nil {
		return 0, fmt.Errorf("Weight: %w", ErrRankOutOfRange)
	}

	return v, nil
}

// Successors returns the ascending ranks j with W[rank][j] ≠ 0 — the
// destinations rank distributes weight to, including rank itself when a
// self-loop exists. Complexity: O(size).
func (t *Topology) Successors(rank int) ([]int, error) {
	// Row scan; the matrix validates the index.
	succ, err := t.w.NonZeroInRow(rank)
	if err != nil {
		return nil, fmt.Errorf("Successors: %w", ErrRankOutOfRange)
	}

	return succ, nil
}

// Predecessors returns the ascending ranks i with W[i][rank] ≠ 0 — the
// sources distributing weight toward rank, including rank itself when a
// self-loop exists. Complexity: O(size).
func (t *Topology) Predecessors(rank int) ([]int, error) {
	// Column scan; the matrix validates the index.
	pred, err := t.w.NonZeroInCol(rank)
	if err != nil {
		return nil, fmt.Errorf("Predecessors: %w", ErrRankOutOfRange)
	}

	return pred, nil
}

// OutDegree returns the number of non-zero entries in rank's row,
// self-loop included. Complexity: O(size).
func (t *Topology) OutDegree(rank int) (int, error) {
	succ, err := t.Successors(rank)
	if err != nil {
		return 0, err
	}

	return len(succ), nil
}

// EdgeCount returns the number of directed edges (non-zero entries).
// Complexity: O(size²).
func (t *Topology) EdgeCount() int {
	return t.w.NonZeroCount()
}

// Matrix returns a deep copy of the weight matrix. The Topology itself
// stays immutable regardless of what the caller does with the copy.
// Complexity: O(size²).
func (t *Topology) Matrix() *matrix.Dense {
	return t.w.Clone()
}

// String renders the weight matrix for debugging.
func (t *Topology) String() string {
	return t.w.String()
}
