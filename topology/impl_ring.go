// SPDX-License-Identifier: MIT
// Package: bluefog/topology
//
// impl_ring.go — implementation of the Ring(size, style) family.
//
// Contract:
//   - size ≥ 1 (else ErrNonPositiveSize); style ∈ {Bi, Left, Right}
//     (else ErrBadConnectStyle).
//   - size 1 → [[1]] (self-loop only); size 2 → mutual 0.5 regardless of
//     style (there is only one possible exchange).
//   - size ≥ 3 → circulant matrix generated from row 0:
//     Bi:    self, right and left neighbor each carry 1/3.
//     Left:  self 0.5, left neighbor (offset size−1) 0.5.
//     Right: self 0.5, right neighbor (offset 1) 0.5.
//   - Row i equals row 0 rotated right by i (circulant invariant).
//
// Complexity: O(size²) time and space (matrix fill).
// Determinism: fixed generating row, fixed rotation order.

package topology

import (
	"fmt"

	"github.com/Amuwa/bluefog/matrix"
)

// ConnectStyle selects which ring neighbors a rank exchanges with.
type ConnectStyle int

const (
	// ConnectBi splits weight evenly across self, left and right neighbor.
	ConnectBi ConnectStyle = iota

	// ConnectLeft exchanges with the left (counter-clockwise) neighbor only.
	ConnectLeft

	// ConnectRight exchanges with the right (clockwise) neighbor only.
	ConnectRight
)

// ringUniWeight is the self/neighbor split for unidirectional styles.
const ringUniWeight = 0.5

// Ring builds a ring topology of the given size and connection style.
func Ring(size int, style ConnectStyle) (*Topology, error) {
	// Validate the parameter domain early (fail fast, no partial work).
	if size <= 0 {
		return nil, fmt.Errorf("%s: size=%d: %w", MethodRing, size, ErrNonPositiveSize)
	}
	if style < ConnectBi || style > ConnectRight {
		return nil, fmt.Errorf("%s: style=%d: %w", MethodRing, int(style), ErrBadConnectStyle)
	}

	// Allocate the weight matrix; size is validated, so no error path.
	w, err := matrix.NewDense(size, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodRing, err)
	}

	// Sizes below minRingSplit have a single possible matrix per style.
	if size < minRingSplit {
		if size == 1 {
			_ = w.Set(0, 0, 1.0) // lone rank keeps all weight on itself
			return newTopology(w), nil
		}
		_ = w.Set(0, 0, ringUniWeight)
		_ = w.Set(0, 1, ringUniWeight)
		_ = w.Set(1, 0, ringUniWeight)
		_ = w.Set(1, 1, ringUniWeight)
		return newTopology(w), nil
	}

	// Generating row: offset 0 is self, offset 1 the right neighbor,
	// offset size−1 the left neighbor.
	first := make([]float64, size)
	switch style {
	case ConnectBi:
		third := 1.0 / 3.0
		first[0] = third
		first[1] = third
		first[size-1] = third
	case ConnectLeft:
		first[0] = ringUniWeight
		first[size-1] = ringUniWeight
	case ConnectRight:
		first[0] = ringUniWeight
		first[1] = ringUniWeight
	}

	// Circulant fill: row i = row 0 rotated right by i.
	if err = w.FillCirculant(first); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodRing, err)
	}

	return newTopology(w), nil
}
