// SPDX-License-Identifier: MIT
// Package: bluefog/topology
//
// impl_star.go — implementation of Star(size, centerRank).
//
// Contract:
//   - size ≥ 1 (else ErrNonPositiveSize); centerRank ∈ [0, size)
//     (else ErrBadCenterRank).
//   - Every leaf carries self-weight 1 − 1/size and a bidirectional
//     1/size edge to the center. The center's own diagonal resolves to
//     1/size — the center spreads its weight uniformly over everyone
//     including itself — which is what keeps the center row stochastic
//     (size entries of 1/size) alongside the leaf rows.
//
// Complexity: O(size²) space, O(size) writes.
// Determinism: single ascending-rank pass with fixed write order.

package topology

import (
	"fmt"

	"github.com/Amuwa/bluefog/matrix"
)

// Star builds a star topology around the designated center rank.
func Star(size, centerRank int) (*Topology, error) {
	// Validate the parameter domain early.
	if size <= 0 {
		return nil, fmt.Errorf("%s: size=%d: %w", MethodStar, size, ErrNonPositiveSize)
	}
	if centerRank < 0 || centerRank >= size {
		return nil, fmt.Errorf("%s: center=%d size=%d: %w", MethodStar, centerRank, size, ErrBadCenterRank)
	}

	// Allocate the weight matrix.
	w, err := matrix.NewDense(size, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodStar, err)
	}

	// One pass per rank: diagonal first, then the hub row/column entry.
	// For i == centerRank the later writes overwrite the diagonal with
	// 1/size, by intent (see header).
	leafSelf := 1.0 - 1.0/float64(size)
	spoke := 1.0 / float64(size)
	for i := 0; i < size; i++ {
		_ = w.Set(i, i, leafSelf)
		_ = w.Set(centerRank, i, spoke)
		_ = w.Set(i, centerRank, spoke)
	}

	return newTopology(w), nil
}
