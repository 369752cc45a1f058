// SPDX-License-Identifier: MIT
// Package: bluefog/topology
//
// impl_full.go — implementation of FullyConnected(size).
//
// Contract:
//   - size ≥ 1 (else ErrNonPositiveSize).
//   - Every entry is 1/size; trivially circulant and row-stochastic.
//
// Complexity: O(size²).

package topology

import "fmt"

// FullyConnected builds the complete topology where every rank weighs
// every rank (itself included) by 1/size.
func FullyConnected(size int) (*Topology, error) {
	// Validate the parameter domain early.
	if size <= 0 {
		return nil, fmt.Errorf("%s: size=%d: %w", MethodFullyConnected, size, ErrNonPositiveSize)
	}

	// Uniform generating row; circulant fill keeps the structural
	// invariant shared with the ring/power families.
	first := make([]float64, size)
	uniform := 1.0 / float64(size)
	for i := range first {
		first[i] = uniform
	}

	return circulantFromOffsets(MethodFullyConnected, size, first)
}
