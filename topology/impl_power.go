// SPDX-License-Identifier: MIT
// Package: bluefog/topology
//
// impl_power.go — the power-of-base circulant family:
// PowerTwoRing(size), Power(size, base), SymmetricPower(size, base).
//
// Contract:
//   - size ≥ 1 (else ErrNonPositiveSize); base ≥ 2 where it applies
//     (else ErrBadBase).
//   - Connected offsets from each rank: 0 (self) plus every offset i
//     that is an exact power of the base (base^k == i for some k ≥ 0).
//     SymmetricPower folds offsets beyond size/2 to size−i before the
//     power test, mirroring the pattern.
//   - Weights are uniform over the connected offset set and sum to 1;
//     row i equals row 0 rotated right by i (circulant invariant).
//
// Complexity: O(size²) time and space; the offset scan is O(size log n)
// for the power test.
// Determinism: fixed generating row, fixed rotation order.

package topology

import (
	"fmt"

	"github.com/Amuwa/bluefog/matrix"
)

// isPowerOf reports whether x is an exact power of base (base^k == x for
// some k ≥ 0). Pure integer arithmetic: no float logarithm edge cases.
// Callers guarantee x ≥ 1 and base ≥ 2.
func isPowerOf(x, base int) bool {
	// Climb powers of base until reaching or passing x.
	p := 1
	for p < x {
		p *= base
	}

	return p == x
}

// powerOffsets returns the generating row of a power family: offset 0
// plus every offset whose (optionally folded) index is an exact power of
// base, uniformly weighted to sum to 1.
func powerOffsets(size, base int, mirrored bool) []float64 {
	first := make([]float64, size)
	first[0] = 1.0 // self-loop is always connected
	connected := 1 // running count for the uniform weight

	// Mark every power-of-base offset; fold beyond size/2 when mirrored.
	for i := 1; i < size; i++ {
		index := i
		if mirrored && i > size/2 {
			index = size - i
		}
		if isPowerOf(index, base) {
			first[i] = 1.0
			connected++
		}
	}

	// Normalize the generating row to a uniform split over connections.
	weight := 1.0 / float64(connected)
	for i := range first {
		if first[i] != 0 {
			first[i] = weight
		}
	}

	return first
}

// circulantFromOffsets builds a Topology from a generating row.
func circulantFromOffsets(method string, size int, first []float64) (*Topology, error) {
	w, err := matrix.NewDense(size, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if err = w.FillCirculant(first); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return newTopology(w), nil
}

// PowerTwoRing builds the circulant topology connecting each rank at
// offsets 0, 1, 2, 4, 8, ... with uniform weights.
func PowerTwoRing(size int) (*Topology, error) {
	// Validate the parameter domain early.
	if size <= 0 {
		return nil, fmt.Errorf("%s: size=%d: %w", MethodPowerTwoRing, size, ErrNonPositiveSize)
	}

	// Generating row via the bit trick: i ≥ 1 is a power of two iff
	// i&(i−1) == 0; offset 0 is the self-loop.
	first := make([]float64, size)
	first[0] = 1.0
	connected := 1
	for i := 1; i < size; i++ {
		if i&(i-1) == 0 {
			first[i] = 1.0
			connected++
		}
	}
	weight := 1.0 / float64(connected)
	for i := range first {
		if first[i] != 0 {
			first[i] = weight
		}
	}

	return circulantFromOffsets(MethodPowerTwoRing, size, first)
}

// Power builds the circulant topology connecting each rank at offsets
// that are 0 or exact powers of base, with uniform weights.
func Power(size, base int) (*Topology, error) {
	// Validate the parameter domain early.
	if size <= 0 {
		return nil, fmt.Errorf("%s: size=%d: %w", MethodPower, size, ErrNonPositiveSize)
	}
	if base <= 1 {
		return nil, fmt.Errorf("%s: base=%d: %w", MethodPower, base, ErrBadBase)
	}

	return circulantFromOffsets(MethodPower, size, powerOffsets(size, base, false))
}

// SymmetricPower builds the mirrored power topology: offsets beyond
// size/2 are folded to size−i before the power-of-base test, yielding a
// symmetric connectivity pattern around the ring.
func SymmetricPower(size, base int) (*Topology, error) {
	// Validate the parameter domain early.
	if size <= 0 {
		return nil, fmt.Errorf("%s: size=%d: %w", MethodSymmetricPower, size, ErrNonPositiveSize)
	}
	if base <= 1 {
		return nil, fmt.Errorf("%s: base=%d: %w", MethodSymmetricPower, base, ErrBadBase)
	}

	return circulantFromOffsets(MethodSymmetricPower, size, powerOffsets(size, base, true))
}
