// SPDX-License-Identifier: MIT
// Package: bluefog/topology
//
// impl_innerouter.go — the hierarchical inner/outer families:
// InnerOuterRing(worldSize, localSize), InnerOuterExp2(worldSize, localSize).
//
// Contract:
//   - worldSize ≥ 1, localSize ≥ 1 (else ErrNonPositiveSize);
//     worldSize % localSize == 0 (else ErrIndivisibleWorld).
//   - Rank r lives on machine r/localSize with local id r%localSize.
//   - Inner connectivity: every pair of ranks on the same machine
//     (self included) contributes weight 1 before normalization — the
//     rotating 1-peer schedule (package schedule) must stay a subgraph
//     of this static topology, hence fully connected.
//   - Outer connectivity (matching local ids only):
//     Ring: machine m → machine (m+1) mod numMachines.
//     Exp2: machine m → every machine at forward distance that is an
//     exact power of two.
//   - Rows are normalized by their sum, making the matrix row-stochastic.
//
// Complexity: O(worldSize²).
// Determinism: fixed double loop over (i, j) in ascending order.

package topology

import (
	"fmt"

	"github.com/Amuwa/bluefog/matrix"
)

// innerOuterEdge decides the pre-normalization weight contribution for
// the ordered pair (i, j) given the machine layout and the outer rule.
type innerOuterEdge func(machineI, localI, machineJ, localJ int) bool

// buildInnerOuter shares the validate/fill/normalize skeleton of both
// hierarchical families; outer decides inter-machine connectivity.
func buildInnerOuter(method string, worldSize, localSize int, outer innerOuterEdge) (*Topology, error) {
	// Validate the parameter domain early.
	if worldSize <= 0 || localSize <= 0 {
		return nil, fmt.Errorf("%s: world=%d local=%d: %w", method, worldSize, localSize, ErrNonPositiveSize)
	}
	if worldSize%localSize != 0 {
		return nil, fmt.Errorf("%s: world=%d local=%d: %w", method, worldSize, localSize, ErrIndivisibleWorld)
	}

	// Allocate the weight matrix.
	w, err := matrix.NewDense(worldSize, worldSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	// Fill the 0/1 structure: intra-machine complete, inter-machine per
	// the outer rule at matching local ids.
	var i, j int
	for i = 0; i < worldSize; i++ {
		machineI, localI := i/localSize, i%localSize
		for j = 0; j < worldSize; j++ {
			machineJ, localJ := j/localSize, j%localSize
			switch {
			case machineI == machineJ:
				_ = w.Set(i, j, 1.0)
			case localI == localJ && outer(machineI, localI, machineJ, localJ):
				_ = w.Set(i, j, 1.0)
			}
		}
	}

	// Row-normalize; the diagonal guarantees no zero row exists.
	if err = w.NormalizeRows(); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return newTopology(w), nil
}

// InnerOuterRing builds the hierarchical topology whose outer edges form
// a unilateral ring over machines.
func InnerOuterRing(worldSize, localSize int) (*Topology, error) {
	numMachines := 0
	if localSize > 0 {
		numMachines = worldSize / localSize
	}

	return buildInnerOuter(MethodInnerOuterRing, worldSize, localSize,
		func(machineI, _, machineJ, _ int) bool {
			// Next machine around the ring.
			return (machineI+1)%numMachines == machineJ
		})
}

// InnerOuterExp2 builds the hierarchical topology whose outer edges
// connect machines at forward distances that are exact powers of two.
func InnerOuterExp2(worldSize, localSize int) (*Topology, error) {
	numMachines := 0
	if localSize > 0 {
		numMachines = worldSize / localSize
	}

	return buildInnerOuter(MethodInnerOuterExp2, worldSize, localSize,
		func(machineI, _, machineJ, _ int) bool {
			// Forward machine distance on the machine ring; different
			// machines guarantee dist ∈ [1, numMachines).
			dist := (machineJ - machineI + numMachines) % numMachines
			return isPowerOf(dist, 2)
		})
}
