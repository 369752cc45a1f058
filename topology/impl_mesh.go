// SPDX-License-Identifier: MIT
// Package: bluefog/topology
//
// impl_mesh.go — implementation of MeshGrid2D(size, nrow, ncol).
//
// Contract:
//   - size ≥ 1 (else ErrNonPositiveSize). nrow == ncol == 0 derives the
//     shape: the largest nrow ≤ √size dividing size (1×size for primes,
//     degrading the mesh to a line). An explicit shape must satisfy
//     nrow ≥ 1, ncol ≥ 1 and nrow*ncol == size (else ErrBadShape).
//   - Structure: each rank connects to itself, its right neighbor (same
//     grid row) and the rank below (no wraparound), bidirectionally.
//   - Weights follow the Metropolis–Hastings rule: for neighbors i ≠ j,
//     W[i][j] = 1 / max(deg(i), deg(j)) with self-inclusive degrees;
//     the self-weight is then 2 − rowsum (the diagonal still carrying
//     its structural 1), which leaves every row summing to exactly 1.
//
// Complexity: O(size²) space; O(size · maxdeg) weight assignment.
// Determinism: ascending rank/neighbor iteration everywhere.

package topology

import (
	"fmt"
	"math"

	"github.com/Amuwa/bluefog/matrix"
)

// meshShape derives the default (nrow, ncol) for a mesh of the given
// size: the largest nrow ≤ √size that divides size.
func meshShape(size int) (int, int) {
	nrow := int(math.Sqrt(float64(size)))
	for size%nrow != 0 {
		nrow--
	}

	return nrow, size / nrow
}

// MeshGrid2D builds an nrow×ncol mesh with Metropolis–Hastings weights.
// Pass nrow == ncol == 0 to derive the shape from size.
func MeshGrid2D(size, nrow, ncol int) (*Topology, error) {
	// Validate the parameter domain early.
	if size <= 0 {
		return nil, fmt.Errorf("%s: size=%d: %w", MethodMeshGrid2D, size, ErrNonPositiveSize)
	}
	if nrow == 0 && ncol == 0 {
		nrow, ncol = meshShape(size)
	}
	if nrow < 1 || ncol < 1 || nrow*ncol != size {
		return nil, fmt.Errorf("%s: shape=%dx%d size=%d: %w", MethodMeshGrid2D, nrow, ncol, size, ErrBadShape)
	}

	// Allocate the weight matrix.
	w, err := matrix.NewDense(size, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodMeshGrid2D, err)
	}

	// Structure pass: self-loop plus right/below adjacency, symmetric,
	// no wraparound. (i+1)%ncol == 0 marks the last cell of a grid row.
	var i int
	for i = 0; i < size; i++ {
		_ = w.Set(i, i, 1.0)
		if (i+1)%ncol != 0 {
			_ = w.Set(i, i+1, 1.0)
			_ = w.Set(i+1, i, 1.0)
		}
		if i+ncol < size {
			_ = w.Set(i, i+ncol, 1.0)
			_ = w.Set(i+ncol, i, 1.0)
		}
	}

	// Snapshot the self-inclusive neighbor sets before reweighting; the
	// Metropolis–Hastings degrees refer to the structural adjacency.
	neighbors := make([][]int, size)
	for i = 0; i < size; i++ {
		neighbors[i], _ = w.NonZeroInRow(i)
	}

	// Weight pass: neighbor edges get 1/max(deg i, deg j); the diagonal
	// (still 1 from the structure pass) then absorbs 2 − rowsum so each
	// row lands exactly on 1.
	for i = 0; i < size; i++ {
		for _, j := range neighbors[i] {
			if i == j {
				continue
			}
			di, dj := len(neighbors[i]), len(neighbors[j])
			_ = w.Set(i, j, 1.0/float64(max(di, dj)))
		}
		sum, _ := w.RowSum(i)
		_ = w.Set(i, i, 2.0-sum)
	}

	return newTopology(w), nil
}
