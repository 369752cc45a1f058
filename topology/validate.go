// SPDX-License-Identifier: MIT
// Package: bluefog/topology
//
// validate.go — topology validators.
//
// Contract:
//   - Equivalent is stricter than graph isomorphism: rank labels matter.
//     Two topologies are equivalent iff both are present, node counts
//     match, edge counts match and the weight matrices are element-wise
//     exactly equal.
//   - IsRegular reports uniform out-degree, compared against rank 0 —
//     the precondition higher-level algorithms use before assuming a
//     uniform-connectivity rotation.
//
// Complexity: Equivalent O(size²); IsRegular O(size²).

package topology

import "github.com/Amuwa/bluefog/matrix"

// Equivalent reports whether a and b describe the identical weighted
// graph under the identical rank labeling.
func Equivalent(a, b *Topology) bool {
	// Absent topologies are never equivalent to anything.
	if a == nil || b == nil {
		return false
	}
	// Cheap structural gates before the full matrix comparison.
	if a.size != b.size {
		return false
	}
	if a.EdgeCount() != b.EdgeCount() {
		return false
	}

	// Exact element-wise comparison of the flattened matrices.
	return matrix.Equal(a.w, b.w)
}

// IsRegular reports whether every rank has the same out-degree as rank 0.
func IsRegular(t *Topology) bool {
	// Absent topology: vacuously not regular.
	if t == nil {
		return false
	}

	// Compare every rank's out-degree against rank 0's.
	degree, _ := t.OutDegree(0)
	for rank := 1; rank < t.size; rank++ {
		d, _ := t.OutDegree(rank)
		if d != degree {
			return false
		}
	}

	return true
}
