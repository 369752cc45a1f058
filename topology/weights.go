// SPDX-License-Identifier: MIT
// Package: bluefog/topology
//
// weights.go — per-rank weight extraction for both message directions.
//
// Contract:
//   - SendWeights(rank) reads row `rank`: the self-loop (if any) becomes
//     SelfWeight, every other non-zero W[rank][r] lands in Neighbors[r].
//   - RecvWeights(rank) reads column `rank`: W[src][rank] over the
//     predecessors of rank, symmetric to the send direction.
//   - SelfWeight defaults to 0 when no self-loop exists. Pure reads,
//     no side effects; Neighbors keys are unique by construction.
//   - For any stochastic topology, SelfWeight plus the sum of Neighbors
//     values equals 1 in the send direction.
//
// Complexity: O(size) per call, O(deg) result space.

package topology

import "fmt"

// WeightView is the per-rank slice of a topology one direction at a
// time: the rank's own weight plus the weight attached to each
// communicating neighbor.
type WeightView struct {
	// SelfWeight is the weight on the rank's self-loop; 0 if absent.
	SelfWeight float64

	// Neighbors maps neighbor rank → edge weight; never contains the
	// rank itself, values are non-negative.
	Neighbors map[int]float64
}

// SendWeights returns the weights rank distributes when sending: its
// self-weight and the weight carried toward each successor.
func (t *Topology) SendWeights(rank int) (WeightView, error) {
	// Validate the rank before touching the matrix.
	if rank < 0 || rank >= t.size {
		return WeightView{}, fmt.Errorf("SendWeights: rank=%d size=%d: %w", rank, t.size, ErrRankOutOfRange)
	}

	// Walk the rank's row: diagonal → self, off-diagonal → neighbors.
	row, _ := t.w.Row(rank)
	view := WeightView{Neighbors: make(map[int]float64)}
	for r, weight := range row {
		if weight == 0 {
			continue
		}
		if r == rank {
			view.SelfWeight = weight
		} else {
			view.Neighbors[r] = weight
		}
	}

	return view, nil
}

// RecvWeights returns the weights rank applies when receiving: its
// self-weight and the weight attached to each predecessor's message.
func (t *Topology) RecvWeights(rank int) (WeightView, error) {
	// Validate the rank before touching the matrix.
	if rank < 0 || rank >= t.size {
		return WeightView{}, fmt.Errorf("RecvWeights: rank=%d size=%d: %w", rank, t.size, ErrRankOutOfRange)
	}

	// Walk the rank's column: W[src][rank] for every source rank.
	view := WeightView{Neighbors: make(map[int]float64)}
	for src := 0; src < t.size; src++ {
		row, _ := t.w.Row(src)
		weight := row[rank]
		if weight == 0 {
			continue
		}
		if src == rank {
			view.SelfWeight = weight
		} else {
			view.Neighbors[src] = weight
		}
	}

	return view, nil
}
