// SPDX-License-Identifier: MIT
// Package: bluefog/schedule
//
// scheduler.go — dynamic 1-peer rotation over a static topology.
//
// Algorithm (per round t, rank r):
//  1. For every rank, sort its non-self successors by clockwise circular
//     distance: neighbor n sorts by (n − r + size) mod size, i.e. in
//     increasing clock position starting just after r itself.
//  2. r's active send target is sorted[r][t mod d_r] where d_r is r's
//     non-self out-degree.
//  3. r's receive set is every other rank o whose active target at t
//     (computed by the same rule) equals r.
//
// Correctness property (by construction, not by communication): every
// process evaluates the identical deterministic rule over the identical
// statically agreed topology, so the send side of rank o and the recv
// side of rank r agree at every round without exchanging a single
// scheduling message.
//
// Contract:
//   - The Scheduler holds only a derived, recomputable cache (the sorted
//     neighbor orders); it is not authoritative state and carries no
//     round counter — the round index is the caller's.
//   - Rotation over d_r consecutive rounds visits every non-self
//     out-neighbor exactly once, in increasing clockwise order.
//   - O(size) work per SendRecv call; no allocation beyond the result.

package schedule

import (
	"fmt"
	"sort"

	"github.com/Amuwa/bluefog/topology"
)

// Scheduler precomputes the clockwise-sorted neighbor orders of a static
// topology so per-round queries stay cheap on the hot path.
type Scheduler struct {
	size  int     // rank count of the underlying topology
	order [][]int // order[r] = non-self successors of r, clockwise from r
}

// New builds a Scheduler over the given static topology. It fails with
// ErrNoActiveNeighbors if any rank has no outgoing edge besides its
// self-loop, since that rank's rotation would be empty (and every other
// rank needs all rotations to derive its receive set).
// Complexity: O(size² + size·deg·log deg).
func New(t *topology.Topology) (*Scheduler, error) {
	// Reject an absent topology early.
	if t == nil {
		return nil, fmt.Errorf("New: %w", ErrNilTopology)
	}

	size := t.Size()
	order := make([][]int, size)
	for r := 0; r < size; r++ {
		// Successors of r with the self-loop removed.
		succ, err := t.Successors(r)
		if err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
		peers := make([]int, 0, len(succ))
		for _, n := range succ {
			if n != r {
				peers = append(peers, n)
			}
		}
		if len(peers) == 0 {
			return nil, fmt.Errorf("New: rank=%d: %w", r, ErrNoActiveNeighbors)
		}

		// Clockwise order: imagine all ranks on a clock face; visit
		// neighbors in increasing position starting just after r.
		rank := r // capture for the comparator
		sort.Slice(peers, func(a, b int) bool {
			return clockDist(peers[a], rank, size) < clockDist(peers[b], rank, size)
		})
		order[r] = peers
	}

	return &Scheduler{size: size, order: order}, nil
}

// clockDist is the clockwise circular distance from rank to neighbor n.
func clockDist(n, rank, size int) int {
	if n >= rank {
		return n - rank
	}

	return n - rank + size
}

// Size returns the rank count of the underlying topology.
func (s *Scheduler) Size() int {
	return s.size
}

// SendRecv returns, for the given rank and round, the single rank it
// sends to and the set of ranks sending to it. The result is a pure
// function of (topology, rank, round): recomputing any round yields
// identical output, which makes the sequence trivially restartable.
// Complexity: O(size).
func (s *Scheduler) SendRecv(rank, round int) (sendRanks, recvRanks []int, err error) {
	// Validate arguments; rounds count from 0.
	if rank < 0 || rank >= s.size {
		return nil, nil, fmt.Errorf("SendRecv: rank=%d size=%d: %w", rank, s.size, ErrRankOutOfRange)
	}
	if round < 0 {
		return nil, nil, fmt.Errorf("SendRecv: round=%d: %w", round, ErrNegativeRound)
	}

	// Step 2: the active outgoing edge rotates clockwise with the round.
	send := s.order[rank][round%len(s.order[rank])]

	// Step 3: a rank receives from exactly those ranks whose own
	// rotation lands on it this round.
	recv := make([]int, 0, len(s.order))
	for other := 0; other < s.size; other++ {
		if other == rank {
			continue
		}
		peers := s.order[other]
		if peers[round%len(peers)] == rank {
			recv = append(recv, other)
		}
	}

	return []int{send}, recv, nil
}

// SendRecv is the one-shot convenience form: it derives the rotation
// cache from the topology and answers a single round. Prefer holding a
// Scheduler when querying many rounds — this form pays the O(size²)
// precomputation on every call.
func SendRecv(t *topology.Topology, rank, round int) (sendRanks, recvRanks []int, err error) {
	s, err := New(t)
	if err != nil {
		return nil, nil, err
	}

	return s.SendRecv(rank, round)
}
