// SPDX-License-Identifier: MIT
// Package: bluefog/schedule
//
// hierarchical.go — dynamic schedules for the inner/outer families,
// derived directly from (worldSize, localSize, rank, round) without
// materializing the static matrix: the inner connectivity is always
// fully connected, so only the rotating assignments need computing.
//
// Shared structure (per round):
//   - Exactly one local rank per machine is designated to "go outside":
//     localRankToGoOutside = round mod localSize.
//   - The designated rank exchanges across machines at matching local
//     ids; everyone else exchanges within the machine, rotating around
//     the designated slot so the outside rank is never also picked for
//     an inner exchange in the same round.
//
// The collision-avoidance increments below are load-bearing: they
// reserve the outgoing slot and adjust the forward and backward
// distances independently. Deviating from them does not crash — it
// silently biases the resulting consensus average.
//
// Contract:
//   - worldSize % localSize == 0 (else ErrIndivisibleWorld).
//   - localSize > 2 (else ErrUnsupportedLocalSize): with two or fewer
//     ranks per machine there is no room to both exchange locally and
//     reserve the outside slot.
//   - Pure functions of their arguments; O(1) per call.

package schedule

import (
	"fmt"
	"math/bits"
)

// hierParams carries the validated, derived hierarchical layout.
type hierParams struct {
	numMachines int // worldSize / localSize
	localSize   int // ranks per machine
	machineID   int // rank / localSize
	localID     int // rank % localSize
}

// resolveHier validates (worldSize, localSize, rank, round) and derives
// the layout every hierarchical schedule starts from.
func resolveHier(method string, worldSize, localSize, rank, round int) (hierParams, error) {
	// Positive sizes come first; everything below divides by localSize.
	if worldSize <= 0 || localSize <= 0 {
		return hierParams{}, fmt.Errorf("%s: world=%d local=%d: %w", method, worldSize, localSize, ErrNonPositiveSize)
	}
	// Known unhandled configuration: rejected for any world size, never
	// mis-scheduled.
	if localSize <= 2 {
		return hierParams{}, fmt.Errorf("%s: local=%d: %w", method, localSize, ErrUnsupportedLocalSize)
	}
	// Homogeneous machines only.
	if worldSize%localSize != 0 {
		return hierParams{}, fmt.Errorf("%s: world=%d local=%d: %w", method, worldSize, localSize, ErrIndivisibleWorld)
	}
	if rank < 0 || rank >= worldSize {
		return hierParams{}, fmt.Errorf("%s: rank=%d world=%d: %w", method, rank, worldSize, ErrRankOutOfRange)
	}
	if round < 0 {
		return hierParams{}, fmt.Errorf("%s: round=%d: %w", method, round, ErrNegativeRound)
	}

	return hierParams{
		numMachines: worldSize / localSize,
		localSize:   localSize,
		machineID:   rank / localSize,
		localID:     rank % localSize,
	}, nil
}

// InnerOuterRingSendRecv returns, for the given round, the single send
// target and receive source of rank under the inner-complete/outer-ring
// rotation.
//
// The designated outside rank exchanges with the same local id on the
// next (send) and previous (recv) machine around the machine ring; every
// other rank exchanges with the next/previous local rank, skipping one
// extra position when the naive target collides with the outside slot.
//
// A single-machine world (numMachines == 1) degenerates to the rank
// exchanging with itself on its outside rounds; callers wanting a hard
// failure should validate their machine count up front.
func InnerOuterRingSendRecv(worldSize, localSize, rank, round int) (sendRank, recvRank int, err error) {
	const method = "InnerOuterRingSendRecv"

	p, err := resolveHier(method, worldSize, localSize, rank, round)
	if err != nil {
		return 0, 0, err
	}

	// The outside slot rotates through the local ids with the round.
	outsideID := round % p.localSize

	if outsideID == p.localID {
		// Outside round: same local id on the neighboring machines.
		sendMachine := (p.machineID + 1) % p.numMachines
		recvMachine := (p.machineID - 1 + p.numMachines) % p.numMachines

		return sendMachine*p.localSize + p.localID, recvMachine*p.localSize + p.localID, nil
	}

	// Inner round: rotate ±1 locally, stepping over the outside slot.
	target := (p.localID + 1) % p.localSize
	if target == outsideID {
		target = (target + 1) % p.localSize
	}
	source := (p.localID - 1 + p.localSize) % p.localSize
	if source == outsideID {
		source = (source - 1 + p.localSize) % p.localSize
	}

	return p.machineID*p.localSize + target, p.machineID*p.localSize + source, nil
}

// InnerOuterExp2SendRecv returns, for the given round, the single send
// target and receive source of rank under the inner/outer exponential-2
// rotation.
//
// Outside rounds hop machines at distance 2^(round mod (exp2Out+1)),
// exp2Out = floor(log2(numMachines−1)), applied forward for send and
// backward for recv. Inner rounds hop local ids at distance
// 2^(round mod (exp2In+1)), exp2In = floor(log2(localSize−2)) — the −2
// reserves room for the excluded outside slot — incrementing the
// distance by one when it would reach or pass the outside slot, with
// the forward (send) and backward (recv) adjustments computed
// independently.
//
// Requires at least two machines (else ErrTooFewMachines): with one
// machine there is no outer distance to rotate through.
func InnerOuterExp2SendRecv(worldSize, localSize, rank, round int) (sendRank, recvRank int, err error) {
	const method = "InnerOuterExp2SendRecv"

	p, err := resolveHier(method, worldSize, localSize, rank, round)
	if err != nil {
		return 0, 0, err
	}
	if p.numMachines < 2 {
		return 0, 0, fmt.Errorf("%s: machines=%d: %w", method, p.numMachines, ErrTooFewMachines)
	}

	// Distance bounds. floorLog2 is exact integer arithmetic; both
	// arguments are ≥ 1 after validation (numMachines ≥ 2, localSize ≥ 3).
	exp2Out := floorLog2(p.numMachines - 1)
	exp2In := floorLog2(p.localSize - 2)

	// The outside slot rotates through the local ids with the round.
	outsideID := round % p.localSize

	if outsideID == p.localID {
		// Outside round: the machine distance doubles through powers of
		// two, bounded so it never wraps past the machine ring.
		dist := 1 << (round % (exp2Out + 1))
		sendMachine := (p.machineID + dist) % p.numMachines
		recvMachine := (p.machineID - dist + p.numMachines) % p.numMachines

		return sendMachine*p.localSize + p.localID, recvMachine*p.localSize + p.localID, nil
	}

	// Inner round, forward direction: step over the outside slot by
	// inflating any distance that would reach or pass it.
	distToOut := (outsideID - p.localID + p.localSize) % p.localSize
	forward := 1 << (round % (exp2In + 1))
	if forward >= distToOut {
		forward++
	}
	target := (p.localID + forward) % p.localSize

	// Backward direction: same rule against the reverse distance,
	// adjusted independently of the forward one.
	reverseDistToOut := (p.localID - outsideID + p.localSize) % p.localSize
	backward := 1 << (round % (exp2In + 1))
	if backward >= reverseDistToOut {
		backward++
	}
	source := (p.localID - backward + p.localSize) % p.localSize

	return p.machineID*p.localSize + target, p.machineID*p.localSize + source, nil
}

// floorLog2 returns floor(log2(x)) for x ≥ 1.
func floorLog2(x int) int {
	return bits.Len(uint(x)) - 1
}
