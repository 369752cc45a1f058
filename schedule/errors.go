// SPDX-License-Identifier: MIT
// Package: bluefog/schedule
//
// errors.go — sentinel errors for the schedule package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed; callers
//     branch with errors.Is.
//   - InvalidArgument family: ErrNilTopology, ErrRankOutOfRange,
//     ErrNegativeRound, ErrNoActiveNeighbors, ErrNonPositiveSize,
//     ErrIndivisibleWorld, ErrTooFewMachines.
//   - Unsupported family: ErrUnsupportedLocalSize — a known unhandled
//     configuration surfaced explicitly instead of a silently biased
//     schedule.
//   - All failures are synchronous at call time; there is no transient
//     failure mode and callers must treat any failure as fatal to that
//     configuration choice, not retryable.

package schedule

import "errors"

// ErrNilTopology indicates an absent static topology.
var ErrNilTopology = errors.New("schedule: nil topology")

// ErrRankOutOfRange indicates a rank argument outside [0, size).
var ErrRankOutOfRange = errors.New("schedule: rank out of range")

// ErrNegativeRound indicates a negative round index; rounds count from 0.
var ErrNegativeRound = errors.New("schedule: negative round index")

// ErrNoActiveNeighbors indicates a rank with no outgoing edge besides its
// self-loop: a 1-peer rotation has nothing to rotate through.
var ErrNoActiveNeighbors = errors.New("schedule: rank has no non-self out-neighbors")

// ErrNonPositiveSize indicates a non-positive world or local size.
var ErrNonPositiveSize = errors.New("schedule: size must be positive")

// ErrIndivisibleWorld indicates hierarchical parameters where world size
// is not a multiple of local size.
var ErrIndivisibleWorld = errors.New("schedule: world size not divisible by local size")

// ErrTooFewMachines indicates an exp2 hierarchical schedule over fewer
// than two machines, which has no outer distance to rotate through.
var ErrTooFewMachines = errors.New("schedule: need at least two machines")

// ErrUnsupportedLocalSize indicates hierarchical dynamic scheduling with
// localSize ≤ 2: there is no room to both exchange locally and reserve
// the outside slot. Surfaced explicitly (Unsupported), never silently
// mis-scheduled.
var ErrUnsupportedLocalSize = errors.New("schedule: local size must exceed 2")
