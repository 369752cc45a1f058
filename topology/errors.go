// SPDX-License-Identifier: MIT
// Package: bluefog/topology
//
// errors.go — sentinel errors for the topology package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Implementations attach context using `%w` and a method tag.
//   - Builders MUST NOT panic at runtime; all failures are synchronous
//     and leave no partially built topology behind.

package topology

import "errors"

// ErrNonPositiveSize indicates a size (or world/local size) parameter that
// is zero or negative. Every topology needs at least one rank.
// Classification: InvalidArgument.
var ErrNonPositiveSize = errors.New("topology: size must be positive")

// ErrBadConnectStyle indicates a ring connection style outside the
// supported set (ConnectBi, ConnectLeft, ConnectRight).
// Classification: InvalidArgument.
var ErrBadConnectStyle = errors.New("topology: unsupported connect style")

// ErrBadShape indicates an explicit mesh shape whose nrow*ncol does not
// match size, or a non-positive dimension.
// Classification: InvalidArgument.
var ErrBadShape = errors.New("topology: shape does not match size")

// ErrBadBase indicates a power-graph base that is not an integer > 1.
// Classification: InvalidArgument.
var ErrBadBase = errors.New("topology: base must be an integer > 1")

// ErrBadCenterRank indicates a star center outside [0, size).
// Classification: InvalidArgument.
var ErrBadCenterRank = errors.New("topology: center rank out of range")

// ErrIndivisibleWorld indicates hierarchical parameters where world size
// is not a multiple of local size (heterogeneous machines unsupported).
// Classification: InvalidArgument.
var ErrIndivisibleWorld = errors.New("topology: world size not divisible by local size")

// ErrRankOutOfRange indicates a rank argument outside [0, size).
// Classification: InvalidArgument.
var ErrRankOutOfRange = errors.New("topology: rank out of range")

// ErrUnknownKind indicates a Kind value the Build orchestrator does not
// recognize.
// Classification: InvalidArgument.
var ErrUnknownKind = errors.New("topology: unknown topology kind")

// ErrNegativeWeight indicates a caller-provided weight matrix carrying a
// negative entry; averaging weights are non-negative by definition.
// Classification: InvalidArgument.
var ErrNegativeWeight = errors.New("topology: negative weight")
