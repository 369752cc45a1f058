// SPDX-License-Identifier: MIT
// Package: bluefog/topology
//
// options.go — functional options for the Build orchestrator.
//
// Contract (strict):
//   - Options are functional (type Option func(*buildConfig)).
//   - Option constructors only record values; domain validation happens
//     in the builders, which return sentinel errors (InvalidArgument
//     conditions such as base ≤ 1 are runtime failures, not panics).
//   - No hidden globals; everything flows through buildConfig, resolved
//     once per Build call into an immutable value.

package topology

// Option customizes the behavior of Build by mutating a buildConfig
// instance before construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*buildConfig)

// buildConfig aggregates all family-specific knobs consumed by Build.
// It is passed by VALUE to builders (immutable to callers).
type buildConfig struct {
	// Ring connection style (ConnectBi/ConnectLeft/ConnectRight).
	style ConnectStyle
	// Power-family base; 0 means "use the family default".
	base int
	// Mesh shape; (0,0) means "derive from size".
	nrow, ncol int
	// Star hub rank.
	center int
	// Hierarchical local size; 0 means "not configured".
	localSize int
}

// newBuildConfig constructs a config with deterministic defaults and
// applies all options in order (last-wins semantics).
// Complexity: O(len(opts)) time, O(1) space.
func newBuildConfig(opts ...Option) buildConfig {
	// Start with strict, deterministic defaults.
	cfg := buildConfig{
		style:     ConnectBi,         // bidirectional ring unless overridden
		base:      0,                 // resolved per family (2 or 4)
		nrow:      0,                 // derived mesh shape
		ncol:      0,                 // derived mesh shape
		center:    DefaultCenterRank, // star hub at rank 0
		localSize: 0,                 // hierarchical families require WithLocalSize
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	// Return by value to encourage immutability for callers.
	return cfg
}

// WithConnectStyle selects the ring connection style (KindRing only).
func WithConnectStyle(style ConnectStyle) Option {
	return func(c *buildConfig) {
		c.style = style
	}
}

// WithBase sets the power base (KindPower / KindSymmetricPower). The
// builders reject base ≤ 1 with ErrBadBase.
func WithBase(base int) Option {
	return func(c *buildConfig) {
		c.base = base
	}
}

// WithShape fixes the mesh shape to nrow×ncol (KindMeshGrid2D). The
// builder rejects shapes whose product differs from size with ErrBadShape.
func WithShape(nrow, ncol int) Option {
	return func(c *buildConfig) {
		c.nrow, c.ncol = nrow, ncol
	}
}

// WithCenterRank designates the star hub (KindStar). The builder rejects
// ranks outside [0, size) with ErrBadCenterRank.
func WithCenterRank(rank int) Option {
	return func(c *buildConfig) {
		c.center = rank
	}
}

// WithLocalSize sets the per-machine rank count for the hierarchical
// families (KindInnerOuterRing / KindInnerOuterExp2), which interpret
// size as the world size. The builders reject non-positive values and
// indivisible world sizes.
func WithLocalSize(localSize int) Option {
	return func(c *buildConfig) {
		c.localSize = localSize
	}
}
