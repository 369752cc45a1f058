// SPDX-License-Identifier: MIT
// Package: bluefog/topology
//
// api.go — the Build orchestrator.
//
// Design contract (strict):
//   - One orchestrator: Build(kind, size, opts...). Resolves the option
//     set into an immutable buildConfig and dispatches to the family
//     builder. All public families are also first-class functions in
//     impl_*.go (single place to read their docs and invariants).
//   - Determinism: same kind/size/options ⇒ byte-identical matrices on
//     every process. This is the property the coordination-free
//     scheduler (package schedule) rests on.
//   - Safety: never panic; return sentinel errors wrapped with the
//     family method tag; no partially built topology escapes.

package topology

import "fmt"

// Build constructs a Topology of the given kind and size, resolving
// family-specific parameters from the functional options. Hierarchical
// kinds interpret size as the world size and require WithLocalSize.
// Any builder error is wrapped with the context "Build(<Kind>): %w" and
// returned immediately.
//
// Complexity: option resolution O(len(opts)); construction O(size²).
func Build(kind Kind, size int, opts ...Option) (*Topology, error) {
	// Resolve deterministic configuration from functional options.
	cfg := newBuildConfig(opts...)

	// Dispatch to the family builder with its resolved parameters.
	var (
		t   *Topology
		err error
	)
	switch kind {
	case KindRing:
		t, err = Ring(size, cfg.style)
	case KindPowerTwoRing:
		t, err = PowerTwoRing(size)
	case KindPower:
		t, err = Power(size, resolveBase(cfg.base, DefaultPowerBase))
	case KindSymmetricPower:
		t, err = SymmetricPower(size, resolveBase(cfg.base, DefaultSymmetricPowerBase))
	case KindMeshGrid2D:
		t, err = MeshGrid2D(size, cfg.nrow, cfg.ncol)
	case KindStar:
		t, err = Star(size, cfg.center)
	case KindFullyConnected:
		t, err = FullyConnected(size)
	case KindInnerOuterRing:
		t, err = InnerOuterRing(size, cfg.localSize)
	case KindInnerOuterExp2:
		t, err = InnerOuterExp2(size, cfg.localSize)
	default:
		return nil, fmt.Errorf("Build: kind=%d: %w", int(kind), ErrUnknownKind)
	}

	// Wrap once at the API boundary; builders already tagged themselves.
	if err != nil {
		return nil, fmt.Errorf("Build(%s): %w", kind, err)
	}

	return t, nil
}

// resolveBase substitutes the family default when no base was configured.
func resolveBase(base, familyDefault int) int {
	if base == 0 {
		return familyDefault
	}

	return base
}
