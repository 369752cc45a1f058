// Package topology builds and inspects the weighted directed graphs a
// gossip-averaging protocol communicates over.
//
// A Topology is an immutable value: a size×size non-negative weight
// matrix W over ranks 0..size-1, where W[i][j] ≠ 0 means rank i
// distributes weight W[i][j] toward rank j. Every builder in this
// package produces a row-stochastic matrix — each row sums to exactly 1
// (within matrix.DefaultEpsilon) — so the induced averaging operator
// preserves the mean of the values it mixes.
//
// The package offers the following key components:
//
//   - Builder families (pure functions size → Topology):
//     – Ring:             bi/left/right connected ring, circulant.
//     – PowerTwoRing:     offsets 0 and exact powers of two, circulant.
//     – Power:            offsets 0 and exact powers of base, circulant.
//     – SymmetricPower:   mirrored power connectivity, circulant.
//     – MeshGrid2D:       nrow×ncol mesh with Metropolis–Hastings weights.
//     – Star:             leaves ↔ a designated center rank.
//     – FullyConnected:   every entry 1/size, circulant.
//     – InnerOuterRing:   intra-machine complete + inter-machine ring.
//     – InnerOuterExp2:   intra-machine complete + power-of-two machine hops.
//   - Orchestrator: Build(kind, size, opts...) dispatching on Kind with
//     functional options (WithConnectStyle, WithBase, WithShape,
//     WithCenterRank, WithLocalSize).
//   - Weight extractor: SendWeights/RecvWeights returning a WeightView
//     (self weight + neighbor→weight map) per rank and direction.
//   - Validators: Equivalent (exact matrix equality, label-sensitive)
//     and IsRegular (uniform out-degree).
//
// Guarantees:
//
//   - Determinism: identical inputs yield byte-identical matrices on
//     every process; this is what makes coordination-free scheduling
//     sound (see the schedule package).
//   - Fail-fast validation: builders either return a fully valid
//     Topology or a sentinel error (ErrNonPositiveSize, ErrBadShape,
//     ErrBadBase, ErrIndivisibleWorld, ...) with no partial exposure.
//   - No I/O, no globals, no hidden state: configuration flows through
//     parameters and options only.
package topology
