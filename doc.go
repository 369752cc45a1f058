// Package bluefog is the topology core of a decentralized, gossip-style
// averaging protocol: it builds the weighted communication graphs the
// protocol averages over, and derives — independently on every rank,
// with zero coordination traffic — the per-round send/receive schedule
// for dynamically rotating topologies.
//
// 🚀 What does it provide?
//
//	A pure, deterministic, side-effect-free library that brings together:
//		• Weight matrices: ring variants, power-of-base rings, symmetric
//		  power graphs, 2D meshes (Metropolis–Hastings), stars,
//		  fully-connected and hierarchical inner/outer graphs
//		• Weight extraction: per-rank self/neighbor averaging weights for
//		  both the sending and the receiving direction
//		• Validation: exact topology equivalence and regularity checks
//		• Dynamic schedules: a deterministic 1-peer rotation every rank
//		  can recompute locally for any round index
//
// ✨ Why this shape?
//
//   - Restartable – every schedule is a pure function of
//     (configuration, rank, round); recomputing a round is free
//   - Coordination-free – identical inputs on every process yield
//     identical topologies and schedules, so no agreement messages exist
//   - Transport-agnostic – no network I/O, no concurrency primitives;
//     callers plug the results into whatever transport they run
//
// Everything is organized under three subpackages:
//
//	matrix/   — dense row-major weight matrix with row/column helpers
//	topology/ — builders, weight extractor & validators over rank graphs
//	schedule/ — dynamic 1-peer and hierarchical inner/outer schedulers
//
// Quick ASCII example (Ring of 4, bi-connection):
//
//	    0───1          W = ⎡1/3 1/3  0  1/3⎤
//	    │   │              ⎢1/3 1/3 1/3  0 ⎥
//	    3───2              ⎢ 0  1/3 1/3 1/3⎥
//	                       ⎣1/3  0  1/3 1/3⎦
//
// Every row sums to 1, so the induced averaging operator preserves the
// mean of the values it mixes.
package bluefog
