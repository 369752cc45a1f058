// Package schedule derives, for dynamically rotating topologies, the
// conflict-free per-round assignment of which rank sends to which —
// independently on every rank, with zero coordination traffic.
//
// Every schedule here is a pure function of (configuration, rank, round):
// there is no iterator state, no accumulated counter inside the package,
// and recomputing round t twice yields identical output. Because all
// ranks apply the identical deterministic rule over the identical
// statically agreed configuration, global consistency is implicit — a
// rank never needs to ask anyone what they will do this round.
//
// Two scheduler families are provided:
//
//   - Dynamic 1-peer rotation over an arbitrary static Topology
//     (Scheduler / SendRecv): each round every rank activates exactly one
//     outgoing edge, chosen by rotating through its non-self successors
//     in clockwise circular order; the receive set falls out of running
//     the same rule for every other rank.
//
//   - Hierarchical inner/outer rotation over (worldSize, localSize)
//     (InnerOuterRingSendRecv / InnerOuterExp2SendRecv): derived directly
//     from the parameters without materializing a matrix. Each round one
//     local rank per machine is designated to "go outside"; everyone
//     else exchanges within the machine, rotating around the designated
//     slot so the outside rank is never double-booked.
//
// Failure policy: InvalidArgument conditions (nil topology, rank/round
// out of range, indivisible world, isolated rank) and the explicitly
// Unsupported localSize ≤ 2 hierarchical case are rejected fast with
// sentinel errors — never a silently wrong schedule.
//
// Cost: O(size) per dynamic round (with a precomputed Scheduler) and
// O(1) per hierarchical round, cheap enough for a per-round hot path.
package schedule
