// Package schedule_test contains functional tests for the dynamic
// 1-peer scheduler: rotation order, send/recv symmetry, restartability
// and the fail-fast validation contract.
package schedule_test

import (
	"testing"

	"github.com/Amuwa/bluefog/matrix"
	"github.com/Amuwa/bluefog/schedule"
	"github.com/Amuwa/bluefog/topology"
	"github.com/stretchr/testify/require"
)

// TestRotationVisitsNeighborsClockwise verifies that d consecutive
// rounds visit every non-self out-neighbor exactly once, in increasing
// clockwise order, before repeating.
func TestRotationVisitsNeighborsClockwise(t *testing.T) {
	t.Parallel()

	topo, err := topology.PowerTwoRing(10)
	require.NoError(t, err)
	s, err := schedule.New(topo)
	require.NoError(t, err)

	// Rank 0 of PowerTwoRing(10) reaches offsets 1, 2, 4, 8 — already in
	// clockwise order from rank 0.
	want := []int{1, 2, 4, 8}
	for round := 0; round < len(want); round++ {
		send, _, errSR := s.SendRecv(0, round)
		require.NoError(t, errSR)
		require.Equal(t, []int{want[round]}, send, "round %d", round)
	}

	// The rotation wraps: round d revisits the first neighbor.
	send, _, err := s.SendRecv(0, len(want))
	require.NoError(t, err)
	require.Equal(t, []int{1}, send)

	// A rank past the wrap point sorts by clock position, not rank value:
	// rank 9 reaches 0, 1, 3, 7 in that clockwise order.
	want9 := []int{0, 1, 3, 7}
	for round := 0; round < len(want9); round++ {
		send, _, errSR := s.SendRecv(9, round)
		require.NoError(t, errSR)
		require.Equal(t, []int{want9[round]}, send, "round %d", round)
	}
}

// TestRecvRanksPowerTwoRing pins the receive side of rank 0 over the
// first rounds of PowerTwoRing(10).
func TestRecvRanksPowerTwoRing(t *testing.T) {
	t.Parallel()

	topo, err := topology.PowerTwoRing(10)
	require.NoError(t, err)
	s, err := schedule.New(topo)
	require.NoError(t, err)

	// Each sender rotates its own neighbor list; rank 0 hears from the
	// rank whose rotation lands on it that round.
	wantRecv := [][]int{{9}, {8}, {6}, {2}}
	for round, want := range wantRecv {
		_, recv, errSR := s.SendRecv(0, round)
		require.NoError(t, errSR)
		require.Equal(t, want, recv, "round %d", round)
	}
}

// TestUnidirectionalRing verifies the degenerate rotation of a
// right-connected ring: everyone always sends forward, hears from behind.
func TestUnidirectionalRing(t *testing.T) {
	t.Parallel()

	topo, err := topology.Ring(6, topology.ConnectRight)
	require.NoError(t, err)
	s, err := schedule.New(topo)
	require.NoError(t, err)

	for round := 0; round < 4; round++ {
		for rank := 0; rank < 6; rank++ {
			send, recv, errSR := s.SendRecv(rank, round)
			require.NoError(t, errSR)
			require.Equal(t, []int{(rank + 1) % 6}, send)
			require.Equal(t, []int{(rank + 5) % 6}, recv)
		}
	}
}

// TestSendRecvSymmetry verifies the core consistency property: o appears
// in recv(r, t) exactly when send(o, t) == r, across whole topologies
// and many rounds — the reason no coordination message is ever needed.
func TestSendRecvSymmetry(t *testing.T) {
	t.Parallel()

	builds := []struct {
		name string
		topo func() (*topology.Topology, error)
	}{
		{"PowerTwoRing(10)", func() (*topology.Topology, error) { return topology.PowerTwoRing(10) }},
		{"Ring(7,bi)", func() (*topology.Topology, error) { return topology.Ring(7, topology.ConnectBi) }},
		{"SymmetricPower(12,4)", func() (*topology.Topology, error) { return topology.SymmetricPower(12, 4) }},
		{"Star(5,2)", func() (*topology.Topology, error) { return topology.Star(5, 2) }},
		{"MeshGrid2D(6)", func() (*topology.Topology, error) { return topology.MeshGrid2D(6, 0, 0) }},
	}

	for _, tc := range builds {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			topo, err := tc.topo()
			require.NoError(t, err)
			s, err := schedule.New(topo)
			require.NoError(t, err)

			size := topo.Size()
			for round := 0; round < 10; round++ {
				// Collect every rank's send target for this round.
				sendTo := make([]int, size)
				for rank := 0; rank < size; rank++ {
					send, _, errSR := s.SendRecv(rank, round)
					require.NoError(t, errSR)
					require.Len(t, send, 1)
					require.NotEqual(t, rank, send[0], "self-loop must never activate")
					sendTo[rank] = send[0]
				}

				// recv(r) must be exactly {o : sendTo[o] == r}.
				for rank := 0; rank < size; rank++ {
					_, recv, errSR := s.SendRecv(rank, round)
					require.NoError(t, errSR)
					want := make([]int, 0, size)
					for o := 0; o < size; o++ {
						if o != rank && sendTo[o] == rank {
							want = append(want, o)
						}
					}
					require.Equal(t, want, recv, "round %d rank %d", round, rank)
				}
			}
		})
	}
}

// TestScheduleRestartable verifies that recomputing a round yields
// identical output — the schedule is a pure function of (rank, round).
func TestScheduleRestartable(t *testing.T) {
	t.Parallel()

	topo, err := topology.PowerTwoRing(10)
	require.NoError(t, err)
	s, err := schedule.New(topo)
	require.NoError(t, err)

	sendA, recvA, err := s.SendRecv(3, 7)
	require.NoError(t, err)
	sendB, recvB, err := s.SendRecv(3, 7)
	require.NoError(t, err)
	require.Equal(t, sendA, sendB)
	require.Equal(t, recvA, recvB)

	// A fresh Scheduler over an equivalent topology agrees as well.
	topo2, err := topology.PowerTwoRing(10)
	require.NoError(t, err)
	s2, err := schedule.New(topo2)
	require.NoError(t, err)
	sendC, recvC, err := s2.SendRecv(3, 7)
	require.NoError(t, err)
	require.Equal(t, sendA, sendC)
	require.Equal(t, recvA, recvC)
}

// TestOneShotSendRecv verifies the convenience form matches the cached
// Scheduler.
func TestOneShotSendRecv(t *testing.T) {
	t.Parallel()

	topo, err := topology.Ring(8, topology.ConnectBi)
	require.NoError(t, err)
	s, err := schedule.New(topo)
	require.NoError(t, err)

	for round := 0; round < 4; round++ {
		sendWant, recvWant, errSR := s.SendRecv(5, round)
		require.NoError(t, errSR)
		send, recv, errOne := schedule.SendRecv(topo, 5, round)
		require.NoError(t, errOne)
		require.Equal(t, sendWant, send)
		require.Equal(t, recvWant, recv)
	}
}

// TestSchedulerValidation exercises the fail-fast contract: nil or
// degenerate topologies, rank bounds and negative rounds.
func TestSchedulerValidation(t *testing.T) {
	t.Parallel()

	_, err := schedule.New(nil)
	require.ErrorIs(t, err, schedule.ErrNilTopology)

	// A lone rank has only its self-loop: nothing to rotate through.
	lone, err := topology.Ring(1, topology.ConnectBi)
	require.NoError(t, err)
	_, err = schedule.New(lone)
	require.ErrorIs(t, err, schedule.ErrNoActiveNeighbors)

	// An identity matrix isolates every rank the same way.
	ident, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, ident.Set(i, i, 1.0))
	}
	isolated, err := topology.FromMatrix(ident)
	require.NoError(t, err)
	_, err = schedule.New(isolated)
	require.ErrorIs(t, err, schedule.ErrNoActiveNeighbors)

	// Argument bounds on a valid scheduler.
	topo, err := topology.Ring(4, topology.ConnectBi)
	require.NoError(t, err)
	s, err := schedule.New(topo)
	require.NoError(t, err)
	require.Equal(t, 4, s.Size())

	_, _, err = s.SendRecv(-1, 0)
	require.ErrorIs(t, err, schedule.ErrRankOutOfRange)
	_, _, err = s.SendRecv(4, 0)
	require.ErrorIs(t, err, schedule.ErrRankOutOfRange)
	_, _, err = s.SendRecv(0, -1)
	require.ErrorIs(t, err, schedule.ErrNegativeRound)
}
