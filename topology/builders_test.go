// Package topology_test contains functional tests for all topology
// builders, verifying stochasticity, circulant structure, exact weight
// placement and the fail-fast validation contract.
package topology_test

import (
	"testing"

	"github.com/Amuwa/bluefog/matrix"
	"github.com/Amuwa/bluefog/topology"
	"github.com/stretchr/testify/require"
)

// weightAt reads W[i][j] or fails the test.
func weightAt(t *testing.T, topo *topology.Topology, i, j int) float64 {
	t.Helper()

	v, err := topo.Weight(i, j)
	require.NoError(t, err)

	return v
}

// requireRowStochastic asserts that every row of the topology sums to 1
// within matrix.DefaultEpsilon.
func requireRowStochastic(t *testing.T, topo *topology.Topology) {
	t.Helper()

	m := topo.Matrix()
	for i := 0; i < topo.Size(); i++ {
		sum, err := m.RowSum(i)
		require.NoError(t, err)
		require.InDelta(t, 1.0, sum, matrix.DefaultEpsilon, "row %d", i)
	}
}

// requireCirculant asserts that row i equals row 0 rotated right by i.
func requireCirculant(t *testing.T, topo *topology.Topology) {
	t.Helper()

	n := topo.Size()
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			require.Equal(t, weightAt(t, topo, 0, k), weightAt(t, topo, i, (i+k)%n),
				"row %d offset %d", i, k)
		}
	}
}

// TestBuildersRowStochastic verifies the row-sum-1 invariant for every
// builder family across a spread of sizes.
func TestBuildersRowStochastic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func() (*topology.Topology, error)
	}{
		{"Ring(1,bi)", func() (*topology.Topology, error) { return topology.Ring(1, topology.ConnectBi) }},
		{"Ring(2,left)", func() (*topology.Topology, error) { return topology.Ring(2, topology.ConnectLeft) }},
		{"Ring(5,bi)", func() (*topology.Topology, error) { return topology.Ring(5, topology.ConnectBi) }},
		{"Ring(5,left)", func() (*topology.Topology, error) { return topology.Ring(5, topology.ConnectLeft) }},
		{"Ring(5,right)", func() (*topology.Topology, error) { return topology.Ring(5, topology.ConnectRight) }},
		{"PowerTwoRing(1)", func() (*topology.Topology, error) { return topology.PowerTwoRing(1) }},
		{"PowerTwoRing(10)", func() (*topology.Topology, error) { return topology.PowerTwoRing(10) }},
		{"Power(12,3)", func() (*topology.Topology, error) { return topology.Power(12, 3) }},
		{"SymmetricPower(12,4)", func() (*topology.Topology, error) { return topology.SymmetricPower(12, 4) }},
		{"MeshGrid2D(1)", func() (*topology.Topology, error) { return topology.MeshGrid2D(1, 0, 0) }},
		{"MeshGrid2D(6)", func() (*topology.Topology, error) { return topology.MeshGrid2D(6, 0, 0) }},
		{"MeshGrid2D(5 prime)", func() (*topology.Topology, error) { return topology.MeshGrid2D(5, 0, 0) }},
		{"MeshGrid2D(24,4x6)", func() (*topology.Topology, error) { return topology.MeshGrid2D(24, 4, 6) }},
		{"Star(5,0)", func() (*topology.Topology, error) { return topology.Star(5, 0) }},
		{"Star(7,3)", func() (*topology.Topology, error) { return topology.Star(7, 3) }},
		{"FullyConnected(6)", func() (*topology.Topology, error) { return topology.FullyConnected(6) }},
		{"InnerOuterRing(12,3)", func() (*topology.Topology, error) { return topology.InnerOuterRing(12, 3) }},
		{"InnerOuterExp2(12,3)", func() (*topology.Topology, error) { return topology.InnerOuterExp2(12, 3) }},
		{"InnerOuterExp2(24,4)", func() (*topology.Topology, error) { return topology.InnerOuterExp2(24, 4) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			topo, err := tc.build()
			require.NoError(t, err)
			requireRowStochastic(t, topo)
		})
	}
}

// TestCirculantFamilies verifies the rotation structure of the circulant
// builders: row i equals row 0 rotated right by i positions.
func TestCirculantFamilies(t *testing.T) {
	t.Parallel()

	ring, err := topology.Ring(7, topology.ConnectBi)
	require.NoError(t, err)
	requireCirculant(t, ring)

	p2, err := topology.PowerTwoRing(10)
	require.NoError(t, err)
	requireCirculant(t, p2)

	sym, err := topology.SymmetricPower(12, 4)
	require.NoError(t, err)
	requireCirculant(t, sym)

	full, err := topology.FullyConnected(5)
	require.NoError(t, err)
	requireCirculant(t, full)
}

// TestRingWeights pins the exact ring matrices for the degenerate and
// three-way-split cases.
func TestRingWeights(t *testing.T) {
	t.Parallel()

	// size 1: a single rank keeps all weight on itself.
	one, err := topology.Ring(1, topology.ConnectRight)
	require.NoError(t, err)
	require.Equal(t, 1.0, weightAt(t, one, 0, 0))

	// size 2: mutual 0.5 regardless of style.
	two, err := topology.Ring(2, topology.ConnectBi)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			require.Equal(t, 0.5, weightAt(t, two, i, j))
		}
	}

	// size 4, bi-connection: self/left/right each 1/3, everything else 0.
	third := 1.0 / 3.0
	bi, err := topology.Ring(4, topology.ConnectBi)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		require.Equal(t, third, weightAt(t, bi, i, i))         // self
		require.Equal(t, third, weightAt(t, bi, i, (i+1)%4))   // right
		require.Equal(t, third, weightAt(t, bi, i, (i+3)%4))   // left
		require.Equal(t, 0.0, weightAt(t, bi, i, (i+2)%4))     // opposite rank
	}

	// size 5, left-connection: self 0.5, left neighbor 0.5.
	left, err := topology.Ring(5, topology.ConnectLeft)
	require.NoError(t, err)
	require.Equal(t, 0.5, weightAt(t, left, 0, 0))
	require.Equal(t, 0.5, weightAt(t, left, 0, 4))
	require.Equal(t, 0.0, weightAt(t, left, 0, 1))

	// size 5, right-connection: self 0.5, right neighbor 0.5.
	right, err := topology.Ring(5, topology.ConnectRight)
	require.NoError(t, err)
	require.Equal(t, 0.5, weightAt(t, right, 0, 0))
	require.Equal(t, 0.5, weightAt(t, right, 0, 1))
	require.Equal(t, 0.0, weightAt(t, right, 0, 4))
}

// TestPowerTwoRingOffsets verifies which offsets are connected and their
// uniform weight for PowerTwoRing(10): offsets 0, 1, 2, 4, 8.
func TestPowerTwoRingOffsets(t *testing.T) {
	t.Parallel()

	topo, err := topology.PowerTwoRing(10)
	require.NoError(t, err)

	connected := map[int]bool{0: true, 1: true, 2: true, 4: true, 8: true}
	for k := 0; k < 10; k++ {
		if connected[k] {
			require.Equal(t, 0.2, weightAt(t, topo, 0, k), "offset %d", k)
		} else {
			require.Equal(t, 0.0, weightAt(t, topo, 0, k), "offset %d", k)
		}
	}
}

// TestSymmetricPowerFolding verifies the mirrored offset pattern: for
// size 12, base 4, offsets fold around 6, connecting 0,1,4,8(=fold 4),11(=fold 1).
func TestSymmetricPowerFolding(t *testing.T) {
	t.Parallel()

	topo, err := topology.SymmetricPower(12, 4)
	require.NoError(t, err)

	// Folded indices: k ≤ 6 stays k, else 12−k. Powers of 4 are 1 and 4.
	connected := map[int]bool{0: true, 1: true, 4: true, 8: true, 11: true}
	weight := 1.0 / 5.0
	for k := 0; k < 12; k++ {
		if connected[k] {
			require.Equal(t, weight, weightAt(t, topo, 0, k), "offset %d", k)
		} else {
			require.Equal(t, 0.0, weightAt(t, topo, 0, k), "offset %d", k)
		}
	}
}

// TestStarWeights pins the Star(5,0) matrix: the center spreads 1/5 over
// everyone (itself included), each leaf keeps 4/5 and sends 1/5 back.
func TestStarWeights(t *testing.T) {
	t.Parallel()

	topo, err := topology.Star(5, 0)
	require.NoError(t, err)

	for j := 0; j < 5; j++ {
		require.Equal(t, 0.2, weightAt(t, topo, 0, j), "center row %d", j) // center row uniform
	}
	for i := 1; i < 5; i++ {
		require.Equal(t, 0.8, weightAt(t, topo, i, i), "leaf %d self", i) // leaf self-weight
		require.Equal(t, 0.2, weightAt(t, topo, i, 0), "leaf %d spoke", i) // leaf→center spoke
		for j := 1; j < 5; j++ {
			if j != i {
				require.Equal(t, 0.0, weightAt(t, topo, i, j)) // no leaf↔leaf edges
			}
		}
	}

	// A non-zero center rank shifts the hub without changing the shape.
	offCenter, err := topology.Star(4, 2)
	require.NoError(t, err)
	require.Equal(t, 0.25, weightAt(t, offCenter, 2, 2))
	require.Equal(t, 0.75, weightAt(t, offCenter, 0, 0))
	requireRowStochastic(t, offCenter)
}

// TestMeshGrid2DWeights verifies the Metropolis–Hastings weights of the
// 2×3 mesh and the shape fallback for prime sizes.
func TestMeshGrid2DWeights(t *testing.T) {
	t.Parallel()

	// 2×3 grid, row-major:   0 1 2
	//                        3 4 5
	// Self-inclusive degrees: corners 3, edge middles 4.
	topo, err := topology.MeshGrid2D(6, 0, 0)
	require.NoError(t, err)

	third := 1.0 / 3.0
	require.Equal(t, 0.25, weightAt(t, topo, 0, 1))  // deg(0)=3, deg(1)=4 → 1/4
	require.Equal(t, 0.25, weightAt(t, topo, 1, 0))  // symmetric
	require.Equal(t, third, weightAt(t, topo, 0, 3)) // deg(0)=deg(3)=3 → 1/3
	require.Equal(t, 0.0, weightAt(t, topo, 0, 4))   // diagonal cell: not adjacent
	require.Equal(t, 0.0, weightAt(t, topo, 2, 3))   // no wraparound between grid rows
	require.InDelta(t, 1.0-0.25-third, weightAt(t, topo, 0, 0), matrix.DefaultEpsilon)
	requireRowStochastic(t, topo)

	// Prime size degrades to a 1×size line.
	line, err := topology.MeshGrid2D(5, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, weightAt(t, line, 0, 2)) // only immediate line neighbors connect
	require.NotZero(t, weightAt(t, line, 0, 1))
	require.NotZero(t, weightAt(t, line, 4, 3))
	requireRowStochastic(t, line)
}

// TestInnerOuterRingWeights verifies the normalized inner/outer ring
// rows: a machine of 3 plus one outer edge → four entries of 0.25.
func TestInnerOuterRingWeights(t *testing.T) {
	t.Parallel()

	topo, err := topology.InnerOuterRing(6, 3)
	require.NoError(t, err)

	// Rank 0 (machine 0, local 0): inner {0,1,2} plus rank 3 on machine 1.
	for _, j := range []int{0, 1, 2, 3} {
		require.Equal(t, 0.25, weightAt(t, topo, 0, j), "rank 0 → %d", j)
	}
	require.Equal(t, 0.0, weightAt(t, topo, 0, 4)) // mismatched local id
	require.Equal(t, 0.0, weightAt(t, topo, 0, 5)) // mismatched local id

	// Rank 3 wraps the machine ring back to machine 0.
	require.Equal(t, 0.25, weightAt(t, topo, 3, 0))
	requireRowStochastic(t, topo)
}

// TestInnerOuterExp2Weights verifies the power-of-two outer distances:
// with 4 machines, distances 1 and 2 connect, distance 3 does not.
func TestInnerOuterExp2Weights(t *testing.T) {
	t.Parallel()

	topo, err := topology.InnerOuterExp2(12, 3)
	require.NoError(t, err)

	// Rank 0 connects inner {0,1,2}, plus local-0 on machines 1 and 2.
	weight := 0.2 // five connections, normalized
	for _, j := range []int{0, 1, 2, 3, 6} {
		require.Equal(t, weight, weightAt(t, topo, 0, j), "rank 0 → %d", j)
	}
	require.Equal(t, 0.0, weightAt(t, topo, 0, 9)) // machine distance 3: not a power of two
	require.Equal(t, 0.0, weightAt(t, topo, 0, 4)) // mismatched local id
	requireRowStochastic(t, topo)
}

// TestBuilderValidation exercises the fail-fast error contract of every
// family.
func TestBuilderValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		build   func() (*topology.Topology, error)
		wantErr error
	}{
		{"Ring size 0", func() (*topology.Topology, error) { return topology.Ring(0, topology.ConnectBi) }, topology.ErrNonPositiveSize},
		{"Ring bad style", func() (*topology.Topology, error) { return topology.Ring(4, topology.ConnectStyle(3)) }, topology.ErrBadConnectStyle},
		{"Ring negative style", func() (*topology.Topology, error) { return topology.Ring(4, topology.ConnectStyle(-1)) }, topology.ErrBadConnectStyle},
		{"PowerTwoRing size 0", func() (*topology.Topology, error) { return topology.PowerTwoRing(0) }, topology.ErrNonPositiveSize},
		{"Power base 1", func() (*topology.Topology, error) { return topology.Power(8, 1) }, topology.ErrBadBase},
		{"Power base 0", func() (*topology.Topology, error) { return topology.Power(8, 0) }, topology.ErrBadBase},
		{"SymmetricPower base 1", func() (*topology.Topology, error) { return topology.SymmetricPower(8, 1) }, topology.ErrBadBase},
		{"Mesh size 0", func() (*topology.Topology, error) { return topology.MeshGrid2D(0, 0, 0) }, topology.ErrNonPositiveSize},
		{"Mesh shape mismatch", func() (*topology.Topology, error) { return topology.MeshGrid2D(6, 2, 2) }, topology.ErrBadShape},
		{"Mesh negative shape", func() (*topology.Topology, error) { return topology.MeshGrid2D(6, -2, -3) }, topology.ErrBadShape},
		{"Star size 0", func() (*topology.Topology, error) { return topology.Star(0, 0) }, topology.ErrNonPositiveSize},
		{"Star center too big", func() (*topology.Topology, error) { return topology.Star(4, 4) }, topology.ErrBadCenterRank},
		{"Star center negative", func() (*topology.Topology, error) { return topology.Star(4, -1) }, topology.ErrBadCenterRank},
		{"FullyConnected size 0", func() (*topology.Topology, error) { return topology.FullyConnected(0) }, topology.ErrNonPositiveSize},
		{"InnerOuterRing indivisible", func() (*topology.Topology, error) { return topology.InnerOuterRing(10, 3) }, topology.ErrIndivisibleWorld},
		{"InnerOuterRing local 0", func() (*topology.Topology, error) { return topology.InnerOuterRing(6, 0) }, topology.ErrNonPositiveSize},
		{"InnerOuterExp2 indivisible", func() (*topology.Topology, error) { return topology.InnerOuterExp2(10, 4) }, topology.ErrIndivisibleWorld},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			topo, err := tc.build()
			require.ErrorIs(t, err, tc.wantErr)
			require.Nil(t, topo) // no partial topology escapes a failed build
		})
	}
}
