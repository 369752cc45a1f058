// Package topology: Kind enumerates the builder families understood by
// the Build orchestrator. The values drive dispatch only; every family
// is also reachable through its dedicated constructor function.
package topology

// Kind identifies a topology builder family.
type Kind int

const (
	// KindRing is the ring family (bi/left/right connection styles).
	KindRing Kind = iota

	// KindPowerTwoRing connects each rank at offsets 0, 1, 2, 4, 8, ...
	KindPowerTwoRing

	// KindPower connects each rank at offsets 0 and exact powers of base.
	KindPower

	// KindSymmetricPower mirrors the power pattern around size/2.
	KindSymmetricPower

	// KindMeshGrid2D lays ranks on an nrow×ncol grid with
	// Metropolis–Hastings weights.
	KindMeshGrid2D

	// KindStar connects every leaf to a designated center rank.
	KindStar

	// KindFullyConnected sets every entry to 1/size.
	KindFullyConnected

	// KindInnerOuterRing is the hierarchical inner-complete/outer-ring
	// family over (worldSize, localSize).
	KindInnerOuterRing

	// KindInnerOuterExp2 is the hierarchical inner-complete/outer-exp2
	// family over (worldSize, localSize).
	KindInnerOuterExp2
)

// kindNames maps each Kind to its canonical method tag for diagnostics.
var kindNames = map[Kind]string{
	KindRing:           MethodRing,
	KindPowerTwoRing:   MethodPowerTwoRing,
	KindPower:          MethodPower,
	KindSymmetricPower: MethodSymmetricPower,
	KindMeshGrid2D:     MethodMeshGrid2D,
	KindStar:           MethodStar,
	KindFullyConnected: MethodFullyConnected,
	KindInnerOuterRing: MethodInnerOuterRing,
	KindInnerOuterExp2: MethodInnerOuterExp2,
}

// String returns the canonical builder name for the kind, or "Unknown".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "Unknown"
}
