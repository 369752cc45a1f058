// Package topology defines shared constants used by the builders,
// ensuring consistent defaults and error context across all families.
package topology

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRing is the canonical name for the Ring builder.
	MethodRing = "Ring"
	// MethodPowerTwoRing is the canonical name for the PowerTwoRing builder.
	MethodPowerTwoRing = "PowerTwoRing"
	// MethodPower is the canonical name for the Power builder.
	MethodPower = "Power"
	// MethodSymmetricPower is the canonical name for the SymmetricPower builder.
	MethodSymmetricPower = "SymmetricPower"
	// MethodMeshGrid2D is the canonical name for the MeshGrid2D builder.
	MethodMeshGrid2D = "MeshGrid2D"
	// MethodStar is the canonical name for the Star builder.
	MethodStar = "Star"
	// MethodFullyConnected is the canonical name for the FullyConnected builder.
	MethodFullyConnected = "FullyConnected"
	// MethodInnerOuterRing is the canonical name for the InnerOuterRing builder.
	MethodInnerOuterRing = "InnerOuterRing"
	// MethodInnerOuterExp2 is the canonical name for the InnerOuterExp2 builder.
	MethodInnerOuterExp2 = "InnerOuterExp2"
)

//-----------------------------------------------------------------------------
// Builder Defaults
//-----------------------------------------------------------------------------

// DefaultPowerBase is the base used by the Power family when none is
// configured: offsets that are exact powers of two.
const DefaultPowerBase = 2

// DefaultSymmetricPowerBase is the base used by the SymmetricPower family
// when none is configured. The mirrored pattern stays sparse at base 4.
const DefaultSymmetricPowerBase = 4

// DefaultCenterRank is the hub rank used by the Star family when none is
// configured.
const DefaultCenterRank = 0

//-----------------------------------------------------------------------------
// Small-size ring constants
//-----------------------------------------------------------------------------

// minRingSplit is the smallest ring size with distinct self/left/right
// positions; below it the ring degenerates to fixed matrices.
const minRingSplit = 3
