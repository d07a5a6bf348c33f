package plan

// Region is the code stored in one cell of the decision map
type Region uint8

const (
	// RegionPath marks a cell the walk may pass through without deciding
	// anything. The traversal also overwrites visited cells with this code.
	RegionPath Region = iota
	// RegionTwilight means "inconclusive with current evidence"; terminal only
	// when the walk runs out of pairs on it.
	RegionTwilight
	// RegionNoDifference declares the treatments indistinguishable
	RegionNoDifference
	// RegionABetter declares treatment A superior
	RegionABetter
	// RegionBBetter declares treatment B superior
	RegionBBetter
	// RegionBoundary is written at the cell where a walk terminates. It never
	// appears in the canonical map.
	RegionBoundary
)

// canonicalRegions are the codes a supplied decision map may contain
var canonicalRegions = map[Region]bool{
	RegionPath:         true,
	RegionTwilight:     true,
	RegionNoDifference: true,
	RegionABetter:      true,
	RegionBBetter:      true,
}

// Canonical reports whether the region code is allowed in a canonical map
func (r Region) Canonical() bool {
	return canonicalRegions[r]
}

func (r Region) String() string {
	switch r {
	case RegionPath:
		return "path"
	case RegionTwilight:
		return "twilight"
	case RegionNoDifference:
		return "no-difference"
	case RegionABetter:
		return "a-better"
	case RegionBBetter:
		return "b-better"
	case RegionBoundary:
		return "boundary"
	default:
		return "unknown"
	}
}
