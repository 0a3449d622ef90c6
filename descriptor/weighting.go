package descriptor

// Weighting identifies the frequency weighting applied to a level.
type Weighting int

const (
	// WeightingNone marks levels reported without a frequency
	// weighting of their own, such as rating levels that combine
	// already weighted terms.
	WeightingNone Weighting = iota

	// WeightingA is the A-weighting curve from IEC 61672-1, the
	// default weighting for environmental noise descriptors.
	WeightingA

	// WeightingC is the C-weighting curve from IEC 61672-1, used for
	// peak sound pressure levels.
	WeightingC

	// WeightingZ is the flat (zero) frequency response from
	// IEC 61672-1.
	WeightingZ
)

// String returns the canonical name of the weighting.
func (w Weighting) String() string {
	switch w {
	case WeightingNone:
		return "none"
	case WeightingA:
		return "A"
	case WeightingC:
		return "C"
	case WeightingZ:
		return "Z"
	default:
		return "Unknown"
	}
}
