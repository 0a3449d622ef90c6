package descriptor

// Adjustment identifies a sound character that attracts a rating level
// adjustment.
type Adjustment int

const (
	// AdjustmentImpulsiveness marks sound with impulsive character.
	AdjustmentImpulsiveness Adjustment = iota

	// AdjustmentTonality marks sound with audible tonal components.
	AdjustmentTonality

	// AdjustmentLowFrequency marks sound with prominent low-frequency
	// content.
	AdjustmentLowFrequency

	// AdjustmentOther covers source- or situation-specific adjustments
	// outside the named characters.
	AdjustmentOther
)

// String returns the name of the adjustment character.
func (a Adjustment) String() string {
	switch a {
	case AdjustmentImpulsiveness:
		return "impulsiveness"
	case AdjustmentTonality:
		return "tonality"
	case AdjustmentLowFrequency:
		return "low frequency"
	case AdjustmentOther:
		return "other"
	default:
		return "Unknown"
	}
}
