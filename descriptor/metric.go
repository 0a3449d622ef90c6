package descriptor

// Metric identifies an acoustic quantity from ISO 1996-1:2003.
type Metric int

const (
	// MetricLAeq is the A-weighted equivalent continuous sound
	// pressure level over a stated time interval.
	MetricLAeq Metric = iota

	// MetricLAE is the A-weighted sound exposure level of a single
	// event, normalised to one second.
	MetricLAE

	// MetricLAmax is the maximum A-weighted sound pressure level
	// during a measurement.
	MetricLAmax

	// MetricLCpeak is the C-weighted peak sound pressure level.
	MetricLCpeak

	// MetricLR is the rating level: an equivalent level plus
	// adjustments for sound character.
	MetricLR

	// MetricLden is the day-evening-night level with evening and
	// night penalties applied.
	MetricLden

	// MetricLnight is the equivalent level over the night period.
	MetricLnight
)

// String returns the conventional symbol of the metric.
func (m Metric) String() string {
	switch m {
	case MetricLAeq:
		return "LAeq"
	case MetricLAE:
		return "LAE"
	case MetricLAmax:
		return "LAmax"
	case MetricLCpeak:
		return "LCpeak"
	case MetricLR:
		return "LR"
	case MetricLden:
		return "Lden"
	case MetricLnight:
		return "Lnight"
	default:
		return "Unknown"
	}
}
