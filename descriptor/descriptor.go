package descriptor

import "fmt"

// Descriptor couples a metric with its frequency weighting and a short
// description. Descriptors are comparable: two are equal exactly when
// all three fields are equal, so they can serve as map keys.
type Descriptor struct {
	Metric      Metric
	Weighting   Weighting
	Description string
}

// String renders the descriptor as "LAeq(A) – Equivalent continuous
// sound pressure level". The weighting is omitted when the descriptor
// carries none.
func (d Descriptor) String() string {
	if d.Weighting == WeightingNone {
		return fmt.Sprintf("%s – %s", d.Metric, d.Description)
	}

	return fmt.Sprintf("%s(%s) – %s", d.Metric, d.Weighting, d.Description)
}

// canonical lists the standard descriptors of ISO 1996-1:2003 covered
// by this module.
var canonical = [...]Descriptor{
	{MetricLAeq, WeightingA, "Equivalent continuous sound pressure level"},
	{MetricLAE, WeightingA, "Sound exposure level"},
	{MetricLAmax, WeightingA, "Maximum sound pressure level"},
	{MetricLCpeak, WeightingC, "Peak sound pressure level"},
	{MetricLR, WeightingNone, "Rating level"},
	{MetricLden, WeightingA, "Day-evening-night level"},
	{MetricLnight, WeightingA, "Night-time level"},
}

// Canonical returns the standard descriptors. The slice is a fresh
// copy on every call.
func Canonical() []Descriptor {
	return append([]Descriptor(nil), canonical[:]...)
}
