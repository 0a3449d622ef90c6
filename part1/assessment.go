package part1

// AssessmentLevel returns the rating level LR: the base equivalent level
// plus the tonal and impulsive adjustments:
//
//	LR = LAeq,T + K_T + K_I
//
// Adjustments may be negative; no validation is applied.
func AssessmentLevel(laeq, kt, ki float64) float64 {
	return laeq + kt + ki
}

// ExceedsLimit reports whether a rating level exceeds the noise limit by
// more than the measurement uncertainty:
//
//	LR > limit + U
//
// The comparison is strict: a rating level exactly at limit+U still
// complies.
func ExceedsLimit(rating, limit, uncertainty float64) bool {
	return rating > limit+uncertainty
}
