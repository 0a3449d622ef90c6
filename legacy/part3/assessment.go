package part3

// AssessmentLevel returns the rating level LR: the base equivalent level
// plus the tonal and impulsive adjustments:
//
//	LR = LAeq,T + K_T + K_I
//
// This is the 1987 revision's own copy of the formula; it is not shared
// with the current Part 1.
func AssessmentLevel(laeq, kt, ki float64) float64 {
	return laeq + kt + ki
}

// ExceedsLimit reports whether a rating level exceeds the noise limit by
// more than the measurement uncertainty:
//
//	LR > limit + U
//
// Strict comparison: a rating level exactly at limit+U still complies.
// The 1987 revision's own copy, not shared with the current Part 1.
func ExceedsLimit(rating, limit, uncertainty float64) bool {
	return rating > limit+uncertainty
}
