package testutil

import (
	"math"
	"testing"
)

// RequireNearlyEqual fails t if got and want differ by more than eps
// (absolute tolerance). NaN never counts as equal.
func RequireNearlyEqual(t *testing.T, got, want, eps float64) {
	t.Helper()
	diff := math.Abs(got - want)
	if math.IsNaN(diff) || diff > eps {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
	}
}

// RequireNegInf fails t if got is not negative infinity.
func RequireNegInf(t *testing.T, got float64) {
	t.Helper()
	if !math.IsInf(got, -1) {
		t.Fatalf("got %v, want -Inf", got)
	}
}
