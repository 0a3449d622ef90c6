package testutil

import "math/rand"

// ConstantLevels returns n copies of the same level in dB.
func ConstantLevels(level float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = level
	}
	return out
}

// DeterministicLevels returns n levels drawn uniformly from [lo, hi)
// with a fixed seed for reproducibility.
func DeterministicLevels(seed int64, lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = lo + rng.Float64()*(hi-lo)
	}
	return out
}
