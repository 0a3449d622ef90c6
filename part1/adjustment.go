package part1

// TonalAdjustment returns the tonal adjustment K_T in dB under the
// ISO 1996-1:2016 binary audibility model: 0 when no tone is audible,
// 3 dB for an audible tone, 6 dB for a prominent one.
func TonalAdjustment(audible, prominent bool) float64 {
	if !audible {
		return 0
	}

	if prominent {
		return 6
	}

	return 3
}

// ImpulsiveAdjustment returns the impulsive adjustment K_I in dB: 0 when
// no impulses are audible, 3 dB for audible impulses, 6 dB for distinctly
// perceptible ones.
func ImpulsiveAdjustment(audible, distinct bool) float64 {
	if !audible {
		return 0
	}

	if distinct {
		return 6
	}

	return 3
}
