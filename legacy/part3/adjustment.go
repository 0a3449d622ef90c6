package part3

import "math"

// peakThreshold is the C-weighted peak level in dB at or above which
// noise is rated impulsive regardless of subjective judgement
// (ISO 1996-3:1987).
const peakThreshold = 130.0

// TonalAdjustment returns the tonal adjustment K_T in dB for an audible
// tone, looked up by the tone-to-background level difference ΔL per the
// ISO 1996-3:1987 table:
//
//	ΔL ≥ 15       → 6
//	ΔL in 10..14  → 5
//	ΔL in 5..9    → 2
//	otherwise     → 0
//
// The table rows are defined for whole-decibel differences. A fractional
// ΔL inside the 5..14 span (for example 14.5) matches no row and yields
// 0; TonalAdjustmentContinuous treats the same boundaries as continuous
// thresholds instead.
func TonalAdjustment(deltaL float64) float64 {
	if deltaL >= 15 {
		return 6
	}

	if deltaL != math.Trunc(deltaL) {
		return 0
	}

	switch {
	case deltaL >= 10 && deltaL <= 14:
		return 5
	case deltaL >= 5 && deltaL <= 9:
		return 2
	}

	return 0
}

// TonalAdjustmentContinuous is the continuous-boundary reading of the
// same table, mapping every real ΔL onto the nearest row:
//
//	ΔL ≥ 15 → 6, ΔL ≥ 10 → 5, ΔL ≥ 5 → 2, else 0
//
// Whole-decibel differences yield the same adjustment from both
// functions; fractional ones differ (14.5 yields 5 here, 0 from
// TonalAdjustment).
func TonalAdjustmentContinuous(deltaL float64) float64 {
	switch {
	case deltaL >= 15:
		return 6
	case deltaL >= 10:
		return 5
	case deltaL >= 5:
		return 2
	}

	return 0
}

// ImpulsiveAdjustment returns the impulsive adjustment K_I in dB: 6 when
// the C-weighted peak level reaches 130 dB or the noise is judged highly
// annoying, 0 otherwise.
func ImpulsiveAdjustment(lCPeak float64, highlyAnnoying bool) float64 {
	if lCPeak >= peakThreshold || highlyAnnoying {
		return 6
	}

	return 0
}
