package part2

import (
	"errors"
	"math"
)

// ISO 1996-2:2017 background-correction boundaries in dB.
const (
	// uncertainDelta is the total-minus-background difference at or below
	// which the measurement is too contaminated to correct.
	uncertainDelta = 3.0

	// negligibleDelta is the difference at or above which the background
	// contribution is negligible and no correction is applied.
	negligibleDelta = 10.0
)

// ErrUncertainMeasurement is returned when the measured total level is too
// close to the background level for a reliable correction.
var ErrUncertainMeasurement = errors.New("part2: measurement uncertain: ΔL ≤ 3.0 dB")

// BackgroundNoiseCorrection returns the correction in dB that removes the
// background-noise contribution from a measured total level:
//
//	K = -10*log10(1 - 10^(-0.1*ΔL)),  ΔL = Ltotal - Lbackground
//
// A difference of 10 dB or more needs no correction and returns 0. A
// difference of 3.0 dB or less (the boundary itself included) returns
// ErrUncertainMeasurement.
func BackgroundNoiseCorrection(total, background float64) (float64, error) {
	delta := total - background

	if delta <= uncertainDelta {
		return 0, ErrUncertainMeasurement
	}

	if delta >= negligibleDelta {
		return 0, nil
	}

	return -10 * math.Log10(1-math.Pow(10, -0.1*delta)), nil
}

// AtmosphericAbsorptionCorrection returns the atmospheric absorption over
// a propagation path as the linear product of the attenuation coefficient
// in dB per metre and the distance in metres. Inputs are not validated;
// zero or negative values pass through arithmetically.
func AtmosphericAbsorptionCorrection(coefficient, distance float64) float64 {
	return coefficient * distance
}
