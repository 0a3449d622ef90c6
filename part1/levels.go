package part1

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// ISO 1996-1:2016 reference quantities.
const (
	// ReferencePressure is the reference sound pressure p0 of 20 µPa, the
	// 0 dB reference for airborne sound.
	ReferencePressure = 20e-6

	// ReferenceDuration is the reference duration t0 of 1 s used by the
	// sound exposure level.
	ReferenceDuration = 1.0
)

// ErrNonPositiveTime is returned when an equivalent-level computation is
// given a zero or negative measurement time.
var ErrNonPositiveTime = errors.New("part1: measurement time must be positive")

// SoundPressureLevel returns the sound pressure level in dB for an RMS
// sound pressure p in pascals:
//
//	Lp = 10*log10(p² / p0²)
//
// The pressure is squared, so p and -p yield identical levels. No
// validation is applied: a zero pressure yields -Inf.
func SoundPressureLevel(p float64) float64 {
	return 10 * math.Log10((p*p)/(ReferencePressure*ReferencePressure))
}

// SoundExposureLevel returns the sound exposure level in dB for an
// A-weighted sound pressure pA in pascals:
//
//	LAE = 10*log10((1/t0) * pA²/p0²)
//
// with the reference duration t0 = 1 s. This is the single-sample form;
// integrating a pressure history over time is the caller's concern.
func SoundExposureLevel(pA float64) float64 {
	return 10 * math.Log10((pA*pA)/(ReferenceDuration*ReferencePressure*ReferencePressure))
}

// EquivalentContinuousSoundLevel returns LAeq,T, the equivalent continuous
// sound level of the given instantaneous levels over the measurement time
// T in seconds:
//
//	LAeq,T = 10*log10( Σ 10^(Li/10) / T )
//
// Levels are summed energetically (as linear powers), not averaged as
// decibel values. A non-positive measurement time returns
// ErrNonPositiveTime before anything else is inspected. An empty level
// sequence is not an error and yields -Inf.
func EquivalentContinuousSoundLevel(levels []float64, measurementTime float64) (float64, error) {
	if measurementTime <= 0 {
		return 0, ErrNonPositiveTime
	}

	if len(levels) == 0 {
		return math.Inf(-1), nil
	}

	powers := make([]float64, len(levels))
	for i, l := range levels {
		powers[i] = math.Pow(10, l/10)
	}

	return 10 * math.Log10(vecmath.Sum(powers)/measurementTime), nil
}

// PeakSoundPressureLevel returns the peak sound pressure level in dB for
// a maximum C-weighted sound pressure pCMax in pascals:
//
//	LCpeak = 20*log10(pCMax / p0)
func PeakSoundPressureLevel(pCMax float64) float64 {
	return 20 * math.Log10(pCMax/ReferencePressure)
}
