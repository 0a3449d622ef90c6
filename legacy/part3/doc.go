// Package part3 implements the noise-limit application rules of the
// withdrawn ISO 1996-3:1987 revision (Acoustics — Description and
// measurement of environmental noise — Part 3: Application to noise
// limits).
//
// Unlike the 2016 Part 1 model, the 1987 tonal adjustment is a table
// lookup keyed by the numeric tone-to-background level difference, and
// the impulsive adjustment is a peak-level threshold with a subjective
// override. The package also provides its own copies of the assessment
// level and the compliance evaluation (the same formulas as Part 1, kept
// separate because the revisions are versioned independently) and the
// time-weighted-average conversion that folds per-period levels into one
// equivalent level over a reference period (24 h by default).
//
// The published tonal table is defined at whole-decibel boundaries; see
// TonalAdjustment and TonalAdjustmentContinuous for the two readings of
// fractional differences.
package part3
