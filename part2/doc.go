// Package part2 implements the measurement corrections and the combined
// uncertainty of ISO 1996-2:2017 (Acoustics — Description, measurement
// and assessment of environmental noise — Part 2: Determination of sound
// pressure levels).
//
// Three operations are provided:
//
//   - BackgroundNoiseCorrection removes the background contribution from
//     a measured total level, refusing differences of 3 dB or less as too
//     uncertain and treating differences of 10 dB or more as negligible.
//   - AtmosphericAbsorptionCorrection is the linear α·d absorption term.
//   - MeasurementUncertainty combines independent uncertainty components
//     as the root of the sum of their squares.
//
// The correction boundaries are owned by this package. The withdrawn 2007
// revision in legacy/part2 carries its own copy even though the values
// currently coincide; the revisions are versioned independently.
package part2
