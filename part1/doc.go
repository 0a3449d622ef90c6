// Package part1 implements the basic quantities and assessment procedures
// of ISO 1996-1:2016 (Acoustics — Description, measurement and assessment
// of environmental noise — Part 1).
//
// The package covers the level formulas of the current Part 1 revision:
//
//   - Sound pressure level and peak sound pressure level relative to the
//     20 µPa reference pressure.
//   - Sound exposure level over the 1 s reference duration.
//   - Equivalent continuous sound level LAeq,T as the energetic (power)
//     average of instantaneous levels over a measurement time.
//   - Day-evening-night level Lden with configurable period durations and
//     evening/night penalties.
//   - Tonal and impulsive rating adjustments in the 2016 binary
//     audibility/prominence model.
//   - The rating (assessment) level and the compliance evaluation against
//     a noise limit.
//
// All functions are pure and safe for concurrent use. Negative infinity is
// a regular result, not an error: it means "no measurable signal" (for
// example LAeq of an empty level sequence, or the level of a zero
// pressure). The only domain error is a non-positive measurement time.
//
// The reference constants are owned by this package and are not shared
// with the withdrawn 2003 revision in legacy/part1; the standards are
// versioned independently even where values coincide.
package part1
