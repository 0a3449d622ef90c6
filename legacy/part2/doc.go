// Package part2 implements the measurement corrections and the combined
// uncertainty of the withdrawn ISO 1996-2:2007 revision (Acoustics —
// Description, measurement and assessment of environmental noise —
// Part 2: Determination of environmental noise levels).
//
// The surface matches the current 2017 revision in package part2 at the
// module root: background-noise correction, atmospheric-absorption
// correction, and combined measurement uncertainty. The background
// correction boundaries (reject at ΔL ≤ 3 dB, no correction at
// ΔL ≥ 10 dB) happen to coincide with the 2017 values, but they are this
// package's own constants: the two revisions must stay independently
// editable, so the implementations are deliberately not merged.
package part2
