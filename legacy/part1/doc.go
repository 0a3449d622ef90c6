// Package part1 implements the level formulas of the withdrawn
// ISO 1996-1:2003 revision (Acoustics — Description, measurement and
// assessment of environmental noise — Part 1: Basic quantities and
// assessment procedures).
//
// The 2003 surface is a subset of the 2016 revision (sound pressure
// level, sound exposure level, equivalent continuous sound level and
// peak sound pressure level) plus one formula the 2016 revision dropped:
// the time-normalized A-weighted sound pressure level. It has no
// day-evening-night level, no rating adjustments and no assessment
// level; callers needing those use the current revision.
//
// Constants and the domain error are this package's own copies. They are
// deliberately not shared with the 2016 revision: the standards are
// versioned independently, and a future change to one revision's values
// must not leak into the other.
package part1
