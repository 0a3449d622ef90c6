// Package descriptor provides the taxonomy of acoustic descriptors,
// frequency weightings, reference time intervals and sound
// classifications defined in ISO 1996-1:2003.
//
// Descriptors are small comparable value types: they support == and map
// keys directly and render with String. The package holds no measurement
// logic; it names the quantities that the computing packages produce.
package descriptor
