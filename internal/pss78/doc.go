// Package pss78 converts conductivity, temperature and pressure to practical
// salinity on the 1978 Practical Salinity Scale.
//
// Two algorithm variants are provided and kept separate because they
// diverge at the edges of validity and are used to cross-check each other:
//
//   - Direct ("sal78"): conductivity is used as the ratio with a unit
//     reference divisor, pressure is scaled from decibars to bars before the
//     pressure correction, and conductivities below ZeroConductivity are
//     trapped to exactly zero. No range check is applied.
//   - Ratio ("cond2sal78"): conductivity is normalised by the standard
//     seawater conductivity 4.2914 S/m, pressure stays in decibars, and any
//     result outside [2, 42] fails with a *RangeError.
//
// Temperatures are IPTS-68. Convert ITS-90 readings with units.T68FromT90.
// The functions are pure: no input plausibility checks, no shared state.
package pss78
