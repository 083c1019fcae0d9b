// Package soundspeed evaluates the speed of sound in seawater with two
// independent empirical polynomials:
//
//   - Simple: the nine-term fit in temperature (°C), salinity (PSU),
//     depth (m) and latitude (degrees).
//   - ChenMillero: the UNESCO Chen-Millero fit in temperature (°C),
//     salinity (PSU) and pressure in the unit the coefficients were fitted
//     in (bar).
//
// Both are total functions with no range checks. ChenMillero requires
// non-negative salinity; a negative value yields NaN from the S^1.5 term.
package soundspeed
