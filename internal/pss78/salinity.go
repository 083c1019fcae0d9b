package pss78

// ZeroConductivity is the conductivity (S/m) below which the Direct variant
// reports exactly zero salinity.
const ZeroConductivity = 5e-4

// SAL78 converts conductivity c (S/m), temperature t (°C, IPTS-68) and
// pressure p (dbar) with the Direct variant.
//
// Check value: SAL78(1.888091, 40, 10000) = 40.00000.
func SAL78(c, t, p float64) float64 {
	if c < ZeroConductivity {
		return 0
	}
	return directCoefficients.salinity(c, t, p)
}

// Cond2Sal78 converts conductivity c (S/m), temperature t (°C, IPTS-68) and
// pressure p (dbar) with the Ratio variant. A result outside
// [MinSalinity, MaxSalinity], or NaN, is returned as a *RangeError and no
// value.
func Cond2Sal78(c, t, p float64) (float64, error) {
	s := ratioCoefficients.salinity(c, t, p)
	if !(s >= MinSalinity && s <= MaxSalinity) {
		return 0, &RangeError{Salinity: s, Conductivity: c, Temp: t, Pres: p}
	}
	return s, nil
}
