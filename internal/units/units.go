// Package units holds the scale conversions that the seawater kernels leave
// to their callers: IPTS-68 versus ITS-90 temperature and bar versus decibar
// pressure.
package units

// Temperature scale factors between IPTS-68 and ITS-90.
const (
	C68 = 1.00024 // T68 = C68 * T90
	C90 = 0.99976 // T90 = C90 * T68
)

// DecibarsPerBar is the pressure scale between bar and decibar.
const DecibarsPerBar = 10.0

// T68FromT90 converts an ITS-90 temperature (°C) to IPTS-68.
func T68FromT90(t90 float64) float64 { return C68 * t90 }

// T90FromT68 converts an IPTS-68 temperature (°C) to ITS-90.
func T90FromT68(t68 float64) float64 { return C90 * t68 }

// T68FromT90Slice converts every element of t90 to IPTS-68 into a new slice.
func T68FromT90Slice(t90 []float64) []float64 {
	out := make([]float64, len(t90))
	for i, t := range t90 {
		out[i] = T68FromT90(t)
	}
	return out
}

// BarFromDecibar converts decibars to bars.
func BarFromDecibar(p float64) float64 { return p / DecibarsPerBar }

// DecibarFromBar converts bars to decibars.
func DecibarFromBar(p float64) float64 { return p * DecibarsPerBar }
