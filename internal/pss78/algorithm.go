package pss78

import (
	"fmt"
	"strings"

	"github.com/banshee-data/seawater/internal/series"
)

// Algorithm selects one of the two PSS-78 variants.
type Algorithm uint8

const (
	// Direct is the array-vectorised sal78 form with the zero trap.
	Direct Algorithm = iota + 1
	// Ratio is the Cond2Sal78 form with the [2, 42] validity check.
	Ratio
)

var algorithmNames = map[Algorithm]string{
	Direct: "sal78",
	Ratio:  "cond2sal78",
}

// Algorithms lists the supported variants in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{Direct, Ratio}
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// ParseAlgorithm maps a name ("sal78", "cond2sal78", or the aliases
// "direct" and "ratio") to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sal78", "direct":
		return Direct, nil
	case "cond2sal78", "ratio":
		return Ratio, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Salinity converts one measurement. Direct never fails; Ratio fails with a
// *RangeError outside the validity range.
func (a Algorithm) Salinity(c, t, p float64) (float64, error) {
	switch a {
	case Direct:
		return SAL78(c, t, p), nil
	case Ratio:
		return Cond2Sal78(c, t, p)
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, a)
}

// SalinitySlice converts equal-length slices element-wise and returns a new
// slice of the same length. For Ratio the first out-of-range element aborts
// the call.
func (a Algorithm) SalinitySlice(c, t, p []float64) ([]float64, error) {
	switch a {
	case Direct:
		return series.Map3(SAL78, c, t, p)
	case Ratio:
		return series.Map3E(Cond2Sal78, c, t, p)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, a)
}
