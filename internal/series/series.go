// Package series provides the element-wise plumbing shared by the seawater
// kernels: shape checks, per-element evaluation, numpy-style ranges and the
// small statistics used by the sensitivity harness.
package series

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrLengthMismatch is returned when the input slices of one element-wise
// call do not all have the same length.
var ErrLengthMismatch = errors.New("series: input slices have different lengths")

// ErrZeroStep is returned by Arange for a zero step.
var ErrZeroStep = errors.New("series: step must be non-zero")

// ErrTooManyPoints is returned by Arange when the range holds more than
// MaxPoints elements.
var ErrTooManyPoints = errors.New("series: too many points")

// MaxPoints caps the length of an Arange result.
const MaxPoints = 1_000_000

// Points returns the numpy.arange element count for (start, stop, step):
// ceil((stop-start)/step), or 0 when the range is empty.
func Points(start, stop, step float64) (int, error) {
	if step == 0 {
		return 0, ErrZeroStep
	}
	n := math.Ceil((stop - start) / step)
	if math.IsNaN(n) || n <= 0 {
		return 0, nil
	}
	if n > MaxPoints {
		return 0, fmt.Errorf("%w: %g > %d", ErrTooManyPoints, n, MaxPoints)
	}
	return int(n), nil
}

// CheckLengths returns the common length of xs, or ErrLengthMismatch.
func CheckLengths(xs ...[]float64) (int, error) {
	if len(xs) == 0 {
		return 0, nil
	}
	if !floats.EqualLengths(xs...) {
		lens := make([]string, len(xs))
		for i, x := range xs {
			lens[i] = strconv.Itoa(len(x))
		}
		return 0, fmt.Errorf("%w: [%s]", ErrLengthMismatch, strings.Join(lens, " "))
	}
	return len(xs[0]), nil
}

// Map3 applies f element-wise over three equal-length slices.
func Map3(f func(a, b, c float64) float64, a, b, c []float64) ([]float64, error) {
	n, err := CheckLengths(a, b, c)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = f(a[i], b[i], c[i])
	}
	return out, nil
}

// Map3E is Map3 for fallible element functions. The first element error
// aborts the call; it is returned wrapped with the element index.
func Map3E(f func(a, b, c float64) (float64, error), a, b, c []float64) ([]float64, error) {
	n, err := CheckLengths(a, b, c)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		v, err := f(a[i], b[i], c[i])
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// Map4 applies f element-wise over four equal-length slices.
func Map4(f func(a, b, c, d float64) float64, a, b, c, d []float64) ([]float64, error) {
	n, err := CheckLengths(a, b, c, d)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = f(a[i], b[i], c[i], d[i])
	}
	return out, nil
}

// Fill returns a slice of n copies of v. It lets scalar base values be
// paired with a swept slice in the Map helpers.
func Fill(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Arange returns start, start+step, ... up to but excluding stop, with the
// same element count as numpy.arange: ceil((stop-start)/step).
func Arange(start, stop, step float64) ([]float64, error) {
	n, err := Points(start, stop, step)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out, nil
}

// Offset returns base+d for every d in deltas.
func Offset(base float64, deltas []float64) []float64 {
	out := make([]float64, len(deltas))
	copy(out, deltas)
	floats.AddConst(base, out)
	return out
}

// Ratio returns ys scaled by 1/base.
func Ratio(ys []float64, base float64) []float64 {
	out := make([]float64, len(ys))
	return floats.ScaleTo(out, 1/base, ys)
}

// Extent returns the minimum and maximum of xs, or (0, 0) when xs is empty.
func Extent(xs []float64) (lo, hi float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	return floats.Min(xs), floats.Max(xs)
}

// MeanStdDev returns the mean and sample standard deviation of xs.
// Returns (0, 0) for empty input and a zero deviation for a single value.
func MeanStdDev(xs []float64) (mean, stddev float64) {
	switch len(xs) {
	case 0:
		return 0, 0
	case 1:
		return xs[0], 0
	}
	return stat.MeanStdDev(xs, nil)
}

// JSONFloat is a float64 that encodes NaN and ±Inf as JSON null instead of
// failing the whole document. Null decodes back to NaN.
type JSONFloat float64

// MarshalJSON implements json.Marshaler.
func (f JSONFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *JSONFloat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = JSONFloat(math.NaN())
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = JSONFloat(v)
	return nil
}

// ParseFloats parses a comma-separated list of float64 values.
// Returns nil, nil for an empty string; empty items are skipped.
func ParseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float '%s': %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}
