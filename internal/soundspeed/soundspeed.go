package soundspeed

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/banshee-data/seawater/internal/series"
)

// Simple returns the sound speed (m/s) from the nine-term fit with the
// latitude correction 1.2e-6·z·(lat − 45).
func Simple(t, s, z, lat float64) float64 {
	return m0 + mT1*t + mT2*t*t + mT3*t*t*t +
		mS*s + mST*s*t + mST2*s*t*t +
		mZ1*z + mZ2*z*z + mZ3*z*z*z +
		mLat*z*(lat-referenceLatitude) + mTZ3*t*z*z*z +
		mT2Z*t*t*z + mSZ*s*z
}

// ChenMillero returns the sound speed (m/s) as Cw + A·S + B·S^1.5 + D·S².
// Temperature coefficients are evaluated separately for each pressure
// power.
func ChenMillero(t, s, p float64) float64 {
	t2 := t * t
	t3 := t2 * t
	t4 := t3 * t
	t5 := t4 * t
	p2 := p * p
	p3 := p2 * p

	cw := (c00 + c01*t + c02*t2 + c03*t3 + c04*t4 + c05*t5) +
		(c10+c11*t+c12*t2+c13*t3+c14*t4)*p +
		(c20+c21*t+c22*t2+c23*t3+c24*t4)*p2 +
		(c30+c31*t+c32*t2)*p3

	a := (a00 + a01*t + a02*t2 + a03*t3 + a04*t4) +
		(a10+a11*t+a12*t2+a13*t3+a14*t4)*p +
		(a20+a21*t+a22*t2+a23*t3)*p2 +
		(a30+a31*t+a32*t2)*p3

	b := b00 + b01*t + (b10+b11*t)*p

	d := d00 + d10*p

	return cw + a*s + b*math.Pow(s, 1.5) + d*s*s
}

// SimpleSlice evaluates Simple element-wise over equal-length slices.
func SimpleSlice(t, s, z, lat []float64) ([]float64, error) {
	return series.Map4(Simple, t, s, z, lat)
}

// ChenMilleroSlice evaluates ChenMillero element-wise over equal-length
// slices.
func ChenMilleroSlice(t, s, p []float64) ([]float64, error) {
	return series.Map3(ChenMillero, t, s, p)
}

// ErrUnknownModel is returned by ParseModel for an unrecognised name.
var ErrUnknownModel = errors.New("soundspeed: unknown model")

// Model names a sound-speed fit for the command-line tools and the
// sensitivity harness.
type Model uint8

const (
	ModelChenMillero Model = iota + 1
	ModelSimple
)

func (m Model) String() string {
	switch m {
	case ModelChenMillero:
		return "chen-millero"
	case ModelSimple:
		return "simple"
	}
	return fmt.Sprintf("Model(%d)", uint8(m))
}

// ParseModel maps "chen-millero" (or "chen") and "simple" (or "nine-term")
// to a Model.
func ParseModel(s string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "chen-millero", "chen", "unesco":
		return ModelChenMillero, nil
	case "simple", "nine-term":
		return ModelSimple, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownModel, s)
}
