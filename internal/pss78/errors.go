package pss78

import (
	"errors"
	"fmt"
)

// Validity range of PSS-78 enforced by the Ratio variant.
const (
	MinSalinity = 2.0
	MaxSalinity = 42.0
)

var (
	// ErrOutOfRange is wrapped by every *RangeError.
	ErrOutOfRange = errors.New("pss78: salinity outside validity range")
	// ErrUnknownAlgorithm is returned for an Algorithm value or name that is
	// not Direct or Ratio.
	ErrUnknownAlgorithm = errors.New("pss78: unknown algorithm")
)

// RangeError reports a computed salinity outside [MinSalinity, MaxSalinity].
type RangeError struct {
	Salinity                 float64
	Conductivity, Temp, Pres float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("pss78: salinity %g outside [%g, %g] (c=%g t=%g p=%g)",
		e.Salinity, MinSalinity, MaxSalinity, e.Conductivity, e.Temp, e.Pres)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }
