// Package sensitivity builds the sensitivity curves of the seawater kernels:
// the output divided by its value at a base point while one input is swept
// around that point. Figures are plain data; internal/plotting renders them.
package sensitivity

import (
	"errors"
	"fmt"

	"github.com/banshee-data/seawater/internal/config"
	"github.com/banshee-data/seawater/internal/monitoring"
	"github.com/banshee-data/seawater/internal/series"
	"github.com/banshee-data/seawater/internal/soundspeed"
	"github.com/banshee-data/seawater/internal/units"
)

// Figure names accepted by Build.
const (
	FigureSalinity   = "salinity"
	FigureSoundSpeed = "sound"
)

// ErrZeroBase is returned when the base output is zero, so no ratio exists.
var ErrZeroBase = errors.New("sensitivity: base value is zero")

// ErrUnknownFigure is returned by Build for an unrecognised figure name.
var ErrUnknownFigure = errors.New("sensitivity: unknown figure")

// Curve is one panel of a figure.
type Curve struct {
	Label  string
	XLabel string
	YLabel string
	X      []float64
	Ratio  []float64
	// Band > 0 asks the renderer for guide lines at 1 ± Band.
	Band float64
}

// Figure is a titled stack of curves sharing one base value.
type Figure struct {
	Name   string
	Title  string
	Base   float64
	Curves []Curve
}

// Stats summarises the ratio of one curve. Non-finite values, such as the
// NaN of a Chen-Millero sweep through negative salinity, encode as null.
type Stats struct {
	Label  string           `json:"label"`
	Points int              `json:"points"`
	Min    series.JSONFloat `json:"min"`
	Max    series.JSONFloat `json:"max"`
	Mean   series.JSONFloat `json:"mean"`
	StdDev series.JSONFloat `json:"stddev"`
}

// Stats returns the summary of c.Ratio.
func (c Curve) Stats() Stats {
	lo, hi := series.Extent(c.Ratio)
	mean, sd := series.MeanStdDev(c.Ratio)
	return Stats{
		Label:  c.Label,
		Points: len(c.Ratio),
		Min:    series.JSONFloat(lo),
		Max:    series.JSONFloat(hi),
		Mean:   series.JSONFloat(mean),
		StdDev: series.JSONFloat(sd),
	}
}

// Build returns the named figure.
func Build(name string, cfg *config.SensitivityConfig) (Figure, error) {
	switch name {
	case FigureSalinity:
		return Salinity(cfg)
	case FigureSoundSpeed:
		return SoundSpeed(cfg)
	}
	return Figure{}, fmt.Errorf("%w: %q", ErrUnknownFigure, name)
}

// Salinity sweeps conductivity, temperature and pressure around the
// configured base point with the configured PSS-78 algorithm. A RangeError
// from the Ratio algorithm aborts the figure.
func Salinity(cfg *config.SensitivityConfig) (Figure, error) {
	alg, err := cfg.Algorithm()
	if err != nil {
		return Figure{}, err
	}
	c0, t0, p0 := cfg.GetConductivity(), cfg.GetTemperature(), cfg.GetPressure()

	base, err := alg.Salinity(c0, t0, p0)
	if err != nil {
		return Figure{}, fmt.Errorf("base point: %w", err)
	}
	if base == 0 {
		return Figure{}, fmt.Errorf("%w: salinity at c=%g t=%g p=%g", ErrZeroBase, c0, t0, p0)
	}
	monitoring.Debugf("sensitivity: %s base salinity %.6f at c=%g t=%g p=%g", alg, base, c0, t0, p0)

	fig := Figure{
		Name:  FigureSalinity,
		Title: fmt.Sprintf("PSS-78 %s sensitivity (S0 = %.4f)", alg, base),
		Base:  base,
	}
	const yLabel = "S/S0"

	cond, err := sweep("conductivity", "conductivity [S/m]", yLabel, c0, base, cfg.GetConductivitySweep(),
		func(xs []float64) ([]float64, error) {
			n := len(xs)
			return alg.SalinitySlice(xs, series.Fill(t0, n), series.Fill(p0, n))
		})
	if err != nil {
		return Figure{}, err
	}
	cond.Band = cfg.GetToleranceBand()

	temp, err := sweep("temperature", "temperature [°C]", yLabel, t0, base, cfg.GetTemperatureSweep(),
		func(xs []float64) ([]float64, error) {
			n := len(xs)
			return alg.SalinitySlice(series.Fill(c0, n), xs, series.Fill(p0, n))
		})
	if err != nil {
		return Figure{}, err
	}

	pres, err := sweep("pressure", "pressure [bar]", yLabel, p0, base, cfg.GetPressureSweep(),
		func(xs []float64) ([]float64, error) {
			n := len(xs)
			return alg.SalinitySlice(series.Fill(c0, n), series.Fill(t0, n), xs)
		})
	if err != nil {
		return Figure{}, err
	}
	for i, p := range pres.X {
		pres.X[i] = units.BarFromDecibar(p)
	}

	fig.Curves = []Curve{cond, temp, pres}
	return fig, nil
}

// SoundSpeed sweeps temperature, salinity and pressure (Chen-Millero) or
// depth (simple) around the configured base point.
func SoundSpeed(cfg *config.SensitivityConfig) (Figure, error) {
	model, err := cfg.Model()
	if err != nil {
		return Figure{}, err
	}
	t0, s0 := cfg.GetSoundTemperature(), cfg.GetSoundSalinity()
	const yLabel = "c/c0"

	var (
		base    float64
		third   Curve
		tempFn  func(xs []float64) ([]float64, error)
		salFn   func(xs []float64) ([]float64, error)
		thirdFn func(base float64) (Curve, error)
	)

	switch model {
	case soundspeed.ModelChenMillero:
		p0 := cfg.GetSoundPressure()
		base = soundspeed.ChenMillero(t0, s0, p0)
		tempFn = func(xs []float64) ([]float64, error) {
			n := len(xs)
			return soundspeed.ChenMilleroSlice(xs, series.Fill(s0, n), series.Fill(p0, n))
		}
		salFn = func(xs []float64) ([]float64, error) {
			n := len(xs)
			return soundspeed.ChenMilleroSlice(series.Fill(t0, n), xs, series.Fill(p0, n))
		}
		thirdFn = func(base float64) (Curve, error) {
			return sweep("pressure", "pressure [bar]", yLabel, p0, base, cfg.GetSoundPressureSweep(),
				func(xs []float64) ([]float64, error) {
					n := len(xs)
					return soundspeed.ChenMilleroSlice(series.Fill(t0, n), series.Fill(s0, n), xs)
				})
		}
	case soundspeed.ModelSimple:
		z0, lat := cfg.GetSoundDepth(), cfg.GetSoundLatitude()
		base = soundspeed.Simple(t0, s0, z0, lat)
		tempFn = func(xs []float64) ([]float64, error) {
			n := len(xs)
			return soundspeed.SimpleSlice(xs, series.Fill(s0, n), series.Fill(z0, n), series.Fill(lat, n))
		}
		salFn = func(xs []float64) ([]float64, error) {
			n := len(xs)
			return soundspeed.SimpleSlice(series.Fill(t0, n), xs, series.Fill(z0, n), series.Fill(lat, n))
		}
		thirdFn = func(base float64) (Curve, error) {
			return sweep("depth", "depth [m]", yLabel, z0, base, cfg.GetSoundDepthSweep(),
				func(xs []float64) ([]float64, error) {
					n := len(xs)
					return soundspeed.SimpleSlice(series.Fill(t0, n), series.Fill(s0, n), xs, series.Fill(lat, n))
				})
		}
	default:
		return Figure{}, fmt.Errorf("sensitivity: unsupported model %s", model)
	}

	if base == 0 {
		return Figure{}, fmt.Errorf("%w: sound speed", ErrZeroBase)
	}
	monitoring.Debugf("sensitivity: %s base sound speed %.4f m/s", model, base)

	temp, err := sweep("temperature", "temperature [°C]", yLabel, t0, base, cfg.GetSoundTemperatureSweep(), tempFn)
	if err != nil {
		return Figure{}, err
	}
	sal, err := sweep("salinity", "salinity [PSU]", yLabel, s0, base, cfg.GetSoundSalinitySweep(), salFn)
	if err != nil {
		return Figure{}, err
	}
	if third, err = thirdFn(base); err != nil {
		return Figure{}, err
	}

	return Figure{
		Name:   FigureSoundSpeed,
		Title:  fmt.Sprintf("Sound speed %s sensitivity (c0 = %.3f m/s)", model, base),
		Base:   base,
		Curves: []Curve{temp, sal, third},
	}, nil
}

// sweep evaluates eval at x0 + offsets and divides by base.
func sweep(label, xLabel, yLabel string, x0, base float64, sw config.Sweep,
	eval func(xs []float64) ([]float64, error)) (Curve, error) {
	offsets, err := series.Arange(sw.Start, sw.Stop, sw.Step)
	if err != nil {
		return Curve{}, fmt.Errorf("%s sweep: %w", label, err)
	}
	xs := series.Offset(x0, offsets)
	ys, err := eval(xs)
	if err != nil {
		return Curve{}, fmt.Errorf("%s sweep: %w", label, err)
	}
	return Curve{
		Label:  label,
		XLabel: xLabel,
		YLabel: yLabel,
		X:      xs,
		Ratio:  series.Ratio(ys, base),
	}, nil
}
