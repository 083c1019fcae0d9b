package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/seawater/internal/pss78"
	"github.com/banshee-data/seawater/internal/series"
	"github.com/banshee-data/seawater/internal/soundspeed"
)

// DefaultConfigPath is where seaplot looks for a configuration when none is
// given on the command line.
const DefaultConfigPath = "config/sensitivity.json"

// Output formats understood by seaplot.
const (
	FormatPNG  = "png"
	FormatHTML = "html"
	FormatBoth = "both"
)

// Sweep is a numpy-style arange of offsets added to a base value.
type Sweep struct {
	Start float64 `json:"start"`
	Stop  float64 `json:"stop"`
	Step  float64 `json:"step"`
}

// SensitivityConfig configures the sensitivity figures. Every field is
// optional; the Get* methods supply the defaults for omitted fields so
// partial files are safe.
type SensitivityConfig struct {
	// Salinity figure
	SalinityAlgorithm *string  `json:"salinity_algorithm,omitempty"` // "sal78" or "cond2sal78"
	Conductivity      *float64 `json:"conductivity,omitempty"`
	Temperature       *float64 `json:"temperature,omitempty"`
	Pressure          *float64 `json:"pressure,omitempty"` // dbar
	ConductivitySweep *Sweep   `json:"conductivity_sweep,omitempty"`
	TemperatureSweep  *Sweep   `json:"temperature_sweep,omitempty"`
	PressureSweep     *Sweep   `json:"pressure_sweep,omitempty"`
	ToleranceBand     *float64 `json:"tolerance_band,omitempty"`

	// Sound-speed figure
	SoundModel            *string  `json:"sound_model,omitempty"` // "chen-millero" or "simple"
	SoundTemperature      *float64 `json:"sound_temperature,omitempty"`
	SoundSalinity         *float64 `json:"sound_salinity,omitempty"`
	SoundPressure         *float64 `json:"sound_pressure,omitempty"` // bar, Chen-Millero only
	SoundDepth            *float64 `json:"sound_depth,omitempty"`    // m, simple only
	SoundLatitude         *float64 `json:"sound_latitude,omitempty"` // degrees, simple only
	SoundTemperatureSweep *Sweep   `json:"sound_temperature_sweep,omitempty"`
	SoundSalinitySweep    *Sweep   `json:"sound_salinity_sweep,omitempty"`
	SoundPressureSweep    *Sweep   `json:"sound_pressure_sweep,omitempty"`
	SoundDepthSweep       *Sweep   `json:"sound_depth_sweep,omitempty"`

	// Output
	OutputDir *string  `json:"output_dir,omitempty"`
	Format    *string  `json:"format,omitempty"`
	WidthIn   *float64 `json:"width_in,omitempty"`
	HeightIn  *float64 `json:"height_in,omitempty"`
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrString(v string) *string    { return &v }
func ptrSweep(start, stop, step float64) *Sweep {
	return &Sweep{Start: start, Stop: stop, Step: step}
}

// EmptySensitivityConfig returns a config with every field unset.
func EmptySensitivityConfig() *SensitivityConfig {
	return &SensitivityConfig{}
}

// DefaultSensitivityConfig returns a config with every field set to the
// value its getter falls back to.
func DefaultSensitivityConfig() *SensitivityConfig {
	e := EmptySensitivityConfig()
	cfg := &SensitivityConfig{
		SalinityAlgorithm: ptrString(e.GetSalinityAlgorithm()),
		Conductivity:      ptrFloat64(e.GetConductivity()),
		Temperature:       ptrFloat64(e.GetTemperature()),
		Pressure:          ptrFloat64(e.GetPressure()),
		ToleranceBand:     ptrFloat64(e.GetToleranceBand()),
		SoundModel:        ptrString(e.GetSoundModel()),
		SoundTemperature:  ptrFloat64(e.GetSoundTemperature()),
		SoundSalinity:     ptrFloat64(e.GetSoundSalinity()),
		SoundPressure:     ptrFloat64(e.GetSoundPressure()),
		SoundDepth:        ptrFloat64(e.GetSoundDepth()),
		SoundLatitude:     ptrFloat64(e.GetSoundLatitude()),
		OutputDir:         ptrString(e.GetOutputDir()),
		Format:            ptrString(e.GetFormat()),
		WidthIn:           ptrFloat64(e.GetWidthIn()),
		HeightIn:          ptrFloat64(e.GetHeightIn()),
	}
	cs, ts, ps := e.GetConductivitySweep(), e.GetTemperatureSweep(), e.GetPressureSweep()
	cfg.ConductivitySweep, cfg.TemperatureSweep, cfg.PressureSweep = &cs, &ts, &ps
	sts, sss := e.GetSoundTemperatureSweep(), e.GetSoundSalinitySweep()
	sps, sds := e.GetSoundPressureSweep(), e.GetSoundDepthSweep()
	cfg.SoundTemperatureSweep, cfg.SoundSalinitySweep = &sts, &sss
	cfg.SoundPressureSweep, cfg.SoundDepthSweep = &sps, &sds
	return cfg
}

// LoadSensitivityConfig loads a SensitivityConfig from a JSON file.
// The file must have a .json extension and be at most 1MB.
func LoadSensitivityConfig(path string) (*SensitivityConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptySensitivityConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configured values are usable.
func (c *SensitivityConfig) Validate() error {
	if c.SalinityAlgorithm != nil {
		if _, err := pss78.ParseAlgorithm(*c.SalinityAlgorithm); err != nil {
			return fmt.Errorf("salinity_algorithm: %w", err)
		}
	}
	if c.SoundModel != nil {
		if _, err := soundspeed.ParseModel(*c.SoundModel); err != nil {
			return fmt.Errorf("sound_model: %w", err)
		}
	}

	sweeps := []struct {
		name  string
		sweep *Sweep
	}{
		{"conductivity_sweep", c.ConductivitySweep},
		{"temperature_sweep", c.TemperatureSweep},
		{"pressure_sweep", c.PressureSweep},
		{"sound_temperature_sweep", c.SoundTemperatureSweep},
		{"sound_salinity_sweep", c.SoundSalinitySweep},
		{"sound_pressure_sweep", c.SoundPressureSweep},
		{"sound_depth_sweep", c.SoundDepthSweep},
	}
	for _, s := range sweeps {
		if s.sweep == nil {
			continue
		}
		if _, err := series.Points(s.sweep.Start, s.sweep.Stop, s.sweep.Step); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}

	if c.ToleranceBand != nil {
		if *c.ToleranceBand < 0 || *c.ToleranceBand >= 1 {
			return fmt.Errorf("tolerance_band must be in [0, 1), got %f", *c.ToleranceBand)
		}
	}

	if c.Format != nil {
		switch *c.Format {
		case FormatPNG, FormatHTML, FormatBoth:
		default:
			return fmt.Errorf("format must be one of %q, %q, %q, got %q", FormatPNG, FormatHTML, FormatBoth, *c.Format)
		}
	}

	if c.WidthIn != nil && *c.WidthIn <= 0 {
		return fmt.Errorf("width_in must be positive, got %f", *c.WidthIn)
	}
	if c.HeightIn != nil && *c.HeightIn <= 0 {
		return fmt.Errorf("height_in must be positive, got %f", *c.HeightIn)
	}

	return nil
}

// Algorithm returns the parsed salinity algorithm. Validate has already
// rejected unknown names for loaded configs.
func (c *SensitivityConfig) Algorithm() (pss78.Algorithm, error) {
	return pss78.ParseAlgorithm(c.GetSalinityAlgorithm())
}

// Model returns the parsed sound-speed model.
func (c *SensitivityConfig) Model() (soundspeed.Model, error) {
	return soundspeed.ParseModel(c.GetSoundModel())
}

// GetSalinityAlgorithm returns the salinity_algorithm value or the default.
func (c *SensitivityConfig) GetSalinityAlgorithm() string {
	if c.SalinityAlgorithm == nil {
		return pss78.Direct.String()
	}
	return *c.SalinityAlgorithm
}

// GetConductivity returns the base conductivity (S/m) or the default.
func (c *SensitivityConfig) GetConductivity() float64 {
	if c.Conductivity == nil {
		return 1.0
	}
	return *c.Conductivity
}

// GetTemperature returns the base salinity-figure temperature or the default.
func (c *SensitivityConfig) GetTemperature() float64 {
	if c.Temperature == nil {
		return 13
	}
	return *c.Temperature
}

// GetPressure returns the base salinity-figure pressure (dbar) or the default.
func (c *SensitivityConfig) GetPressure() float64 {
	if c.Pressure == nil {
		return 2500
	}
	return *c.Pressure
}

// GetConductivitySweep returns the conductivity_sweep value or the default.
func (c *SensitivityConfig) GetConductivitySweep() Sweep {
	if c.ConductivitySweep == nil {
		return Sweep{Start: -0.15, Stop: 0.5, Step: 0.1}
	}
	return *c.ConductivitySweep
}

// GetTemperatureSweep returns the temperature_sweep value or the default.
func (c *SensitivityConfig) GetTemperatureSweep() Sweep {
	if c.TemperatureSweep == nil {
		return Sweep{Start: -0.3, Stop: 0.3, Step: 0.001}
	}
	return *c.TemperatureSweep
}

// GetPressureSweep returns the pressure_sweep value (dbar) or the default.
func (c *SensitivityConfig) GetPressureSweep() Sweep {
	if c.PressureSweep == nil {
		return Sweep{Start: -10, Stop: 10, Step: 1}
	}
	return *c.PressureSweep
}

// GetToleranceBand returns the tolerance_band value or the default (0.3%).
func (c *SensitivityConfig) GetToleranceBand() float64 {
	if c.ToleranceBand == nil {
		return 0.003
	}
	return *c.ToleranceBand
}

// GetSoundModel returns the sound_model value or the default.
func (c *SensitivityConfig) GetSoundModel() string {
	if c.SoundModel == nil {
		return soundspeed.ModelChenMillero.String()
	}
	return *c.SoundModel
}

// GetSoundTemperature returns the sound_temperature value or the default.
func (c *SensitivityConfig) GetSoundTemperature() float64 {
	if c.SoundTemperature == nil {
		return 13
	}
	return *c.SoundTemperature
}

// GetSoundSalinity returns the sound_salinity value or the default.
func (c *SensitivityConfig) GetSoundSalinity() float64 {
	if c.SoundSalinity == nil {
		return 34
	}
	return *c.SoundSalinity
}

// GetSoundPressure returns the sound_pressure value (bar) or the default.
func (c *SensitivityConfig) GetSoundPressure() float64 {
	if c.SoundPressure == nil {
		return 250
	}
	return *c.SoundPressure
}

// GetSoundDepth returns the sound_depth value (m) or the default.
func (c *SensitivityConfig) GetSoundDepth() float64 {
	if c.SoundDepth == nil {
		return 2000
	}
	return *c.SoundDepth
}

// GetSoundLatitude returns the sound_latitude value or the default.
func (c *SensitivityConfig) GetSoundLatitude() float64 {
	if c.SoundLatitude == nil {
		return 45
	}
	return *c.SoundLatitude
}

// GetSoundTemperatureSweep returns the sound_temperature_sweep value or the
// default for the configured model.
func (c *SensitivityConfig) GetSoundTemperatureSweep() Sweep {
	if c.SoundTemperatureSweep != nil {
		return *c.SoundTemperatureSweep
	}
	if c.isSimpleModel() {
		return Sweep{Start: -0.05, Stop: 0.05, Step: 0.01}
	}
	return Sweep{Start: -0.07, Stop: 0.07, Step: 0.01}
}

// GetSoundSalinitySweep returns the sound_salinity_sweep value or the
// default for the configured model.
func (c *SensitivityConfig) GetSoundSalinitySweep() Sweep {
	if c.SoundSalinitySweep != nil {
		return *c.SoundSalinitySweep
	}
	if c.isSimpleModel() {
		return Sweep{Start: -0.2, Stop: 0.21, Step: 0.01}
	}
	return Sweep{Start: -0.2, Stop: 0.21, Step: 0.001}
}

// GetSoundPressureSweep returns the sound_pressure_sweep value (bar) or the
// default.
func (c *SensitivityConfig) GetSoundPressureSweep() Sweep {
	if c.SoundPressureSweep == nil {
		return Sweep{Start: -1, Stop: 1.1, Step: 0.1}
	}
	return *c.SoundPressureSweep
}

// GetSoundDepthSweep returns the sound_depth_sweep value (m) or the default.
func (c *SensitivityConfig) GetSoundDepthSweep() Sweep {
	if c.SoundDepthSweep == nil {
		return Sweep{Start: -10, Stop: 11, Step: 1}
	}
	return *c.SoundDepthSweep
}

// GetOutputDir returns the output_dir value or the default.
func (c *SensitivityConfig) GetOutputDir() string {
	if c.OutputDir == nil || *c.OutputDir == "" {
		return "plots"
	}
	return *c.OutputDir
}

// GetFormat returns the format value or the default.
func (c *SensitivityConfig) GetFormat() string {
	if c.Format == nil || *c.Format == "" {
		return FormatPNG
	}
	return *c.Format
}

// GetWidthIn returns the figure width in inches or the default.
func (c *SensitivityConfig) GetWidthIn() float64 {
	if c.WidthIn == nil {
		return 8
	}
	return *c.WidthIn
}

// GetHeightIn returns the figure height in inches or the default.
func (c *SensitivityConfig) GetHeightIn() float64 {
	if c.HeightIn == nil {
		return 10
	}
	return *c.HeightIn
}

func (c *SensitivityConfig) isSimpleModel() bool {
	m, err := c.Model()
	return err == nil && m == soundspeed.ModelSimple
}
