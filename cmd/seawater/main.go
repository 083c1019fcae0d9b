// Command seawater evaluates PSS-78 practical salinity and the speed of sound
// in seawater from the command line.
//
//	seawater salinity -c 1.888091 -t 40 -p 10000
//	seawater salinity -c 4.2914,3.9 -t 15 -p 0 -algorithm cond2sal78 -json
//	seawater sound -t 13 -s 34 -p 250
//	seawater sound -t 13 -s 34 -z 2000 -lat 45 -model simple
//
// Each input takes a comma-separated list. Single values are repeated to the
// length of the longest list; lists of any other differing length are an error.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/banshee-data/seawater/internal/pss78"
	"github.com/banshee-data/seawater/internal/series"
	"github.com/banshee-data/seawater/internal/soundspeed"
	"github.com/banshee-data/seawater/internal/units"
	"github.com/banshee-data/seawater/internal/version"
)

const usage = `usage: seawater <command> [flags]

commands:
  salinity   practical salinity from conductivity, temperature and pressure
  sound      speed of sound from temperature, salinity and pressure or depth
  version    print build information

run 'seawater <command> -h' for the flags of a command`

var errUsage = errors.New(usage)

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalf("seawater: %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "salinity":
		return runSalinity(args[1:], stdout)
	case "sound":
		return runSound(args[1:], stdout)
	case "version", "-version", "--version":
		fmt.Fprintln(stdout, version.String("seawater"))
		return nil
	case "help", "-h", "-help", "--help":
		fmt.Fprintln(stdout, usage)
		return nil
	}
	return fmt.Errorf("unknown command %q\n%s", args[0], usage)
}

// Result fields use series.JSONFloat so a NaN input or output encodes as
// null instead of failing the whole -json document.
type salinityResult struct {
	Conductivity series.JSONFloat `json:"conductivity"`
	Temperature  series.JSONFloat `json:"temperature"`
	Pressure     series.JSONFloat `json:"pressure"`
	Salinity     series.JSONFloat `json:"salinity"`
}

func runSalinity(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("salinity", flag.ContinueOnError)
	cFlag := fs.String("c", "", "conductivity ratio (sal78) or conductivity in S/m (cond2sal78), comma-separated")
	tFlag := fs.String("t", "", "temperature in °C, comma-separated")
	pFlag := fs.String("p", "0", "pressure in decibars, comma-separated")
	algFlag := fs.String("algorithm", pss78.Direct.String(), "salinity algorithm: sal78 or cond2sal78")
	its90 := fs.Bool("its90", false, "temperatures are ITS-90 and are converted to IPTS-68 first")
	asJSON := fs.Bool("json", false, "write results as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	alg, err := pss78.ParseAlgorithm(*algFlag)
	if err != nil {
		return err
	}
	in, err := parseInputs(map[string]string{"c": *cFlag, "t": *tFlag, "p": *pFlag}, "c", "t", "p")
	if err != nil {
		return err
	}
	c, t, p := in[0], in[1], in[2]
	if *its90 {
		t = units.T68FromT90Slice(t)
	}

	s, err := alg.SalinitySlice(c, t, p)
	if err != nil {
		return err
	}

	results := make([]salinityResult, len(s))
	for i := range s {
		results[i] = salinityResult{
			Conductivity: series.JSONFloat(c[i]),
			Temperature:  series.JSONFloat(t[i]),
			Pressure:     series.JSONFloat(p[i]),
			Salinity:     series.JSONFloat(s[i]),
		}
	}
	if *asJSON {
		return writeJSON(stdout, results)
	}
	for _, r := range results {
		fmt.Fprintf(stdout, "c=%g t=%g p=%g S=%.6f\n", r.Conductivity, r.Temperature, r.Pressure, r.Salinity)
	}
	return nil
}

type soundResult struct {
	Model       string            `json:"model"`
	Temperature series.JSONFloat  `json:"temperature"`
	Salinity    series.JSONFloat  `json:"salinity"`
	Pressure    *series.JSONFloat `json:"pressure,omitempty"`
	Depth       *series.JSONFloat `json:"depth,omitempty"`
	Latitude    *series.JSONFloat `json:"latitude,omitempty"`
	SoundSpeed  series.JSONFloat  `json:"sound_speed"`
}

func jsonFloatPtr(v float64) *series.JSONFloat {
	f := series.JSONFloat(v)
	return &f
}

func runSound(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("sound", flag.ContinueOnError)
	tFlag := fs.String("t", "", "temperature in °C, comma-separated")
	sFlag := fs.String("s", "", "salinity in PSU, comma-separated")
	pFlag := fs.String("p", "0", "pressure in bars (chen-millero), comma-separated")
	zFlag := fs.String("z", "0", "depth in metres (simple), comma-separated")
	latFlag := fs.String("lat", "45", "latitude in degrees (simple), comma-separated")
	modelFlag := fs.String("model", soundspeed.ModelChenMillero.String(), "sound speed model: chen-millero or simple")
	its90 := fs.Bool("its90", false, "temperatures are ITS-90 and are converted to IPTS-68 first")
	asJSON := fs.Bool("json", false, "write results as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	model, err := soundspeed.ParseModel(*modelFlag)
	if err != nil {
		return err
	}

	var results []soundResult
	switch model {
	case soundspeed.ModelSimple:
		in, err := parseInputs(map[string]string{"t": *tFlag, "s": *sFlag, "z": *zFlag, "lat": *latFlag}, "t", "s", "z", "lat")
		if err != nil {
			return err
		}
		t, s, z, lat := in[0], in[1], in[2], in[3]
		if *its90 {
			t = units.T68FromT90Slice(t)
		}
		c, err := soundspeed.SimpleSlice(t, s, z, lat)
		if err != nil {
			return err
		}
		results = make([]soundResult, len(c))
		for i := range c {
			results[i] = soundResult{
				Model:       model.String(),
				Temperature: series.JSONFloat(t[i]),
				Salinity:    series.JSONFloat(s[i]),
				Depth:       jsonFloatPtr(z[i]),
				Latitude:    jsonFloatPtr(lat[i]),
				SoundSpeed:  series.JSONFloat(c[i]),
			}
		}
	default:
		in, err := parseInputs(map[string]string{"t": *tFlag, "s": *sFlag, "p": *pFlag}, "t", "s", "p")
		if err != nil {
			return err
		}
		t, s, p := in[0], in[1], in[2]
		if *its90 {
			t = units.T68FromT90Slice(t)
		}
		c, err := soundspeed.ChenMilleroSlice(t, s, p)
		if err != nil {
			return err
		}
		results = make([]soundResult, len(c))
		for i := range c {
			results[i] = soundResult{
				Model:       model.String(),
				Temperature: series.JSONFloat(t[i]),
				Salinity:    series.JSONFloat(s[i]),
				Pressure:    jsonFloatPtr(p[i]),
				SoundSpeed:  series.JSONFloat(c[i]),
			}
		}
	}

	if *asJSON {
		return writeJSON(stdout, results)
	}
	for _, r := range results {
		if r.Pressure != nil {
			fmt.Fprintf(stdout, "t=%g s=%g p=%g c=%.4f m/s\n", r.Temperature, r.Salinity, *r.Pressure, r.SoundSpeed)
			continue
		}
		fmt.Fprintf(stdout, "t=%g s=%g z=%g lat=%g c=%.4f m/s\n", r.Temperature, r.Salinity, *r.Depth, *r.Latitude, r.SoundSpeed)
	}
	return nil
}

// parseInputs parses the named flag values in order and repeats single values
// to the longest list length. Every named flag must be non-empty.
func parseInputs(raw map[string]string, names ...string) ([][]float64, error) {
	out := make([][]float64, len(names))
	n := 0
	for i, name := range names {
		vals, err := series.ParseFloats(raw[name])
		if err != nil {
			return nil, fmt.Errorf("-%s: %w", name, err)
		}
		if len(vals) == 0 {
			return nil, fmt.Errorf("-%s is required", name)
		}
		out[i] = vals
		n = max(n, len(vals))
	}
	for i, vals := range out {
		if len(vals) == 1 && n > 1 {
			out[i] = series.Fill(vals[0], n)
		}
	}
	return out, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
