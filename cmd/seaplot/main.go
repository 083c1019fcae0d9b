// Command seaplot renders the sensitivity figures of the salinity and sound
// speed kernels. Each run writes into its own directory under the output
// root:
//
//	<out>/<run-id>/salinity.png
//	<out>/<run-id>/sound.html
//	<out>/<run-id>/summary.json
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/banshee-data/seawater/internal/config"
	"github.com/banshee-data/seawater/internal/monitoring"
	"github.com/banshee-data/seawater/internal/plotting"
	"github.com/banshee-data/seawater/internal/sensitivity"
	"github.com/banshee-data/seawater/internal/series"
	"github.com/banshee-data/seawater/internal/version"
	"github.com/google/uuid"
)

const figureAll = "all"

// FigureSummary is the summary.json entry for one figure.
type FigureSummary struct {
	Name   string              `json:"name"`
	Title  string              `json:"title"`
	Base   series.JSONFloat    `json:"base"`
	Curves []sensitivity.Stats `json:"curves"`
	Files  []string            `json:"files"`
}

// RunSummary is written to summary.json in the run directory.
type RunSummary struct {
	RunID     string          `json:"run_id"`
	Version   string          `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	Config    string          `json:"config,omitempty"`
	Format    string          `json:"format"`
	Figures   []FigureSummary `json:"figures"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalf("seaplot: %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("seaplot", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a sensitivity JSON config (default "+config.DefaultConfigPath+" if present)")
	outDir := fs.String("out", "", "output root directory (overrides config)")
	format := fs.String("format", "", "output format: png, html or both (overrides config)")
	figure := fs.String("figure", figureAll, "figure to render: salinity, sound or all")
	verbose := fs.Bool("verbose", false, "log each sweep")
	showVersion := fs.Bool("version", false, "print build information and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *showVersion {
		fmt.Fprintln(stdout, version.String("seaplot"))
		return nil
	}
	monitoring.SetVerbose(*verbose)

	cfg, source, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *outDir != "" {
		cfg.OutputDir = outDir
	}
	if *format != "" {
		cfg.Format = format
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	names, err := figureNames(*figure)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	runDir := filepath.Join(cfg.GetOutputDir(), runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return fmt.Errorf("failed to create run dir: %w", err)
	}
	monitoring.Logf("seaplot: run %s writing to %s", runID, runDir)

	summary := RunSummary{
		RunID:     runID,
		Version:   version.Version,
		CreatedAt: time.Now().UTC(),
		Config:    source,
		Format:    cfg.GetFormat(),
	}
	opt := plotting.Options{WidthIn: cfg.GetWidthIn(), HeightIn: cfg.GetHeightIn()}
	for _, name := range names {
		fig, err := sensitivity.Build(name, cfg)
		if err != nil {
			return fmt.Errorf("%s figure: %w", name, err)
		}
		files, err := render(runDir, fig, cfg.GetFormat(), opt)
		if err != nil {
			return fmt.Errorf("%s figure: %w", name, err)
		}

		entry := FigureSummary{Name: fig.Name, Title: fig.Title, Base: series.JSONFloat(fig.Base), Files: files}
		for _, c := range fig.Curves {
			st := c.Stats()
			monitoring.Debugf("seaplot: %s/%s points=%d min=%.6f max=%.6f", fig.Name, st.Label, st.Points, st.Min, st.Max)
			entry.Curves = append(entry.Curves, st)
		}
		summary.Figures = append(summary.Figures, entry)
	}

	if err := writeSummary(filepath.Join(runDir, "summary.json"), summary); err != nil {
		return err
	}
	fmt.Fprintln(stdout, runDir)
	return nil
}

// loadConfig reads path, or DefaultConfigPath when path is empty and that
// file exists, or falls back to the built-in defaults.
func loadConfig(path string) (*config.SensitivityConfig, string, error) {
	if path == "" {
		if _, err := os.Stat(config.DefaultConfigPath); err != nil {
			return config.DefaultSensitivityConfig(), "", nil
		}
		path = config.DefaultConfigPath
	}
	cfg, err := config.LoadSensitivityConfig(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func figureNames(figure string) ([]string, error) {
	switch figure {
	case figureAll:
		return []string{sensitivity.FigureSalinity, sensitivity.FigureSoundSpeed}, nil
	case sensitivity.FigureSalinity, sensitivity.FigureSoundSpeed:
		return []string{figure}, nil
	}
	return nil, fmt.Errorf("%w: %q", sensitivity.ErrUnknownFigure, figure)
}

// render writes fig in the requested formats and returns the file names.
func render(dir string, fig sensitivity.Figure, format string, opt plotting.Options) ([]string, error) {
	var files []string
	if format == config.FormatPNG || format == config.FormatBoth {
		name := fig.Name + ".png"
		if err := plotting.SavePNG(fig, filepath.Join(dir, name), opt); err != nil {
			return nil, err
		}
		files = append(files, name)
	}
	if format == config.FormatHTML || format == config.FormatBoth {
		name := fig.Name + ".html"
		if err := saveHTML(fig, filepath.Join(dir, name)); err != nil {
			return nil, err
		}
		files = append(files, name)
	}
	return files, nil
}

func saveHTML(fig sensitivity.Figure, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := plotting.WriteHTML(f, fig); err != nil {
		return err
	}
	monitoring.Logf("seaplot: wrote %s", path)
	return f.Close()
}

func writeSummary(path string, s RunSummary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
