package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/banshee-data/seawater/internal/monitoring"
	"github.com/banshee-data/seawater/internal/sensitivity"
	"github.com/banshee-data/seawater/internal/version"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogs(t *testing.T) {
	t.Helper()
	monitoring.SetLogger(nil)
	t.Cleanup(func() {
		monitoring.SetLogger(log.Printf)
		monitoring.SetVerbose(false)
	})
}

func readSummary(t *testing.T, runDir string) RunSummary {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(runDir, "summary.json"))
	require.NoError(t, err)
	var s RunSummary
	require.NoError(t, json.Unmarshal(data, &s))
	return s
}

func TestRunAllFigures(t *testing.T) {
	quietLogs(t)
	out := t.TempDir()

	var stdout bytes.Buffer
	require.NoError(t, run([]string{"-out", out, "-format", "both", "-verbose"}, &stdout))

	runDir := strings.TrimSpace(stdout.String())
	assert.Equal(t, out, filepath.Dir(runDir))
	_, err := uuid.Parse(filepath.Base(runDir))
	require.NoError(t, err, "run directory should be named by a uuid")

	for _, name := range []string{"salinity.png", "salinity.html", "sound.png", "sound.html"} {
		info, err := os.Stat(filepath.Join(runDir, name))
		require.NoError(t, err, name)
		assert.NotZero(t, info.Size(), name)
	}

	s := readSummary(t, runDir)
	assert.Equal(t, filepath.Base(runDir), s.RunID)
	assert.Equal(t, "both", s.Format)
	assert.Equal(t, version.Version, s.Version)
	require.Len(t, s.Figures, 2)
	assert.Equal(t, sensitivity.FigureSalinity, s.Figures[0].Name)
	assert.Equal(t, sensitivity.FigureSoundSpeed, s.Figures[1].Name)
	require.Len(t, s.Figures[0].Curves, 3)
	assert.Equal(t, "conductivity", s.Figures[0].Curves[0].Label)
	assert.Equal(t, 7, s.Figures[0].Curves[0].Points)
	assert.InDelta(t, 35.86059337213299, float64(s.Figures[0].Base), 1e-9)
}

func TestRunSingleFigureFromConfig(t *testing.T) {
	quietLogs(t)
	out := t.TempDir()

	var stdout bytes.Buffer
	args := []string{"-config", "../../config/sensitivity.json", "-out", out, "-format", "html", "-figure", "sound"}
	require.NoError(t, run(args, &stdout))

	runDir := strings.TrimSpace(stdout.String())
	s := readSummary(t, runDir)
	assert.Equal(t, "../../config/sensitivity.json", s.Config)
	require.Len(t, s.Figures, 1)
	assert.Equal(t, []string{"sound.html"}, s.Figures[0].Files)

	_, err := os.Stat(filepath.Join(runDir, "sound.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunRejectsBadInput(t *testing.T) {
	quietLogs(t)
	out := t.TempDir()

	err := run([]string{"-out", out, "-figure", "density"}, &bytes.Buffer{})
	assert.True(t, errors.Is(err, sensitivity.ErrUnknownFigure), "got %v", err)

	err = run([]string{"-out", out, "-format", "svg"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "format must be one of")

	err = run([]string{"-config", "missing.json"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "failed to stat config file")
}

func TestRunRatioAlgorithmOutOfRange(t *testing.T) {
	quietLogs(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "ratio.json")
	// 0.05 S/m is far below the valid salinity range.
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"salinity_algorithm": "cond2sal78", "conductivity": 0.05}`), 0644))

	err := run([]string{"-config", cfgPath, "-out", dir, "-figure", "salinity"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "salinity figure")
}

func TestRunVersion(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, run([]string{"-version"}, &stdout))
	assert.True(t, strings.HasPrefix(stdout.String(), "seaplot "))
}

func TestRunSummaryWithNaNStats(t *testing.T) {
	quietLogs(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "fresh.json")
	// The salinity sweep around 0.1 PSU crosses zero, where Chen-Millero is NaN.
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"sound_salinity": 0.1}`), 0644))

	var stdout bytes.Buffer
	require.NoError(t, run([]string{"-config", cfgPath, "-out", dir, "-figure", "sound", "-format", "both"}, &stdout))

	runDir := strings.TrimSpace(stdout.String())
	data, err := os.ReadFile(filepath.Join(runDir, "summary.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"mean": null`)

	s := readSummary(t, runDir)
	require.Len(t, s.Figures, 1)
	require.Len(t, s.Figures[0].Curves, 3)
	assert.True(t, math.IsNaN(float64(s.Figures[0].Curves[1].Mean)))
}
