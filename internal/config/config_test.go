package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sigma/exact"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, exact.Direct, cfg.SolverKind())
	assert.Equal(t, []float64{0.9, 5}, cfg.Benefits)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "exp.toml", `
name = "er-panel"
graph = "er:50:0.05"
benefits = [2.0]
solver = "lsqr"
updates = 1000
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "er-panel", cfg.Name)
	assert.Equal(t, "er:50:0.05", cfg.Graph)
	assert.Equal(t, []float64{2}, cfg.Benefits)
	assert.Equal(t, exact.LeastSquares, cfg.SolverKind())
	assert.Equal(t, 1000, cfg.Steps)
	assert.Equal(t, 39, cfg.SimulationPoints, "unset keys keep defaults")
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "exp.yml", `
graph: karate
cost: 0.5
selection_intensity: 0.2
exact_points: 20
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "karate", cfg.Graph)
	assert.InDelta(t, 0.5, cfg.Cost, 0)
	assert.InDelta(t, 0.2, cfg.Delta, 0)
	assert.Equal(t, 20, cfg.ExactPoints)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "exp.toml", "workers = 2\nseed = 5\n")
	t.Setenv("SIGMA_WORKERS", "6")
	t.Setenv("SIGMA_DB", "/tmp/sigma.db")
	t.Setenv("SIGMA_SOLVER", "least-squares")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Workers)
	assert.Equal(t, int64(5), cfg.Seed)
	assert.Equal(t, "/tmp/sigma.db", cfg.Database)
	assert.Equal(t, exact.LeastSquares, cfg.SolverKind())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(writeFile(t, "exp.json", "{}"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(writeFile(t, "exp.toml", "graph = ["))
	require.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	t.Setenv("SIGMA_WORKERS", "many")
	_, err = Load("")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(e *Experiment)
	}{
		{"empty graph", func(e *Experiment) { e.Graph = " " }},
		{"no benefits", func(e *Experiment) { e.Benefits = nil }},
		{"NaN benefit", func(e *Experiment) { e.Benefits = []float64{math.NaN()} }},
		{"Inf cost", func(e *Experiment) { e.Cost = math.Inf(1) }},
		{"zero grid", func(e *Experiment) { e.ExactPoints = 0 }},
		{"zero delta", func(e *Experiment) { e.Delta = 0 }},
		{"zero steps", func(e *Experiment) { e.Steps = 0 }},
		{"solver", func(e *Experiment) { e.Solver = "qr" }},
		{"workers", func(e *Experiment) { e.Workers = -1 }},
		{"log level", func(e *Experiment) { e.LogLevel = "loud" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	cfg := Default()
	cfg.Solver = "qr"
	assert.ErrorIs(t, cfg.Validate(), exact.ErrUnknownSolver)
}
