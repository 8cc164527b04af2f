// SPDX-License-Identifier: MIT

// Package config describes an experiment: which structure to build, the
// payoff parameters, the mutation-rate grids and the runtime knobs.
//
// Loading order: Default() -> file (TOML or YAML by extension) ->
// SIGMA_* environment variables -> Validate().
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sigma/exact"
)

// Sentinel errors for configuration handling.
var (
	// ErrUnsupportedFormat indicates a config file extension other than
	// .toml, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrInvalid indicates a field outside its domain.
	ErrInvalid = errors.New("config: invalid experiment")
)

// Experiment is one figure-style experiment over a single structure.
type Experiment struct {
	// Name labels the run in the store.
	Name string `toml:"name" yaml:"name"`

	// Graph selects the structure, e.g. "karate", "ba:50:1", "er:50:0.05".
	Graph string `toml:"graph" yaml:"graph"`

	// GraphSeed seeds stochastic graph families.
	GraphSeed int64 `toml:"graph_seed" yaml:"graph_seed"`

	// Benefits are the producer benefits b to sweep; Cost is c.
	Benefits []float64 `toml:"benefits" yaml:"benefits"`
	Cost     float64   `toml:"cost" yaml:"cost"`

	// ExactPoints and SimulationPoints size the two mutation-rate grids.
	ExactPoints      int `toml:"exact_points" yaml:"exact_points"`
	SimulationPoints int `toml:"simulation_points" yaml:"simulation_points"`

	// Delta is the selection intensity; Steps the updates per simulation.
	Delta float64 `toml:"selection_intensity" yaml:"selection_intensity"`
	Steps int     `toml:"updates" yaml:"updates"`

	// Solver is "direct" or "least-squares" (aliases "spsolve", "lsqr").
	Solver string `toml:"solver" yaml:"solver" env:"SIGMA_SOLVER"`

	// Workers bounds concurrent rates; 0 means one per CPU.
	Workers int `toml:"workers" yaml:"workers" env:"SIGMA_WORKERS"`

	// Seed is the simulation base seed.
	Seed int64 `toml:"seed" yaml:"seed" env:"SIGMA_SEED"`

	// Database is the sqlite results file; empty disables persistence.
	Database string `toml:"database" yaml:"database" env:"SIGMA_DB"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level" yaml:"log_level" env:"SIGMA_LOG_LEVEL"`
}

// Default returns the parameters of the published figure-1 panels.
func Default() *Experiment {
	return &Experiment{
		Name:             "figure-1",
		Graph:            "ba:50:1",
		GraphSeed:        1,
		Benefits:         []float64{0.9, 5},
		Cost:             1,
		ExactPoints:      1000,
		SimulationPoints: 39,
		Delta:            0.05,
		Steps:            100_000_000,
		Solver:           exact.Direct.String(),
		Seed:             1,
		LogLevel:         "info",
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (*Experiment, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Read is Load without validation, for callers that layer further
// overrides (command-line flags) before calling Validate.
func Read(path string) (*Experiment, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return nil, err
		}
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (e *Experiment) decodeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err = toml.Decode(string(data), e); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, e); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	return nil
}

// ApplyEnv overrides fields from SIGMA_* variables. Unset variables leave
// the current values alone.
func ApplyEnv(e *Experiment) error {
	if err := env.Parse(e); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// Validate checks every field's domain.
func (e *Experiment) Validate() error {
	if strings.TrimSpace(e.Graph) == "" {
		return fmt.Errorf("%w: graph is empty", ErrInvalid)
	}
	if len(e.Benefits) == 0 {
		return fmt.Errorf("%w: no benefits", ErrInvalid)
	}
	for _, b := range e.Benefits {
		if !finite(b) {
			return fmt.Errorf("%w: benefit %v", ErrInvalid, b)
		}
	}
	if !finite(e.Cost) {
		return fmt.Errorf("%w: cost %v", ErrInvalid, e.Cost)
	}
	if e.ExactPoints < 1 || e.SimulationPoints < 1 {
		return fmt.Errorf("%w: grid sizes must be positive, got exact=%d simulation=%d",
			ErrInvalid, e.ExactPoints, e.SimulationPoints)
	}
	if !finite(e.Delta) || e.Delta <= 0 {
		return fmt.Errorf("%w: selection_intensity must be positive, got %v", ErrInvalid, e.Delta)
	}
	if e.Steps < 1 {
		return fmt.Errorf("%w: updates must be positive, got %d", ErrInvalid, e.Steps)
	}
	if _, err := exact.ParseSolver(e.Solver); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if e.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative, got %d", ErrInvalid, e.Workers)
	}
	switch e.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q (valid: debug, info, warn, error)", ErrInvalid, e.LogLevel)
	}

	return nil
}

// SolverKind returns the parsed solver; call after Validate.
func (e *Experiment) SolverKind() exact.Solver {
	s, err := exact.ParseSolver(e.Solver)
	if err != nil {
		return exact.Direct
	}

	return s
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
