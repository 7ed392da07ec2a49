// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/phom/construct"
	"github.com/katalvlaran/phom/filtration"
	"github.com/katalvlaran/phom/persistence"
	"github.com/katalvlaran/phom/render"
	"github.com/katalvlaran/phom/simplicial"
)

var errConfig = errors.New("phom: invalid config")

// Config is one run: which complex to build, which values to filter it by,
// and where the results go.
//
// Example:
//
//	complex:
//	  kind: freudenthal
//	filtration:
//	  kind: lower-star
//	  max_dim: 1
//	grid:
//	  - [0, 1, 0]
//	  - [1, 2, 1]
//	archive:
//	  kind: sqlite
//	  path: runs.db
type Config struct {
	Complex    ComplexConfig    `yaml:"complex"`
	Filtration FiltrationConfig `yaml:"filtration"`

	// Values is a flat per-vertex field (or a row-major distance matrix).
	Values []float64 `yaml:"values"`
	// Grid is a rectangular per-vertex field for freudenthal complexes.
	Grid [][]float64 `yaml:"grid"`
	// Points replace Values with their pairwise distance matrix.
	Points [][]float64 `yaml:"points"`

	Archive ArchiveConfig `yaml:"archive"`
	Plot    PlotConfig    `yaml:"plot"`
}

type ComplexConfig struct {
	Kind      string  `yaml:"kind"` // freudenthal, star, path, cycle, flag, explicit
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	N         int     `yaml:"n"`
	Simplices [][]int `yaml:"simplices"`
	// MaxDim bounds flag expansion; defaults to filtration max_dim + 1.
	MaxDim    *int    `yaml:"max_dim"`
	Threshold float64 `yaml:"threshold"`
	Closure   bool    `yaml:"closure"`
}

type FiltrationConfig struct {
	Kind            string `yaml:"kind"`
	Sublevel        *bool  `yaml:"sublevel"`
	MaxDim          *int   `yaml:"max_dim"`
	Validate        bool   `yaml:"validate"`
	AcyclicityCheck *bool  `yaml:"acyclicity_check"`
	ColumnOnly      bool   `yaml:"column_only"`
}

type ArchiveConfig struct {
	Kind  string `yaml:"kind"` // empty disables archiving
	Path  string `yaml:"path"`
	RunID string `yaml:"run_id"`
	Step  int    `yaml:"step"`
}

type PlotConfig struct {
	Diagram string `yaml:"diagram"`
	Bars    string `yaml:"bars"`
	BarsDim int    `yaml:"bars_dim"`
	Format  string `yaml:"format"`
	Title   string `yaml:"title"`
}

// LoadConfig reads and parses a YAML run config.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig parses YAML bytes into a Config.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func (cfg *Config) maxDim() int {
	if cfg.Filtration.MaxDim != nil {
		return *cfg.Filtration.MaxDim
	}
	return persistence.DefaultMaxDim
}

// Options translates the filtration section into persistence options.
func (cfg *Config) Options() ([]persistence.Option, error) {
	kind, err := filtration.ParseKind(cfg.Filtration.Kind)
	if err != nil {
		return nil, err
	}
	if cfg.maxDim() < 0 {
		return nil, fmt.Errorf("%w: filtration.max_dim=%d", errConfig, cfg.maxDim())
	}

	opts := []persistence.Option{
		persistence.WithKind(kind),
		persistence.WithMaxDim(cfg.maxDim()),
	}
	if cfg.Filtration.Sublevel != nil {
		opts = append(opts, persistence.WithSublevel(*cfg.Filtration.Sublevel))
	}
	if cfg.Filtration.Validate {
		opts = append(opts, persistence.WithValidation())
	}
	if cfg.Filtration.AcyclicityCheck != nil && !*cfg.Filtration.AcyclicityCheck {
		opts = append(opts, persistence.WithoutAcyclicityCheck())
	}
	if cfg.Filtration.ColumnOnly {
		opts = append(opts, persistence.WithColumnReductionOnly())
	}

	return opts, nil
}

// Input returns the values Compute consumes: the distance matrix of Points
// when present, otherwise Grid flattened row-major, otherwise Values.
func (cfg *Config) Input() ([]float64, error) {
	switch {
	case len(cfg.Points) > 0:
		pts, err := cfg.points()
		if err != nil {
			return nil, err
		}
		return filtration.DistanceMatrix(pts), nil
	case len(cfg.Grid) > 0:
		flat, _, _, err := construct.GridValues(cfg.Grid)
		return flat, err
	default:
		return cfg.Values, nil
	}
}

func (cfg *Config) points() (*mat.Dense, error) {
	n, k := len(cfg.Points), len(cfg.Points[0])
	if k == 0 {
		return nil, fmt.Errorf("%w: points have no coordinates", errConfig)
	}
	data := make([]float64, 0, n*k)
	for i, p := range cfg.Points {
		if len(p) != k {
			return nil, fmt.Errorf("%w: point %d has %d coordinates, want %d", errConfig, i, len(p), k)
		}
		data = append(data, p...)
	}

	return mat.NewDense(n, k, data), nil
}

// RenderOptions resolves the plot section into render options.
func (pc PlotConfig) RenderOptions() ([]render.Option, error) {
	var opts []render.Option
	if pc.Title != "" {
		opts = append(opts, render.WithTitle(pc.Title))
	}
	if pc.Format != "" {
		format, err := render.ParseFormat(pc.Format)
		if err != nil {
			return nil, fmt.Errorf("%w: plot.format: %w", errConfig, err)
		}
		opts = append(opts, render.WithFormat(format))
	}

	return opts, nil
}

// BuildComplex constructs the complex named by the complex section.
func (cfg *Config) BuildComplex() (*simplicial.Complex, error) {
	cc := cfg.Complex
	var opts []construct.Option
	if cc.Closure {
		opts = append(opts, construct.WithClosure())
	}

	var cons construct.Constructor
	switch cc.Kind {
	case "freudenthal", "grid":
		rows, cols := cc.Rows, cc.Cols
		if len(cfg.Grid) > 0 {
			_, r, c, err := construct.GridValues(cfg.Grid)
			if err != nil {
				return nil, err
			}
			rows, cols = r, c
		}
		cons = construct.Freudenthal(rows, cols)
	case "star":
		cons = construct.Star(cc.N)
	case "path":
		cons = construct.Path(cc.N)
	case "cycle":
		cons = construct.Cycle(cc.N)
	case "flag", "rips":
		dist, err := cfg.Input()
		if err != nil {
			return nil, err
		}
		n := len(cfg.Points)
		if n == 0 {
			n = sqrtLen(len(dist))
		}
		maxDim := cfg.maxDim() + 1
		if cc.MaxDim != nil {
			maxDim = *cc.MaxDim
		}
		cons = construct.Flag(dist, n, maxDim, cc.Threshold)
	case "explicit", "":
		cons = construct.Simplices(cc.Simplices)
	default:
		return nil, fmt.Errorf("%w: unknown complex kind %q", errConfig, cc.Kind)
	}

	return construct.Build(opts, cons)
}

// sqrtLen returns n with n*n == length, or -1.
func sqrtLen(length int) int {
	for n := 0; n*n <= length; n++ {
		if n*n == length {
			return n
		}
	}
	return -1
}
