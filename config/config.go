// Package config loads run parameters from defaults, a TOML file and
// LASSOVIZ_* environment variables using viper.
package config

import (
	"github.com/YuminosukeSato/lassoviz/datasets"
	"github.com/YuminosukeSato/lassoviz/engine"
)

// Config is the full set of run parameters.
type Config struct {
	Data DataConfig `mapstructure:"data"`
	Path PathConfig `mapstructure:"path"`
	Log  LogConfig  `mapstructure:"log"`
	Plot PlotConfig `mapstructure:"plot"`
}

// DataConfig controls synthetic data generation.
type DataConfig struct {
	N     int       `mapstructure:"n"`
	M     int       `mapstructure:"m"`
	Betas []float64 `mapstructure:"betas"`
	Sigma float64   `mapstructure:"sigma"`
	// Seed 0 uses system entropy.
	Seed uint64 `mapstructure:"seed"`
	// Preset, when set, replaces N, M, Betas and Sigma.
	Preset      string `mapstructure:"preset"`
	Standardize bool   `mapstructure:"standardize"`
}

// PathConfig controls the lambda grid and the solver.
type PathConfig struct {
	GridSize int     `mapstructure:"grid_size"`
	Spacing  string  `mapstructure:"spacing"`
	Ratio    float64 `mapstructure:"ratio"`
	MaxIter  int     `mapstructure:"max_iter"`
	Tol      float64 `mapstructure:"tol"`
	// ColdStart disables warm starts and solves grid points in parallel.
	ColdStart bool `mapstructure:"cold_start"`
	// Index is the path point used for intervals; negative selects the middle.
	Index int `mapstructure:"index"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
}

// PlotConfig is the image size in inches.
type PlotConfig struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

// applyPreset overwrites the data parameters with the named preset.
func (c *Config) applyPreset() error {
	if c.Data.Preset == "" {
		return nil
	}
	p, ok := datasets.LookupPreset(c.Data.Preset)
	if !ok {
		return invalid("data.preset", "unknown preset", c.Data.Preset)
	}
	c.Data.N, c.Data.M, c.Data.Sigma = p.N, p.M, p.Sigma
	c.Data.Betas = append([]float64(nil), p.Betas...)
	return nil
}

// Request converts the configuration into an engine request. pathIndex is
// passed through unchanged so callers can choose engine.NoIntervals.
func (c *Config) Request(pathIndex int) engine.Request {
	return engine.Request{
		N:           c.Data.N,
		M:           c.Data.M,
		Betas:       append([]float64(nil), c.Data.Betas...),
		Sigma:       c.Data.Sigma,
		Seed:        c.Data.Seed,
		GridSize:    c.Path.GridSize,
		Spacing:     engine.Spacing(c.Path.Spacing),
		Ratio:       c.Path.Ratio,
		MaxIter:     c.Path.MaxIter,
		Tol:         c.Path.Tol,
		ColdStart:   c.Path.ColdStart,
		Standardize: c.Data.Standardize,
		PathIndex:   pathIndex,
	}
}

// ResolveIndex maps a negative Path.Index to the middle of the grid.
func (c *Config) ResolveIndex() int {
	if c.Path.Index < 0 {
		return engine.MidIndex(c.Path.GridSize)
	}
	return c.Path.Index
}
