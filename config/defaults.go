package config

import (
	"github.com/YuminosukeSato/lassoviz/linear"
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Data defaults (the interactive tool's initial state)
	v.SetDefault("data.n", 100)
	v.SetDefault("data.m", 2)
	v.SetDefault("data.betas", []float64{1, 1})
	v.SetDefault("data.sigma", 1.0)
	v.SetDefault("data.seed", 0) // system entropy
	v.SetDefault("data.preset", "")
	v.SetDefault("data.standardize", false)

	// Path defaults
	v.SetDefault("path.grid_size", 100)
	v.SetDefault("path.spacing", "linear")
	v.SetDefault("path.ratio", 0.01) // log spacing only
	v.SetDefault("path.max_iter", linear.DefaultMaxIter)
	v.SetDefault("path.tol", linear.DefaultTol)
	v.SetDefault("path.index", -1) // middle of the grid
	v.SetDefault("path.cold_start", false)

	// Log defaults
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.console", true)

	// Plot defaults (inches)
	v.SetDefault("plot.width", 8.0)
	v.SetDefault("plot.height", 5.0)
}
