package config

import (
	"math"

	"github.com/YuminosukeSato/lassoviz/pkg/log"
	"github.com/YuminosukeSato/lassoviz/pkg/errors"
)

func invalid(param, reason string, value interface{}) error {
	return errors.NewValidationError(param, reason, value)
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Data.N < 1 {
		return invalid("data.n", "must be >= 1", c.Data.N)
	}
	if c.Data.M < 1 {
		return invalid("data.m", "must be >= 1", c.Data.M)
	}
	if c.Data.Sigma < 0 || math.IsNaN(c.Data.Sigma) {
		return invalid("data.sigma", "must be >= 0", c.Data.Sigma)
	}

	if c.Path.GridSize < 1 {
		return invalid("path.grid_size", "must be >= 1", c.Path.GridSize)
	}
	switch c.Path.Spacing {
	case "linear":
	case "log":
		// ratio is only meaningful for log spacing
		if !(c.Path.Ratio > 0 && c.Path.Ratio <= 1) {
			return invalid("path.ratio", "must be in (0, 1]", c.Path.Ratio)
		}
	default:
		return invalid("path.spacing", "must be \"linear\" or \"log\"", c.Path.Spacing)
	}
	if c.Path.MaxIter < 1 {
		return invalid("path.max_iter", "must be >= 1", c.Path.MaxIter)
	}
	if !(c.Path.Tol > 0) {
		return invalid("path.tol", "must be > 0", c.Path.Tol)
	}
	if c.Path.Index >= c.Path.GridSize {
		return invalid("path.index", "must be < path.grid_size", c.Path.Index)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level", "must be debug, info, warn or error", c.Log.Level)
	}

	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return invalid("plot", "width and height must be > 0", [2]float64{c.Plot.Width, c.Plot.Height})
	}
	return nil
}
