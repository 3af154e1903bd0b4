// Package commands implements the lassoviz command tree.
package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/YuminosukeSato/lassoviz/config"
	"github.com/YuminosukeSato/lassoviz/pkg/errors"
	"github.com/YuminosukeSato/lassoviz/pkg/log"
)

var (
	vip        = config.NewViper()
	configPath string

	// loaded is set by PersistentPreRunE before any subcommand runs.
	loaded *config.Config
)

// RootCmd is the lassoviz entry point.
var RootCmd = &cobra.Command{
	Use:   "lassoviz",
	Short: "LASSO solution paths and post-selection confidence intervals",
	Long: `lassoviz generates a synthetic linear-regression problem, solves the LASSO
path over a lambda grid by coordinate descent, and compares two confidence
interval families for the features selected at a chosen path point.

Available commands:
  path       - Solve the path and print the coefficients per lambda
  intervals  - Print the full-model and restricted intervals at one path point
  plot       - Render the solution path and the interval chart as PNG
  presets    - List the built-in parameter presets

Examples:
  lassoviz path --seed 1
  lassoviz intervals --preset one-zero --index 60
  lassoviz plot --n 200 --betas 1,0.5,0 --m 3 --out path.png --ci ci.png`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(vip, configPath)
		if err != nil {
			return err
		}
		jsonLogs, _ := cmd.Flags().GetBool("log-json")
		if err := setupLogging(cfg.Log, jsonLogs); err != nil {
			return err
		}
		loaded = cfg
		return nil
	},
}

func init() {
	pf := RootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "TOML config file")
	pf.String("log-level", "warn", "Log level (debug, info, warn, error)")
	pf.Bool("log-json", false, "Write JSON log records instead of console output")

	pf.Int("n", 100, "Number of samples")
	pf.Int("m", 2, "Number of features")
	pf.StringSlice("betas", []string{"1", "1"}, "True coefficients, zero-padded or truncated to m")
	pf.Float64("sigma", 1, "Noise standard deviation")
	pf.Uint64("seed", 0, "Random seed (0 uses system entropy)")
	pf.String("preset", "", "Parameter preset (overrides n, m, betas, sigma)")
	pf.Bool("standardize", false, "Standardize X before solving")

	pf.Int("grid-size", 100, "Number of lambda grid points")
	pf.String("spacing", "linear", "Lambda grid spacing (linear, log)")
	pf.Float64("ratio", 0.01, "Smallest lambda as a fraction of lambda max (log spacing)")
	pf.Int("max-iter", 1000, "Coordinate descent passes per grid point")
	pf.Float64("tol", 1e-5, "Convergence tolerance on the largest coefficient change")
	pf.Bool("cold", false, "Solve every grid point from zero, in parallel")

	mustBind(vip, map[string]string{
		"log.level":        "log-level",
		"data.n":           "n",
		"data.m":           "m",
		"data.betas":       "betas",
		"data.sigma":       "sigma",
		"data.seed":        "seed",
		"data.preset":      "preset",
		"data.standardize": "standardize",
		"path.grid_size":   "grid-size",
		"path.spacing":     "spacing",
		"path.ratio":       "ratio",
		"path.max_iter":    "max-iter",
		"path.tol":         "tol",
		"path.cold_start":  "cold",
	})

	RootCmd.AddCommand(PathCmd)
	RootCmd.AddCommand(IntervalsCmd)
	RootCmd.AddCommand(PlotCmd)
	RootCmd.AddCommand(PresetsCmd)
}

func mustBind(v *viper.Viper, keys map[string]string) {
	for key, flag := range keys {
		if err := v.BindPFlag(key, RootCmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func setupLogging(cfg config.LogConfig, jsonLogs bool) error {
	if err := log.SetupLogger(cfg.Level); err != nil {
		return errors.Wrap(err, "setup slog")
	}
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	var logger log.Logger
	if cfg.Console && !jsonLogs {
		logger = log.NewConsoleLogger(os.Stderr, level)
	} else {
		logger = log.NewZerologLogger(os.Stderr, level)
	}
	log.SetLogger(logger)
	log.InstallWarnHook(logger)
	return nil
}
