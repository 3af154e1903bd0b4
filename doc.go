// Package lassoviz computes LASSO solution paths and compares confidence
// intervals for the selected features, for use behind an interactive
// visualizer or from the command line.
//
// A run has three stages: synthetic data generation, a warm-started
// coordinate-descent path over a lambda grid, and inference at one chosen
// path point.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/lassoviz/engine"
//	)
//
//	func main() {
//	    req := engine.DefaultRequest()
//	    req.Seed = 42      // reproducible data
//	    req.PathIndex = 60 // compute intervals at this grid point
//
//	    out, err := engine.Run(context.Background(), req, nil)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if out.Intervals.NoSelection() {
//	        fmt.Println("no features selected")
//	        return
//	    }
//	    fmt.Println(out.Intervals.ActiveSet, out.Intervals.NaiveCI)
//	}
//
// # Packages
//
//   - random: seedable Box–Muller standard-normal generator
//   - datasets: synthetic design and response, presets
//   - linear: soft-thresholding, PathSolver, lambda grids, Lasso estimator
//   - inference: column selection, active set, interval families
//   - engine: the boundary functions and the cancel-on-resubmit Session
//   - plotting: solution path and interval charts (gonum/plot)
//   - config: viper-backed configuration
//   - preprocessing: StandardScaler
//   - metrics: MSE, RMSE, R²
//   - core/model, core/parallel: estimator state and chunked parallel loops
//   - pkg/errors, pkg/log: structured errors and logging
//
// # Intervals
//
// The "selective" family is full-model OLS reported at the selected
// coordinates. It ignores the selection event and is not a valid
// post-selection interval; it is kept for comparison with the "naive"
// restricted-model family.
//
// # License
//
// lassoviz is released under the MIT License.
package lassoviz
