// Package engine is the boundary consumed by the presentation layer: it
// generates data, solves the LASSO path and computes the interval families at a
// chosen path point.
package engine

import (
	"context"
	"math"

	"github.com/YuminosukeSato/lassoviz/datasets"
	"github.com/YuminosukeSato/lassoviz/inference"
	"github.com/YuminosukeSato/lassoviz/linear"
	"github.com/YuminosukeSato/lassoviz/pkg/errors"
	"github.com/YuminosukeSato/lassoviz/random"
	"gonum.org/v1/gonum/mat"
)

// GenerateData draws a synthetic problem. A nil gen uses system entropy.
func GenerateData(n, m int, betas []float64, sigma float64, gen *random.NormalGenerator) (*datasets.Dataset, error) {
	return datasets.Generate(n, m, betas, sigma, gen)
}

// ComputeLassoPath solves the warm-started path over grid.
func ComputeLassoPath(X, y mat.Matrix, grid []float64, opts ...linear.Option) (linear.Path, error) {
	return linear.NewPathSolver(opts...).Solve(X, y, grid)
}

// Intervals is the inference output at one path point.
type Intervals struct {
	// SelectiveCI is the full-model interval family; see package inference for
	// why it is only an approximation of selective inference.
	SelectiveCI []inference.Interval `json:"selective_ci"`
	NaiveCI     []inference.Interval `json:"naive_ci"`
	ActiveSet   []int                `json:"active_set"`
	PathIndex   int                  `json:"path_index"`
	Lambda      float64              `json:"lambda"`
	// Betas are the LASSO coefficients the active set was read from.
	Betas  []float64         `json:"betas"`
	Detail *inference.Result `json:"-"`
}

// NoSelection reports the zero-active-feature state.
func (iv *Intervals) NoSelection() bool {
	return len(iv.ActiveSet) == 0
}

// ComputeConfidenceIntervals computes both interval families at path[pathIndex].
// betaAtIndex overrides the coefficients stored in the path entry; pass nil to
// use them.
func ComputeConfidenceIntervals(X, y mat.Matrix, betaAtIndex []float64, pathIndex int, path linear.Path, opts ...inference.Option) (*Intervals, error) {
	const op = "ComputeConfidenceIntervals"

	if len(path) == 0 {
		return nil, errors.NewDimensionError(op+": path", 1, 0, 0)
	}
	if pathIndex < 0 || pathIndex >= len(path) {
		return nil, errors.NewValidationError("pathIndex", "out of range for path", pathIndex)
	}
	_, m := X.Dims()
	entry := path[pathIndex]
	if len(entry.Betas) != m {
		return nil, errors.NewDimensionError(op+": path entry", m, len(entry.Betas), 1)
	}

	beta := betaAtIndex
	if beta == nil {
		beta = entry.Betas
	}

	res, err := inference.ComputeIntervals(X, y, beta, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "%s at path index %d", op, pathIndex)
	}

	betas := make([]float64, len(beta))
	copy(betas, beta)
	return &Intervals{
		SelectiveCI: res.FullModel,
		NaiveCI:     res.Restricted,
		ActiveSet:   res.ActiveSet,
		PathIndex:   pathIndex,
		Lambda:      entry.Lambda,
		Betas:       betas,
		Detail:      res,
	}, nil
}

// MidIndex returns the middle index of a path of the given length.
func MidIndex(length int) int {
	if length <= 0 {
		return 0
	}
	return int(math.Floor(float64(length-1) / 2))
}

func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
