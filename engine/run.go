package engine

import (
	"context"
	"time"

	"github.com/YuminosukeSato/lassoviz/datasets"
	"github.com/YuminosukeSato/lassoviz/linear"
	"github.com/YuminosukeSato/lassoviz/pkg/errors"
	"github.com/YuminosukeSato/lassoviz/pkg/log"
	"github.com/YuminosukeSato/lassoviz/preprocessing"
	"github.com/YuminosukeSato/lassoviz/random"
	"gonum.org/v1/gonum/mat"
)

// Spacing selects how the lambda grid is laid out.
type Spacing string

const (
	// SpacingLinear is lambdaMax·(1 − i/(k−1)), ending at exactly 0.
	SpacingLinear Spacing = "linear"
	// SpacingLog is log-spaced from lambdaMax down to Ratio·lambdaMax.
	SpacingLog Spacing = "log"
)

// NoIntervals as Request.PathIndex skips the inference stage.
const NoIntervals = -1

// Request is one generate → solve → infer cycle.
type Request struct {
	N     int
	M     int
	Betas []float64
	Sigma float64
	// Seed 0 draws from system entropy.
	Seed uint64

	GridSize int
	Spacing  Spacing
	Ratio    float64
	MaxIter  int
	Tol      float64
	// ColdStart solves every grid point from zero, in parallel.
	ColdStart bool

	// Standardize scales X to zero mean and unit variance before solving.
	Standardize bool
	// PathIndex is the grid point for inference, or NoIntervals.
	PathIndex int
}

// DefaultRequest matches the interactive tool's initial state.
func DefaultRequest() Request {
	return Request{
		N:         100,
		M:         2,
		Betas:     []float64{1, 1},
		Sigma:     1,
		GridSize:  100,
		Spacing:   SpacingLinear,
		Ratio:     0.01,
		MaxIter:   linear.DefaultMaxIter,
		Tol:       linear.DefaultTol,
		PathIndex: NoIntervals,
	}
}

// Outcome is everything one Request produced.
type Outcome struct {
	Data *datasets.Dataset
	// Design is the matrix the path was solved on: Data.X, or its standardized copy.
	Design    *mat.Dense
	Scaler    *preprocessing.StandardScaler
	LambdaMax float64
	Grid      []float64
	Path      linear.Path
	// Intervals and Fit are nil when the request skipped inference.
	Intervals *Intervals
	Fit       *FitReport
}

// Run executes req. Cancellation is checked between stages and between grid
// points.
func Run(ctx context.Context, req Request, logger log.Logger) (*Outcome, error) {
	if logger == nil {
		logger = log.GetLogger()
	}
	start := time.Now()

	src := random.NewEntropySource()
	if req.Seed != 0 {
		src = random.NewSource(req.Seed)
	}
	data, err := GenerateData(req.N, req.M, req.Betas, req.Sigma, random.NewNormalGenerator(src))
	if err != nil {
		return nil, err
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	out := &Outcome{Data: data, Design: data.X}
	if req.Standardize {
		out.Scaler = preprocessing.NewStandardScalerDefault()
		if out.Design, err = out.Scaler.FitTransform(data.X); err != nil {
			return nil, err
		}
	}

	if out.LambdaMax, err = linear.LambdaMax(out.Design, data.Y); err != nil {
		return nil, err
	}
	if out.Grid, err = buildGrid(req, out.LambdaMax); err != nil {
		return nil, err
	}

	opts := []linear.Option{linear.WithLogger(logger)}
	if req.MaxIter > 0 {
		opts = append(opts, linear.WithMaxIter(req.MaxIter))
	}
	if req.Tol > 0 {
		opts = append(opts, linear.WithTol(req.Tol))
	}
	solver := linear.NewPathSolver(opts...)
	if req.ColdStart {
		out.Path, err = solver.SolveCold(ctx, out.Design, data.Y, out.Grid)
	} else {
		out.Path, err = solver.SolveContext(ctx, out.Design, data.Y, out.Grid)
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if req.PathIndex != NoIntervals {
		if err := checkContext(ctx); err != nil {
			return nil, err
		}
		out.Intervals, err = ComputeConfidenceIntervals(out.Design, data.Y, nil, req.PathIndex, out.Path)
		if err != nil {
			return nil, err
		}
		if out.Fit, err = FitAt(out.Design, data.Y, out.Intervals.Lambda, opts...); err != nil {
			return nil, err
		}
	}

	logger.Info("run completed",
		log.SamplesKey, req.N,
		log.FeaturesKey, req.M,
		log.GridSizeKey, len(out.Grid),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return out, nil
}

func buildGrid(req Request, lambdaMax float64) ([]float64, error) {
	switch req.Spacing {
	case SpacingLinear, "":
		return linear.LinearGrid(lambdaMax, req.GridSize)
	case SpacingLog:
		return linear.LogGrid(lambdaMax, req.Ratio, req.GridSize)
	default:
		return nil, errors.NewValidationError("spacing", "must be \"linear\" or \"log\"", string(req.Spacing))
	}
}
