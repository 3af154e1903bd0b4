package linear

import (
	"context"
	"math"
	"time"

	"github.com/YuminosukeSato/lassoviz/core/parallel"
	"github.com/YuminosukeSato/lassoviz/pkg/errors"
	"github.com/YuminosukeSato/lassoviz/pkg/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	// DefaultMaxIter is the pass budget per grid point.
	DefaultMaxIter = 1000
	// DefaultTol is the stopping threshold on the largest coefficient change in a pass.
	DefaultTol = 1e-5
)

// PathEntry is the solution at one grid point.
type PathEntry struct {
	Lambda float64   `json:"lambda"`
	Betas  []float64 `json:"betas"`
	// Iterations is the number of full coordinate passes performed.
	Iterations int `json:"iterations"`
	// Converged is false when the pass budget ran out before the tolerance was met.
	// The coefficients are then a best-effort approximation.
	Converged bool `json:"converged"`
}

// Path holds one entry per grid point, in grid order.
type Path []PathEntry

// Lambdas returns the grid the path was computed on.
func (p Path) Lambdas() []float64 {
	out := make([]float64, len(p))
	for i, e := range p {
		out[i] = e.Lambda
	}
	return out
}

// Coefficient returns the trajectory of feature j along the path.
func (p Path) Coefficient(j int) []float64 {
	out := make([]float64, len(p))
	for i, e := range p {
		out[i] = e.Betas[j]
	}
	return out
}

// AllConverged reports whether every grid point met the tolerance.
func (p Path) AllConverged() bool {
	for _, e := range p {
		if !e.Converged {
			return false
		}
	}
	return true
}

// PathSolver computes LASSO regularization paths by cyclic coordinate descent
// on the objective (1/2n)·||y − Xβ||² + (lambda/n)·||β||₁.
//
// The solver holds configuration only; every Solve call is independent.
type PathSolver struct {
	maxIter int
	tol     float64
	logger  log.Logger
}

// NewPathSolver creates a solver with DefaultMaxIter and DefaultTol.
func NewPathSolver(opts ...Option) *PathSolver {
	s := &PathSolver{
		maxIter: DefaultMaxIter,
		tol:     DefaultTol,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *PathSolver) loggerOrDefault() log.Logger {
	if s.logger != nil {
		return s.logger
	}
	return log.GetLogger()
}

// Solve computes the path over grid, warm-starting each grid point from the
// previous solution (zero before the first). The grid is visited in the order
// given; a decreasing grid keeps adjacent solutions close.
func (s *PathSolver) Solve(X, y mat.Matrix, grid []float64) (Path, error) {
	return s.SolveContext(context.Background(), X, y, grid)
}

// SolveContext is Solve with cancellation checked between grid points.
func (s *PathSolver) SolveContext(ctx context.Context, X, y mat.Matrix, grid []float64) (Path, error) {
	p, err := s.newProblem("PathSolver.Solve", X, y, grid)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	logger := s.loggerOrDefault().With(log.OperationKey, log.OperationSolvePath)
	beta := make([]float64, p.m)
	path := make(Path, 0, len(grid))
	for _, lambda := range grid {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entry := s.descend(p, lambda, beta, logger)
		path = append(path, entry)
	}

	logger.Debug("lasso path solved",
		log.SamplesKey, p.n,
		log.FeaturesKey, p.m,
		log.GridSizeKey, len(grid),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return path, nil
}

// SolveCold solves every grid point from a zero start. Grid points are then
// independent and are distributed across CPU cores; the result is still in grid
// order. Cold starts typically need more passes per point than Solve.
func (s *PathSolver) SolveCold(ctx context.Context, X, y mat.Matrix, grid []float64) (Path, error) {
	p, err := s.newProblem("PathSolver.SolveCold", X, y, grid)
	if err != nil {
		return nil, err
	}

	logger := s.loggerOrDefault().With(log.OperationKey, log.OperationSolvePath)
	path := make(Path, len(grid))
	err = parallel.ParallelizeContext(ctx, len(grid), func(start, end int) error {
		for i := start; i < end; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			path[i] = s.descend(p, grid[i], make([]float64, p.m), logger)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return path, nil
}

// problem caches the column views and the mean squared column norms shared by
// every grid point.
type problem struct {
	n, m int
	cols [][]float64
	z    []float64
	y    []float64
}

func (s *PathSolver) newProblem(op string, X, y mat.Matrix, grid []float64) (*problem, error) {
	n, m := X.Dims()
	if n == 0 || m == 0 {
		return nil, errors.NewValueError(op, "empty design matrix")
	}
	yr, yc := y.Dims()
	if yr != n {
		return nil, errors.NewDimensionError(op, n, yr, 0)
	}
	if yc != 1 {
		return nil, errors.NewDimensionError(op, 1, yc, 1)
	}
	if err := errors.CheckMatrix(op+": X", X, 0); err != nil {
		return nil, err
	}
	if err := errors.CheckMatrix(op+": y", y, 0); err != nil {
		return nil, err
	}
	if len(grid) == 0 {
		return nil, errors.NewDimensionError(op+": lambda grid", 1, 0, 0)
	}
	for _, lambda := range grid {
		if math.IsNaN(lambda) || lambda < 0 {
			return nil, errors.NewValidationError("lambda", "must be a non-negative number", lambda)
		}
	}
	if s.maxIter < 1 {
		return nil, errors.NewValidationError("maxIter", "must be at least 1", s.maxIter)
	}

	p := &problem{
		n:    n,
		m:    m,
		cols: make([][]float64, m),
		z:    make([]float64, m),
		y:    mat.Col(nil, 0, y),
	}
	for j := 0; j < m; j++ {
		p.cols[j] = mat.Col(nil, j, X)
		p.z[j] = floats.Dot(p.cols[j], p.cols[j]) / float64(n)
	}
	return p, nil
}

// descend runs coordinate descent at one lambda, updating beta in place, and
// returns an entry holding a copy of the result.
//
// For coordinate j the partial residual is r_j = y − Xβ + X_j·β_j, so
// rho = X_jᵀr_j/n = X_jᵀr/n + z_j·β_j with the full residual r kept current.
// Columns with z_j == 0 carry no information and are left unchanged.
func (s *PathSolver) descend(p *problem, lambda float64, beta []float64, logger log.Logger) PathEntry {
	n := float64(p.n)
	gamma := lambda / n

	// r = y − Xβ, rebuilt at each grid point so rounding does not accumulate
	// along the path.
	r := make([]float64, p.n)
	copy(r, p.y)
	for j, b := range beta {
		if b != 0 {
			floats.AddScaled(r, -b, p.cols[j])
		}
	}

	var (
		iter      int
		maxDelta  float64
		converged bool
	)
	for iter < s.maxIter {
		maxDelta = 0
		for j := 0; j < p.m; j++ {
			zj := p.z[j]
			if zj == 0 {
				continue
			}
			old := beta[j]
			rho := floats.Dot(p.cols[j], r)/n + zj*old
			updated := SoftThreshold(rho, gamma) / zj
			if delta := updated - old; delta != 0 {
				floats.AddScaled(r, -delta, p.cols[j])
				beta[j] = updated
				if ad := math.Abs(delta); ad > maxDelta {
					maxDelta = ad
				}
			}
		}
		iter++
		if maxDelta < s.tol {
			converged = true
			break
		}
	}

	if !converged {
		errors.Warn(errors.NewConvergenceWarning("CoordinateDescent", iter, lambda, maxDelta))
	}
	if logger.Enabled(context.Background(), log.LevelDebug) {
		logger.Debug("grid point solved",
			log.LambdaKey, lambda,
			log.IterationKey, iter,
			log.ConvergedKey, converged,
			log.MaxDeltaKey, maxDelta,
		)
	}

	out := make([]float64, p.m)
	copy(out, beta)
	return PathEntry{Lambda: lambda, Betas: out, Iterations: iter, Converged: converged}
}
