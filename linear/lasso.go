package linear

import (
	"math"

	"github.com/YuminosukeSato/lassoviz/core/model"
	"github.com/YuminosukeSato/lassoviz/metrics"
	"github.com/YuminosukeSato/lassoviz/pkg/errors"
	"github.com/YuminosukeSato/lassoviz/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// Lasso is a single-lambda LASSO regression without intercept, fitted with the
// same coordinate descent as PathSolver.
type Lasso struct {
	state  *model.StateManager
	lambda float64
	solver *PathSolver

	coef      []float64
	nIter     int
	converged bool
}

var _ model.Regressor = (*Lasso)(nil)

// NewLasso creates a Lasso with penalty lambda (applied as lambda/n, matching
// PathSolver).
func NewLasso(lambda float64, opts ...Option) *Lasso {
	return &Lasso{
		state:  model.NewStateManager(),
		lambda: lambda,
		solver: NewPathSolver(opts...),
	}
}

// Fit はモデルを訓練データで学習させる
func (l *Lasso) Fit(X, y mat.Matrix) error {
	if math.IsNaN(l.lambda) || l.lambda < 0 {
		return errors.NewValidationError("lambda", "must be a non-negative number", l.lambda)
	}
	path, err := l.solver.Solve(X, y, []float64{l.lambda})
	if err != nil {
		return errors.Wrap(err, "Lasso.Fit")
	}

	entry := path[0]
	l.coef = entry.Betas
	l.nIter = entry.Iterations
	l.converged = entry.Converged

	n, m := X.Dims()
	l.state.SetFitted(m, n)
	l.solver.loggerOrDefault().Debug("lasso fitted",
		log.ModelNameKey, "Lasso",
		log.OperationKey, log.OperationFit,
		log.LambdaKey, l.lambda,
		log.ActiveFeaturesKey, countNonZero(l.coef),
	)
	return nil
}

// Predict は入力データに対する予測を行う
func (l *Lasso) Predict(X mat.Matrix) (mat.Matrix, error) {
	if err := l.state.RequireFitted("Lasso", "Predict"); err != nil {
		return nil, err
	}
	r, c := X.Dims()
	if err := l.state.RequireFeatures("Lasso.Predict", c); err != nil {
		return nil, err
	}
	pred := mat.NewDense(r, 1, nil)
	pred.Mul(X, mat.NewVecDense(c, l.Coef()))
	return pred, nil
}

// Score はモデルの決定係数（R²）を計算する
func (l *Lasso) Score(X, y mat.Matrix) (float64, error) {
	pred, err := l.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.R2Score(y, pred)
}

// Coef returns a copy of the fitted coefficients, or nil before Fit.
func (l *Lasso) Coef() []float64 {
	if l.coef == nil {
		return nil
	}
	out := make([]float64, len(l.coef))
	copy(out, l.coef)
	return out
}

// NIter returns the number of coordinate passes used by the last Fit.
func (l *Lasso) NIter() int {
	return l.nIter
}

// Converged reports whether the last Fit met the tolerance.
func (l *Lasso) Converged() bool {
	return l.converged
}

func countNonZero(v []float64) int {
	n := 0
	for _, x := range v {
		if x != 0 {
			n++
		}
	}
	return n
}
