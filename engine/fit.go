package engine

import (
	"github.com/YuminosukeSato/lassoviz/linear"
	"github.com/YuminosukeSato/lassoviz/metrics"
	"github.com/YuminosukeSato/lassoviz/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// FitReport is the in-sample quality of a single-lambda LASSO fit.
type FitReport struct {
	Lambda     float64   `json:"lambda"`
	Coef       []float64 `json:"coef"`
	R2         float64   `json:"r2"`
	MSE        float64   `json:"mse"`
	RMSE       float64   `json:"rmse"`
	Iterations int       `json:"iterations"`
	Converged  bool      `json:"converged"`
}

// FitAt fits a Lasso at lambda from a zero start and scores it on the data it
// was fitted on.
func FitAt(X, y mat.Matrix, lambda float64, opts ...linear.Option) (*FitReport, error) {
	model := linear.NewLasso(lambda, opts...)
	if err := model.Fit(X, y); err != nil {
		return nil, errors.Wrapf(err, "FitAt: lambda=%g", lambda)
	}
	pred, err := model.Predict(X)
	if err != nil {
		return nil, err
	}

	report := &FitReport{
		Lambda:     lambda,
		Coef:       model.Coef(),
		Iterations: model.NIter(),
		Converged:  model.Converged(),
	}
	if report.R2, err = model.Score(X, y); err != nil {
		return nil, err
	}
	if report.MSE, err = metrics.MSE(y, pred); err != nil {
		return nil, err
	}
	if report.RMSE, err = metrics.RMSE(y, pred); err != nil {
		return nil, err
	}
	return report, nil
}
