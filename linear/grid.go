package linear

import (
	"math"

	"github.com/YuminosukeSato/lassoviz/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// LambdaMax returns max_j |X_jᵀy|. With the lambda/n penalty scaling used by
// PathSolver this is the smallest lambda at which every coefficient stays at zero
// from a zero start. The inner products are computed exactly as the solver's
// first pass computes them, so the boundary case yields exact zeros.
func LambdaMax(X, y mat.Matrix) (float64, error) {
	n, m := X.Dims()
	yr, yc := y.Dims()
	if n == 0 || m == 0 {
		return 0, errors.NewValueError("LambdaMax", "empty design matrix")
	}
	if yr != n {
		return 0, errors.NewDimensionError("LambdaMax", n, yr, 0)
	}
	if yc != 1 {
		return 0, errors.NewDimensionError("LambdaMax", 1, yc, 1)
	}
	if err := errors.CheckMatrix("LambdaMax: X", X, 0); err != nil {
		return 0, err
	}
	if err := errors.CheckMatrix("LambdaMax: y", y, 0); err != nil {
		return 0, err
	}

	yv := mat.Col(nil, 0, y)
	col := make([]float64, n)
	abs := make([]float64, m)
	for j := 0; j < m; j++ {
		mat.Col(col, j, X)
		abs[j] = math.Abs(floats.Dot(col, yv))
	}
	return floats.Max(abs), nil
}

// LinearGrid returns count points evenly spaced from lambdaMax down to 0.
func LinearGrid(lambdaMax float64, count int) ([]float64, error) {
	if err := checkGridArgs(lambdaMax, count); err != nil {
		return nil, err
	}
	if count == 1 {
		return []float64{lambdaMax}, nil
	}
	grid := floats.Span(make([]float64, count), lambdaMax, 0)
	grid[0], grid[count-1] = lambdaMax, 0
	return grid, nil
}

// LogGrid returns count log-spaced points from lambdaMax down to ratio·lambdaMax, with
// 0 < ratio <= 1.
func LogGrid(lambdaMax, ratio float64, count int) ([]float64, error) {
	if err := checkGridArgs(lambdaMax, count); err != nil {
		return nil, err
	}
	if !(ratio > 0 && ratio <= 1) {
		return nil, errors.NewValidationError("ratio", "must be in (0, 1]", ratio)
	}
	if lambdaMax == 0 {
		return make([]float64, count), nil
	}
	if count == 1 {
		return []float64{lambdaMax}, nil
	}
	grid := floats.LogSpan(make([]float64, count), lambdaMax, ratio*lambdaMax)
	grid[0], grid[count-1] = lambdaMax, ratio*lambdaMax
	return grid, nil
}

func checkGridArgs(lambdaMax float64, count int) error {
	if count < 1 {
		return errors.NewValidationError("count", "must be at least 1", count)
	}
	if lambdaMax < 0 || math.IsNaN(lambdaMax) || math.IsInf(lambdaMax, 0) {
		return errors.NewValidationError("lambdaMax", "must be a finite non-negative number", lambdaMax)
	}
	return nil
}
