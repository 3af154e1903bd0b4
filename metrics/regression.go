// Package metrics provides regression quality measures on column vectors.
package metrics

import (
	"math"

	"github.com/YuminosukeSato/lassoviz/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// columns validates that yTrue and yPred are non-empty n×1 matrices of equal
// length and returns their contents.
func columns(op string, yTrue, yPred mat.Matrix) (t, p []float64, err error) {
	rTrue, cTrue := yTrue.Dims()
	rPred, cPred := yPred.Dims()
	if rTrue == 0 || cTrue == 0 {
		return nil, nil, errors.NewValueError(op, "empty input")
	}
	if cTrue != 1 {
		return nil, nil, errors.NewDimensionError(op, 1, cTrue, 1)
	}
	if cPred != 1 {
		return nil, nil, errors.NewDimensionError(op, 1, cPred, 1)
	}
	if rPred != rTrue {
		return nil, nil, errors.NewDimensionError(op, rTrue, rPred, 0)
	}
	return mat.Col(nil, 0, yTrue), mat.Col(nil, 0, yPred), nil
}

// MSE は平均二乗誤差（Mean Squared Error）を計算する
func MSE(yTrue, yPred mat.Matrix) (float64, error) {
	t, p, err := columns("MSE", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	floats.Sub(t, p)
	return floats.Dot(t, t) / float64(len(t)), nil
}

// RMSE は平方根平均二乗誤差を計算する
func RMSE(yTrue, yPred mat.Matrix) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// R2Score は決定係数（R²）を計算する
func R2Score(yTrue, yPred mat.Matrix) (float64, error) {
	t, p, err := columns("R2Score", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	mean := stat.Mean(t, nil)
	var tss, rss float64
	for i := range t {
		tss += (t[i] - mean) * (t[i] - mean)
		rss += (t[i] - p[i]) * (t[i] - p[i])
	}
	if tss == 0 {
		return 0, errors.NewValueError("R2Score", "total sum of squares is zero (no variance in yTrue)")
	}
	return 1 - rss/tss, nil
}
