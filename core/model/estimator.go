package model

import "gonum.org/v1/gonum/mat"

// Fitter は学習可能なモデルのインターフェース
type Fitter interface {
	Fit(X, y mat.Matrix) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Regressor is a fitted linear model without intercept.
type Regressor interface {
	Fitter
	Predictor
	// Coef returns a copy of the fitted coefficients.
	Coef() []float64
	// Score returns the coefficient of determination R² on (X, y).
	Score(X, y mat.Matrix) (float64, error)
}
