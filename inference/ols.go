package inference

import (
	"math"

	"github.com/YuminosukeSato/lassoviz/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// olsFit is an ordinary least-squares fit without intercept.
type olsFit struct {
	beta   []float64
	se     []float64
	sigma2 float64
}

// fitOLS solves the normal equations with the Gram matrix scaled by 1/scale:
//
//	M = (XᵀX/scale)⁻¹,  beta = M·Xᵀy/scale,  se_i = sqrt(sigma2·M_ii/scale)
//
// with sigma2 = ||y − X·beta||²/(n − p). Any positive scale gives the same
// estimates; it only changes the matrix that is inverted.
func fitOLS(op string, X mat.Matrix, y []float64, scale, maxCond float64) (*olsFit, error) {
	n, p := X.Dims()
	dof := n - p
	if dof <= 0 {
		return nil, errors.NewDegreesOfFreedomError(op, n, p)
	}

	var gram mat.Dense
	gram.Mul(X.T(), X)
	gram.Scale(1/scale, &gram)

	if cond := mat.Cond(&gram, 1); math.IsNaN(cond) || cond > maxCond {
		return nil, errors.NewSingularMatrixError(op, p, cond)
	}

	var inv mat.Dense
	if err := inv.Inverse(&gram); err != nil {
		cond := math.Inf(1)
		var c mat.Condition
		if errors.As(err, &c) {
			cond = float64(c)
		}
		return nil, errors.NewSingularMatrixError(op, p, cond)
	}
	if err := errors.CheckMatrix(op, &inv, 0); err != nil {
		return nil, err
	}

	yv := mat.NewVecDense(n, y)
	var xty mat.VecDense
	xty.MulVec(X.T(), yv)
	xty.ScaleVec(1/scale, &xty)

	beta := make([]float64, p)
	mat.NewVecDense(p, beta).MulVec(&inv, &xty)

	fitted := make([]float64, n)
	mat.NewVecDense(n, fitted).MulVec(X, mat.NewVecDense(p, beta))
	resid := make([]float64, n)
	floats.SubTo(resid, y, fitted)
	sigma2 := floats.Dot(resid, resid) / float64(dof)

	se := make([]float64, p)
	for i := range se {
		se[i] = math.Sqrt(sigma2 * inv.At(i, i) / scale)
	}
	if err := errors.CheckNumericalStability(op, se, 0); err != nil {
		return nil, err
	}

	return &olsFit{beta: beta, se: se, sigma2: sigma2}, nil
}
