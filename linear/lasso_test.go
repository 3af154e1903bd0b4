package linear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/lassoviz/pkg/errors"
)

func TestLassoFitPredictScore(t *testing.T) {
	X, y := generate(t, 200, []float64{3, 0, -2}, 0, 4)

	l := NewLasso(0, WithTol(1e-10))
	require.NoError(t, l.Fit(X, y))
	assert.InDeltaSlice(t, []float64{3, 0, -2}, l.Coef(), 1e-6)
	assert.True(t, l.Converged())
	assert.Greater(t, l.NIter(), 0)

	score, err := l.Score(X, y)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestLassoShrinksTowardZero(t *testing.T) {
	X, y := generate(t, 100, []float64{1, 1}, 1, 9)

	ols := NewLasso(0)
	require.NoError(t, ols.Fit(X, y))
	pen := NewLasso(20)
	require.NoError(t, pen.Fit(X, y))

	var l1OLS, l1Pen float64
	for j := range ols.Coef() {
		l1OLS += abs(ols.Coef()[j])
		l1Pen += abs(pen.Coef()[j])
	}
	assert.Less(t, l1Pen, l1OLS)
}

func TestLassoNotFitted(t *testing.T) {
	l := NewLasso(1)
	_, err := l.Predict(mat.NewDense(2, 2, nil))
	var nfErr *errors.NotFittedError
	assert.True(t, errors.As(err, &nfErr))
	assert.Nil(t, l.Coef())
}

func TestLassoPredictFeatureMismatch(t *testing.T) {
	X, y := generate(t, 20, []float64{1, 1}, 0.1, 2)
	l := NewLasso(0.1)
	require.NoError(t, l.Fit(X, y))

	_, err := l.Predict(mat.NewDense(3, 3, nil))
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))
}

func TestLassoRejectsNegativeLambda(t *testing.T) {
	X, y := generate(t, 10, []float64{1}, 0.1, 2)
	err := NewLasso(-1).Fit(X, y)
	var vErr *errors.ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
