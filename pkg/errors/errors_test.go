package errors

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("PathSolver.Solve", 10, 9, 0)

	want := "lassoviz: PathSolver.Solve: dimension mismatch on axis 0 (rows). Expected 10, got 9"
	assert.Equal(t, want, err.Error())

	var dimErr *DimensionError
	require.True(t, As(err, &dimErr))
	assert.Equal(t, 10, dimErr.Expected)
	assert.Equal(t, 9, dimErr.Got)

	formatted := fmt.Sprintf("%+v", err)
	assert.True(t, strings.Contains(formatted, "errors_test.go"), "expected stack trace to contain test file name")
}

func TestSingularMatrixErrorIsSentinel(t *testing.T) {
	err := NewSingularMatrixError("inference.invert", 3, 1e17)

	assert.True(t, Is(err, ErrSingularMatrix))
	assert.False(t, Is(err, ErrNonPositiveDOF))

	var smErr *SingularMatrixError
	require.True(t, As(err, &smErr))
	assert.Equal(t, 3, smErr.Size)
	assert.Contains(t, err.Error(), "3x3 matrix is singular")
}

func TestDegreesOfFreedomErrorIsSentinel(t *testing.T) {
	err := NewDegreesOfFreedomError("inference.fullModel", 2, 2)

	assert.True(t, Is(err, ErrNonPositiveDOF))
	assert.False(t, Is(err, ErrSingularMatrix))
	assert.Equal(t, "lassoviz: inference.fullModel: non-positive degrees of freedom (n=2, p=2)", err.Error())

	wrapped := Wrap(err, "compute intervals")
	assert.True(t, Is(wrapped, ErrNonPositiveDOF))
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("sigma", "must be non-negative", -1.0)

	assert.Equal(t, "lassoviz: validation failed for parameter 'sigma': must be non-negative (got: -1)", err.Error())
	var vErr *ValidationError
	require.True(t, As(err, &vErr))
	assert.Equal(t, "sigma", vErr.ParamName)
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("Lasso", "Predict")

	want := "lassoviz: Lasso: this model is not fitted yet. Call Fit() before using Predict()"
	assert.Equal(t, want, err.Error())
	var nfErr *NotFittedError
	assert.True(t, As(err, &nfErr))
}

func TestMarshalZerologObject(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logger.Error().EmbedObject(&DimensionError{Op: "Select", Expected: 2, Got: 5, Axis: 1}).Msg("bad index")
	out := buf.String()
	assert.Contains(t, out, `"type":"DimensionError"`)
	assert.Contains(t, out, `"axis_name":"features"`)

	buf.Reset()
	logger.Warn().EmbedObject(NewConvergenceWarning("CoordinateDescent", 1000, 0.5, 2e-5)).Msg("not converged")
	out = buf.String()
	assert.Contains(t, out, `"iterations":1000`)
	assert.Contains(t, out, `"lambda":0.5`)
}

func TestWarnRouting(t *testing.T) {
	var fallback, zl []error
	SetWarningHandler(func(w error) { fallback = append(fallback, w) })
	t.Cleanup(func() {
		SetZerologWarnFunc(nil)
		SetWarningHandler(func(w error) {})
	})

	w := NewConvergenceWarning("CoordinateDescent", 10, 1, 0.1)
	Warn(w)
	require.Len(t, fallback, 1)
	assert.Contains(t, fallback[0].Error(), "failed to converge after 10 iterations")

	SetZerologWarnFunc(func(w error) { zl = append(zl, w) })
	Warn(w)
	assert.Len(t, fallback, 1, "zerolog sink takes priority")
	assert.Len(t, zl, 1)
}

func TestCheckNumericalStability(t *testing.T) {
	assert.NoError(t, CheckNumericalStability("ok", []float64{1, 2, 3}, 0))
	assert.NoError(t, CheckScalar("ok", 0.5, 0))

	err := CheckScalar("sqrt", math.NaN(), 4)
	require.Error(t, err)
	var nErr *NumericalInstabilityError
	require.True(t, As(err, &nErr))
	assert.Equal(t, 4, nErr.Iteration)
}
