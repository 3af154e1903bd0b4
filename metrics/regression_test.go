package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func col(v ...float64) *mat.Dense {
	return mat.NewDense(len(v), 1, v)
}

func TestMSE(t *testing.T) {
	tests := []struct {
		name      string
		yTrue     mat.Matrix
		yPred     mat.Matrix
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "perfect prediction",
			yTrue:     col(1, 2, 3, 4, 5),
			yPred:     col(1, 2, 3, 4, 5),
			want:      0,
			tolerance: 1e-12,
		},
		{
			name:      "simple case",
			yTrue:     col(1, 2, 3, 4),
			yPred:     col(1.5, 2.5, 2.5, 3.5),
			want:      0.25,
			tolerance: 1e-12,
		},
		{
			name:    "row mismatch",
			yTrue:   col(1, 2, 3),
			yPred:   col(1, 2),
			wantErr: true,
		},
		{
			name:    "not a column vector",
			yTrue:   mat.NewDense(2, 2, []float64{1, 2, 3, 4}),
			yPred:   mat.NewDense(2, 2, []float64{1, 2, 3, 4}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MSE(tt.yTrue, tt.yPred)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, tt.tolerance)
		})
	}
}

func TestMSEDoesNotMutateInputs(t *testing.T) {
	yTrue := col(1, 2, 3)
	_, err := MSE(yTrue, col(0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 2.0, yTrue.At(1, 0))
}

func TestRMSE(t *testing.T) {
	got, err := RMSE(col(0, 0), col(3, 4))
	require.NoError(t, err)
	assert.InDelta(t, 3.5355339059, got, 1e-9)
}

func TestR2Score(t *testing.T) {
	got, err := R2Score(col(1, 2, 3, 4), col(1, 2, 3, 4))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)

	got, err = R2Score(col(1, 2, 3, 4), col(2.5, 2.5, 2.5, 2.5))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got, 1e-12)

	_, err = R2Score(col(2, 2, 2), col(1, 2, 3))
	assert.Error(t, err)
}
