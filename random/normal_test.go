package random

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/lassoviz/pkg/errors"
)

type sequenceSource struct {
	values []float64
	calls  int
}

func (s *sequenceSource) Float64() float64 {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v
}

func TestBoxMullerRedrawsZeroU(t *testing.T) {
	src := &sequenceSource{values: []float64{0, math.Exp(-0.5), 0}}
	g := NewNormalGenerator(src)

	got := g.Float64()
	assert.InDelta(t, 1.0, got, 1e-12)
	assert.Equal(t, 3, src.calls)
}

func TestBoxMullerHalfTurn(t *testing.T) {
	g := NewNormalGenerator(&sequenceSource{values: []float64{math.Exp(-2), 0.5}})
	assert.InDelta(t, -2.0, g.Float64(), 1e-12)
}

func TestSeededGeneratorsAreReproducible(t *testing.T) {
	a, err := NewNormalGenerator(NewSource(42)).NormalMatrix(5, 3, 0, 1)
	require.NoError(t, err)
	b, err := NewNormalGenerator(NewSource(42)).NormalMatrix(5, 3, 0, 1)
	require.NoError(t, err)
	assert.True(t, mat.Equal(a, b))

	c, err := NewNormalGenerator(NewSource(43)).NormalMatrix(5, 3, 0, 1)
	require.NoError(t, err)
	assert.False(t, mat.Equal(a, c))
}

func TestNormalMatrixMoments(t *testing.T) {
	g := NewNormalGenerator(NewSource(7))
	m, err := g.NormalMatrix(20000, 1, 3, 2)
	require.NoError(t, err)

	mean, std := stat.MeanStdDev(m.RawMatrix().Data, nil)
	assert.InDelta(t, 3.0, mean, 0.05)
	assert.InDelta(t, 2.0, std, 0.05)
}

func TestNormalMatrixZeroStdIsConstant(t *testing.T) {
	m, err := NewNormalGenerator(NewSource(1)).NormalMatrix(4, 2, 1.5, 0)
	require.NoError(t, err)
	for _, v := range m.RawMatrix().Data {
		assert.Equal(t, 1.5, v)
	}
}

func TestNormalMatrixValidation(t *testing.T) {
	g := NewNormalGenerator(nil)
	tests := []struct {
		name       string
		rows, cols int
		std        float64
		param      string
	}{
		{"zero rows", 0, 2, 1, "rows"},
		{"zero cols", 2, 0, 1, "cols"},
		{"negative std", 2, 2, -1, "std"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.NormalMatrix(tt.rows, tt.cols, 0, tt.std)
			var vErr *errors.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.param, vErr.ParamName)
		})
	}
}
