package datasets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/lassoviz/pkg/errors"
	"github.com/YuminosukeSato/lassoviz/random"
)

func TestGenerateShapes(t *testing.T) {
	ds, err := Generate(30, 4, []float64{1, -2}, 0.5, random.NewNormalGenerator(random.NewSource(1)))
	require.NoError(t, err)

	r, c := ds.X.Dims()
	assert.Equal(t, 30, r)
	assert.Equal(t, 4, c)
	r, c = ds.Y.Dims()
	assert.Equal(t, 30, r)
	assert.Equal(t, 1, c)
	assert.Equal(t, []float64{1, -2, 0, 0}, ds.TrueBeta)
}

func TestGenerateZeroSignalZeroNoiseIsExactlyZero(t *testing.T) {
	ds, err := Generate(25, 3, []float64{0, 0, 0}, 0, random.NewNormalGenerator(random.NewSource(9)))
	require.NoError(t, err)
	for i := 0; i < 25; i++ {
		assert.Equal(t, 0.0, ds.Y.At(i, 0))
	}
}

func TestGenerateNoiselessIsExactProduct(t *testing.T) {
	ds, err := Generate(10, 2, []float64{2, -1, 7}, 0, random.NewNormalGenerator(random.NewSource(3)))
	require.NoError(t, err)

	assert.Equal(t, []float64{2, -1}, ds.TrueBeta, "extra betas are truncated")
	var want mat.Dense
	want.Mul(ds.X, mat.NewVecDense(2, []float64{2, -1}))
	assert.True(t, mat.EqualApprox(&want, ds.Y, 1e-12))
}

func TestGenerateIsReproducibleWithSeed(t *testing.T) {
	a, err := Generate(20, 2, []float64{1, 1}, 1, random.NewNormalGenerator(random.NewSource(5)))
	require.NoError(t, err)
	b, err := Generate(20, 2, []float64{1, 1}, 1, random.NewNormalGenerator(random.NewSource(5)))
	require.NoError(t, err)
	assert.True(t, mat.Equal(a.X, b.X))
	assert.True(t, mat.Equal(a.Y, b.Y))
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name  string
		n, m  int
		sigma float64
		param string
	}{
		{"zero samples", 0, 2, 1, "n"},
		{"zero features", 10, 0, 1, "m"},
		{"negative sigma", 10, 2, -0.1, "sigma"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.n, tt.m, nil, tt.sigma, nil)
			var vErr *errors.ValidationError
			require.True(t, errors.As(err, &vErr), "got %v", err)
			assert.Equal(t, tt.param, vErr.ParamName)
		})
	}
}

func TestAdjustFeatureCount(t *testing.T) {
	in := []float64{1, 2, 3}

	got, err := AdjustFeatureCount(in, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, got)

	got, err = AdjustFeatureCount(in, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 0, 0}, got)

	got[0] = 99
	assert.Equal(t, 1.0, in[0], "input must not alias the result")

	got, err = AdjustFeatureCount(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = AdjustFeatureCount(in, -1)
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1, 10,
		2, 10,
		3, 10,
		4, 10,
	})
	s := Summary(X)
	require.Len(t, s, 2)
	assert.InDelta(t, 2.5, s[0].Mean, 1e-12)
	assert.InDelta(t, 1.2909944487, s[0].Std, 1e-9)
	assert.Equal(t, 0.0, s[1].Std)
}

func TestLookupPreset(t *testing.T) {
	p, ok := LookupPreset("one-zero")
	require.True(t, ok)
	assert.Equal(t, []float64{1, 0}, p.Betas)

	_, ok = LookupPreset("unknown")
	assert.False(t, ok)
	assert.Len(t, Presets(), 3)
}
