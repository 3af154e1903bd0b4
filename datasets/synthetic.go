// Package datasets builds the synthetic linear-regression problems the
// visualizer works on: a Gaussian design X and y = X·beta + noise.
package datasets

import (
	"math"

	"github.com/YuminosukeSato/lassoviz/pkg/errors"
	"github.com/YuminosukeSato/lassoviz/pkg/log"
	"github.com/YuminosukeSato/lassoviz/random"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Dataset is one generated regression problem.
type Dataset struct {
	X        *mat.Dense // n×m design, i.i.d. N(0, 1)
	Y        *mat.Dense // n×1 response
	TrueBeta []float64  // length m, zero-padded from the requested betas
}

// Generate draws an n×m standard-normal design, builds the true coefficient
// vector with AdjustFeatureCount(betas, m), and sets y = X·beta + N(0, sigma²)
// noise. The design is drawn before the noise so a seeded generator reproduces
// both. sigma == 0 yields a noise vector of exact zeros.
func Generate(n, m int, betas []float64, sigma float64, gen *random.NormalGenerator) (*Dataset, error) {
	if n < 1 {
		return nil, errors.NewValidationError("n", "must be at least 1", n)
	}
	if m < 1 {
		return nil, errors.NewValidationError("m", "must be at least 1", m)
	}
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return nil, errors.NewValidationError("sigma", "must be a finite non-negative number", sigma)
	}
	for i, b := range betas {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return nil, errors.NewValidationError("betas", "entries must be finite", i)
		}
	}
	if gen == nil {
		gen = random.NewNormalGenerator(nil)
	}

	X, err := gen.NormalMatrix(n, m, 0, 1)
	if err != nil {
		return nil, errors.Wrap(err, "draw design matrix")
	}
	noise, err := gen.NormalMatrix(n, 1, 0, sigma)
	if err != nil {
		return nil, errors.Wrap(err, "draw noise")
	}

	beta, err := AdjustFeatureCount(betas, m)
	if err != nil {
		return nil, err
	}

	y := mat.NewDense(n, 1, nil)
	y.Mul(X, mat.NewVecDense(m, beta))
	y.Add(y, noise)

	log.GetLogger().Debug("synthetic data generated",
		log.OperationKey, log.OperationGenerate,
		log.SamplesKey, n,
		log.FeaturesKey, m,
		log.NoiseKey, sigma,
	)

	return &Dataset{X: X, Y: y, TrueBeta: beta}, nil
}

// AdjustFeatureCount reconciles a coefficient vector with a new feature count:
// it truncates when newM is smaller and zero-pads when newM is larger. The input
// slice is never modified.
func AdjustFeatureCount(betas []float64, newM int) ([]float64, error) {
	if newM < 0 {
		return nil, errors.NewValidationError("m", "must be non-negative", newM)
	}
	out := make([]float64, newM)
	copy(out, betas)
	return out, nil
}

// ColumnStats holds the sample mean and standard deviation of one design column.
type ColumnStats struct {
	Mean float64
	Std  float64
}

// Summary computes per-column sample statistics of X.
func Summary(X mat.Matrix) []ColumnStats {
	n, m := X.Dims()
	out := make([]ColumnStats, m)
	col := make([]float64, n)
	for j := 0; j < m; j++ {
		mat.Col(col, j, X)
		if n < 2 {
			out[j] = ColumnStats{Mean: col[0]}
			continue
		}
		mean, std := stat.MeanStdDev(col, nil)
		out[j] = ColumnStats{Mean: mean, Std: std}
	}
	return out
}
