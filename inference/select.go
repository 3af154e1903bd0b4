package inference

import (
	"github.com/YuminosukeSato/lassoviz/core/parallel"
	"github.com/YuminosukeSato/lassoviz/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// 行数がこれ以下なら逐次コピー
const parallelThreshold = 1000

// SelectColumns returns a new matrix made of X's columns at indices, in the order
// given. Duplicates are allowed. X is never modified.
func SelectColumns(X mat.Matrix, indices []int) (*mat.Dense, error) {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewValueError("SelectColumns", "empty design matrix")
	}
	if len(indices) == 0 {
		return nil, errors.NewValueError("SelectColumns", "no columns requested")
	}
	for _, idx := range indices {
		if idx < 0 || idx >= c {
			return nil, errors.NewValidationError("indices", "column index out of range", idx)
		}
	}

	out := mat.NewDense(r, len(indices), nil)
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for k, j := range indices {
				out.Set(i, k, X.At(i, j))
			}
		}
	})
	return out, nil
}

// ActiveSet returns the ascending indices of the nonzero entries of beta. The
// result is never nil.
func ActiveSet(beta []float64) []int {
	active := make([]int, 0, len(beta))
	for i, b := range beta {
		if b != 0 {
			active = append(active, i)
		}
	}
	return active
}
