// Package random provides the seedable standard-normal generator used to build
// synthetic regression data.
package random

import (
	"math"
	"math/rand/v2"

	"github.com/YuminosukeSato/lassoviz/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Source yields uniform deviates in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic PCG source for the given seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewEntropySource returns a source seeded from the runtime's entropy pool.
func NewEntropySource() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NormalGenerator draws standard-normal deviates with the Box–Muller transform.
// It is not safe for concurrent use unless its Source is.
type NormalGenerator struct {
	src Source
}

// NewNormalGenerator wraps src. A nil src falls back to NewEntropySource.
func NewNormalGenerator(src Source) *NormalGenerator {
	if src == nil {
		src = NewEntropySource()
	}
	return &NormalGenerator{src: src}
}

// Float64 returns one N(0, 1) deviate: sqrt(-2 ln u) * cos(2πv), with u redrawn
// while it is exactly zero.
func (g *NormalGenerator) Float64() float64 {
	u := g.src.Float64()
	for u == 0 {
		u = g.src.Float64()
	}
	v := g.src.Float64()
	return math.Sqrt(-2*math.Log(u)) * math.Cos(2*math.Pi*v)
}

// NormalMatrix fills a rows×cols matrix with mean + std*deviate, drawing cells
// in row-major order.
func (g *NormalGenerator) NormalMatrix(rows, cols int, mean, std float64) (*mat.Dense, error) {
	if rows < 1 {
		return nil, errors.NewValidationError("rows", "must be at least 1", rows)
	}
	if cols < 1 {
		return nil, errors.NewValidationError("cols", "must be at least 1", cols)
	}
	if std < 0 || math.IsNaN(std) {
		return nil, errors.NewValidationError("std", "must be non-negative", std)
	}
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = mean + std*g.Float64()
	}
	return mat.NewDense(rows, cols, data), nil
}
