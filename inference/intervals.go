// Package inference computes confidence intervals for the features a LASSO
// path point selects.
//
// Two interval families are produced for the active set S:
//
//   - full model: OLS on all m columns, reported at the coordinates in S. This
//     is labelled "selective" in the visualizer but ignores the selection event,
//     so it is an approximation and not a valid post-selection interval.
//   - restricted ("naive"): OLS on the columns in S only.
//
// Both use estimate ± ZCritical·se.
package inference

import (
	"math"

	"github.com/YuminosukeSato/lassoviz/pkg/errors"
	"github.com/YuminosukeSato/lassoviz/pkg/log"
	"gonum.org/v1/gonum/mat"
)

const (
	// ZCritical is the two-sided 95% normal quantile.
	ZCritical = 1.96
	// DefaultMaxCondition is the largest 1-norm condition number of a Gram matrix
	// that is still inverted.
	DefaultMaxCondition = 1e12
)

// Interval is a closed confidence interval with Lower <= Upper.
type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Contains reports whether x lies in the interval.
func (iv Interval) Contains(x float64) bool {
	return iv.Lower <= x && x <= iv.Upper
}

// Width returns Upper − Lower.
func (iv Interval) Width() float64 {
	return iv.Upper - iv.Lower
}

func newInterval(estimate, se float64) Interval {
	return Interval{Lower: estimate - ZCritical*se, Upper: estimate + ZCritical*se}
}

// Result holds both interval families. All slices are aligned with ActiveSet.
type Result struct {
	ActiveSet  []int      `json:"active_set"`
	FullModel  []Interval `json:"full_model"`
	Restricted []Interval `json:"restricted"`

	FullEstimates       []float64 `json:"full_estimates"`
	RestrictedEstimates []float64 `json:"restricted_estimates"`
	FullSigma2          float64   `json:"full_sigma2"`
	RestrictedSigma2    float64   `json:"restricted_sigma2"`
}

// Empty reports the no-selection state: no feature is active, so there is
// nothing to show. It is not an error.
func (r *Result) Empty() bool {
	return len(r.ActiveSet) == 0
}

// Option configures ComputeIntervals.
type Option func(*options)

type options struct {
	maxCond float64
	logger  log.Logger
}

// WithMaxCondition sets the condition number beyond which a Gram matrix is
// treated as singular.
func WithMaxCondition(c float64) Option {
	return func(o *options) {
		o.maxCond = c
	}
}

// WithLogger sets the logger used for the debug record of each computation.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// ComputeIntervals computes the active set of beta and the full-model and
// restricted intervals for it.
//
// Errors: DimensionError when X, y and beta disagree on shape; an error
// matching ErrNonPositiveDOF when n − m <= 0 or n − |S| <= 0; an error
// matching ErrSingularMatrix when a Gram matrix cannot be inverted reliably.
// An empty active set returns an empty Result and a nil error.
func ComputeIntervals(X, y mat.Matrix, beta []float64, opts ...Option) (*Result, error) {
	const op = "ComputeIntervals"

	o := options{maxCond: DefaultMaxCondition}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.GetLogger()
	}

	n, m := X.Dims()
	if n == 0 || m == 0 {
		return nil, errors.NewValueError(op, "empty design matrix")
	}
	yr, yc := y.Dims()
	if yr != n {
		return nil, errors.NewDimensionError(op, n, yr, 0)
	}
	if yc != 1 {
		return nil, errors.NewDimensionError(op, 1, yc, 1)
	}
	if len(beta) != m {
		return nil, errors.NewDimensionError(op+": beta", m, len(beta), 1)
	}
	for i, b := range beta {
		if math.IsNaN(b) {
			return nil, errors.NewValidationError("beta", "entries must not be NaN", i)
		}
	}

	logger := o.logger.With(log.OperationKey, log.OperationIntervals)
	active := ActiveSet(beta)
	if len(active) == 0 {
		logger.Debug("no features selected", log.ActiveFeaturesKey, 0)
		return &Result{
			ActiveSet:           active,
			FullModel:           []Interval{},
			Restricted:          []Interval{},
			FullEstimates:       []float64{},
			RestrictedEstimates: []float64{},
		}, nil
	}

	yv := mat.Col(nil, 0, y)

	full, err := fitOLS(op+": full model", X, yv, float64(n), o.maxCond)
	if err != nil {
		return nil, err
	}

	XS, err := SelectColumns(X, active)
	if err != nil {
		return nil, err
	}
	restricted, err := fitOLS(op+": restricted model", XS, yv, 1, o.maxCond)
	if err != nil {
		return nil, err
	}

	res := &Result{
		ActiveSet:           active,
		FullModel:           make([]Interval, len(active)),
		Restricted:          make([]Interval, len(active)),
		FullEstimates:       make([]float64, len(active)),
		RestrictedEstimates: make([]float64, len(active)),
		FullSigma2:          full.sigma2,
		RestrictedSigma2:    restricted.sigma2,
	}
	for k, j := range active {
		res.FullEstimates[k] = full.beta[j]
		res.FullModel[k] = newInterval(full.beta[j], full.se[j])
		res.RestrictedEstimates[k] = restricted.beta[k]
		res.Restricted[k] = newInterval(restricted.beta[k], restricted.se[k])
	}

	logger.Debug("intervals computed",
		log.SamplesKey, n,
		log.FeaturesKey, m,
		log.ActiveFeaturesKey, len(active),
	)
	return res, nil
}
