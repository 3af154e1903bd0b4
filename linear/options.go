package linear

import "github.com/YuminosukeSato/lassoviz/pkg/log"

// Option configures a PathSolver.
type Option func(*PathSolver)

// WithMaxIter sets the maximum number of full coordinate passes per grid point.
func WithMaxIter(n int) Option {
	return func(s *PathSolver) {
		s.maxIter = n
	}
}

// WithTol sets the convergence tolerance on the largest per-coordinate change
// within one pass.
func WithTol(tol float64) Option {
	return func(s *PathSolver) {
		s.tol = tol
	}
}

// WithLogger sets the logger used for per-grid-point diagnostics.
func WithLogger(logger log.Logger) Option {
	return func(s *PathSolver) {
		s.logger = logger
	}
}
