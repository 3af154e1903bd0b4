// Package log defines standard attribute keys for the numeric engine.
//
// These keys follow a hierarchical naming convention (e.g. "data.samples",
// "lasso.lambda") to enable structured log analysis and filtering.

package log

// Operation context.
const (
	// OperationKey specifies the operation being performed.
	// Standard values: "generate", "solve_path", "intervals", "fit", "predict"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	ComponentKey = "ml.component"

	// ModelNameKey identifies the estimator type, e.g. "Lasso".
	ModelNameKey = "model.name"

	// SessionGenerationKey identifies a Session submission.
	SessionGenerationKey = "session.generation"
)

// Data shape.
const (
	SamplesKey  = "data.samples"
	FeaturesKey = "data.features"
	NoiseKey    = "data.sigma"
	SeedKey     = "config.random_seed"
)

// Path solver and inference.
const (
	LambdaKey         = "lasso.lambda"
	GridSizeKey       = "lasso.grid_size"
	ActiveFeaturesKey = "lasso.active_features"
	ConvergedKey      = "lasso.converged"
	MaxDeltaKey       = "lasso.max_delta"
	IterationKey      = "training.iteration"
	DurationMsKey     = "perf.duration_ms"
)

// Standard attribute values.
const (
	OperationGenerate  = "generate"
	OperationSolvePath = "solve_path"
	OperationIntervals = "intervals"
	OperationFit       = "fit"
	OperationPredict   = "predict"
	OperationScore     = "score"
)
