// Package log defines standard attribute keys for machine learning operations.
//
// Using these keys consistently enables structured analysis and filtering of
// training and validation logs. The keys follow a hierarchical naming
// convention (e.g., "model.name", "data.samples").
package log

// Model and Operation Context
const (
	// ModelNameKey identifies the type of machine learning model.
	// Examples: "LinearRegression", "Ridge"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "evaluate", "split"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "linear", "modelselection", "metrics"
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of the model lifecycle.
	// Examples: "training", "validation"
	PhaseKey = "ml.phase"
)

// Data Shape and Characteristics
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) in the dataset.
	FeaturesKey = "data.features"

	// TrainSamplesKey indicates the number of points in the training partition.
	TrainSamplesKey = "data.train_samples"

	// ValidationSamplesKey indicates the number of points in the validation partition.
	ValidationSamplesKey = "data.validation_samples"

	// WeightedKey indicates whether per-point sample weights are in use.
	WeightedKey = "data.weighted"
)

// Results and Performance
const (
	// ScoreKey carries the metric value produced by an evaluation.
	ScoreKey = "result.score"

	// MetricNameKey identifies the metric that produced ScoreKey.
	// Examples: "mse", "rmse", "r2", "accuracy"
	MetricNameKey = "result.metric"

	// DurationMsKey carries the wall-clock duration of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)
