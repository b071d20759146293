// Package log defines standard attribute keys for decision-tree operations.
//
// Using these keys consistently across the library enables structured log
// analysis and filtering. The keys follow a hierarchical naming convention
// (e.g. "model.name", "data.samples", "tree.depth").

package log

// Model and operation context.
const (
	// ModelNameKey identifies the type of model emitting the log record.
	// Example: "ID3Classifier"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "evaluate", "export", "import"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "id3", "dataset", "metrics"
	ComponentKey = "ml.component"
)

// Data shape and characteristics.
const (
	// SamplesKey indicates the number of records in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of candidate split attributes.
	FeaturesKey = "data.features"

	// TargetKey names the target attribute being predicted.
	TargetKey = "data.target"
)

// Tree structure.
const (
	// TreeDepthKey records the depth of the induced tree.
	TreeDepthKey = "tree.depth"

	// TreeLeavesKey records the number of leaf nodes in the induced tree.
	TreeLeavesKey = "tree.leaves"
)

// Performance metrics.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// AccuracyKey records a computed accuracy in [0, 1].
	AccuracyKey = "metric.accuracy"
)
