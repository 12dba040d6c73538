// Package log defines standard attribute keys for resampling operations.
//
// This file contains predefined attribute keys that provide consistency
// across all logging operations in imbgo. Using these standard keys enables
// better log analysis, monitoring, and debugging of resampling workflows.
//
// The keys follow a hierarchical naming convention (e.g., "sampler.name",
// "data.samples") to enable structured log analysis and filtering.

package log

// Sampler and Operation Context
// These attributes identify the sampler type and the operation being
// performed.
const (
	// SamplerNameKey identifies the type of sampler.
	// Examples: "RandomOverSampler"
	SamplerNameKey = "sampler.name"

	// OperationKey specifies the resampling operation being performed.
	// Standard values: "fit_resample", "bootstrap", "smoothed_bootstrap"
	OperationKey = "ml.operation"

	// ComponentKey identifies which component or package is performing
	// the operation. Examples: "over_sampling", "datasets", "metrics"
	ComponentKey = "ml.component"
)

// Data Shape and Class Distribution
// These attributes describe the structure of the data being resampled.
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) in the dataset.
	FeaturesKey = "data.features"

	// RepresentationKey names the matrix representation being processed.
	// Examples: "dense", "csr", "csc", "table"
	RepresentationKey = "data.representation"

	// ClassKey identifies the class currently being resampled.
	ClassKey = "resample.class"

	// ResampleCountKey indicates how many new samples are generated for
	// the current class.
	ResampleCountKey = "resample.count"

	// ShrinkageKey carries the shrinkage factor applied to the current
	// class during a smoothed bootstrap.
	ShrinkageKey = "resample.shrinkage"

	// SmoothedKey indicates whether the smoothed bootstrap is enabled.
	SmoothedKey = "resample.smoothed"

	// OutputSamplesKey indicates the number of rows in the resampled
	// output.
	OutputSamplesKey = "resample.output_samples"
)

// Performance
const (
	// DurationMsKey records the elapsed wall time of an operation in
	// milliseconds.
	DurationMsKey = "perf.duration_ms"
)
