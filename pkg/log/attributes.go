// Standard attribute keys for evaluation logging.
//
// Using these keys consistently keeps sweep logs filterable: every run of a
// grid or ablation sweep is logged with the same key set, so a single query
// can pull all runs of one strategy or one feature count.

package log

// Component and operation context.
const (
	// ComponentKey identifies the package performing the operation.
	// Examples: "dataset", "preprocessing", "balance", "eval", "metrics"
	ComponentKey = "component"

	// OperationKey specifies the operation being performed.
	// Standard values: "partition", "fit", "transform", "balance", "run", "sweep"
	OperationKey = "operation"

	// AlgorithmKey names the classifier adapter in use.
	AlgorithmKey = "algorithm"
)

// Run and sweep context.
const (
	// RunIndexKey is the zero-based index of a run within a sweep.
	RunIndexKey = "run.index"

	// RunsKey is the total number of runs a sweep will execute.
	RunsKey = "run.total"

	// SeedKey is the RNG seed in effect for a run.
	SeedKey = "run.seed"

	// SweepModeKey identifies the sweep flavor.
	// Standard values: "single", "repeats", "ablation", "leave_one_out", "grid"
	SweepModeKey = "sweep.mode"

	// StrategyKey is the balancing strategy of a run.
	// Standard values: "none", "weight", "undersample", "oversample"
	StrategyKey = "balance.strategy"
)

// Data shape.
const (
	// SamplesKey is the number of samples (rows) in play.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of features (columns) in play.
	FeaturesKey = "data.features"

	// PositivesKey is the positive-class (lncRNA) count.
	PositivesKey = "data.positives"

	// NegativesKey is the negative-class (pcRNA) count.
	NegativesKey = "data.negatives"
)

// Result metrics.
const (
	AccuracyKey    = "metric.accuracy"
	SensitivityKey = "metric.sensitivity"
	SpecificityKey = "metric.specificity"
	F1Key          = "metric.f1"
	AUCKey         = "metric.auc"

	// DurationMsKey records the execution time of a run in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// FailedRunsKey counts runs excluded from aggregation.
	FailedRunsKey = "run.failed"
)
