package log

// Attribute keys shared by every component. Keys are dotted so that log pipelines can
// group them ("model.*", "data.*", "tree.*").

// Model and operation context.
const (
	// ModelNameKey identifies the estimator type, e.g. "DecisionTreeClassifier".
	ModelNameKey = "model.name"

	// OperationKey is one of the Operation* values below.
	OperationKey = "ml.operation"

	// ComponentKey names the package emitting the record, e.g. "tree.classifier".
	ComponentKey = "ml.component"

	// PhaseKey is one of the Phase* values below.
	PhaseKey = "ml.phase"
)

// Data shape.
const (
	SamplesKey  = "data.samples"
	FeaturesKey = "data.features"
	ClassesKey  = "data.classes"
	ColumnKey   = "data.column"
	PathKey     = "data.path"
)

// Tree structure and hyperparameters.
const (
	TreeDepthKey       = "tree.depth"
	TreeLeavesKey      = "tree.leaves"
	CriterionKey       = "hyperparams.criterion"
	MaxDepthKey        = "hyperparams.max_depth"
	MinSamplesSplitKey = "hyperparams.min_samples_split"
	MinSamplesLeafKey  = "hyperparams.min_samples_leaf"
	RandomSeedKey      = "config.random_seed"
)

// Performance and results.
const (
	DurationMsKey = "perf.duration_ms"
	AccuracyKey   = "metrics.accuracy"
	PredsKey      = "preds.count"
)

// Error context.
const (
	ErrorCodeKey = "error.code"
	ErrorTypeKey = "error.type"
)

// Standard values.
const (
	OperationFit          = "fit"
	OperationPredict      = "predict"
	OperationPredictProba = "predict_proba"
	OperationScore        = "score"
	OperationTransform    = "transform"
	OperationLoad         = "load"
	OperationSplit        = "train_test_split"

	PhaseTraining      = "training"
	PhaseValidation    = "validation"
	PhaseInference     = "inference"
	PhasePreprocessing = "preprocessing"

	ErrorNotFitted         = "NOT_FITTED"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorInvalidInput      = "INVALID_INPUT"
)
