// Package tree implements a binary decision tree classifier grown by greedy,
// exhaustive threshold search on an impurity criterion (Gini index or entropy).
//
// Usage follows scikit-learn:
//
//	clf := tree.NewDecisionTreeClassifier(
//	    tree.WithMinSamplesSplit(3),
//	    tree.WithMaxDepth(7),
//	)
//	if err := clf.Fit(XTrain, yTrain); err != nil {
//	    return err
//	}
//	yPred, err := clf.Predict(XTest)
//
// Training is deterministic: the same data and hyperparameters always grow the same tree.
package tree

import (
	"io"
	"sort"
	"strings"
	"time"

	"github.com/karcagmate/M5FWM8-BEVADAT2022232/core/model"
	"github.com/karcagmate/M5FWM8-BEVADAT2022232/metrics"
	"github.com/karcagmate/M5FWM8-BEVADAT2022232/pkg/errors"
	"github.com/karcagmate/M5FWM8-BEVADAT2022232/pkg/log"
	"gonum.org/v1/gonum/mat"
)

const modelName = "DecisionTreeClassifier"

var (
	_ model.Classifier      = (*DecisionTreeClassifier)(nil)
	_ model.ParameterGetter = (*DecisionTreeClassifier)(nil)
	_ model.ParameterSetter = (*DecisionTreeClassifier)(nil)
)

// DecisionTreeClassifier is a CART-style binary classification tree.
type DecisionTreeClassifier struct {
	state *model.StateManager

	// Hyperparameters
	criterion       string // "gini" or "entropy"
	maxDepth        int    // deepest level at which a node may still split
	minSamplesSplit int    // minimum rows required to attempt a split
	minSamplesLeaf  int    // minimum rows on each side of a split

	logger log.Logger

	// Fitted state
	root                Node
	classes_            []float64
	featureImportances_ []float64
	depth_              int
	nLeaves_            int
}

// Option configures a DecisionTreeClassifier.
type Option func(*DecisionTreeClassifier)

// NewDecisionTreeClassifier returns an unfitted classifier. Defaults are
// criterion "gini", max_depth 2, min_samples_split 2, min_samples_leaf 1.
func NewDecisionTreeClassifier(opts ...Option) *DecisionTreeClassifier {
	dt := &DecisionTreeClassifier{
		state:           model.NewStateManager(),
		criterion:       "gini",
		maxDepth:        2,
		minSamplesSplit: 2,
		minSamplesLeaf:  1,
	}
	for _, opt := range opts {
		opt(dt)
	}
	return dt
}

// WithCriterion sets the split criterion, "gini" or "entropy".
func WithCriterion(criterion string) Option {
	return func(dt *DecisionTreeClassifier) {
		dt.criterion = criterion
	}
}

// WithMaxDepth sets the deepest level (root = 0) at which a node may still split.
// A fitted tree is therefore at most maxDepth+1 edges deep.
func WithMaxDepth(maxDepth int) Option {
	return func(dt *DecisionTreeClassifier) {
		dt.maxDepth = maxDepth
	}
}

// WithMinSamplesSplit sets the minimum number of rows a node needs to be split.
func WithMinSamplesSplit(n int) Option {
	return func(dt *DecisionTreeClassifier) {
		dt.minSamplesSplit = n
	}
}

// WithMinSamplesLeaf sets the minimum number of rows on each side of a split.
func WithMinSamplesLeaf(n int) Option {
	return func(dt *DecisionTreeClassifier) {
		dt.minSamplesLeaf = n
	}
}

// WithLogger replaces the default zerolog-backed logger.
func WithLogger(logger log.Logger) Option {
	return func(dt *DecisionTreeClassifier) {
		dt.logger = logger
	}
}

func (dt *DecisionTreeClassifier) contextLogger() log.Logger {
	if dt.logger != nil {
		return dt.logger.With(log.ModelNameKey, modelName)
	}
	return log.GetLoggerWithName("tree.classifier").With(log.ModelNameKey, modelName)
}

func (dt *DecisionTreeClassifier) validateParams() (Criterion, error) {
	criterion, err := ParseCriterion(dt.criterion)
	if err != nil {
		return criterion, err
	}
	if dt.maxDepth < 1 {
		return criterion, errors.NewValidationError("max_depth", "must be a positive integer", dt.maxDepth)
	}
	if dt.minSamplesSplit < 1 {
		return criterion, errors.NewValidationError("min_samples_split", "must be a positive integer", dt.minSamplesSplit)
	}
	if dt.minSamplesLeaf < 1 {
		return criterion, errors.NewValidationError("min_samples_leaf", "must be a positive integer", dt.minSamplesLeaf)
	}
	return criterion, nil
}

// Fit grows a new tree from X (n×m) and y (n×1), replacing any previous tree.
func (dt *DecisionTreeClassifier) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, modelName+".Fit")
	const op = modelName + ".Fit"

	criterion, err := dt.validateParams()
	if err != nil {
		return err
	}

	nSamples, nFeatures := X.Dims()
	yRows, yCols := y.Dims()
	if nSamples == 0 || nFeatures == 0 {
		return errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if yCols != 1 {
		return errors.NewDimensionError(op, 1, yCols, 1)
	}
	if nSamples != yRows {
		return errors.NewDimensionError(op, nSamples, yRows, 0)
	}
	if err := errors.CheckMatrix(op, X); err != nil {
		return err
	}
	if err := errors.CheckMatrix(op, y); err != nil {
		return err
	}

	logger := dt.contextLogger()
	start := time.Now()

	// concatenate X and y into one row-major dataset
	data := make(dataset, nSamples)
	for i := range data {
		row := make([]float64, nFeatures+1)
		mat.Row(row[:nFeatures], i, X)
		row[nFeatures] = y.At(i, 0)
		data[i] = row
	}
	classes := uniqueSorted(data.labels())

	b := newBuilder(criterion, dt.minSamplesSplit, dt.minSamplesLeaf, dt.maxDepth, classes, logger)
	root := b.buildTree(data, 0)

	dt.state.Reset()
	dt.root = root
	dt.classes_ = classes
	dt.depth_ = depth(root)
	dt.nLeaves_ = countLeaves(root)
	dt.featureImportances_ = featureImportances(root, nFeatures, nSamples)
	dt.state.SetDimensions(nFeatures, nSamples)
	dt.state.SetFitted()

	logger.Info("Training completed",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, nSamples,
		log.FeaturesKey, nFeatures,
		log.ClassesKey, len(classes),
		log.CriterionKey, criterion.String(),
		log.TreeDepthKey, dt.depth_,
		log.TreeLeavesKey, dt.nLeaves_,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

func (dt *DecisionTreeClassifier) checkPredictInput(method string, X mat.Matrix) error {
	if err := dt.state.RequireFitted(modelName, method); err != nil {
		return err
	}
	op := modelName + "." + method
	_, nFeatures := X.Dims()
	if err := dt.state.RequireFeatures(op, nFeatures); err != nil {
		return err
	}
	return errors.CheckMatrix(op, X)
}

// Predict returns an n×1 matrix with the predicted label for each row of X.
func (dt *DecisionTreeClassifier) Predict(X mat.Matrix) (mat.Matrix, error) {
	if err := dt.checkPredictInput("Predict", X); err != nil {
		return nil, err
	}

	nSamples, nFeatures := X.Dims()
	predictions := mat.NewDense(nSamples, 1, nil)
	row := make([]float64, nFeatures)
	for i := 0; i < nSamples; i++ {
		mat.Row(row, i, X)
		predictions.Set(i, 0, findLeaf(dt.root, row).Value)
	}
	return predictions, nil
}

// PredictProba returns an n×k matrix of the class frequencies in the leaf each row
// reaches. Columns follow Classes().
func (dt *DecisionTreeClassifier) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	if err := dt.checkPredictInput("PredictProba", X); err != nil {
		return nil, err
	}

	nSamples, nFeatures := X.Dims()
	probas := mat.NewDense(nSamples, len(dt.classes_), nil)
	row := make([]float64, nFeatures)
	for i := 0; i < nSamples; i++ {
		mat.Row(row, i, X)
		leaf := findLeaf(dt.root, row)
		for j, count := range leaf.Counts {
			probas.Set(i, j, float64(count)/float64(leaf.NSamples))
		}
	}
	return probas, nil
}

// Score returns the mean accuracy on X against y, or 0 if prediction fails.
func (dt *DecisionTreeClassifier) Score(X, y mat.Matrix) float64 {
	predictions, err := dt.Predict(X)
	if err != nil {
		dt.contextLogger().Warn("Score failed", err, log.OperationKey, log.OperationScore)
		return 0.0
	}
	accuracy, err := metrics.AccuracyMatrix(y, predictions)
	if err != nil {
		dt.contextLogger().Warn("Score failed", err, log.OperationKey, log.OperationScore)
		return 0.0
	}
	return accuracy
}

// Root returns the fitted tree, or nil before Fit.
func (dt *DecisionTreeClassifier) Root() Node {
	return dt.root
}

// Classes returns the sorted distinct labels seen during Fit.
func (dt *DecisionTreeClassifier) Classes() []float64 {
	out := make([]float64, len(dt.classes_))
	copy(out, dt.classes_)
	return out
}

// GetDepth returns the number of edges on the longest root-to-leaf path.
func (dt *DecisionTreeClassifier) GetDepth() int {
	return dt.depth_
}

// GetNLeaves returns the number of leaves.
func (dt *DecisionTreeClassifier) GetNLeaves() int {
	return dt.nLeaves_
}

// GetFeatureImportances returns the sample-weighted information gain per feature,
// normalised to sum to 1. All zeros when the tree is a single leaf.
func (dt *DecisionTreeClassifier) GetFeatureImportances() []float64 {
	out := make([]float64, len(dt.featureImportances_))
	copy(out, dt.featureImportances_)
	return out
}

// ExportText writes the fitted tree as indented text. featureNames may be nil.
func (dt *DecisionTreeClassifier) ExportText(w io.Writer, featureNames []string) error {
	if err := dt.state.RequireFitted(modelName, "ExportText"); err != nil {
		return err
	}
	exporter := TextExporter{FeatureNames: featureNames}
	return exporter.Export(w, dt.root)
}

// String renders the fitted tree, or a placeholder before Fit.
func (dt *DecisionTreeClassifier) String() string {
	var sb strings.Builder
	if err := dt.ExportText(&sb, nil); err != nil {
		return modelName + "(not fitted)"
	}
	return sb.String()
}

// GetParams returns the hyperparameters under their sklearn names.
func (dt *DecisionTreeClassifier) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"criterion":         dt.criterion,
		"max_depth":         dt.maxDepth,
		"min_samples_split": dt.minSamplesSplit,
		"min_samples_leaf":  dt.minSamplesLeaf,
	}
}

// SetParams updates hyperparameters by sklearn name. It takes effect on the next Fit.
func (dt *DecisionTreeClassifier) SetParams(params map[string]interface{}) error {
	for key, value := range params {
		switch key {
		case "criterion":
			v, ok := value.(string)
			if !ok {
				return errors.NewValidationError(key, "must be a string", value)
			}
			dt.criterion = v
		case "max_depth", "min_samples_split", "min_samples_leaf":
			v, ok := value.(int)
			if !ok {
				return errors.NewValidationError(key, "must be an int", value)
			}
			switch key {
			case "max_depth":
				dt.maxDepth = v
			case "min_samples_split":
				dt.minSamplesSplit = v
			default:
				dt.minSamplesLeaf = v
			}
		default:
			return errors.NewValidationError(key, "unknown parameter", value)
		}
	}
	return nil
}

func uniqueSorted(values []float64) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	out := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			out = append(out, v)
		}
	}
	return out
}

func featureImportances(root Node, nFeatures, nSamples int) []float64 {
	importances := make([]float64, nFeatures)
	var walk func(Node)
	walk = func(n Node) {
		s, ok := n.(*SplitNode)
		if !ok {
			return
		}
		importances[s.FeatureIndex] += float64(s.NSamples) / float64(nSamples) * s.InfoGain
		walk(s.Left)
		walk(s.Right)
	}
	walk(root)

	total := 0.0
	for _, v := range importances {
		total += v
	}
	if total > 0 {
		for i := range importances {
			importances[i] /= total
		}
	}
	return importances
}
