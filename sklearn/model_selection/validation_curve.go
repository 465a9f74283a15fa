package model_selection

import (
	"github.com/karcagmate/M5FWM8-BEVADAT2022232/core/parallel"
	"github.com/karcagmate/M5FWM8-BEVADAT2022232/pkg/errors"
	"github.com/karcagmate/M5FWM8-BEVADAT2022232/pkg/log"
	"github.com/karcagmate/M5FWM8-BEVADAT2022232/sklearn/tree"
)

// CurvePoint is the train and test accuracy of one fitted tree.
type CurvePoint struct {
	MaxDepth   int
	TrainScore float64
	TestScore  float64
}

// ValidationCurve fits one DecisionTreeClassifier per entry of maxDepths, each
// configured with opts followed by WithMaxDepth, and scores it on both splits.
// Trees are fitted concurrently; the result follows the order of maxDepths.
func ValidationCurve(s *Split, maxDepths []int, opts ...tree.Option) ([]CurvePoint, error) {
	if s == nil {
		return nil, errors.NewValueError("model_selection.ValidationCurve", "split is nil")
	}
	if len(maxDepths) == 0 {
		return nil, errors.NewValueError("model_selection.ValidationCurve", "no max_depth values")
	}

	points := make([]CurvePoint, len(maxDepths))
	errs := make([]error, len(maxDepths))
	parallel.Parallelize(len(maxDepths), func(start, end int) {
		for i := start; i < end; i++ {
			points[i], errs[i] = fitAndScore(s, maxDepths[i], opts)
		}
	})
	for i, err := range errs {
		if err != nil {
			return nil, errors.Wrapf(err, "max_depth=%d", maxDepths[i])
		}
	}

	logger := log.GetLoggerWithName("model_selection")
	for _, p := range points {
		logger.Info("Validation point",
			log.PhaseKey, log.PhaseValidation,
			log.MaxDepthKey, p.MaxDepth,
			"train_accuracy", p.TrainScore,
			"test_accuracy", p.TestScore,
		)
	}
	return points, nil
}

func fitAndScore(s *Split, maxDepth int, opts []tree.Option) (CurvePoint, error) {
	all := make([]tree.Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, tree.WithMaxDepth(maxDepth))

	clf := tree.NewDecisionTreeClassifier(all...)
	if err := clf.Fit(s.XTrain, s.YTrain); err != nil {
		return CurvePoint{}, err
	}
	return CurvePoint{
		MaxDepth:   maxDepth,
		TrainScore: clf.Score(s.XTrain, s.YTrain),
		TestScore:  clf.Score(s.XTest, s.YTest),
	}, nil
}
