// Package model_selection splits data and evaluates hyperparameters.
package model_selection

import (
	"math"
	"math/rand/v2"

	"github.com/karcagmate/M5FWM8-BEVADAT2022232/pkg/errors"
	"github.com/karcagmate/M5FWM8-BEVADAT2022232/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// Split holds the four matrices produced by TrainTestSplit.
type Split struct {
	XTrain, XTest *mat.Dense
	YTrain, YTest *mat.Dense
}

// TrainTestSplit shuffles the rows of X and y with a generator seeded by seed and
// holds out ceil(testSize*n) of them for testing. The same seed always produces
// the same split.
func TrainTestSplit(X, y mat.Matrix, testSize float64, seed uint64) (*Split, error) {
	const op = "model_selection.TrainTestSplit"

	if !(testSize > 0 && testSize < 1) {
		return nil, errors.NewValidationError("test_size", "must be in (0, 1)", testSize)
	}
	nSamples, nFeatures := X.Dims()
	yRows, yCols := y.Dims()
	if nSamples == 0 {
		return nil, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if nSamples != yRows {
		return nil, errors.NewDimensionError(op, nSamples, yRows, 0)
	}

	nTest := int(math.Ceil(testSize * float64(nSamples)))
	nTrain := nSamples - nTest
	if nTrain == 0 {
		return nil, errors.NewValueError(op, "test_size leaves no training samples")
	}

	perm := rand.New(rand.NewPCG(seed, seed)).Perm(nSamples)
	testIdx, trainIdx := perm[:nTest], perm[nTest:]

	s := &Split{
		XTrain: takeRows(X, trainIdx, nFeatures),
		XTest:  takeRows(X, testIdx, nFeatures),
		YTrain: takeRows(y, trainIdx, yCols),
		YTest:  takeRows(y, testIdx, yCols),
	}

	log.GetLoggerWithName("model_selection").Debug("Split dataset",
		log.OperationKey, log.OperationSplit,
		log.SamplesKey, nSamples,
		"train_samples", nTrain,
		"test_samples", nTest,
		log.RandomSeedKey, seed,
	)
	return s, nil
}

func takeRows(m mat.Matrix, idx []int, cols int) *mat.Dense {
	out := mat.NewDense(len(idx), cols, nil)
	row := make([]float64, cols)
	for i, src := range idx {
		mat.Row(row, src, m)
		out.SetRow(i, row)
	}
	return out
}
