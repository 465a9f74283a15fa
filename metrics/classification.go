// Package metrics provides classification scores over gonum vectors.
package metrics

import (
	"github.com/karcagmate/M5FWM8-BEVADAT2022232/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Accuracy は正解ラベルと予測ラベルが一致する割合を計算する
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	correct, n, err := countCorrect("Accuracy", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return float64(correct) / float64(n), nil
}

// ClassificationError は 1 - Accuracy を返す
func ClassificationError(yTrue, yPred *mat.VecDense) (float64, error) {
	correct, n, err := countCorrect("ClassificationError", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return float64(n-correct) / float64(n), nil
}

// AccuracyMatrix は n×1 行列形式の入力に対して Accuracy を計算する
func AccuracyMatrix(yTrue, yPred mat.Matrix) (float64, error) {
	if yTrue == nil || yPred == nil {
		return 0, errors.NewValueError("AccuracyMatrix", "empty matrix")
	}
	rTrue, cTrue := yTrue.Dims()
	rPred, cPred := yPred.Dims()

	if rTrue == 0 || cTrue == 0 {
		return 0, errors.NewValueError("AccuracyMatrix", "empty matrix")
	}
	if rTrue != rPred {
		return 0, errors.NewDimensionError("AccuracyMatrix", rTrue, rPred, 0)
	}
	if cTrue != 1 || cPred != 1 {
		return 0, errors.NewValueError("AccuracyMatrix", "must be a column vector (n×1 matrix)")
	}

	correct := 0
	for i := 0; i < rTrue; i++ {
		if yTrue.At(i, 0) == yPred.At(i, 0) {
			correct++
		}
	}
	return float64(correct) / float64(rTrue), nil
}

func countCorrect(op string, yTrue, yPred *mat.VecDense) (correct, n int, err error) {
	if yTrue == nil || yTrue.Len() == 0 {
		return 0, 0, errors.NewValueError(op, "empty vector")
	}
	n = yTrue.Len()
	if yPred == nil || yPred.Len() != n {
		got := 0
		if yPred != nil {
			got = yPred.Len()
		}
		return 0, 0, errors.NewDimensionError(op, n, got, 0)
	}

	// ラベルは浮動小数で保持されるが、整数コードなので完全一致で比較する
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			correct++
		}
	}
	return correct, n, nil
}
