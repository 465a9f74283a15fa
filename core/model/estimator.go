package model

import "gonum.org/v1/gonum/mat"

// Fitter is a model trained from a feature matrix and an n×1 target column.
type Fitter interface {
	Fit(X, y mat.Matrix) error
}

// Predictor produces one n×1 prediction column for an n-row feature matrix.
type Predictor interface {
	Predict(X mat.Matrix) (mat.Matrix, error)
}
