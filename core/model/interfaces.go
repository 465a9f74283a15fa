// Package model defines the estimator interfaces and the fitted-state bookkeeping
// shared by the estimators in this module.
package model

import (
	"gonum.org/v1/gonum/mat"
)

// Classifier is a fitted-label predictor with class probabilities.
type Classifier interface {
	Fitter
	Predictor

	// PredictProba returns an n×k matrix of class frequencies, columns ordered as Classes.
	PredictProba(X mat.Matrix) (mat.Matrix, error)

	// Classes returns the sorted distinct labels seen during Fit.
	Classes() []float64

	// Score returns the mean accuracy of Predict(X) against y.
	Score(X, y mat.Matrix) float64
}

// ParameterGetter exposes hyperparameters under their sklearn names.
type ParameterGetter interface {
	GetParams() map[string]interface{}
}

// ParameterSetter updates hyperparameters by sklearn name.
type ParameterSetter interface {
	SetParams(params map[string]interface{}) error
}
