package model

import (
	"gonum.org/v1/gonum/mat"
)

// Transformer is the interface for fitted data transformations.
// Fit learns statistics from training data only; Transform applies them to
// any split without refitting.
type Transformer interface {
	Fit(X mat.Matrix) error
	Transform(X mat.Matrix) (mat.Matrix, error)
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}

// ParameterGetter is the interface for estimators that expose their parameters.
type ParameterGetter interface {
	// GetParams returns the estimator's hyperparameters.
	GetParams() map[string]interface{}
}

// ParameterSetter is the interface for estimators that accept parameter
// updates, used by grid sweeps to configure a fresh instance per tuple.
type ParameterSetter interface {
	// SetParams sets the estimator's hyperparameters.
	SetParams(params map[string]interface{}) error
}
