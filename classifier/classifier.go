// Package classifier defines the adapter boundary between the evaluation
// harness and concrete learning algorithms, plus a small reference
// implementation used in examples and tests.
package classifier

import (
	"gonum.org/v1/gonum/mat"
)

// Params carries one hyperparameter configuration for a classifier.
type Params map[string]interface{}

// Interface is the contract every classifier must satisfy to run under the
// evaluation harness. Fit receives an optional per-sample weight vector;
// implementations that cannot honor weights must return an error rather than
// silently ignoring them. Predict returns hard labels (0 or 1) and
// PredictProba a positive-class score per row, both as n×1 matrices.
type Interface interface {
	Fit(X, y mat.Matrix, sampleWeight []float64) error
	Predict(X mat.Matrix) (mat.Matrix, error)
	PredictProba(X mat.Matrix) (mat.Matrix, error)

	GetParams() map[string]interface{}
	SetParams(params map[string]interface{}) error
}

// Named is implemented by classifiers that can report their algorithm name
// for logging and error messages.
type Named interface {
	Name() string
}

// Factory produces a fresh, unfitted classifier instance. The harness calls
// it once per run so no fitted state leaks between runs.
type Factory func() Interface

// AlgorithmName returns the classifier's self-reported name, or a fallback
// when it does not implement Named.
func AlgorithmName(c Interface) string {
	if n, ok := c.(Named); ok {
		return n.Name()
	}
	return "classifier"
}
