package eval

import (
	"github.com/rnakit/lncbench/pkg/errors"
)

// Metric names a scalar used to rank runs during model selection.
type Metric string

const (
	MetricAccuracy    Metric = "accuracy"
	MetricSensitivity Metric = "sensitivity"
	MetricSpecificity Metric = "specificity"
	MetricPrecision   Metric = "precision"
	MetricF1          Metric = "f1"
	MetricAUC         Metric = "auc"
)

func (m Metric) value(r Result) (float64, bool) {
	switch m {
	case MetricAccuracy:
		return r.Summary.Accuracy, true
	case MetricSensitivity:
		return r.Summary.Sensitivity, true
	case MetricSpecificity:
		return r.Summary.Specificity, true
	case MetricPrecision:
		return r.Summary.Precision, true
	case MetricF1:
		return r.Summary.F1, true
	case MetricAUC:
		return r.AUC, true
	}
	return 0, false
}

// SelectBest returns the index of the highest-scoring successful run.
// Callers must pass validation results only: final numbers for the winning
// configuration come from a fresh Run against the held-out test split. Ties
// resolve to the earliest run. All-failed input or an unknown metric is an
// error.
func SelectBest(validationResults []Result, metric Metric) (int, error) {
	best := -1
	bestVal := 0.0
	for i, r := range validationResults {
		if r.Failed() {
			continue
		}
		v, ok := metric.value(r)
		if !ok {
			return -1, errors.NewValidationError("metric", "unknown selection metric", string(metric))
		}
		if best < 0 || v > bestVal {
			best = i
			bestVal = v
		}
	}
	if best < 0 {
		return -1, errors.New("lncbench: no successful runs to select from")
	}
	return best, nil
}
