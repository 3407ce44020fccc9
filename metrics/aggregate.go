package metrics

import (
	"gonum.org/v1/gonum/stat"

	"github.com/rnakit/lncbench/pkg/errors"
)

// Aggregate holds the per-metric mean and (unbiased) variance over a
// sequence of evaluation summaries, such as the repeats of one resampling
// configuration or the entries of a sweep.
type Aggregate struct {
	N        int
	Mean     Summary
	Variance Summary
}

// AggregateSummaries computes per-metric mean and variance.
// A single summary has zero variance by definition.
func AggregateSummaries(summaries []Summary) (Aggregate, error) {
	if len(summaries) == 0 {
		return Aggregate{}, errors.NewValueError("AggregateSummaries", "no summaries to aggregate")
	}

	agg := Aggregate{N: len(summaries)}

	fields := []struct {
		get  func(Summary) float64
		mean *float64
		vari *float64
	}{
		{func(s Summary) float64 { return s.Accuracy }, &agg.Mean.Accuracy, &agg.Variance.Accuracy},
		{func(s Summary) float64 { return s.Sensitivity }, &agg.Mean.Sensitivity, &agg.Variance.Sensitivity},
		{func(s Summary) float64 { return s.Specificity }, &agg.Mean.Specificity, &agg.Variance.Specificity},
		{func(s Summary) float64 { return s.Precision }, &agg.Mean.Precision, &agg.Variance.Precision},
		{func(s Summary) float64 { return s.F1 }, &agg.Mean.F1, &agg.Variance.F1},
	}

	values := make([]float64, len(summaries))
	for _, f := range fields {
		for i, s := range summaries {
			values[i] = f.get(s)
		}
		mean, variance := stat.MeanVariance(values, nil)
		if len(summaries) == 1 {
			variance = 0
		}
		*f.mean = mean
		*f.vari = variance
	}

	return agg, nil
}
