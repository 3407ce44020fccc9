package eval

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/rnakit/lncbench/balance"
	"github.com/rnakit/lncbench/classifier"
	"github.com/rnakit/lncbench/dataset"
	"github.com/rnakit/lncbench/metrics"
)

// RunConfig describes one evaluation run. Train and Eval are already scaled
// splits of the same partition; the harness never fits a scaler.
type RunConfig struct {
	// Train is the training split the classifier fits on, after scaling.
	Train *dataset.Dataset

	// Eval is the split predictions are scored on, validation during
	// selection and test for final numbers.
	Eval *dataset.Dataset

	// Factory produces a fresh classifier per run.
	Factory classifier.Factory

	// Params, when non-nil, is applied to the fresh instance via SetParams.
	Params classifier.Params

	// Balance is applied to the training split before fitting.
	Balance balance.Plan

	// Features, when non-empty, restricts both splits to the named columns
	// in the given order. Empty means the full schema.
	Features []string

	// Seed drives the balancing draw. Sweeps derive per-run seeds as
	// Seed + runIndex.
	Seed int64
}

// Result is the immutable record of one run. A non-nil Err marks the run
// failed; failed results carry no predictions or metrics and are skipped by
// AggregateResults and SelectBest.
type Result struct {
	RunIndex int
	Seed     int64
	Strategy balance.Strategy
	Params   classifier.Params
	Features []string

	Predictions *mat.VecDense
	Scores      *mat.VecDense
	Confusion   metrics.ConfusionMatrix
	Summary     metrics.Summary
	AUC         float64

	Duration time.Duration
	Err      error
}

// Failed reports whether the run produced no usable metrics.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Successful filters out failed runs.
func Successful(results []Result) []Result {
	ok := make([]Result, 0, len(results))
	for _, r := range results {
		if !r.Failed() {
			ok = append(ok, r)
		}
	}
	return ok
}

// AggregateResults computes per-metric mean and variance over the successful
// runs of a sweep.
func AggregateResults(results []Result) (metrics.Aggregate, error) {
	ok := Successful(results)
	summaries := make([]metrics.Summary, len(ok))
	for i, r := range ok {
		summaries[i] = r.Summary
	}
	return metrics.AggregateSummaries(summaries)
}
