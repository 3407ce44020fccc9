// Package eval runs classifiers over prepared splits and collects per-run
// metrics. It owns the sweep mechanics (repeats, feature ablation,
// leave-one-out, hyperparameter grids) and the failure isolation that keeps
// one diverging fit from sinking a whole sweep.
package eval

import (
	"context"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/rnakit/lncbench/balance"
	"github.com/rnakit/lncbench/classifier"
	"github.com/rnakit/lncbench/core/parallel"
	"github.com/rnakit/lncbench/dataset"
	"github.com/rnakit/lncbench/metrics"
	"github.com/rnakit/lncbench/pkg/errors"
	"github.com/rnakit/lncbench/pkg/log"
)

// Order selects the direction of an ablation sweep.
type Order int

const (
	// OrderAscending grows the feature set one ranked feature at a time.
	OrderAscending Order = iota
	// OrderDescending starts from the full ranked list and shrinks it.
	OrderDescending
)

// Harness executes evaluation runs. The zero value is not usable; construct
// with NewHarness.
type Harness struct {
	logger     log.Logger
	fitTimeout time.Duration
	workers    int
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the logger runs report to.
func WithLogger(logger log.Logger) Option {
	return func(h *Harness) {
		h.logger = logger
	}
}

// WithFitTimeout bounds each classifier fit. A fit exceeding the deadline
// fails its run with a FitTimeoutError; the sweep continues.
func WithFitTimeout(d time.Duration) Option {
	return func(h *Harness) {
		h.fitTimeout = d
	}
}

// WithWorkers bounds sweep parallelism. Zero or negative means one worker
// per CPU.
func WithWorkers(n int) Option {
	return func(h *Harness) {
		h.workers = n
	}
}

// NewHarness creates a Harness with the given options.
func NewHarness(opts ...Option) *Harness {
	h := &Harness{}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes a single evaluation run: balance the training split, fit a
// fresh classifier, predict on the eval split, score. Any error inside the
// pipeline lands in Result.Err rather than aborting the caller.
func (h *Harness) Run(ctx context.Context, cfg RunConfig) Result {
	return h.run(ctx, cfg, 0, "single")
}

// RunRepeats executes n runs with per-run seeds cfg.Seed + runIndex, so each
// repeat draws a fresh balancing sample while staying reproducible.
func (h *Harness) RunRepeats(ctx context.Context, cfg RunConfig, n int) []Result {
	results := make([]Result, n)
	parallel.ForEach(n, h.workers, func(i int) error {
		c := cfg
		c.Seed = cfg.Seed + int64(i)
		results[i] = h.run(ctx, c, i, "repeats")
		return nil
	})
	return results
}

// RunAblation sweeps top-K prefixes of a ranked feature list. Ascending
// order runs K = 1..len(ranking); descending runs K = len(ranking)..1. Each
// run uses per-run seed cfg.Seed + runIndex.
func (h *Harness) RunAblation(ctx context.Context, cfg RunConfig, ranking []string, order Order) []Result {
	n := len(ranking)
	results := make([]Result, n)
	parallel.ForEach(n, h.workers, func(i int) error {
		k := i + 1
		if order == OrderDescending {
			k = n - i
		}
		c := cfg
		c.Features = ranking[:k]
		c.Seed = cfg.Seed + int64(i)
		results[i] = h.run(ctx, c, i, "ablation")
		return nil
	})
	return results
}

// RunLeaveOneOut runs once per feature, each run dropping exactly that
// feature. K features yield K results with K-1 features each.
func (h *Harness) RunLeaveOneOut(ctx context.Context, cfg RunConfig) []Result {
	features := cfg.Features
	if len(features) == 0 && cfg.Train != nil {
		features = cfg.Train.Schema()
	}
	n := len(features)
	results := make([]Result, n)
	parallel.ForEach(n, h.workers, func(i int) error {
		kept := make([]string, 0, n-1)
		for j, name := range features {
			if j != i {
				kept = append(kept, name)
			}
		}
		c := cfg
		c.Features = kept
		c.Seed = cfg.Seed + int64(i)
		results[i] = h.run(ctx, c, i, "leave_one_out")
		return nil
	})
	return results
}

// RunGrid runs one evaluation per hyperparameter configuration. The sweep is
// exhaustive; no configuration is pruned on intermediate results.
func (h *Harness) RunGrid(ctx context.Context, cfg RunConfig, grid []classifier.Params) []Result {
	results := make([]Result, len(grid))
	parallel.ForEach(len(grid), h.workers, func(i int) error {
		c := cfg
		c.Params = grid[i]
		c.Seed = cfg.Seed + int64(i)
		results[i] = h.run(ctx, c, i, "grid")
		return nil
	})
	return results
}

func (h *Harness) run(ctx context.Context, cfg RunConfig, runIndex int, mode string) Result {
	start := time.Now()
	res := Result{
		RunIndex: runIndex,
		Seed:     cfg.Seed,
		Strategy: cfg.Balance.Strategy,
		Params:   cfg.Params,
		Features: cfg.Features,
	}
	fail := func(err error) Result {
		res.Err = err
		res.Duration = time.Since(start)
		h.logRun(mode, res, nil)
		return res
	}

	if cfg.Train == nil || cfg.Eval == nil {
		return fail(errors.NewValueError("eval.Run", "nil train or eval split"))
	}
	if cfg.Factory == nil {
		return fail(errors.NewValueError("eval.Run", "nil classifier factory"))
	}
	if err := ctx.Err(); err != nil {
		return fail(errors.WithStack(err))
	}

	train, evalDS := cfg.Train, cfg.Eval
	if len(cfg.Features) > 0 {
		var err error
		if train, err = train.SelectFeatures(cfg.Features); err != nil {
			return fail(err)
		}
		if evalDS, err = evalDS.SelectFeatures(cfg.Features); err != nil {
			return fail(err)
		}
	}

	indices, weights, err := balance.Balance(train.Labels(), cfg.Balance, cfg.Seed)
	if err != nil {
		return fail(err)
	}
	fitTrain, err := train.Subset(indices)
	if err != nil {
		return fail(err)
	}

	clf := cfg.Factory()
	if cfg.Params != nil {
		if err := clf.SetParams(cfg.Params); err != nil {
			return fail(err)
		}
	}

	if err := h.fit(ctx, clf, fitTrain, weights); err != nil {
		return fail(err)
	}

	var pred, scores mat.Matrix
	err = errors.SafeExecute("eval.predict", func() error {
		var perr error
		if pred, perr = clf.Predict(evalDS.X()); perr != nil {
			return perr
		}
		scores, perr = clf.PredictProba(evalDS.X())
		return perr
	})
	if err != nil {
		return fail(err)
	}

	yTrue := evalDS.LabelVector()
	predVec, err := columnVector("eval.predict", pred, evalDS.Len())
	if err != nil {
		return fail(err)
	}
	scoreVec, err := columnVector("eval.predict_proba", scores, evalDS.Len())
	if err != nil {
		return fail(err)
	}

	cm, err := metrics.NewConfusionMatrix(yTrue, predVec)
	if err != nil {
		return fail(err)
	}
	auc, err := metrics.AUC(yTrue, scoreVec)
	if err != nil {
		return fail(err)
	}

	res.Predictions = predVec
	res.Scores = scoreVec
	res.Confusion = cm
	res.Summary = metrics.Summarize(cm)
	res.AUC = auc
	res.Duration = time.Since(start)
	h.logRun(mode, res, evalDS)
	return res
}

// fit wraps the adapter's Fit with panic recovery and the optional deadline.
// A timed-out fit's goroutine keeps running to completion; adapters expose
// no cancellation, so the harness only stops waiting.
func (h *Harness) fit(ctx context.Context, clf classifier.Interface, train *dataset.Dataset, weights []float64) error {
	doFit := func() error {
		return errors.SafeExecute("eval.fit", func() error {
			return clf.Fit(train.X(), train.LabelVector(), weights)
		})
	}
	if h.fitTimeout <= 0 {
		return doFit()
	}

	done := make(chan error, 1)
	go func() {
		done <- doFit()
	}()
	timer := time.NewTimer(h.fitTimeout)
	defer timer.Stop()
	select {
	case err := <-done:
		return err
	case <-timer.C:
		return errors.NewFitTimeoutError(classifier.AlgorithmName(clf), h.fitTimeout)
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

func (h *Harness) logRun(mode string, res Result, evalDS *dataset.Dataset) {
	if h.logger == nil {
		return
	}
	fields := []any{
		log.ComponentKey, "eval",
		log.OperationKey, "run",
		log.SweepModeKey, mode,
		log.RunIndexKey, res.RunIndex,
		log.SeedKey, res.Seed,
		log.StrategyKey, res.Strategy.String(),
		log.DurationMsKey, res.Duration.Milliseconds(),
	}
	if res.Err != nil {
		fields = append(fields, "error", res.Err)
		h.logger.Warn("evaluation run failed", fields...)
		return
	}
	pc, lnc := evalDS.Counts()
	fields = append(fields,
		log.SamplesKey, evalDS.Len(),
		log.FeaturesKey, evalDS.NumFeatures(),
		log.NegativesKey, pc,
		log.PositivesKey, lnc,
		log.AccuracyKey, res.Summary.Accuracy,
		log.SensitivityKey, res.Summary.Sensitivity,
		log.SpecificityKey, res.Summary.Specificity,
		log.F1Key, res.Summary.F1,
		log.AUCKey, res.AUC,
	)
	h.logger.Info("evaluation run complete", fields...)
}

// columnVector copies the first column of an n×1 prediction matrix into a
// vector.
func columnVector(op string, m mat.Matrix, n int) (*mat.VecDense, error) {
	if m == nil {
		return nil, errors.NewValueError(op, "nil prediction matrix")
	}
	r, c := m.Dims()
	if c != 1 {
		return nil, errors.NewDimensionError(op, 1, c, 1)
	}
	if r != n {
		return nil, errors.NewDimensionError(op, n, r, 0)
	}
	v := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		v.SetVec(i, m.At(i, 0))
	}
	return v, nil
}
