// Package lncbench provides an evaluation harness for binary lncRNA versus
// protein-coding RNA classification under class imbalance.
//
// The library covers the full offline evaluation pipeline: stratified
// dataset partitioning, leakage-safe feature scaling, class balancing by
// weighting or resampling, classifier adapters, repeated and swept
// evaluation runs, and imbalance-aware metrics.
//
// # Quick Start
//
// A minimal evaluation of one classifier on a balanced partition:
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    "github.com/rnakit/lncbench/balance"
//	    "github.com/rnakit/lncbench/classifier"
//	    "github.com/rnakit/lncbench/dataset"
//	    "github.com/rnakit/lncbench/eval"
//	    "github.com/rnakit/lncbench/preprocessing"
//	)
//
//	func main() {
//	    ds := loadTranscripts() // your *dataset.Dataset
//
//	    part, err := dataset.NewPartitioner(1).Partition(ds, dataset.Balanced(500))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    train, _ := ds.Subset(part.Train)
//	    test, _ := ds.Subset(part.Test)
//
//	    scaledTrain, rest, err := preprocessing.ScaleSplits(train, test)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    h := eval.NewHarness()
//	    res := h.Run(context.Background(), eval.RunConfig{
//	        Train:   scaledTrain,
//	        Eval:    rest[0],
//	        Factory: func() classifier.Interface { return classifier.NewNearestCentroid() },
//	        Balance: balance.Plan{Strategy: balance.StrategyWeight},
//	        Seed:    1,
//	    })
//	    if res.Err != nil {
//	        log.Fatal(res.Err)
//	    }
//	    fmt.Printf("sensitivity %.3f specificity %.3f\n",
//	        res.Summary.Sensitivity, res.Summary.Specificity)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - dataset: labeled transcript datasets and the stratified partitioner
//   - preprocessing: StandardScaler fitted on training rows only
//   - balance: none/weight/undersample/oversample training-split balancing
//   - classifier: the adapter interface and a nearest-centroid reference
//   - eval: the run harness, sweeps, failure isolation, model selection
//   - metrics: confusion-matrix summaries, ROC/PR curves, aggregation
//   - pkg/errors: structured error types with stack traces
//   - pkg/log: structured logging for runs and sweeps
//
// # Evaluation Discipline
//
// Scaler statistics come from the training split alone, balancing applies
// to training rows only, and model selection reads validation metrics
// before a single fresh run against the held-out test split produces the
// reported numbers.
package lncbench
