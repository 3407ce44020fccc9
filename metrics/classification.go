// Package metrics computes confusion-matrix statistics and score curves for
// binary lncRNA/pcRNA classification.
//
// The package distinguishes balance-sensitive from balance-invariant metrics.
// Sensitivity, specificity and the ROC curve are computed per class, so they
// do not move when the evaluation set's class ratio changes. Precision, F1
// and the precision-recall curve depend on the prevalence of positives and
// DO change under resampling of the negative class. Comparisons across
// differently balanced evaluation sets must use the invariant metrics.
package metrics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/rnakit/lncbench/pkg/errors"
)

// ConfusionMatrix holds the 2x2 counts of predicted vs actual classes.
// lncRNA (label 1) is the positive class.
type ConfusionMatrix struct {
	TP int // lncRNA predicted lncRNA
	FN int // lncRNA predicted pcRNA
	FP int // pcRNA predicted lncRNA
	TN int // pcRNA predicted pcRNA
}

// NewConfusionMatrix counts prediction outcomes. Both vectors must hold only
// the values 0 and 1.
func NewConfusionMatrix(yTrue, yPred *mat.VecDense) (ConfusionMatrix, error) {
	var cm ConfusionMatrix

	if yTrue == nil || yPred == nil || yTrue.Len() == 0 {
		return cm, errors.NewValueError("NewConfusionMatrix", "empty vector")
	}
	n := yTrue.Len()
	if yPred.Len() != n {
		return cm, errors.NewDimensionError("NewConfusionMatrix", n, yPred.Len(), 0)
	}

	for i := 0; i < n; i++ {
		truth := yTrue.AtVec(i)
		pred := yPred.AtVec(i)
		if (truth != 0 && truth != 1) || (pred != 0 && pred != 1) {
			return cm, errors.NewValueError("NewConfusionMatrix", "labels must be binary (0 or 1)")
		}
		switch {
		case truth == 1 && pred == 1:
			cm.TP++
		case truth == 1 && pred == 0:
			cm.FN++
		case truth == 0 && pred == 1:
			cm.FP++
		default:
			cm.TN++
		}
	}

	return cm, nil
}

// Total returns the number of counted samples.
func (c ConfusionMatrix) Total() int {
	return c.TP + c.FN + c.FP + c.TN
}

// Accuracy returns the fraction of correct predictions.
func (c ConfusionMatrix) Accuracy() float64 {
	return errors.SafeDivide(float64(c.TP+c.TN), float64(c.Total()))
}

// Sensitivity returns recall on the positive (lncRNA) class.
// Invariant to the evaluation set's class ratio.
func (c ConfusionMatrix) Sensitivity() float64 {
	return errors.SafeDivide(float64(c.TP), float64(c.TP+c.FN))
}

// Specificity returns recall on the negative (pcRNA) class.
// Invariant to the evaluation set's class ratio.
func (c ConfusionMatrix) Specificity() float64 {
	return errors.SafeDivide(float64(c.TN), float64(c.TN+c.FP))
}

// Precision returns the fraction of positive predictions that are correct.
// Sensitive to the evaluation set's class ratio.
func (c ConfusionMatrix) Precision() float64 {
	return errors.SafeDivide(float64(c.TP), float64(c.TP+c.FP))
}

// F1 returns the harmonic mean of precision and recall. When precision and
// recall are both zero the harmonic mean is undefined; F1 is defined as 0
// and an UndefinedMetricWarning is emitted.
func (c ConfusionMatrix) F1() float64 {
	p := c.Precision()
	r := c.Sensitivity()
	if p+r == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("f1", "precision + recall == 0", 0))
		return 0
	}
	return 2 * p * r / (p + r)
}

// Summary bundles the confusion-matrix-derived statistics of one evaluation.
type Summary struct {
	Accuracy    float64
	Sensitivity float64
	Specificity float64
	Precision   float64
	F1          float64
}

// Summarize derives all scalar metrics from a confusion matrix.
func Summarize(cm ConfusionMatrix) Summary {
	return Summary{
		Accuracy:    cm.Accuracy(),
		Sensitivity: cm.Sensitivity(),
		Specificity: cm.Specificity(),
		Precision:   cm.Precision(),
		F1:          cm.F1(),
	}
}

// Accuracy returns the fraction of matching entries in two label vectors.
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	if yTrue == nil || yPred == nil || yTrue.Len() == 0 {
		return 0, errors.NewValueError("Accuracy", "empty vector")
	}
	n := yTrue.Len()
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("Accuracy", n, yPred.Len(), 0)
	}

	correct := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}
